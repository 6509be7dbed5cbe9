package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Sheets     SheetsConfig     `yaml:"sheets"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// SheetsConfig holds the Google Sheets source settings.
//
// Exactly one credential source must resolve: CredentialsJSON (inline
// service-account key, used in production) takes precedence; otherwise
// CredentialsFile must point at an existing key file.
type SheetsConfig struct {
	SpreadsheetID   string        `yaml:"spreadsheet_id"   env:"SPREADSHEET_ID"                  env-required:"true"`
	CredentialsFile string        `yaml:"credentials_file" env:"GOOGLE_SHEETS_CREDENTIALS_FILE"  env-default:"credentials.json"`
	CredentialsJSON string        `yaml:"credentials_json" env:"GOOGLE_CREDENTIALS_JSON"`
	SheetName       string        `yaml:"sheet_name"       env:"SHEET_NAME"                      env-default:"Sheet1"`
	Range           string        `yaml:"range"            env:"SHEET_RANGE"                     env-default:"A:T"`
	HeaderRow       int           `yaml:"header_row"       env:"HEADER_ROW"                      env-default:"1"`
	FetchTimeout    time.Duration `yaml:"fetch_timeout"    env:"SHEETS_FETCH_TIMEOUT"            env-default:"0s"`

	Cache CacheConfig `yaml:"cache"`
}

// CacheConfig holds the optional fetch cache settings. The cache is off by
// default: every request then performs its own sheet fetch.
type CacheConfig struct {
	Enabled    bool          `yaml:"enabled"     env:"SHEETS_CACHE_ENABLED"     env-default:"false"`
	TTL        time.Duration `yaml:"ttl"         env:"SHEETS_CACHE_TTL"         env-default:"5m"`
	MaxEntries int           `yaml:"max_entries" env:"SHEETS_CACHE_MAX_ENTRIES" env-default:"4"`
}

// VocabularyConfig holds vocabulary service settings.
type VocabularyConfig struct {
	// LessonSize is the default number of words per lesson page.
	// Requests may override it with the words_per_lesson query parameter.
	LessonSize int `yaml:"lesson_size" env:"LESSON_SIZE" env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings. The default origins are the known
// frontend deployments.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:5173,http://localhost:5174,http://localhost:3000,https://language-app-rust.vercel.app"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
