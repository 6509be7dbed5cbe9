package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SPREADSHEET_ID", "1AbCdEfGhIjKlMnOp")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

sheets:
  spreadsheet_id: "1AbCdEfGhIjKlMnOp"
  credentials_file: "service-account.json"
  sheet_name: "Vocab List"
  range: "A:T"
  header_row: 2
  fetch_timeout: "5s"
  cache:
    enabled: true
    ttl: "2m"
    max_entries: 2

vocabulary:
  lesson_size: 15

log:
  level: "debug"
  format: "text"

cors:
  allowed_origins: "http://localhost:5173"
  allowed_methods: "GET,OPTIONS"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}

	// Sheets
	if cfg.Sheets.SpreadsheetID != "1AbCdEfGhIjKlMnOp" {
		t.Errorf("sheets.spreadsheet_id = %q", cfg.Sheets.SpreadsheetID)
	}
	if cfg.Sheets.CredentialsFile != "service-account.json" {
		t.Errorf("sheets.credentials_file = %q", cfg.Sheets.CredentialsFile)
	}
	if cfg.Sheets.SheetName != "Vocab List" {
		t.Errorf("sheets.sheet_name = %q", cfg.Sheets.SheetName)
	}
	if cfg.Sheets.Range != "A:T" {
		t.Errorf("sheets.range = %q", cfg.Sheets.Range)
	}
	if cfg.Sheets.HeaderRow != 2 {
		t.Errorf("sheets.header_row = %d, want 2", cfg.Sheets.HeaderRow)
	}
	if cfg.Sheets.FetchTimeout != 5*time.Second {
		t.Errorf("sheets.fetch_timeout = %v, want 5s", cfg.Sheets.FetchTimeout)
	}

	// Cache
	if !cfg.Sheets.Cache.Enabled {
		t.Error("sheets.cache.enabled should be true")
	}
	if cfg.Sheets.Cache.TTL != 2*time.Minute {
		t.Errorf("sheets.cache.ttl = %v, want 2m", cfg.Sheets.Cache.TTL)
	}
	if cfg.Sheets.Cache.MaxEntries != 2 {
		t.Errorf("sheets.cache.max_entries = %d, want 2", cfg.Sheets.Cache.MaxEntries)
	}

	// Vocabulary
	if cfg.Vocabulary.LessonSize != 15 {
		t.Errorf("vocabulary.lesson_size = %d, want 15", cfg.Vocabulary.LessonSize)
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}

	// CORS
	if cfg.CORS.AllowedOrigins != "http://localhost:5173" {
		t.Errorf("cors.allowed_origins = %q", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("SHEET_NAME", "Sheet1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Sheets.SheetName != "Sheet1" {
		t.Errorf("sheets.sheet_name = %q, want %q (ENV override)", cfg.Sheets.SheetName, "Sheet1")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)

	t.Setenv("CONFIG_PATH", "")
	// Set working dir to a temp dir with no config.yaml
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Sheets.SheetName != "Sheet1" {
		t.Errorf("sheets.sheet_name = %q, want %q (default)", cfg.Sheets.SheetName, "Sheet1")
	}
	if cfg.Sheets.Range != "A:T" {
		t.Errorf("sheets.range = %q, want %q (default)", cfg.Sheets.Range, "A:T")
	}
	if cfg.Sheets.HeaderRow != 1 {
		t.Errorf("sheets.header_row = %d, want 1 (default)", cfg.Sheets.HeaderRow)
	}
	if cfg.Sheets.Cache.Enabled {
		t.Error("sheets.cache.enabled should default to false")
	}
	if cfg.Vocabulary.LessonSize != 10 {
		t.Errorf("vocabulary.lesson_size = %d, want 10 (default)", cfg.Vocabulary.LessonSize)
	}
}

func TestLoad_MissingSpreadsheetID(t *testing.T) {
	// Ensure the variable is absent, not just empty.
	t.Setenv("SPREADSHEET_ID", "")
	_ = os.Unsetenv("SPREADSHEET_ID")

	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when SPREADSHEET_ID is not set")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_SpreadsheetIDEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Sheets.SpreadsheetID = "   "

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for blank spreadsheet id")
	}
}

func TestValidate_HeaderRowZero(t *testing.T) {
	cfg := validConfig()
	cfg.Sheets.HeaderRow = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for HeaderRow = 0")
	}
}

func TestValidate_HeaderRowNegative(t *testing.T) {
	cfg := validConfig()
	cfg.Sheets.HeaderRow = -1

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative HeaderRow")
	}
}

func TestValidate_FetchTimeoutNegative(t *testing.T) {
	cfg := validConfig()
	cfg.Sheets.FetchTimeout = -time.Second

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative FetchTimeout")
	}
}

func TestValidate_LessonSizeZero(t *testing.T) {
	cfg := validConfig()
	cfg.Vocabulary.LessonSize = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for LessonSize = 0")
	}
}

func TestValidate_CacheEnabledTTLZero(t *testing.T) {
	cfg := validConfig()
	cfg.Sheets.Cache.Enabled = true
	cfg.Sheets.Cache.TTL = 0
	cfg.Sheets.Cache.MaxEntries = 4

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for enabled cache with TTL = 0")
	}
}

func TestValidate_CacheEnabledMaxEntriesZero(t *testing.T) {
	cfg := validConfig()
	cfg.Sheets.Cache.Enabled = true
	cfg.Sheets.Cache.TTL = time.Minute
	cfg.Sheets.Cache.MaxEntries = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for enabled cache with MaxEntries = 0")
	}
}

func TestValidate_CacheDisabledSkipsCacheRules(t *testing.T) {
	cfg := validConfig()
	cfg.Sheets.Cache.Enabled = false
	cfg.Sheets.Cache.TTL = 0
	cfg.Sheets.Cache.MaxEntries = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error with cache disabled: %v", err)
	}
}

func TestValidate_ValidBoundaryValues(t *testing.T) {
	cfg := validConfig()
	cfg.Sheets.HeaderRow = 1
	cfg.Vocabulary.LessonSize = 1
	cfg.Sheets.FetchTimeout = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error for boundary values: %v", err)
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		Sheets: SheetsConfig{
			SpreadsheetID:   "1AbCdEfGhIjKlMnOp",
			CredentialsFile: "credentials.json",
			SheetName:       "Sheet1",
			Range:           "A:T",
			HeaderRow:       1,
		},
		Vocabulary: VocabularyConfig{
			LessonSize: 10,
		},
	}
}
