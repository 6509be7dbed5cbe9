package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPath is where Load looks for a YAML file when CONFIG_PATH is unset.
const defaultPath = "./config.yaml"

// Load reads the configuration and validates it. Values resolve with
// ENV > YAML > struct defaults. The YAML file is optional: when CONFIG_PATH
// is unset and ./config.yaml does not exist, everything comes from the
// environment and the env-default tags, which is how the deployed service
// runs (SPREADSHEET_ID plus a credential source is all it needs).
// An explicitly set CONFIG_PATH pointing at a missing file is an error.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
