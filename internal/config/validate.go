package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Sheets.SpreadsheetID) == "" {
		return fmt.Errorf("sheets.spreadsheet_id must not be empty")
	}

	if c.Sheets.HeaderRow < 1 {
		return fmt.Errorf("sheets.header_row must be >= 1 (got %d)", c.Sheets.HeaderRow)
	}

	if c.Sheets.FetchTimeout < 0 {
		return fmt.Errorf("sheets.fetch_timeout must not be negative (got %v)", c.Sheets.FetchTimeout)
	}

	if err := c.Sheets.Cache.validate(); err != nil {
		return fmt.Errorf("sheets.cache: %w", err)
	}

	if c.Vocabulary.LessonSize < 1 {
		return fmt.Errorf("vocabulary.lesson_size must be >= 1 (got %d)", c.Vocabulary.LessonSize)
	}

	return nil
}

func (c CacheConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	if c.TTL <= 0 {
		return fmt.Errorf("ttl must be > 0 when enabled (got %v)", c.TTL)
	}
	if c.MaxEntries < 1 {
		return fmt.Errorf("max_entries must be >= 1 when enabled (got %d)", c.MaxEntries)
	}
	return nil
}
