package sheets

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"google.golang.org/api/option"

	"github.com/heartmarshall/myfrench-backend/internal/config"
	"github.com/heartmarshall/myfrench-backend/internal/domain"
)

// readonlyScope limits the service account to reading spreadsheets.
const readonlyScope = "https://www.googleapis.com/auth/spreadsheets.readonly"

// credentialOption resolves the service-account credential from the config.
// The inline JSON blob (production) wins over the key file (development).
// Resolution happens once, at client construction, so a misconfiguration
// fails at startup rather than on the first request. Every failure wraps
// domain.ErrCredentials.
func credentialOption(cfg config.SheetsConfig) (option.ClientOption, error) {
	if raw := strings.TrimSpace(cfg.CredentialsJSON); raw != "" {
		if !json.Valid([]byte(raw)) {
			return nil, fmt.Errorf("sheets: inline credentials are not valid JSON: %w", domain.ErrCredentials)
		}
		return option.WithCredentialsJSON([]byte(raw)), nil
	}

	path := cfg.CredentialsFile
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf(
			"sheets: no usable credential: set GOOGLE_CREDENTIALS_JSON or provide %q: %w",
			path, domain.ErrCredentials,
		)
	}
	return option.WithCredentialsFile(path), nil
}
