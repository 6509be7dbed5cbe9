package vocabulary

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/myfrench-backend/internal/config"
	"github.com/heartmarshall/myfrench-backend/internal/domain"
)

// rowSource supplies the current sheet rows. Satisfied by the sheets client
// and by its caching wrapper.
type rowSource interface {
	FetchRows(ctx context.Context) ([]domain.Record, error)
}

// Service provides the read-only vocabulary operations: filtered listings,
// lesson slices and category/level summaries, all computed per call from
// whatever the row source returns.
type Service struct {
	rows rowSource
	cfg  config.VocabularyConfig
	log  *slog.Logger
}

// NewService creates a new Vocabulary service.
func NewService(log *slog.Logger, rows rowSource, cfg config.VocabularyConfig) *Service {
	return &Service{
		rows: rows,
		cfg:  cfg,
		log:  log.With("service", "vocabulary"),
	}
}
