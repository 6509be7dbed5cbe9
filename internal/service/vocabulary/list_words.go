package vocabulary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myfrench-backend/internal/domain"
)

// ListWords returns the filtered vocabulary rows in sheet order. A zero
// Limit returns the whole filtered sequence.
func (s *Service) ListWords(ctx context.Context, input ListInput) ([]domain.Record, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	records, err := s.rows.FetchRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	filter := domain.Filter{
		Level:         input.Level,
		Category:      input.Category,
		SubCategories: input.SubCategories,
	}
	records = filter.Apply(records)

	if input.Limit > 0 && len(records) > input.Limit {
		records = records[:input.Limit]
	}

	s.log.DebugContext(ctx, "listed words",
		slog.Int("count", len(records)),
		slog.String("level", input.Level),
		slog.String("category", input.Category),
	)
	return records, nil
}
