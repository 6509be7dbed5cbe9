package vocabulary

import (
	"context"
	"fmt"

	"github.com/heartmarshall/myfrench-backend/internal/domain"
)

// CategoriesByLevel returns per-category summaries for one CEFR level, or
// for the whole sheet when level is empty. Sorted by category name, like
// Topics.
func (s *Service) CategoriesByLevel(ctx context.Context, level string) ([]domain.CategorySummary, error) {
	records, err := s.rows.FetchRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("categories by level: %w", err)
	}

	if level != "" {
		filter := domain.Filter{Level: level}
		records = filter.Apply(records)
	}

	return domain.SummarizeCategories(records), nil
}
