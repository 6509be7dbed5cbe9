package vocabulary

import (
	"context"
	"fmt"

	"github.com/heartmarshall/myfrench-backend/internal/domain"
)

// Topics returns per-category summaries (name, slug, word count,
// subcategories) across the whole sheet, sorted by category name.
func (s *Service) Topics(ctx context.Context) ([]domain.CategorySummary, error) {
	records, err := s.rows.FetchRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("topics: %w", err)
	}

	return domain.SummarizeCategories(records), nil
}
