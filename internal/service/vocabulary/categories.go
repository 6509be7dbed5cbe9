package vocabulary

import (
	"context"
	"fmt"

	"github.com/heartmarshall/myfrench-backend/internal/domain"
)

// Categories returns the distinct non-empty category names present in the
// sheet, in the order the rows first use them.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	records, err := s.rows.FetchRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}

	return domain.DistinctValues(records, domain.ColCategory), nil
}
