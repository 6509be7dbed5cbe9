package vocabulary

import (
	"context"
	"fmt"

	"github.com/heartmarshall/myfrench-backend/internal/domain"
)

// Levels returns the distinct non-empty CEFR levels present in the sheet, in
// the order the rows first use them.
func (s *Service) Levels(ctx context.Context) ([]string, error) {
	records, err := s.rows.FetchRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}

	return domain.DistinctValues(records, domain.ColCEFRLevel), nil
}
