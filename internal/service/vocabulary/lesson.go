package vocabulary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myfrench-backend/internal/domain"
)

// Lesson cuts the filtered vocabulary into fixed-size slices and returns the
// one selected by input.Number (1-based). A number outside the filtered
// sequence, including numbers below 1, yields an empty Words slice while the
// totals still describe the full sequence.
func (s *Service) Lesson(ctx context.Context, input LessonInput) (*LessonResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	records, err := s.rows.FetchRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("lesson %d: %w", input.Number, err)
	}

	filter := domain.Filter{
		Level:         input.Level,
		Category:      input.Category,
		SubCategories: input.SubCategories,
	}
	records = filter.Apply(records)

	size := input.WordsPerLesson
	if size == 0 {
		size = s.cfg.LessonSize
	}

	result := &LessonResult{
		Number:       input.Number,
		Size:         size,
		TotalWords:   len(records),
		TotalLessons: (len(records) + size - 1) / size,
		Words:        []domain.Record{},
	}

	start := (input.Number - 1) * size
	if input.Number >= 1 && start < len(records) {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		result.Words = records[start:end]
	}

	s.log.DebugContext(ctx, "lesson sliced",
		slog.Int("lesson", input.Number),
		slog.Int("count", len(result.Words)),
		slog.Int("total_words", result.TotalWords),
	)
	return result, nil
}
