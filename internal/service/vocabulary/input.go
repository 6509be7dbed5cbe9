package vocabulary

import "github.com/heartmarshall/myfrench-backend/internal/domain"

// ListInput holds the filter parameters for listing vocabulary words.
// Zero values mean "no filter".
type ListInput struct {
	Level         string
	Category      string
	SubCategories []string
	Limit         int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be a positive integer"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LessonInput selects one lesson-sized slice of the filtered vocabulary.
type LessonInput struct {
	Number         int
	Level          string
	Category       string
	SubCategories  []string
	WordsPerLesson int // 0 means the configured lesson size
}

// Validate checks all fields and collects all errors. Number is deliberately
// unconstrained: an out-of-range lesson resolves to an empty result, not an
// error.
func (i *LessonInput) Validate() error {
	var errs []domain.FieldError

	if i.WordsPerLesson < 0 {
		errs = append(errs, domain.FieldError{Field: "words_per_lesson", Message: "must be a positive integer"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
