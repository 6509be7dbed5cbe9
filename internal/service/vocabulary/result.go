package vocabulary

import "github.com/heartmarshall/myfrench-backend/internal/domain"

// LessonResult contains one lesson slice plus the totals it was cut from.
// TotalWords and TotalLessons describe the filtered sequence, not the slice.
type LessonResult struct {
	Number       int
	Size         int
	TotalWords   int
	TotalLessons int
	Words        []domain.Record
}
