package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/myfrench-backend/internal/domain"
	"github.com/heartmarshall/myfrench-backend/internal/service/vocabulary"
)

// vocabularyService defines the minimal interface needed by VocabularyHandler.
type vocabularyService interface {
	ListWords(ctx context.Context, input vocabulary.ListInput) ([]domain.Record, error)
	Lesson(ctx context.Context, input vocabulary.LessonInput) (*vocabulary.LessonResult, error)
	Levels(ctx context.Context) ([]string, error)
	Categories(ctx context.Context) ([]string, error)
	Topics(ctx context.Context) ([]domain.CategorySummary, error)
	CategoriesByLevel(ctx context.Context, level string) ([]domain.CategorySummary, error)
}

// VocabularyHandler serves the vocabulary REST endpoints.
type VocabularyHandler struct {
	svc vocabularyService
	log *slog.Logger
}

// NewVocabularyHandler creates a VocabularyHandler.
func NewVocabularyHandler(svc vocabularyService, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{svc: svc, log: logger.With("handler", "vocabulary")}
}

type formResponse struct {
	Word          string `json:"word"`
	Gender        string `json:"gender"`
	GenderColor   string `json:"genderColor"`
	Pronunciation string `json:"pronunciation"`
}

type flashcardResponse struct {
	ID            string         `json:"id"`
	English       string         `json:"english"`
	Forms         []formResponse `json:"forms"`
	ExampleTarget string         `json:"exampleTarget"`
	ExampleNative string         `json:"exampleNative"`
	Phonetic      string         `json:"phonetic"`
	Level         string         `json:"level"`
	Category      string         `json:"category"`
	SubCategory   string         `json:"subCategory"`
	Image         string         `json:"image"`
}

// listResponse wraps a word listing. Words holds []flashcardResponse in
// transformed mode and []domain.Record in raw mode, where each record
// keeps the sheet's column headers as its keys.
type listResponse struct {
	Count int `json:"count"`
	Words any `json:"words"`
}

type lessonResponse struct {
	LessonID       int     `json:"lesson_id"`
	Level          *string `json:"level"`
	WordsPerLesson int     `json:"words_per_lesson"`
	TotalWords     int     `json:"total_words"`
	TotalLessons   int     `json:"total_lessons"`
	Count          int     `json:"count"`
	Words          any     `json:"words"`
}

type levelsResponse struct {
	Levels []string `json:"levels"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

type categorySummaryResponse struct {
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	WordCount     int      `json:"wordCount"`
	Subcategories []string `json:"subcategories"`
}

type topicsResponse struct {
	TotalTopics int                       `json:"totalTopics"`
	Topics      []categorySummaryResponse `json:"topics"`
}

type categoriesByLevelResponse struct {
	Level           *string                   `json:"level"`
	TotalCategories int                       `json:"totalCategories"`
	Categories      []categorySummaryResponse `json:"categories"`
}

// List handles GET /api/vocabulary.
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := parsePositiveInt(q, "limit")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	transform, err := parseTransform(q)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	records, err := h.svc.ListWords(r.Context(), vocabulary.ListInput{
		Level:         q.Get("level"),
		Category:      q.Get("category"),
		SubCategories: q["sub_category"],
		Limit:         limit,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Count: len(records),
		Words: wordsPayload(records, transform),
	})
}

// Lesson handles GET /api/vocabulary/lesson/{id}. An id past the end of
// the filtered sequence answers 200 with an empty words list.
func (h *VocabularyHandler) Lesson(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.handleError(w, r, domain.NewValidationError("id", "must be an integer"))
		return
	}

	q := r.URL.Query()

	perLesson, err := parsePositiveInt(q, "words_per_lesson")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	transform, err := parseTransform(q)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	result, err := h.svc.Lesson(r.Context(), vocabulary.LessonInput{
		Number:         number,
		Level:          q.Get("level"),
		Category:       q.Get("category"),
		SubCategories:  q["sub_category"],
		WordsPerLesson: perLesson,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, lessonResponse{
		LessonID:       result.Number,
		Level:          optionalString(q.Get("level")),
		WordsPerLesson: result.Size,
		TotalWords:     result.TotalWords,
		TotalLessons:   result.TotalLessons,
		Count:          len(result.Words),
		Words:          wordsPayload(result.Words, transform),
	})
}

// Levels handles GET /api/vocabulary/levels.
func (h *VocabularyHandler) Levels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.svc.Levels(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, levelsResponse{Levels: levels})
}

// Categories handles GET /api/vocabulary/categories.
func (h *VocabularyHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, categoriesResponse{Categories: categories})
}

// Topics handles GET /api/vocabulary/topics.
func (h *VocabularyHandler) Topics(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.Topics(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, topicsResponse{
		TotalTopics: len(summaries),
		Topics:      toSummaryResponses(summaries),
	})
}

// CategoriesByLevel handles GET /api/vocabulary/categories-by-level.
// The echoed level is upper-cased; it is null when no level was requested.
func (h *VocabularyHandler) CategoriesByLevel(w http.ResponseWriter, r *http.Request) {
	level := r.URL.Query().Get("level")

	summaries, err := h.svc.CategoriesByLevel(r.Context(), level)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, categoriesByLevelResponse{
		Level:           optionalString(strings.ToUpper(level)),
		TotalCategories: len(summaries),
		Categories:      toSummaryResponses(summaries),
	})
}

func (h *VocabularyHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrSheetAccess):
		h.log.ErrorContext(r.Context(), "sheet fetch failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "could not reach the vocabulary sheet")
	case errors.Is(err, domain.ErrCredentials):
		h.log.ErrorContext(r.Context(), "sheets credentials rejected", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "vocabulary source is misconfigured")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// wordsPayload picks the serialized form of a word sequence. Transform
// runs last in the pipeline, so raw mode returns the records untouched.
func wordsPayload(records []domain.Record, transform bool) any {
	if !transform {
		return records
	}

	cards := domain.ToFlashcards(records)
	out := make([]flashcardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toFlashcardResponse(c))
	}
	return out
}

func toFlashcardResponse(card domain.Flashcard) flashcardResponse {
	forms := make([]formResponse, 0, len(card.Forms))
	for _, f := range card.Forms {
		forms = append(forms, formResponse{
			Word:          f.Word,
			Gender:        f.Gender.Label(),
			GenderColor:   f.Gender.ColorClass(),
			Pronunciation: f.Pronunciation,
		})
	}

	return flashcardResponse{
		ID:            card.ID,
		English:       card.English,
		Forms:         forms,
		ExampleTarget: card.ExampleTarget,
		ExampleNative: card.ExampleNative,
		Phonetic:      card.Phonetic,
		Level:         card.Level,
		Category:      card.Category,
		SubCategory:   card.SubCategory,
		Image:         "", // placeholder until cards carry images
	}
}

func toSummaryResponses(summaries []domain.CategorySummary) []categorySummaryResponse {
	out := make([]categorySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, categorySummaryResponse{
			Name:          s.Name,
			Slug:          s.Slug,
			WordCount:     s.WordCount,
			Subcategories: s.Subcategories,
		})
	}
	return out
}

// parsePositiveInt reads an optional positive integer query parameter.
// Absent means zero; anything else that is not a positive integer is a
// validation error.
func parsePositiveInt(q url.Values, name string) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return n, nil
}

// parseTransform reads the transform flag, defaulting to true.
func parseTransform(q url.Values) (bool, error) {
	raw := q.Get("transform")
	if raw == "" {
		return true, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domain.NewValidationError("transform", "must be a boolean")
	}
	return v, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
