package rest

import "net/http"

// NewRouter builds the route table. All endpoints are read-only GETs; the
// method patterns let the mux answer 405 for anything else.
func NewRouter(health *HealthHandler, vocab *VocabularyHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", health.Root)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /api/vocabulary", vocab.List)
	mux.HandleFunc("GET /api/vocabulary/lesson/{id}", vocab.Lesson)
	mux.HandleFunc("GET /api/vocabulary/levels", vocab.Levels)
	mux.HandleFunc("GET /api/vocabulary/categories", vocab.Categories)
	mux.HandleFunc("GET /api/vocabulary/topics", vocab.Topics)
	mux.HandleFunc("GET /api/vocabulary/categories-by-level", vocab.CategoriesByLevel)

	return mux
}
