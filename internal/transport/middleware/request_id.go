package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/myfrench-backend/pkg/ctxutil"
)

// RequestIDHeader is the header carrying the request id, both inbound
// (an incoming id is reused) and on every response.
const RequestIDHeader = "X-Request-Id"

// RequestID returns middleware that assigns every request an id, stores it
// in the request context, and echoes it in the response header.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
