package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware into one. The first argument becomes the
// outermost wrapper: Chain(recovery, requestID)(h) runs recovery first on
// the way in and last on the way out, which is what the server wiring
// relies on.
func Chain(mws ...Middleware) Middleware {
	return func(next http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}
