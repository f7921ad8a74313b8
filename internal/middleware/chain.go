package middleware

import "net/http"

// Chain wraps h with the given middleware so that requests pass
// through them in the order listed. The first middleware sees the
// request first and the response last.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	// Wrap in reverse so execution order matches argument order.
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
