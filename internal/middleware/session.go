package middleware

import (
	"context"
	"net/http"
)

// SessionHeader carries the caller's session key. Every cart operation is
// scoped to this key; there is no server-side session registry.
const SessionHeader = "X-Session-Key"

type contextKey string

const sessionContextKey contextKey = "sessionKey"

// RequireSession rejects requests without a session key and stores the key
// in the request context for the handlers.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(SessionHeader)
		if key == "" {
			http.Error(w, "Bad request: session key required", http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, key)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext returns the session key stored by RequireSession, or
// an empty string when the middleware did not run.
func SessionFromContext(ctx context.Context) string {
	key, _ := ctx.Value(sessionContextKey).(string)
	return key
}
