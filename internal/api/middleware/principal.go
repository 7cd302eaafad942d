package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const userContextKey contextKey = "user_id"

// UserFromContext returns the resolved principal, or uuid.Nil when the
// request carried no usable identity.
func UserFromContext(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(userContextKey).(uuid.UUID)
	return id
}

// Principal resolves the acting user for a request: the X-User-ID
// header wins, then the user_id query parameter, then the configured
// default. There is no authentication; the identity is trusted as
// supplied until a real identity provider fronts the API. Handlers that
// require an owner reject requests that resolve to no user.
func Principal(defaultUserID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("X-User-ID")
			if raw == "" {
				raw = r.URL.Query().Get("user_id")
			}
			if raw == "" {
				raw = defaultUserID
			}

			if id, err := uuid.Parse(raw); err == nil {
				ctx := context.WithValue(r.Context(), userContextKey, id)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}
