package middleware

import (
	"context"
	"net/http"

	"github.com/hongminglow/userauth-be/internal/auth"
	"github.com/hongminglow/userauth-be/internal/http/respond"
)

type contextKey byte

const userIDKey = contextKey(1)

// RequireAuth resolves the request's credential and stores the caller's user
// id on the context. Requests without a valid credential are rejected with
// 401 before reaching next.
func RequireAuth(authn auth.Authenticator, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := authn.Resolve(r)
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, auth.ErrUnauthenticated.Error())
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the caller's user id placed on the context by RequireAuth.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
