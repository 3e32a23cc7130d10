// Package mwauth authenticates requests by Bearer token and puts the
// requester's user id into the request context.
package mwauth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"meetapp/internal/lib/api/response"
	libauth "meetapp/internal/lib/auth"
	"meetapp/internal/lib/logger/sl"
)

type contextKey string

const userIDKey contextKey = "user_id"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenParser
type TokenParser interface {
	ParseToken(token string) (int, error)
}

func New(log *slog.Logger, tokens TokenParser) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("not authorized"))
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")

			userID, err := tokens.ParseToken(token)
			if err != nil {
				log.Warn("failed to parse token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("not authorized"))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// UserID returns the authenticated user id stored by the middleware.
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// WithUserID is a test helper to seed the context the way the middleware does.
func WithUserID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

var _ TokenParser = (*libauth.TokenManager)(nil)
