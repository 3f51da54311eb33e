package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fleetdesk/internal/entities"
	"fleetdesk/internal/gateway/http/identity"
	"fleetdesk/pkg/logger"
)

type contextKey struct{}

var userContextKey = contextKey{}

// UserFromContext возвращает пользователя, положенного Middleware.
// false означает что запрос прошел мимо auth middleware.
func UserFromContext(ctx context.Context) (*entities.User, bool) {
	user, ok := ctx.Value(userContextKey).(*entities.User)
	return user, ok
}

func ContextWithUser(ctx context.Context, user *entities.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func Middleware(log handlerLogger, gateway IdentityGateway) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeUnauthorized(log, w, r, "missing bearer token")
				return
			}

			user, err := gateway.CurrentUser(r.Context(), token)
			if err != nil {
				if errors.Is(err, identity.ErrUnauthenticated) || errors.Is(err, identity.ErrUnknownRole) {
					writeUnauthorized(log, w, r, "token rejected")
					return
				}

				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("identity provider unavailable")
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", false
	}

	return token, true
}

func writeUnauthorized(log handlerLogger, w http.ResponseWriter, r *http.Request, reason string) {
	log.With(
		logger.NewField("path", r.URL.Path),
		logger.NewField("reason", reason),
	).Warn("unauthenticated request")

	w.Header().Set("WWW-Authenticate", `Bearer realm="fleetdesk"`)
	w.WriteHeader(http.StatusUnauthorized)

	_, err := w.Write([]byte(`{"error":"Unauthorized"}`))
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("path", r.URL.Path),
		).Error("failed to write unauthorized response")
	}
}
