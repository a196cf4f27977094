package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/jwtverifier"
)

type contextKey string

const sessionKey contextKey = "session"

const (
	msgMissingToken = "missing bearer token"
	msgInvalidToken = "invalid access token"
	msgExpiredToken = "session expired, please sign in again"
)

// Auth требует заголовок Authorization: Bearer <jwt> и кладет сессию в контекст
func Auth(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				if errors.Is(err, jwtverifier.ErrExpiredToken) {
					logger.Warn("%s %s - Expired token", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgExpiredToken)
					return
				}
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			session := &domain.Session{
				UserID:      identity.UserID,
				Email:       identity.Email,
				AccessToken: token,
				ExpiresAt:   identity.ExpiresAt,
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// WithSession кладет сессию в контекст
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSession извлекает сессию из контекста
func GetSession(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionKey).(*domain.Session)
	return session, ok && session != nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
