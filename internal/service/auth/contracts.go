package auth

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/identity"
)

// IdentityClient клиент провайдера идентификации
type IdentityClient interface {
	SignInWithPassword(ctx context.Context, creds identity.Credentials) (*identity.Session, error)
	SignUp(ctx context.Context, creds identity.Credentials) (*identity.SignUpResult, error)
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (*identity.User, error)
	OAuthURL(provider, redirectTo string) string
}

// Throttle cool-down повторных отправок формы
type Throttle interface {
	Allow(ctx context.Context, key string, interval time.Duration) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
