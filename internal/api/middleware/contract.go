package middleware

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/pkg/jwtverifier"
)

// TokenVerifier проверка access-токена
type TokenVerifier interface {
	Verify(token string) (*jwtverifier.Identity, error)
}

// HTTPMetrics учет HTTP запросов
type HTTPMetrics interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
