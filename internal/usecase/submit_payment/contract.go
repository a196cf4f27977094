package submit_payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// BookingService жизненный цикл бронирований
type BookingService interface {
	LoadOwned(ctx context.Context, session *domain.Session, id uuid.UUID) (*domain.Booking, error)
	Confirm(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ConfirmAnyPending(ctx context.Context) (*domain.Booking, error)
}

// Authorizer решает исход платежа
type Authorizer interface {
	Authorize(ctx context.Context, attempt domain.PaymentAttempt) (bool, error)
}

// Throttle cool-down повторных отправок формы
type Throttle interface {
	Allow(ctx context.Context, key string, interval time.Duration) (bool, error)
}

// EventPublisher публикация событий бронирования
type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent) error
}

// Metrics бизнес-метрики
type Metrics interface {
	RecordPayment(method, outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
