package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from []domain.BookingStatus, to domain.BookingStatus, at time.Time) (*domain.Booking, error)
	FindOldestPending(ctx context.Context) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикация событий бронирования
type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent) error
}

// Metrics бизнес-метрики
type Metrics interface {
	RecordBookingStatus(status string)
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
