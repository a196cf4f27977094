package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListActiveByRoomInRange(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
	RecordBookingStatus(status string)
}

// IDGenerator генератор идентификаторов бронирований
type IDGenerator func() uuid.UUID

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
