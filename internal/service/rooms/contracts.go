package rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	ListAvailable(ctx context.Context) ([]*domain.Room, error)
}

// RoomsCache кэш каталога; nil означает работу без кэша
type RoomsCache interface {
	GetAvailableRooms(ctx context.Context) ([]*domain.Room, error)
	SetAvailableRooms(ctx context.Context, rooms []*domain.Room) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
