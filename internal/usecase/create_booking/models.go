package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Session  *domain.Session // nil для анонимного пользователя
	RoomID   uuid.UUID
	CheckIn  time.Time // нулевое значение = дата не выбрана
	CheckOut time.Time
}

// Response созданное бронирование и следующий экран
type Response struct {
	Booking *domain.Booking
	Next    domain.Destination
}
