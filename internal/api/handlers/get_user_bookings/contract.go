package get_user_bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
)

type BookingService interface {
	ListForUser(ctx context.Context, session *domain.Session, userID uuid.UUID) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
