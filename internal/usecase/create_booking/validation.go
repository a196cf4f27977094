package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.RoomID == uuid.Nil {
		return domain.Validation(fmt.Errorf("%w: roomId is required", ErrInvalidInput))
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return domain.Validation(ErrMissingDates)
	}

	checkIn := domain.DateOnly(req.CheckIn)
	checkOut := domain.DateOnly(req.CheckOut)

	if !checkOut.After(checkIn) {
		return domain.Validation(ErrInvalidDates)
	}

	// сравниваются только календарные даты: заезд сегодня допустим
	if checkIn.Before(domain.DateOnly(now)) {
		return domain.Validation(ErrCheckInInPast)
	}

	return nil
}
