package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_booking"
)

const msgBooked = "Room booked successfully"

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID   string `json:"roomId"`
	CheckIn  string `json:"checkIn"`  // "2025-01-10"
	CheckOut string `json:"checkOut"` // "2025-01-12"
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking *models.BookingResponse `json:"booking"`
	Message string                  `json:"message"`
	Next    domain.Destination      `json:"next"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(session *domain.Session) (*createBooking.Request, error) {
	roomID, err := handlers.ParseUUID(r.RoomID)
	if err != nil {
		return nil, fmt.Errorf("roomId: %w", err)
	}

	checkIn, err := handlers.ParseDate(r.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("checkIn: %w", err)
	}

	checkOut, err := handlers.ParseDate(r.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("checkOut: %w", err)
	}

	return &createBooking.Request{
		Session:  session,
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking: models.FromDomainBooking(resp.Booking),
		Message: msgBooked,
		Next:    resp.Next,
	}
}
