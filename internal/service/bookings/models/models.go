package models

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          string  `json:"id"`
	RoomID      string  `json:"roomId"`
	UserID      string  `json:"userId"`
	CheckIn     string  `json:"checkIn"`  // "2025-01-10"
	CheckOut    string  `json:"checkOut"` // "2025-01-12"
	Nights      int     `json:"nights"`
	Status      string  `json:"status"`
	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:        b.ID.String(),
		RoomID:    b.RoomID.String(),
		UserID:    b.UserID.String(),
		CheckIn:   b.CheckIn.Format(domain.DateFormat),
		CheckOut:  b.CheckOut.Format(domain.DateFormat),
		Nights:    b.Nights(),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
