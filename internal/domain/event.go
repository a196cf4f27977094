package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType тип события бронирования
type EventType string

const (
	EventBookingCreated   EventType = "booking_created"
	EventBookingConfirmed EventType = "booking_confirmed"
	EventBookingCancelled EventType = "booking_cancelled"
	EventPaymentFailed    EventType = "payment_failed"
)

// BookingEvent событие жизненного цикла бронирования для внешних потребителей
type BookingEvent struct {
	Type       EventType
	BookingID  uuid.UUID
	UserID     uuid.UUID
	RoomID     uuid.UUID
	Status     BookingStatus
	OccurredAt time.Time
}

// NewBookingEvent строит событие по текущему состоянию бронирования
func NewBookingEvent(t EventType, b *Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Type:       t,
		BookingID:  b.ID,
		UserID:     b.UserID,
		RoomID:     b.RoomID,
		Status:     b.Status,
		OccurredAt: at,
	}
}
