package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPendingPayment BookingStatus = "Pending Payment"
	StatusConfirmed      BookingStatus = "Confirmed"
	StatusCancelled      BookingStatus = "Cancelled"
)

// transitions допустимые переходы статусов.
// Cancelled поглощающий: из него переходов нет.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPendingPayment: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusCancelled},
	StatusCancelled:      {},
}

// IsValid returns true if the status is a known booking status
func (s BookingStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo returns true if the status may change to target
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// SourcesOf возвращает статусы, из которых разрешен переход в target
func SourcesOf(target BookingStatus) []BookingStatus {
	sources := make([]BookingStatus, 0, 2)
	for _, from := range []BookingStatus{StatusPendingPayment, StatusConfirmed, StatusCancelled} {
		if from.CanTransitionTo(target) {
			sources = append(sources, from)
		}
	}
	return sources
}

func (s BookingStatus) String() string {
	return string(s)
}

// Booking represents a room reservation for a date range
type Booking struct {
	ID       uuid.UUID
	RoomID   uuid.UUID
	UserID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	Status   BookingStatus

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still holds the room (not cancelled)
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeConfirmed returns true if payment may confirm the booking
func (b *Booking) CanBeConfirmed() bool {
	return b.Status.CanTransitionTo(StatusConfirmed)
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status.CanTransitionTo(StatusCancelled)
}

// Nights returns the number of nights between check-in and check-out
func (b *Booking) Nights() int {
	return int(DateOnly(b.CheckOut).Sub(DateOnly(b.CheckIn)).Hours() / 24)
}

// Overlaps returns true if the booking's range intersects [checkIn, checkOut).
// Выезд в день заезда другого бронирования пересечением не считается.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return DateOnly(b.CheckIn).Before(DateOnly(checkOut)) && DateOnly(checkIn).Before(DateOnly(b.CheckOut))
}

// DateOnly обнуляет время, оставляя календарную дату в UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
