package events

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// bookingEventMessage тело сообщения в топике событий бронирования
type bookingEventMessage struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	UserID     string    `json:"user_id"`
	RoomID     string    `json:"room_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

func toMessage(e domain.BookingEvent) bookingEventMessage {
	return bookingEventMessage{
		Type:       string(e.Type),
		BookingID:  e.BookingID.String(),
		UserID:     e.UserID.String(),
		RoomID:     e.RoomID.String(),
		Status:     string(e.Status),
		OccurredAt: e.OccurredAt.UTC(),
	}
}
