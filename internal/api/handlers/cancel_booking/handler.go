package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgNotFound         = "booking not found"
	msgForbidden        = "access denied"
	msgCannotCancel     = "booking is already cancelled"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.ParseUUID(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	session, _ := middleware.GetSession(r.Context())

	booking, err := h.service.Cancel(r.Context(), session, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%s", bookingID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Already cancelled: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondByKind(w, err)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled successfully: booking_id=%s, user_id=%s",
		bookingID, booking.UserID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
