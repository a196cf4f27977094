package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
)

const (
	msgInvalidUserID = "invalid user id"
	msgForbidden     = "you can only view your own bookings"
	msgFailedToFetch = "Failed to fetch bookings"
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

// Handle GET /api/v1/users/{userId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.ParseUUID(mux.Vars(r)["userId"])
	if err != nil {
		h.logger.Warn("GET /users/{userId}/bookings - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	session, _ := middleware.GetSession(r.Context())

	result, err := h.service.ListForUser(r.Context(), session, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /users/{userId}/bookings - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInternal):
			h.logger.Error("GET /users/{userId}/bookings - Failed to get bookings: user_id=%s, error=%v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgFailedToFetch)

		default:
			h.logger.Error("GET /users/{userId}/bookings - Failed to get bookings: user_id=%s, error=%v", userID, err)
			handlers.RespondByKind(w, err)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/bookings - Bookings retrieved successfully: user_id=%s, count=%d",
		userID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
