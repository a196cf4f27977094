package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid room id or date, dates must be YYYY-MM-DD"
	msgAuthRequired       = "Please login to book a room"
	msgMissingDates       = "Please select check-in and check-out dates"
	msgInvalidDates       = "check-out must be after check-in"
	msgCheckInInPast      = "check-in date cannot be in the past"
	msgRoomNotFound       = "room not found"
	msgRoomUnavailable    = "room is not available"
	msgRoomAlreadyBooked  = "room is already booked for the selected dates"
	msgFailedToBook       = "Failed to book room"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, _ := middleware.GetSession(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(session)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrAuthRequired):
			h.logger.Warn("POST /bookings - Anonymous request")
			handlers.RespondUnauthorized(w, msgAuthRequired)

		case errors.Is(err, createBooking.ErrTooManyAttempts):
			h.logger.Warn("POST /bookings - Too many attempts: user_id=%s", session.UserID)
			handlers.RespondTooManyRequests(w)

		case errors.Is(err, createBooking.ErrMissingDates):
			handlers.RespondBadRequest(w, msgMissingDates)

		case errors.Is(err, createBooking.ErrInvalidDates):
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, createBooking.ErrCheckInInPast):
			handlers.RespondBadRequest(w, msgCheckInInPast)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRoomUnavailable):
			h.logger.Warn("POST /bookings - Room unavailable: room_id=%s", req.RoomID)
			handlers.RespondBadRequest(w, msgRoomUnavailable)

		case errors.Is(err, createBooking.ErrRoomAlreadyBooked):
			h.logger.Warn("POST /bookings - Room already booked: room_id=%s", req.RoomID)
			handlers.RespondBadRequest(w, msgRoomAlreadyBooked)

		case errors.Is(err, createBooking.ErrInternal):
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgFailedToBook)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondByKind(w, err)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, room_id=%s",
		result.Booking.ID, result.Booking.UserID, result.Booking.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
