package submit_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
	submitPayment "github.com/m04kA/SMC-HotelBookingService/internal/usecase/submit_payment"
)

const (
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "booking not found"
	msgForbidden          = "access denied"
	msgNotAwaitingPayment = "booking is not awaiting payment"
	msgNothingToConfirm   = "no booking awaits payment"
)

type Handler struct {
	useCase SubmitPaymentUseCase
	logger  Logger
}

func NewHandler(useCase SubmitPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/payments
// Отклоненная оплата не ошибка: 200 с outcome=Failure и next=payment-failed.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.ParseUUID(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/payments - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req SubmitPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, _ := middleware.GetSession(r.Context())

	result, err := h.useCase.Execute(r.Context(), &submitPayment.Request{
		Session:   session,
		BookingID: bookingID,
		Method:    req.Method,
		Details:   req.ToDomainDetails(),
	})
	if err != nil {
		switch {
		case errors.Is(err, submitPayment.ErrTooManyAttempts):
			h.logger.Warn("POST /bookings/{id}/payments - Too many attempts: booking_id=%s", bookingID)
			handlers.RespondTooManyRequests(w)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/payments - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/payments - Access denied: booking_id=%s", bookingID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, submitPayment.ErrNotAwaitingPayment), errors.Is(err, bookings.ErrCannotConfirm):
			h.logger.Warn("POST /bookings/{id}/payments - Not awaiting payment: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgNotAwaitingPayment)

		case errors.Is(err, bookings.ErrNoPendingBooking):
			h.logger.Warn("POST /bookings/{id}/payments - Nothing to confirm: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgNothingToConfirm)

		default:
			h.logger.Warn("POST /bookings/{id}/payments - Payment rejected: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondByKind(w, err)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/payments - Payment processed: booking_id=%s, method=%s, outcome=%s",
		bookingID, result.Method, result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, session.UserID))
}
