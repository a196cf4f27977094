package sign_up

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingCredentials = "email and password are required"
	msgSignUpRejected     = "sign up was rejected"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/sign-up
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-up - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	clientIP := handlers.ClientIP(r)

	result, err := h.service.SignUp(r.Context(), clientIP, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrTooManyAttempts), errors.Is(err, auth.ErrRateLimited):
			h.logger.Warn("POST /auth/sign-up - Too many attempts: client=%s", clientIP)
			handlers.RespondTooManyRequests(w)

		case errors.Is(err, auth.ErrMissingCredentials):
			h.logger.Warn("POST /auth/sign-up - Missing credentials: client=%s", clientIP)
			handlers.RespondBadRequest(w, msgMissingCredentials)

		case errors.Is(err, auth.ErrRejected):
			msg, ok := auth.ProviderMessage(err)
			if !ok {
				msg = msgSignUpRejected
			}
			h.logger.Warn("POST /auth/sign-up - Rejected by provider: client=%s, reason=%s", clientIP, msg)
			handlers.RespondBadRequest(w, msg)

		default:
			h.logger.Error("POST /auth/sign-up - Failed to sign up: client=%s, error=%v", clientIP, err)
			handlers.RespondByKind(w, err)
		}
		return
	}

	status := http.StatusCreated
	if result.ConfirmationRequired {
		status = http.StatusAccepted
	}

	h.logger.Info("POST /auth/sign-up - Registered: user_id=%s, confirmation_required=%t", result.User.ID, result.ConfirmationRequired)
	handlers.RespondJSON(w, status, result)
}
