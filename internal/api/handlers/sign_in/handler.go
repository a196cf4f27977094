package sign_in

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingCredentials = "email and password are required"
	msgInvalidCredentials = "invalid login credentials"
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

// Handle POST /api/v1/auth/sign-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-in - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	clientIP := handlers.ClientIP(r)

	result, err := h.service.SignIn(r.Context(), clientIP, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrTooManyAttempts), errors.Is(err, auth.ErrRateLimited):
			h.logger.Warn("POST /auth/sign-in - Too many attempts: client=%s", clientIP)
			handlers.RespondTooManyRequests(w)

		case errors.Is(err, auth.ErrMissingCredentials):
			h.logger.Warn("POST /auth/sign-in - Missing credentials: client=%s", clientIP)
			handlers.RespondBadRequest(w, msgMissingCredentials)

		case errors.Is(err, auth.ErrRejected):
			msg, ok := auth.ProviderMessage(err)
			if !ok {
				msg = msgInvalidCredentials
			}
			h.logger.Warn("POST /auth/sign-in - Rejected by provider: client=%s, reason=%s", clientIP, msg)
			handlers.RespondBadRequest(w, msg)

		default:
			h.logger.Error("POST /auth/sign-in - Failed to sign in: client=%s, error=%v", clientIP, err)
			handlers.RespondByKind(w, err)
		}
		return
	}

	h.logger.Info("POST /auth/sign-in - Signed in: user_id=%s, next=%s", result.User.ID, result.Next)
	handlers.RespondJSON(w, http.StatusOK, result)
}
