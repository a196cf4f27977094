package sign_out

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
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

// SignOutResponse HTTP response model
type SignOutResponse struct {
	Next domain.Destination `json:"next"`
}

// Handle POST /api/v1/auth/sign-out
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.GetSession(r.Context())

	if err := h.service.SignOut(r.Context(), session); err != nil {
		h.logger.Error("POST /auth/sign-out - Failed to sign out: %v", err)
		handlers.RespondByKind(w, err)
		return
	}

	h.logger.Info("POST /auth/sign-out - Signed out: user_id=%s", session.UserID)
	handlers.RespondJSON(w, http.StatusOK, SignOutResponse{Next: domain.DestinationAuth})
}
