package get_session

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
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

// Handle GET /api/v1/auth/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.GetSession(r.Context())

	result, err := h.service.CurrentSession(r.Context(), session)
	if err != nil {
		h.logger.Warn("GET /auth/session - Failed to resolve session: %v", err)
		handlers.RespondByKind(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
