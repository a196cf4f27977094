package oauth_sign_in

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/auth"
)

const msgUnsupportedProvider = "unsupported sign-in provider"

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

// Handle GET /api/v1/auth/oauth/{provider}
// Перенаправляет на страницу входа провайдера; после входа провайдер возвращает на /hotel.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	provider := mux.Vars(r)["provider"]

	result, err := h.service.OAuthURL(provider)
	if err != nil {
		if errors.Is(err, auth.ErrUnsupportedProvider) {
			h.logger.Warn("GET /auth/oauth/{provider} - Unsupported provider: %q", provider)
			handlers.RespondBadRequest(w, msgUnsupportedProvider)
			return
		}
		h.logger.Error("GET /auth/oauth/{provider} - Failed to build redirect: %v", err)
		handlers.RespondByKind(w, err)
		return
	}

	h.logger.Info("GET /auth/oauth/{provider} - Redirecting to %s", provider)
	http.Redirect(w, r, result.URL, http.StatusFound)
}
