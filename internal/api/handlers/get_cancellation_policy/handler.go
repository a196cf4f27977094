package get_cancellation_policy

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

type Handler struct {
	policy *PolicyResponse
}

func NewHandler(policy domain.CancellationPolicy) *Handler {
	return &Handler{policy: FromDomainPolicy(policy)}
}

// Handle GET /api/v1/policies/cancellation
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.policy)
}
