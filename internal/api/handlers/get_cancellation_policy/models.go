package get_cancellation_policy

import (
	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
)

// TierResponse ступень политики отмены
type TierResponse struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	MinNoticeHours int    `json:"minNoticeHours"`
	MaxNoticeHours *int   `json:"maxNoticeHours,omitempty"` // nil = без верхней границы
	RefundPercent  int    `json:"refundPercent"`
}

// PolicyResponse политика отмены; только для отображения
type PolicyResponse struct {
	Tiers    []TierResponse `json:"tiers"`
	Notes    []string       `json:"notes"`
	Enforced bool           `json:"enforced"`
}

// FromDomainPolicy конвертирует политику в DTO
func FromDomainPolicy(p domain.CancellationPolicy) *PolicyResponse {
	resp := &PolicyResponse{
		Tiers: make([]TierResponse, 0, len(p.Tiers)),
		Notes: append([]string{}, p.Notes...),
	}

	for _, t := range p.Tiers {
		tier := TierResponse{
			Title:          t.Title,
			Description:    t.Description,
			MinNoticeHours: int(t.MinNotice.Hours()),
			RefundPercent:  t.RefundPercent,
		}
		if t.MaxNotice > 0 {
			tier.MaxNoticeHours = ptr.Ptr(int(t.MaxNotice.Hours()))
		}
		resp.Tiers = append(resp.Tiers, tier)
	}

	return resp
}
