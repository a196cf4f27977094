package domain

import "time"

// RefundTier ступень политики отмены. Информационная: сервис возвраты не считает.
type RefundTier struct {
	Title         string
	Description   string
	MinNotice     time.Duration // включительно
	MaxNotice     time.Duration // 0 = без верхней границы
	RefundPercent int
}

// CancellationPolicy описательная политика отмены
type CancellationPolicy struct {
	Tiers []RefundTier
	Notes []string
}

// DefaultCancellationPolicy политика, показываемая на экране оплаты
func DefaultCancellationPolicy() CancellationPolicy {
	return CancellationPolicy{
		Tiers: []RefundTier{
			{
				Title:         "48 Hours Before Check-in",
				Description:   "Full refund, no questions asked",
				MinNotice:     48 * time.Hour,
				RefundPercent: 100,
			},
			{
				Title:         "24-48 Hours Before Check-in",
				Description:   "50% refund of total amount",
				MinNotice:     24 * time.Hour,
				MaxNotice:     48 * time.Hour,
				RefundPercent: 50,
			},
			{
				Title:         "Less than 24 Hours",
				Description:   "No refund available",
				MaxNotice:     24 * time.Hour,
				RefundPercent: 0,
			},
		},
		Notes: []string{
			"All times are calculated in local hotel time",
			"Refunds are processed within 5-7 business days",
			"Special events and peak season may have different policies",
		},
	}
}
