package submit_payment

import (
	"context"
	"math/rand/v2"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// RandomAuthorizer одобряет платеж, если равномерная величина из [0, 1)
// меньше вероятности успеха
type RandomAuthorizer struct {
	probability float64
	draw        func() float64
}

// NewRandomAuthorizer создает authorizer с вероятностью успеха probability
func NewRandomAuthorizer(probability float64) *RandomAuthorizer {
	return &RandomAuthorizer{probability: probability, draw: rand.Float64}
}

// Authorize реквизиты не проверяет, только бросает жребий
func (a *RandomAuthorizer) Authorize(ctx context.Context, _ domain.PaymentAttempt) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return a.draw() < a.probability, nil
}

// FixedAuthorizer всегда возвращает заданный исход
type FixedAuthorizer struct {
	Approve bool
	Err     error
}

// Authorize возвращает заданный исход
func (a FixedAuthorizer) Authorize(context.Context, domain.PaymentAttempt) (bool, error) {
	return a.Approve, a.Err
}
