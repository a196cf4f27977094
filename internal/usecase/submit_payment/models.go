package submit_payment

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// ConfirmMode какое бронирование подтверждается после успешной оплаты
type ConfirmMode string

const (
	// ConfirmPaidBooking подтверждается оплаченное бронирование
	ConfirmPaidBooking ConfirmMode = "booking"
	// ConfirmAnyPending подтверждается самое раннее бронирование в Pending Payment
	ConfirmAnyPending ConfirmMode = "any_pending"
)

// Request модель запроса на оплату
type Request struct {
	Session   *domain.Session
	BookingID uuid.UUID
	Method    string // "CreditCard" или подпись "Credit Card"
	Details   domain.PaymentDetails
}

// Response исход оплаты
type Response struct {
	BookingID uuid.UUID
	Method    domain.PaymentMethod
	Outcome   domain.PaymentOutcome
	Confirmed *domain.Booking // nil при неудаче
	Next      domain.Destination
	Retry     domain.Destination
}
