package submit_payment

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
	submitPayment "github.com/m04kA/SMC-HotelBookingService/internal/usecase/submit_payment"
)

// PaymentDetailsRequest реквизиты; заполняются поля выбранного способа
type PaymentDetailsRequest struct {
	CardNumber    string `json:"cardNumber,omitempty"`
	CardHolder    string `json:"cardHolder,omitempty"`
	ExpiryDate    string `json:"expiryDate,omitempty"`
	CVV           string `json:"cvv,omitempty"`
	UPIID         string `json:"upiId,omitempty"`
	BankName      string `json:"bankName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	RoutingCode   string `json:"routingCode,omitempty"`
}

// SubmitPaymentRequest HTTP request model
type SubmitPaymentRequest struct {
	Method  string                `json:"method"` // "CreditCard" или "Credit Card"
	Details PaymentDetailsRequest `json:"details"`
}

// SubmitPaymentResponse HTTP response model.
// Полные данные подтвержденного бронирования отдаются только его владельцу:
// в режиме any_pending подтверждаться может чужое бронирование.
type SubmitPaymentResponse struct {
	BookingID          string                  `json:"bookingId"`
	Method             string                  `json:"method"`
	Outcome            string                  `json:"outcome"`
	ConfirmedBookingID string                  `json:"confirmedBookingId,omitempty"`
	ConfirmedStatus    string                  `json:"confirmedStatus,omitempty"`
	Confirmed          *models.BookingResponse `json:"confirmedBooking,omitempty"`
	Next               domain.Destination      `json:"next"`
	Retry              domain.Destination      `json:"retry"`
}

// ToDomainDetails конвертирует реквизиты в domain модель
func (r *SubmitPaymentRequest) ToDomainDetails() domain.PaymentDetails {
	return domain.PaymentDetails{
		CardNumber:    r.Details.CardNumber,
		CardHolder:    r.Details.CardHolder,
		ExpiryDate:    r.Details.ExpiryDate,
		CVV:           r.Details.CVV,
		UPIID:         r.Details.UPIID,
		BankName:      r.Details.BankName,
		AccountNumber: r.Details.AccountNumber,
		RoutingCode:   r.Details.RoutingCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response для пользователя viewer
func FromUseCaseResponse(resp *submitPayment.Response, viewer uuid.UUID) *SubmitPaymentResponse {
	out := &SubmitPaymentResponse{
		BookingID: resp.BookingID.String(),
		Method:    resp.Method.String(),
		Outcome:   string(resp.Outcome),
		Next:      resp.Next,
		Retry:     resp.Retry,
	}

	if resp.Confirmed != nil {
		out.ConfirmedBookingID = resp.Confirmed.ID.String()
		out.ConfirmedStatus = resp.Confirmed.Status.String()
		if resp.Confirmed.UserID == viewer {
			out.Confirmed = models.FromDomainBooking(resp.Confirmed)
		}
	}

	return out
}
