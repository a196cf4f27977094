package submit_payment

import (
	"strings"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// validateDetails структурная проверка реквизитов выбранного способа оплаты
func validateDetails(method domain.PaymentMethod, d domain.PaymentDetails) error {
	switch method {
	case domain.MethodCreditCard, domain.MethodDebitCard:
		number := strings.ReplaceAll(d.CardNumber, " ", "")
		if len(number) != domain.CardNumberLength || !isDigits(number) {
			return ErrInvalidCardNumber
		}
		if strings.TrimSpace(d.CardHolder) == "" {
			return ErrMissingCardHolder
		}
		if strings.TrimSpace(d.ExpiryDate) == "" {
			return ErrMissingExpiry
		}
		if len(d.CVV) != domain.CVVLength || !isDigits(d.CVV) {
			return ErrInvalidCVV
		}

	case domain.MethodUPI:
		if !strings.Contains(strings.TrimSpace(d.UPIID), domain.UPISeparator) {
			return ErrInvalidUPIID
		}

	case domain.MethodNetBanking:
		if strings.TrimSpace(d.BankName) == "" ||
			strings.TrimSpace(d.AccountNumber) == "" ||
			strings.TrimSpace(d.RoutingCode) == "" {
			return ErrMissingBankDetails
		}

	default:
		return ErrUnknownMethod
	}

	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
