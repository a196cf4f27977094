package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PaymentMethod способ оплаты
type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "CreditCard"
	MethodDebitCard  PaymentMethod = "DebitCard"
	MethodUPI        PaymentMethod = "UPI"
	MethodNetBanking PaymentMethod = "NetBanking"
)

// PaymentMethods все поддерживаемые способы оплаты в порядке отображения
var PaymentMethods = []PaymentMethod{MethodCreditCard, MethodDebitCard, MethodUPI, MethodNetBanking}

// ParsePaymentMethod принимает как идентификатор ("CreditCard"),
// так и подпись из интерфейса ("Credit Card")
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	for _, m := range PaymentMethods {
		if strings.EqualFold(normalized, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// IsCard returns true for card-based methods
func (m PaymentMethod) IsCard() bool {
	return m == MethodCreditCard || m == MethodDebitCard
}

func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentDetails реквизиты платежа; заполняются поля выбранного способа
type PaymentDetails struct {
	// CreditCard / DebitCard
	CardNumber string
	CardHolder string
	ExpiryDate string
	CVV        string

	// UPI
	UPIID string

	// NetBanking
	BankName      string
	AccountNumber string
	RoutingCode   string
}

// PaymentOutcome результат симуляции платежа
type PaymentOutcome string

const (
	OutcomeSuccess PaymentOutcome = "Success"
	OutcomeFailure PaymentOutcome = "Failure"
)

// PaymentAttempt одна попытка оплаты; не сохраняется
type PaymentAttempt struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
	Method    PaymentMethod
	Details   PaymentDetails
}
