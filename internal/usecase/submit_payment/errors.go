package submit_payment

import "errors"

var (
	// ErrAuthRequired возвращается, когда оплата отправлена без сессии
	ErrAuthRequired = errors.New("submit_payment: authentication required")

	// ErrUnknownMethod возвращается для неподдерживаемого способа оплаты
	ErrUnknownMethod = errors.New("submit_payment: unsupported payment method")

	// ErrInvalidCardNumber возвращается, если номер карты не из 16 цифр
	ErrInvalidCardNumber = errors.New("submit_payment: card number must be 16 digits")

	// ErrMissingCardHolder возвращается, если не указан держатель карты
	ErrMissingCardHolder = errors.New("submit_payment: card holder name is required")

	// ErrMissingExpiry возвращается, если не указан срок действия карты
	ErrMissingExpiry = errors.New("submit_payment: expiry date is required")

	// ErrInvalidCVV возвращается, если CVV не из 3 цифр
	ErrInvalidCVV = errors.New("submit_payment: cvv must be 3 digits")

	// ErrInvalidUPIID возвращается для UPI ID без "@"
	ErrInvalidUPIID = errors.New("submit_payment: upi id must contain @")

	// ErrMissingBankDetails возвращается, если не заполнены реквизиты банка
	ErrMissingBankDetails = errors.New("submit_payment: bank name, account number and routing code are required")

	// ErrNotAwaitingPayment возвращается, когда бронирование не ожидает оплаты
	ErrNotAwaitingPayment = errors.New("submit_payment: booking is not awaiting payment")

	// ErrTooManyAttempts возвращается при повторной отправке раньше cool-down
	ErrTooManyAttempts = errors.New("submit_payment: form submitted too often")
)
