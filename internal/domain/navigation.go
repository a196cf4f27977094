package domain

// Destination экран, на который клиент переходит после операции
type Destination string

const (
	DestinationAuth           Destination = "auth"
	DestinationHotel          Destination = "hotel"
	DestinationPayment        Destination = "payment"
	DestinationPaymentSuccess Destination = "payment-success"
	DestinationPaymentFailed  Destination = "payment-failed"
)

// NextAfterPayment экран после оплаты: подтверждение или повтор
func NextAfterPayment(outcome PaymentOutcome) Destination {
	if outcome == OutcomeSuccess {
		return DestinationPaymentSuccess
	}
	return DestinationPaymentFailed
}

// RetryDestination экран повторной попытки для экрана неудачи
func RetryDestination(from Destination) Destination {
	if from == DestinationPaymentFailed {
		return DestinationPayment
	}
	return DestinationHotel
}
