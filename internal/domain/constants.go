package domain

import "time"

// Default room features
const (
	DefaultRoomSize     = "Standard"
	DefaultRoomBedType  = "Queen"
	DefaultRoomView     = "City"
	DefaultRoomBathroom = "Private"
)

// Defaults for the booking and payment flow
const (
	DefaultSubmitCooldown            = 2 * time.Second
	DefaultPaymentSuccessProbability = 0.7
)

// Payment details constraints
const (
	CardNumberLength = 16
	CVVLength        = 3
	UPISeparator     = "@"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы бронирований, занимающих номер
var ActiveStatuses = []BookingStatus{
	StatusPendingPayment,
	StatusConfirmed,
}

// MsgPleaseWait сообщение при слишком частых попытках и rate limit провайдера
const MsgPleaseWait = "Please wait a moment before trying again"
