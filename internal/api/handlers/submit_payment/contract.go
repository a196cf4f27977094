package submit_payment

import (
	"context"

	submitPayment "github.com/m04kA/SMC-HotelBookingService/internal/usecase/submit_payment"
)

type SubmitPaymentUseCase interface {
	Execute(ctx context.Context, req *submitPayment.Request) (*submitPayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
