package submit_payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/infra/throttle"
)

const formPayment = "payment"

// UseCase симуляция оплаты бронирования
type UseCase struct {
	bookings     BookingService
	authorizer   Authorizer
	throttle     Throttle
	publisher    EventPublisher
	metrics      Metrics
	mode         ConfirmMode
	cooldown     time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookings BookingService,
	authorizer Authorizer,
	th Throttle,
	publisher EventPublisher,
	metrics Metrics,
	mode ConfirmMode,
	cooldown time.Duration,
	logger Logger,
) *UseCase {
	if mode == "" {
		mode = ConfirmPaidBooking
	}
	return &UseCase{
		bookings:     bookings,
		authorizer:   authorizer,
		throttle:     th,
		publisher:    publisher,
		metrics:      metrics,
		mode:         mode,
		cooldown:     cooldown,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет реквизиты, решает исход и при успехе подтверждает бронирование.
// Неудачная оплата не меняет бронирование и не является ошибкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if !req.Session.IsAuthenticated() {
		uc.logger.Warn("SubmitPayment: anonymous payment for booking=%s", req.BookingID)
		return nil, domain.AuthRequired(ErrAuthRequired)
	}

	userID := req.Session.UserID

	// 1. Способ оплаты и реквизиты
	method, err := domain.ParsePaymentMethod(req.Method)
	if err != nil {
		uc.logger.Warn("SubmitPayment: user=%s: %v", userID, err)
		return nil, domain.Validation(ErrUnknownMethod)
	}

	if err := validateDetails(method, req.Details); err != nil {
		uc.logger.Warn("SubmitPayment: invalid %s details from user=%s: %v", method, userID, err)
		return nil, domain.Validation(err)
	}

	// 2. Cool-down формы
	if err := uc.checkCooldown(ctx, userID); err != nil {
		return nil, err
	}

	// 3. Бронирование должно принадлежать пользователю
	booking, err := uc.bookings.LoadOwned(ctx, req.Session, req.BookingID)
	if err != nil {
		return nil, err
	}

	if uc.mode == ConfirmPaidBooking && !booking.CanBeConfirmed() {
		uc.logger.Warn("SubmitPayment: booking id=%s has status %s", booking.ID, booking.Status)
		return nil, domain.InvalidTransition(ErrNotAwaitingPayment)
	}

	uc.logger.Info("SubmitPayment: user=%s, booking=%s, method=%s", userID, booking.ID, method)

	// 4. Решение об исходе
	attempt := domain.PaymentAttempt{
		BookingID: booking.ID,
		UserID:    userID,
		Method:    method,
		Details:   req.Details,
	}

	approved, err := uc.authorizer.Authorize(ctx, attempt)
	if err != nil {
		uc.logger.Warn("SubmitPayment: authorizer error for booking id=%s: %v", booking.ID, err)
		approved = false
	}

	if !approved {
		return uc.fail(ctx, booking, method), nil
	}

	// 5. Подтверждение
	confirmed, err := uc.confirm(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	uc.metrics.RecordPayment(method.String(), string(domain.OutcomeSuccess))
	uc.logger.Info("SubmitPayment: payment for booking id=%s succeeded, confirmed booking id=%s", booking.ID, confirmed.ID)

	return &Response{
		BookingID: booking.ID,
		Method:    method,
		Outcome:   domain.OutcomeSuccess,
		Confirmed: confirmed,
		Next:      domain.NextAfterPayment(domain.OutcomeSuccess),
		Retry:     domain.RetryDestination(domain.DestinationPaymentSuccess),
	}, nil
}

func (uc *UseCase) confirm(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	if uc.mode == ConfirmAnyPending {
		return uc.bookings.ConfirmAnyPending(ctx)
	}
	return uc.bookings.Confirm(ctx, bookingID)
}

func (uc *UseCase) fail(ctx context.Context, booking *domain.Booking, method domain.PaymentMethod) *Response {
	uc.metrics.RecordPayment(method.String(), string(domain.OutcomeFailure))

	event := domain.NewBookingEvent(domain.EventPaymentFailed, booking, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("SubmitPayment: failed to publish event for booking id=%s: %v", booking.ID, err)
	}

	uc.logger.Info("SubmitPayment: payment for booking id=%s declined", booking.ID)

	return &Response{
		BookingID: booking.ID,
		Method:    method,
		Outcome:   domain.OutcomeFailure,
		Next:      domain.NextAfterPayment(domain.OutcomeFailure),
		Retry:     domain.RetryDestination(domain.DestinationPaymentFailed),
	}
}

func (uc *UseCase) checkCooldown(ctx context.Context, userID uuid.UUID) error {
	allowed, err := uc.throttle.Allow(ctx, throttle.Key(formPayment, userID.String()), uc.cooldown)
	if err != nil {
		uc.logger.Warn("SubmitPayment: throttle unavailable for user=%s: %v", userID, err)
		return nil
	}
	if !allowed {
		uc.logger.Warn("SubmitPayment: too many attempts from user=%s", userID)
		return ErrTooManyAttempts
	}
	return nil
}
