package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBookingService/internal/infra/throttle"
	"github.com/m04kA/SMC-HotelBookingService/pkg/txmanager"
)

const formBooking = "booking"

// Options настройки создания бронирований
type Options struct {
	// PreventOverlap отклонять бронирования, пересекающиеся с активными бронированиями номера
	PreventOverlap bool
	// Cooldown минимальный интервал между отправками формы одним пользователем
	Cooldown time.Duration
}

// UseCase use case для создания бронирования
type UseCase struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	throttle     Throttle
	publisher    EventPublisher
	metrics      Metrics
	opts         Options
	newID        IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	th Throttle,
	publisher EventPublisher,
	metrics Metrics,
	opts Options,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		throttle:     th,
		publisher:    publisher,
		metrics:      metrics,
		opts:         opts,
		newID:        uuid.New,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает бронирование в статусе Pending Payment.
// При PreventOverlap проверка пересечений и вставка выполняются в сериализуемой
// транзакции с блокировкой активных бронирований номера.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if !req.Session.IsAuthenticated() {
		uc.logger.Warn("CreateBooking: anonymous request for room=%s", req.RoomID)
		return nil, domain.AuthRequired(ErrAuthRequired)
	}

	userID := req.Session.UserID
	uc.logger.Info("CreateBooking: user=%s, room=%s, check_in=%s, check_out=%s",
		userID, req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Cool-down формы
	if err := uc.checkCooldown(ctx, userID); err != nil {
		return nil, err
	}

	// 3. Номер должен существовать и быть доступным
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%s not found", req.RoomID)
			return nil, domain.Validation(ErrRoomNotFound)
		}
		uc.logger.Error("CreateBooking: failed to get room id=%s: %v", req.RoomID, err)
		return nil, domain.RemoteFailure(fmt.Errorf("%w: failed to get room: %v", ErrInternal, err))
	}

	if !room.IsAvailable() {
		uc.logger.Warn("CreateBooking: room id=%s has status %s", room.ID, room.Status)
		return nil, domain.Validation(ErrRoomUnavailable)
	}

	booking := &domain.Booking{
		ID:       uc.newID(),
		RoomID:   room.ID,
		UserID:   userID,
		CheckIn:  domain.DateOnly(req.CheckIn),
		CheckOut: domain.DateOnly(req.CheckOut),
		Status:   domain.StatusPendingPayment,
	}

	// 4. Сохранение
	var created *domain.Booking
	if uc.opts.PreventOverlap {
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			active, err := uc.bookingRepo.ListActiveByRoomInRange(txCtx, booking.RoomID, booking.CheckIn, booking.CheckOut)
			if txmanager.IsSerializationFailure(err) {
				return err
			}
			if err != nil {
				uc.logger.Error("CreateBooking: failed to list active bookings of room=%s: %v", booking.RoomID, err)
				return domain.RemoteFailure(fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err))
			}

			if conflict := firstOverlap(active, booking); conflict != nil {
				uc.logger.Warn("CreateBooking: room=%s already booked by booking id=%s", booking.RoomID, conflict.ID)
				return domain.Validation(ErrRoomAlreadyBooked)
			}

			created, err = uc.create(txCtx, booking)
			return err
		})
	} else {
		created, err = uc.create(ctx, booking)
	}
	if err = uc.txError(booking, err); err != nil {
		return nil, err
	}

	uc.metrics.RecordBookingStatus(created.Status.String())
	if err := uc.publisher.Publish(ctx, domain.NewBookingEvent(domain.EventBookingCreated, created, now)); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%s: %v", created.ID, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)

	return &Response{
		Booking: created,
		Next:    domain.DestinationPayment,
	}, nil
}

func (uc *UseCase) create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created, err := uc.bookingRepo.Create(ctx, booking)
	if txmanager.IsSerializationFailure(err) {
		return nil, err
	}
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, domain.RemoteFailure(fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err))
	}
	return created, nil
}

// txError классифицирует ошибку сохранения. Конфликт сериализации
// означает, что конкурирующее бронирование того же номера зафиксировалось первым.
func (uc *UseCase) txError(booking *domain.Booking, err error) error {
	switch {
	case err == nil:
		return nil
	case txmanager.IsSerializationFailure(err):
		uc.logger.Warn("CreateBooking: serialization conflict on room=%s: %v", booking.RoomID, err)
		return domain.Validation(ErrRoomAlreadyBooked)
	case domain.KindOf(err) == domain.KindUnknown:
		uc.logger.Error("CreateBooking: transaction failed for room=%s: %v", booking.RoomID, err)
		return domain.RemoteFailure(fmt.Errorf("%w: transaction failed: %v", ErrInternal, err))
	default:
		return err
	}
}

func (uc *UseCase) checkCooldown(ctx context.Context, userID uuid.UUID) error {
	allowed, err := uc.throttle.Allow(ctx, throttle.Key(formBooking, userID.String()), uc.opts.Cooldown)
	if err != nil {
		uc.logger.Warn("CreateBooking: throttle unavailable for user=%s: %v", userID, err)
		return nil
	}
	if !allowed {
		uc.logger.Warn("CreateBooking: too many attempts from user=%s", userID)
		return ErrTooManyAttempts
	}
	return nil
}

// firstOverlap возвращает первое активное бронирование, пересекающееся с booking
func firstOverlap(active []*domain.Booking, booking *domain.Booking) *domain.Booking {
	for _, b := range active {
		if b.IsActive() && b.Overlaps(booking.CheckIn, booking.CheckOut) {
			return b
		}
	}
	return nil
}
