package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
)

// Service жизненный цикл существующих бронирований: чтение, отмена, подтверждение
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование. Пользователь видит только свои бронирования.
func (s *Service) GetByID(ctx context.Context, session *domain.Session, id uuid.UUID) (*models.BookingResponse, error) {
	booking, err := s.LoadOwned(ctx, session, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// LoadOwned загружает бронирование и проверяет, что оно принадлежит пользователю сессии
func (s *Service) LoadOwned(ctx context.Context, session *domain.Session, id uuid.UUID) (*domain.Booking, error) {
	if !session.IsAuthenticated() {
		return nil, domain.AuthRequired(ErrAuthRequired)
	}

	s.logger.Info("LoadOwned: fetching booking id=%s for user=%s", id, session.UserID)

	booking, err := s.load(ctx, "LoadOwned", id)
	if err != nil {
		return nil, err
	}

	if !session.Owns(booking) {
		s.logger.Warn("LoadOwned: access denied for user=%s to booking id=%s", session.UserID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}

// ListForUser история бронирований пользователя в порядке создания.
// Запросить можно только собственные бронирования.
func (s *Service) ListForUser(ctx context.Context, session *domain.Session, userID uuid.UUID) (*models.BookingListResponse, error) {
	if !session.IsAuthenticated() {
		return nil, domain.AuthRequired(ErrAuthRequired)
	}

	if session.UserID != userID {
		s.logger.Warn("ListForUser: user=%s requested bookings of user=%s", session.UserID, userID)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListForUser: repository error for user=%s: %v", userID, err)
		return nil, domain.RemoteFailure(fmt.Errorf("%w: ListForUser - repository error: %v", ErrInternal, err))
	}

	s.logger.Info("ListForUser: fetched %d bookings for user=%s", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование владельца из любого статуса, кроме Cancelled.
// Возврат средств не рассчитывается.
func (s *Service) Cancel(ctx context.Context, session *domain.Session, id uuid.UUID) (*models.BookingResponse, error) {
	if _, err := s.LoadOwned(ctx, session, id); err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", id, session.UserID)

	cancelled, err := s.transition(ctx, "Cancel", id, domain.StatusCancelled)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventBookingCancelled, cancelled)
	s.logger.Info("Cancel: booking id=%s cancelled", id)
	return models.FromDomainBooking(cancelled), nil
}

// Confirm переводит бронирование из Pending Payment в Confirmed
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	confirmed, err := s.transition(ctx, "Confirm", id, domain.StatusConfirmed)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventBookingConfirmed, confirmed)
	s.logger.Info("Confirm: booking id=%s confirmed", id)
	return confirmed, nil
}

// ConfirmAnyPending подтверждает самое раннее бронирование в статусе Pending Payment,
// независимо от того, чья оплата прошла. Выбор и обновление выполняются в одной
// транзакции, строка блокируется с SKIP LOCKED.
func (s *Service) ConfirmAnyPending(ctx context.Context) (*domain.Booking, error) {
	var confirmed *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		pending, err := s.bookingRepo.FindOldestPending(txCtx)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrNoPendingBooking) {
				s.logger.Warn("ConfirmAnyPending: no pending bookings")
				return domain.InvalidTransition(ErrNoPendingBooking)
			}
			s.logger.Error("ConfirmAnyPending: repository error: %v", err)
			return domain.RemoteFailure(fmt.Errorf("%w: ConfirmAnyPending - repository error: %v", ErrInternal, err))
		}

		confirmed, err = s.transition(txCtx, "ConfirmAnyPending", pending.ID, domain.StatusConfirmed)
		return err
	})
	if err != nil {
		// Ошибки начала и фиксации транзакции приходят без класса
		if domain.KindOf(err) == domain.KindUnknown {
			s.logger.Error("ConfirmAnyPending: transaction failed: %v", err)
			return nil, domain.RemoteFailure(fmt.Errorf("%w: ConfirmAnyPending - transaction failed: %v", ErrInternal, err))
		}
		return nil, err
	}

	s.publish(ctx, domain.EventBookingConfirmed, confirmed)
	s.logger.Info("ConfirmAnyPending: booking id=%s confirmed", confirmed.ID)
	return confirmed, nil
}

// Вспомогательные методы

func (s *Service) load(ctx context.Context, op string, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, domain.RemoteFailure(fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err))
	}
	return booking, nil
}

// transition условный переход статуса; конфликт статуса превращается в InvalidTransition
func (s *Service) transition(ctx context.Context, op string, id uuid.UUID, to domain.BookingStatus) (*domain.Booking, error) {
	updated, err := s.bookingRepo.TransitionStatus(ctx, id, domain.SourcesOf(to), to, s.timeProvider.Now())
	if err == nil {
		s.metrics.RecordBookingStatus(string(to))
		return updated, nil
	}

	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Warn("%s: booking id=%s not found", op, id)
		return nil, ErrBookingNotFound

	case errors.Is(err, bookingRepo.ErrStatusConflict):
		s.logger.Warn("%s: booking id=%s cannot move to %s: %v", op, id, to, err)
		if to == domain.StatusCancelled {
			return nil, domain.InvalidTransition(ErrAlreadyCancelled)
		}
		return nil, domain.InvalidTransition(ErrCannotConfirm)

	default:
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, domain.RemoteFailure(fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err))
	}
}

// publish ошибки публикации только логируются
func (s *Service) publish(ctx context.Context, eventType domain.EventType, b *domain.Booking) {
	event := domain.NewBookingEvent(eventType, b, s.timeProvider.Now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish %s for booking id=%s failed: %v", eventType, b.ID, err)
	}
}
