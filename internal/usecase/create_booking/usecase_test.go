package create_booking

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBookingService/internal/infra/throttle"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
	"github.com/m04kA/SMC-HotelBookingService/pkg/txmanager"
)

type mockRoomRepo struct{ mock.Mock }

func (m *mockRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*domain.Room)
	return r, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, b)
	if fn, ok := args.Get(0).(func(*domain.Booking) *domain.Booking); ok {
		return fn(b), args.Error(1)
	}
	created, _ := args.Get(0).(*domain.Booking)
	return created, args.Error(1)
}

func (m *mockBookingRepo) ListActiveByRoomInRange(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, roomID, checkIn, checkOut)
	b, _ := args.Get(0).([]*domain.Booking)
	return b, args.Error(1)
}

type countingTx struct{ calls int }

func (tx *countingTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type recordingPublisher struct {
	events []domain.BookingEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e domain.BookingEvent) error {
	p.events = append(p.events, e)
	return p.err
}

type countingMetrics struct{ statuses []string }

func (m *countingMetrics) RecordBookingStatus(status string) { m.statuses = append(m.statuses, status) }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var (
	now       = time.Date(2025, 1, 5, 15, 30, 0, 0, time.UTC)
	roomID    = uuid.MustParse("0b7c1e52-9d0b-4d0e-8a55-5d0f4b1d2a01")
	userID    = uuid.MustParse("6f1c1d8e-3f54-4a8a-9f0e-2f1d2a9c0b11")
	bookingID = uuid.MustParse("a3f0e3c4-1b2c-4d5e-8f90-112233445566")
	session   = &domain.Session{UserID: userID, Email: "guest@example.com"}
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

type fixture struct {
	uc        *UseCase
	rooms     *mockRoomRepo
	bookings  *mockBookingRepo
	tx        *countingTx
	publisher *recordingPublisher
	metrics   *countingMetrics
}

func newFixture(opts Options) *fixture {
	f := &fixture{
		rooms:     &mockRoomRepo{},
		bookings:  &mockBookingRepo{},
		tx:        &countingTx{},
		publisher: &recordingPublisher{},
		metrics:   &countingMetrics{},
	}
	f.uc = NewUseCase(f.rooms, f.bookings, f.tx, throttle.NewMemoryThrottle(), f.publisher, f.metrics, opts,
		logger.NewWithWriter(io.Discard, "error"))
	f.uc.timeProvider = fixedClock{t: now}
	f.uc.newID = func() uuid.UUID { return bookingID }
	return f
}

func availableRoom() *domain.Room {
	return &domain.Room{ID: roomID, RoomNo: "101", Status: domain.RoomAvailable, Price: 120}
}

func request(checkIn, checkOut string) *Request {
	return &Request{Session: session, RoomID: roomID, CheckIn: date(checkIn), CheckOut: date(checkOut)}
}

func expectCreate(f *fixture) {
	f.bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Return(func(b *domain.Booking) *domain.Booking {
			b.CreatedAt = now
			b.UpdatedAt = now
			return b
		}, nil).Once()
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture(Options{PreventOverlap: true, Cooldown: 2 * time.Second})
	f.rooms.On("GetByID", mock.Anything, roomID).Return(availableRoom(), nil).Once()
	f.bookings.On("ListActiveByRoomInRange", mock.Anything, roomID, date("2025-01-10"), date("2025-01-12")).
		Return([]*domain.Booking{}, nil).Once()
	expectCreate(f)

	resp, err := f.uc.Execute(context.Background(), request("2025-01-10", "2025-01-12"))

	require.NoError(t, err)
	assert.Equal(t, bookingID, resp.Booking.ID)
	assert.Equal(t, domain.StatusPendingPayment, resp.Booking.Status)
	assert.Equal(t, userID, resp.Booking.UserID)
	assert.Equal(t, 2, resp.Booking.Nights())
	assert.Equal(t, domain.DestinationPayment, resp.Next)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, []string{"Pending Payment"}, f.metrics.statuses)
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, domain.EventBookingCreated, f.publisher.events[0].Type)
	assert.Equal(t, bookingID, f.publisher.events[0].BookingID)
	f.rooms.AssertExpectations(t)
	f.bookings.AssertExpectations(t)
}

func TestUseCase_Execute_CheckInToday(t *testing.T) {
	f := newFixture(Options{PreventOverlap: true})
	f.rooms.On("GetByID", mock.Anything, roomID).Return(availableRoom(), nil).Once()
	f.bookings.On("ListActiveByRoomInRange", mock.Anything, roomID, mock.Anything, mock.Anything).Return(nil, nil).Once()
	expectCreate(f)

	_, err := f.uc.Execute(context.Background(), request("2025-01-05", "2025-01-06"))

	assert.NoError(t, err)
}

func TestUseCase_Execute_AuthRequired(t *testing.T) {
	f := newFixture(Options{PreventOverlap: true})
	req := request("2025-01-10", "2025-01-12")
	req.Session = nil

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Equal(t, domain.KindAuthRequired, domain.KindOf(err))
	f.rooms.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "missing check-in",
			req:     &Request{Session: session, RoomID: roomID, CheckOut: date("2025-01-12")},
			wantErr: ErrMissingDates,
		},
		{
			name:    "missing check-out",
			req:     &Request{Session: session, RoomID: roomID, CheckIn: date("2025-01-10")},
			wantErr: ErrMissingDates,
		},
		{
			name:    "check-out equals check-in",
			req:     request("2025-01-10", "2025-01-10"),
			wantErr: ErrInvalidDates,
		},
		{
			name:    "check-out before check-in",
			req:     request("2025-01-12", "2025-01-10"),
			wantErr: ErrInvalidDates,
		},
		{
			name:    "check-in in the past",
			req:     request("2025-01-04", "2025-01-06"),
			wantErr: ErrCheckInInPast,
		},
		{
			name:    "missing room",
			req:     &Request{Session: session, CheckIn: date("2025-01-10"), CheckOut: date("2025-01-12")},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(Options{PreventOverlap: true})

			_, err := f.uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, domain.KindValidation, domain.KindOf(err))
			f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_Execute_RoomChecks(t *testing.T) {
	tests := []struct {
		name     string
		room     *domain.Room
		repoErr  error
		wantErr  error
		wantKind domain.ErrorKind
	}{
		{
			name:     "room not found",
			repoErr:  roomRepo.ErrRoomNotFound,
			wantErr:  ErrRoomNotFound,
			wantKind: domain.KindValidation,
		},
		{
			name:     "room unavailable",
			room:     &domain.Room{ID: roomID, Status: domain.RoomUnavailable},
			wantErr:  ErrRoomUnavailable,
			wantKind: domain.KindValidation,
		},
		{
			name:     "store failure",
			repoErr:  errors.New("connection reset"),
			wantErr:  ErrInternal,
			wantKind: domain.KindRemoteFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(Options{PreventOverlap: true})
			f.rooms.On("GetByID", mock.Anything, roomID).Return(tt.room, tt.repoErr).Once()

			_, err := f.uc.Execute(context.Background(), request("2025-01-10", "2025-01-12"))

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantKind, domain.KindOf(err))
			f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			assert.Empty(t, f.publisher.events)
		})
	}
}

func TestUseCase_Execute_Overlap(t *testing.T) {
	existing := &domain.Booking{
		ID:       uuid.New(),
		RoomID:   roomID,
		CheckIn:  date("2025-01-11"),
		CheckOut: date("2025-01-13"),
		Status:   domain.StatusConfirmed,
	}

	t.Run("rejected when overlap prevention is on", func(t *testing.T) {
		f := newFixture(Options{PreventOverlap: true})
		f.rooms.On("GetByID", mock.Anything, roomID).Return(availableRoom(), nil).Once()
		f.bookings.On("ListActiveByRoomInRange", mock.Anything, roomID, mock.Anything, mock.Anything).
			Return([]*domain.Booking{existing}, nil).Once()

		_, err := f.uc.Execute(context.Background(), request("2025-01-10", "2025-01-12"))

		assert.ErrorIs(t, err, ErrRoomAlreadyBooked)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("back-to-back stay is allowed", func(t *testing.T) {
		f := newFixture(Options{PreventOverlap: true})
		f.rooms.On("GetByID", mock.Anything, roomID).Return(availableRoom(), nil).Once()
		f.bookings.On("ListActiveByRoomInRange", mock.Anything, roomID, mock.Anything, mock.Anything).
			Return([]*domain.Booking{existing}, nil).Once()
		expectCreate(f)

		_, err := f.uc.Execute(context.Background(), request("2025-01-13", "2025-01-15"))

		assert.NoError(t, err)
	})

	t.Run("double booking allowed when prevention is off", func(t *testing.T) {
		f := newFixture(Options{PreventOverlap: false})
		f.rooms.On("GetByID", mock.Anything, roomID).Return(availableRoom(), nil).Once()
		expectCreate(f)

		resp, err := f.uc.Execute(context.Background(), request("2025-01-10", "2025-01-12"))

		require.NoError(t, err)
		assert.Equal(t, domain.StatusPendingPayment, resp.Booking.Status)
		assert.Zero(t, f.tx.calls)
		f.bookings.AssertNotCalled(t, "ListActiveByRoomInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUseCase_Execute_Cooldown(t *testing.T) {
	f := newFixture(Options{PreventOverlap: false, Cooldown: 2 * time.Second})
	f.rooms.On("GetByID", mock.Anything, roomID).Return(availableRoom(), nil).Once()
	expectCreate(f)

	_, err := f.uc.Execute(context.Background(), request("2025-01-10", "2025-01-12"))
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), request("2025-01-20", "2025-01-22"))
	assert.ErrorIs(t, err, ErrTooManyAttempts)
	f.rooms.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestUseCase_Execute_StoreFailures(t *testing.T) {
	t.Run("list active bookings", func(t *testing.T) {
		f := newFixture(Options{PreventOverlap: true})
		f.rooms.On("GetByID", mock.Anything, roomID).Return(availableRoom(), nil).Once()
		f.bookings.On("ListActiveByRoomInRange", mock.Anything, roomID, mock.Anything, mock.Anything).
			Return(nil, errors.New("could not serialize access")).Once()

		_, err := f.uc.Execute(context.Background(), request("2025-01-10", "2025-01-12"))

		assert.ErrorIs(t, err, ErrInternal)
		assert.Equal(t, domain.KindRemoteFailure, domain.KindOf(err))
	})

	t.Run("insert", func(t *testing.T) {
		f := newFixture(Options{PreventOverlap: false})
		f.rooms.On("GetByID", mock.Anything, roomID).Return(availableRoom(), nil).Once()
		f.bookings.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("fk violation")).Once()

		_, err := f.uc.Execute(context.Background(), request("2025-01-10", "2025-01-12"))

		assert.ErrorIs(t, err, ErrInternal)
		assert.Empty(t, f.metrics.statuses)
		assert.Empty(t, f.publisher.events)
	})
}

func TestUseCase_Execute_PublishFailureIgnored(t *testing.T) {
	f := newFixture(Options{PreventOverlap: false})
	f.publisher.err = errors.New("broker down")
	f.rooms.On("GetByID", mock.Anything, roomID).Return(availableRoom(), nil).Once()
	expectCreate(f)

	resp, err := f.uc.Execute(context.Background(), request("2025-01-10", "2025-01-12"))

	require.NoError(t, err)
	assert.Equal(t, bookingID, resp.Booking.ID)
}

// withSQLTx подменяет транзакции настоящим менеджером поверх sqlmock
func withSQLTx(t *testing.T, f *fixture) sqlmock.Sqlmock {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	f.uc.txManager = txmanager.NewTransactionManager(dbmetrics.Wrap(db, nil, "test"))
	return sqlMock
}

func TestUseCase_Execute_TransactionFailures(t *testing.T) {
	serializationFailure := &pq.Error{
		Code:    "40001",
		Message: "could not serialize access due to read/write dependencies among transactions",
	}

	t.Run("commit serialization failure means the room was taken", func(t *testing.T) {
		f := newFixture(Options{PreventOverlap: true})
		sqlMock := withSQLTx(t, f)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit().WillReturnError(serializationFailure)
		f.rooms.On("GetByID", mock.Anything, roomID).Return(availableRoom(), nil).Once()
		f.bookings.On("ListActiveByRoomInRange", mock.Anything, roomID, mock.Anything, mock.Anything).
			Return([]*domain.Booking{}, nil).Once()
		expectCreate(f)

		_, err := f.uc.Execute(context.Background(), request("2025-01-10", "2025-01-12"))

		assert.ErrorIs(t, err, ErrRoomAlreadyBooked)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		assert.Empty(t, f.publisher.events)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("serialization failure while locking active bookings", func(t *testing.T) {
		f := newFixture(Options{PreventOverlap: true})
		sqlMock := withSQLTx(t, f)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()
		f.rooms.On("GetByID", mock.Anything, roomID).Return(availableRoom(), nil).Once()
		f.bookings.On("ListActiveByRoomInRange", mock.Anything, roomID, mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("booking: execute query: %w", serializationFailure)).Once()

		_, err := f.uc.Execute(context.Background(), request("2025-01-10", "2025-01-12"))

		assert.ErrorIs(t, err, ErrRoomAlreadyBooked)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("commit failure is a remote failure", func(t *testing.T) {
		f := newFixture(Options{PreventOverlap: true})
		sqlMock := withSQLTx(t, f)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit().WillReturnError(errors.New("connection reset by peer"))
		f.rooms.On("GetByID", mock.Anything, roomID).Return(availableRoom(), nil).Once()
		f.bookings.On("ListActiveByRoomInRange", mock.Anything, roomID, mock.Anything, mock.Anything).
			Return([]*domain.Booking{}, nil).Once()
		expectCreate(f)

		_, err := f.uc.Execute(context.Background(), request("2025-01-10", "2025-01-12"))

		assert.ErrorIs(t, err, ErrInternal)
		assert.Equal(t, domain.KindRemoteFailure, domain.KindOf(err))
	})

	t.Run("begin failure is a remote failure", func(t *testing.T) {
		f := newFixture(Options{PreventOverlap: true})
		sqlMock := withSQLTx(t, f)
		sqlMock.ExpectBegin().WillReturnError(errors.New("too many connections"))
		f.rooms.On("GetByID", mock.Anything, roomID).Return(availableRoom(), nil).Once()

		_, err := f.uc.Execute(context.Background(), request("2025-01-10", "2025-01-12"))

		assert.ErrorIs(t, err, ErrInternal)
		assert.Equal(t, domain.KindRemoteFailure, domain.KindOf(err))
		f.bookings.AssertNotCalled(t, "ListActiveByRoomInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
