package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"room_id",
	"user_id",
	"check_in",
	"check_out",
	"status",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями.
// Бронирования не удаляются физически: отмена меняет статус.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование. ID генерирует вызывающий код.
// Если в контексте есть транзакция, запрос выполняется в ней.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"room_id",
			"user_id",
			"check_in",
			"check_out",
			"status",
		).
		Values(
			booking.ID,
			booking.RoomID,
			booking.UserID,
			domain.DateOnly(booking.CheckIn),
			domain.DateOnly(booking.CheckOut),
			string(booking.Status),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// ListByUser возвращает бронирования пользователя в порядке создания
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListActiveByRoomInRange возвращает активные бронирования номера, пересекающиеся
// с полуоткрытым интервалом [checkIn, checkOut).
// Внутри транзакции строки блокируются (FOR UPDATE).
func (r *Repository) ListActiveByRoomInRange(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)}).
		Where(squirrel.Lt{"check_in": domain.DateOnly(checkOut)}).
		Where(squirrel.Gt{"check_out": domain.DateOnly(checkIn)}).
		OrderBy("check_in ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByRoomInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByRoomInRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// TransitionStatus меняет статус одним условным UPDATE: строка обновляется,
// только если её текущий статус входит в from. Проверка и запись атомарны.
//
// Если ни одна строка не обновлена, бронирование перечитывается, чтобы отличить
// ErrBookingNotFound от ErrStatusConflict.
func (r *Repository) TransitionStatus(
	ctx context.Context,
	id uuid.UUID,
	from []domain.BookingStatus,
	to domain.BookingStatus,
	at time.Time,
) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", string(to)).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": statusStrings(from)}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", "))

	if to == domain.StatusCancelled {
		updateBuilder = updateBuilder.Set("cancelled_at", at)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: TransitionStatus - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == nil {
		return booking, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: TransitionStatus - execute update: %w", ErrExecQuery, err)
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return current, fmt.Errorf("%w: %s -> %s", ErrStatusConflict, current.Status, to)
}

// FindOldestPending возвращает самое раннее бронирование в статусе Pending Payment.
// Внутри транзакции строка блокируется с SKIP LOCKED, чтобы параллельные
// подтверждения не выбрали одно и то же бронирование.
func (r *Repository) FindOldestPending(ctx context.Context) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": string(domain.StatusPendingPayment)}).
		OrderBy("created_at ASC", "id ASC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE SKIP LOCKED")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOldestPending - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoPendingBooking
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindOldestPending - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking              domain.Booking
		status               string
		cancelledAt          sql.NullTime
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.RoomID,
		&booking.UserID,
		&booking.CheckIn,
		&booking.CheckOut,
		&status,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatus(status)
	if cancelledAt.Valid {
		t := cancelledAt.Time
		booking.CancelledAt = &t
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}
