package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrNoPendingBooking возвращается, когда нет ни одного бронирования в статусе Pending Payment
	ErrNoPendingBooking = errors.New("booking.repository: no pending booking")

	// ErrStatusConflict возвращается, когда текущий статус не допускает перехода
	ErrStatusConflict = errors.New("booking.repository: status does not allow transition")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
