package bookings

import "errors"

var (
	// ErrAuthRequired возвращается, когда операция вызвана без сессии
	ErrAuthRequired = errors.New("bookings: authentication required")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = errors.New("bookings: booking is already cancelled")

	// ErrCannotConfirm возвращается, когда бронирование не в статусе Pending Payment
	ErrCannotConfirm = errors.New("bookings: only pending payment bookings can be confirmed")

	// ErrNoPendingBooking возвращается, когда подтверждать нечего
	ErrNoPendingBooking = errors.New("bookings: no booking awaits payment")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("bookings: internal error")
)
