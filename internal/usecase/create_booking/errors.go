package create_booking

import "errors"

var (
	// ErrAuthRequired возвращается, когда бронирование создается без сессии
	ErrAuthRequired = errors.New("create_booking: please login to book a room")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrMissingDates возвращается, когда не указана дата заезда или выезда
	ErrMissingDates = errors.New("create_booking: please select check-in and check-out dates")

	// ErrInvalidDates возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDates = errors.New("create_booking: check-out must be after check-in")

	// ErrCheckInInPast возвращается, когда дата заезда раньше сегодняшнего дня
	ErrCheckInInPast = errors.New("create_booking: check-in date is in the past")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomUnavailable возвращается, когда номер недоступен для бронирования
	ErrRoomUnavailable = errors.New("create_booking: room is not available")

	// ErrRoomAlreadyBooked возвращается, когда даты пересекаются с активным бронированием номера
	ErrRoomAlreadyBooked = errors.New("create_booking: room is already booked for these dates")

	// ErrTooManyAttempts возвращается при повторной отправке раньше cool-down
	ErrTooManyAttempts = errors.New("create_booking: form submitted too often")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
