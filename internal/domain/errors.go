package domain

import (
	"errors"

	"github.com/m04kA/SMC-HotelBookingService/pkg/errs"
)

// Классы ошибок. Конкретные ошибки пакетов помечаются одним из классов через errs.Mark,
// а граница (HTTP handler) по классу выбирает код ответа.
var (
	// ErrValidation некорректные входные данные (даты, реквизиты платежа)
	ErrValidation = errors.New("validation error")

	// ErrAuthRequired действие требует аутентифицированного пользователя
	ErrAuthRequired = errors.New("authentication required")

	// ErrInvalidTransition недопустимая смена статуса бронирования
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrRemoteFailure ошибка или отказ внешнего хранилища / провайдера идентификации
	ErrRemoteFailure = errors.New("remote failure")
)

// Validation помечает err как ошибку валидации
func Validation(err error) error {
	return errs.Mark(err, ErrValidation)
}

// AuthRequired помечает err как ошибку отсутствия аутентификации
func AuthRequired(err error) error {
	return errs.Mark(err, ErrAuthRequired)
}

// InvalidTransition помечает err как ошибку перехода статуса
func InvalidTransition(err error) error {
	return errs.Mark(err, ErrInvalidTransition)
}

// RemoteFailure помечает err как ошибку внешнего сервиса
func RemoteFailure(err error) error {
	return errs.Mark(err, ErrRemoteFailure)
}

// ErrorKind класс ошибки
type ErrorKind string

const (
	KindUnknown           ErrorKind = ""
	KindValidation        ErrorKind = "validation"
	KindAuthRequired      ErrorKind = "auth_required"
	KindInvalidTransition ErrorKind = "invalid_transition"
	KindRemoteFailure     ErrorKind = "remote_failure"
)

// KindOf определяет класс ошибки
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errs.Is(err, ErrValidation):
		return KindValidation
	case errs.Is(err, ErrAuthRequired):
		return KindAuthRequired
	case errs.Is(err, ErrInvalidTransition):
		return KindInvalidTransition
	case errs.Is(err, ErrRemoteFailure):
		return KindRemoteFailure
	default:
		return KindUnknown
	}
}
