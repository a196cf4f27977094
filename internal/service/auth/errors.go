package auth

import "errors"

var (
	// ErrAuthRequired возвращается, когда операция вызвана без сессии
	ErrAuthRequired = errors.New("auth: authentication required")

	// ErrMissingCredentials возвращается, когда не указан email или пароль
	ErrMissingCredentials = errors.New("auth: email and password are required")

	// ErrUnsupportedProvider возвращается для неизвестного OAuth провайдера
	ErrUnsupportedProvider = errors.New("auth: unsupported oauth provider")

	// ErrTooManyAttempts возвращается при повторной отправке формы раньше cool-down
	ErrTooManyAttempts = errors.New("auth: form submitted too often")

	// ErrRateLimited возвращается, когда провайдер ограничил частоту запросов
	ErrRateLimited = errors.New("auth: identity provider rate limit")

	// ErrRejected возвращается, когда провайдер отклонил учетные данные
	ErrRejected = errors.New("auth: rejected by identity provider")

	// ErrInternal возвращается при недоступности провайдера
	ErrInternal = errors.New("auth: internal error")
)
