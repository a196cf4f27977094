package identity

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrRateLimited провайдер ограничил частоту запросов
	ErrRateLimited = errors.New("identity client: rate limited")

	// ErrRejected провайдер отклонил запрос (неверный пароль, занятый email и т.п.)
	ErrRejected = errors.New("identity client: request rejected")

	// ErrUnauthorized токен доступа недействителен
	ErrUnauthorized = errors.New("identity client: unauthorized")

	// ErrInternal ошибка транспорта или построения запроса
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse ответ провайдера не удалось разобрать
	ErrInvalidResponse = errors.New("identity client: invalid response")
)

// ProviderError отказ провайдера с его собственным сообщением.
// errors.Is(err, ErrRejected) / ErrRateLimited / ErrUnauthorized работает через Unwrap.
type ProviderError struct {
	StatusCode int
	Code       string
	Message    string
	kind       error
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return e.kind.Error() + ": " + e.Code + ": " + e.Message
	}
	return e.kind.Error() + ": " + e.Message
}

// NewProviderError классифицирует отказ провайдера по статусу и коду
func NewProviderError(status int, code, message string) *ProviderError {
	pe := &ProviderError{StatusCode: status, Code: code, Message: message}
	switch {
	case isRateLimit(status, code, message):
		pe.kind = ErrRateLimited
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		pe.kind = ErrUnauthorized
	default:
		pe.kind = ErrRejected
	}
	return pe
}

func (e *ProviderError) Unwrap() error {
	return e.kind
}

// isRateLimit 429 или упоминание rate_limit в коде/сообщении ошибки
func isRateLimit(status int, code, message string) bool {
	return status == 429 ||
		strings.Contains(code, "rate_limit") ||
		strings.Contains(message, "rate_limit")
}
