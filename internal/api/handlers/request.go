package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

const maxBodyBytes = 1 << 20

// DecodeJSON разбирает тело запроса; неизвестные поля запрещены
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// ParseUUID разбирает идентификатор из пути
func ParseUUID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, err
	}
	if id == uuid.Nil {
		return uuid.Nil, errors.New("nil uuid")
	}
	return id, nil
}

// ParseDate разбирает дату YYYY-MM-DD; пустая строка означает, что дата не выбрана
func ParseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(domain.DateFormat, raw)
}

// ClientIP адрес клиента из RemoteAddr. За доверенным прокси RemoteAddr
// заранее подменяет middleware.ForwardedFor.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
