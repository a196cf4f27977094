package rooms

import "errors"

var (
	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("rooms: internal error")
)
