package cache

import "errors"

var (
	// ErrCacheMiss возвращается, когда значения нет в кэше или оно истекло
	ErrCacheMiss = errors.New("cache: miss")

	// ErrCache возвращается при ошибке работы с Redis
	ErrCache = errors.New("cache: redis error")

	// ErrEncode возвращается при ошибке (де)сериализации значения
	ErrEncode = errors.New("cache: failed to encode value")
)
