package throttle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrBackend ошибка хранилища отметок времени
var ErrBackend = errors.New("throttle: backend error")

// Key собирает ключ формы и субъекта: Key("payment", userID.String())
func Key(form, subject string) string {
	return form + ":" + subject
}

// RedisThrottle cool-down через SET NX PX: первая попытка ставит ключ с TTL,
// повторные до его истечения отклоняются. Работает между несколькими репликами.
type RedisThrottle struct {
	client redis.Cmdable
	prefix string
}

// NewRedisThrottle создает throttle поверх Redis
func NewRedisThrottle(client redis.Cmdable, prefix string) *RedisThrottle {
	return &RedisThrottle{client: client, prefix: prefix}
}

// Allow сообщает, можно ли принять отправку формы key
func (t *RedisThrottle) Allow(ctx context.Context, key string, interval time.Duration) (bool, error) {
	if interval <= 0 {
		return true, nil
	}

	ok, err := t.client.SetNX(ctx, t.prefix+key, 1, interval).Result()
	if err != nil {
		return false, fmt.Errorf("%w: Allow - setnx %s: %v", ErrBackend, key, err)
	}
	return ok, nil
}

// Очистка истекших отметок запускается не чаще sweepInterval и только на большой карте
const (
	sweepThreshold = 1024
	sweepInterval  = time.Minute
)

// MemoryThrottle cool-down в памяти процесса (одна реплика)
type MemoryThrottle struct {
	mu        sync.Mutex
	until     map[string]time.Time
	nextSweep time.Time
	now       func() time.Time
}

// NewMemoryThrottle создает throttle в памяти
func NewMemoryThrottle() *MemoryThrottle {
	return &MemoryThrottle{
		until: make(map[string]time.Time),
		now:   time.Now,
	}
}

// Allow сообщает, можно ли принять отправку формы key
func (t *MemoryThrottle) Allow(_ context.Context, key string, interval time.Duration) (bool, error) {
	if interval <= 0 {
		return true, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if until, ok := t.until[key]; ok && now.Before(until) {
		return false, nil
	}

	t.until[key] = now.Add(interval)
	t.evictExpired(now)
	return true, nil
}

// evictExpired удаляет истекшие отметки, чтобы карта не росла бесконечно.
// Полный проход выполняется не чаще раза в sweepInterval.
func (t *MemoryThrottle) evictExpired(now time.Time) {
	if len(t.until) < sweepThreshold || now.Before(t.nextSweep) {
		return
	}
	t.nextSweep = now.Add(sweepInterval)
	for key, until := range t.until {
		if !now.Before(until) {
			delete(t.until, key)
		}
	}
}
