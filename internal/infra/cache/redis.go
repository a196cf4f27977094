package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

const availableRoomsKey = "hotel:rooms:available"

// RoomsCache кэш каталога доступных номеров в Redis
type RoomsCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRoomsCache создает кэш каталога. ttl <= 0 означает хранение без срока.
func NewRoomsCache(client redis.Cmdable, ttl time.Duration) *RoomsCache {
	return &RoomsCache{client: client, ttl: ttl}
}

// GetAvailableRooms возвращает ErrCacheMiss, если каталога в кэше нет
func (c *RoomsCache) GetAvailableRooms(ctx context.Context) ([]*domain.Room, error) {
	data, err := c.client.Get(ctx, availableRoomsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailableRooms - get: %v", ErrCache, err)
	}

	var rooms []*domain.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, fmt.Errorf("%w: GetAvailableRooms - unmarshal: %v", ErrEncode, err)
	}
	return rooms, nil
}

// SetAvailableRooms сохраняет каталог на время ttl
func (c *RoomsCache) SetAvailableRooms(ctx context.Context, rooms []*domain.Room) error {
	payload, err := json.Marshal(rooms)
	if err != nil {
		return fmt.Errorf("%w: SetAvailableRooms - marshal: %v", ErrEncode, err)
	}

	if err := c.client.Set(ctx, availableRoomsKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: SetAvailableRooms - set: %v", ErrCache, err)
	}
	return nil
}

// NewClient создает клиента Redis и проверяет соединение
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrCache, addr, err)
	}
	return client, nil
}
