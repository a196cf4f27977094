package rooms

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/infra/cache"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) ListAvailable(ctx context.Context) ([]*domain.Room, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).([]*domain.Room)
	return r, args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) GetAvailableRooms(ctx context.Context) ([]*domain.Room, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).([]*domain.Room)
	return r, args.Error(1)
}

func (m *mockCache) SetAvailableRooms(ctx context.Context, rooms []*domain.Room) error {
	return m.Called(ctx, rooms).Error(0)
}

var catalog = []*domain.Room{
	{ID: uuid.New(), RoomType: "Deluxe", Price: 120, RoomNo: "101", Status: domain.RoomAvailable,
		Images: []string{}, Amenities: []string{"Wi-Fi"}, Features: domain.DefaultRoomFeatures()},
}

func silent() *logger.Logger { return logger.NewWithWriter(io.Discard, "error") }

func TestService_ListAvailable_WithoutCache(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ListAvailable", mock.Anything).Return(catalog, nil)

	got, err := NewService(repo, nil, silent()).ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Rooms, 1)
	assert.Equal(t, "101", got.Rooms[0].RoomNo)
	assert.Equal(t, "Queen", got.Rooms[0].Features.BedType)
}

func TestService_ListAvailable_CacheHit(t *testing.T) {
	repo := &mockRepo{}
	c := &mockCache{}
	c.On("GetAvailableRooms", mock.Anything).Return(catalog, nil)

	got, err := NewService(repo, c, silent()).ListAvailable(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.Rooms, 1)
	repo.AssertNotCalled(t, "ListAvailable", mock.Anything)
}

func TestService_ListAvailable_CacheMissFills(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ListAvailable", mock.Anything).Return(catalog, nil)
	c := &mockCache{}
	c.On("GetAvailableRooms", mock.Anything).Return(nil, cache.ErrCacheMiss)
	c.On("SetAvailableRooms", mock.Anything, catalog).Return(nil)

	_, err := NewService(repo, c, silent()).ListAvailable(context.Background())
	require.NoError(t, err)
	c.AssertCalled(t, "SetAvailableRooms", mock.Anything, catalog)
}

func TestService_ListAvailable_CacheDownFallsBack(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ListAvailable", mock.Anything).Return(catalog, nil)
	c := &mockCache{}
	c.On("GetAvailableRooms", mock.Anything).Return(nil, cache.ErrCache)
	c.On("SetAvailableRooms", mock.Anything, catalog).Return(cache.ErrCache)

	got, err := NewService(repo, c, silent()).ListAvailable(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.Rooms, 1)
}

func TestService_ListAvailable_StoreFailure(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ListAvailable", mock.Anything).Return(nil, errors.New("timeout"))

	_, err := NewService(repo, nil, silent()).ListAvailable(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, domain.KindRemoteFailure, domain.KindOf(err))
}
