package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/infra/cache"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/rooms/models"
)

// Service каталог доступных номеров
type Service struct {
	roomRepo RoomRepository
	cache    RoomsCache
	logger   Logger
}

// NewService создает сервис каталога. roomsCache может быть nil.
func NewService(roomRepo RoomRepository, roomsCache RoomsCache, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		cache:    roomsCache,
		logger:   logger,
	}
}

// ListAvailable номера со статусом Available, по возрастанию номера комнаты.
// Сначала читается кэш; при промахе или ошибке кэша данные берутся из БД.
func (s *Service) ListAvailable(ctx context.Context) (*models.RoomListResponse, error) {
	if s.cache != nil {
		rooms, err := s.cache.GetAvailableRooms(ctx)
		switch {
		case err == nil:
			return models.FromDomainRoomList(rooms), nil
		case errors.Is(err, cache.ErrCacheMiss):
		default:
			s.logger.Warn("ListAvailable: cache unavailable, falling back to store: %v", err)
		}
	}

	rooms, err := s.roomRepo.ListAvailable(ctx)
	if err != nil {
		s.logger.Error("ListAvailable: repository error: %v", err)
		return nil, domain.RemoteFailure(fmt.Errorf("%w: ListAvailable - repository error: %v", ErrInternal, err))
	}

	if s.cache != nil {
		if err := s.cache.SetAvailableRooms(ctx, rooms); err != nil {
			s.logger.Warn("ListAvailable: failed to refresh cache: %v", err)
		}
	}

	s.logger.Info("ListAvailable: %d rooms available", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}
