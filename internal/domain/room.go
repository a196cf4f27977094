package domain

import "github.com/google/uuid"

// RoomStatus availability of a room
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomUnavailable RoomStatus = "Unavailable"
)

// Room represents a bookable hotel room. Rooms are read-only for this service.
type Room struct {
	ID        uuid.UUID
	RoomType  string
	Price     float64 // за ночь, неотрицательная
	RoomNo    string
	Status    RoomStatus
	Images    []string
	Amenities []string
	Features  RoomFeatures
}

// RoomFeatures описание характеристик номера
type RoomFeatures struct {
	Size        string
	BedType     string
	View        string
	Bathroom    string
	Workspace   bool
	Kitchenette bool
}

// IsAvailable returns true if the room can be booked
func (r *Room) IsAvailable() bool {
	return r.Status == RoomAvailable
}

// DefaultRoomFeatures значения характеристик, если хранилище их не вернуло
func DefaultRoomFeatures() RoomFeatures {
	return RoomFeatures{
		Size:     DefaultRoomSize,
		BedType:  DefaultRoomBedType,
		View:     DefaultRoomView,
		Bathroom: DefaultRoomBathroom,
	}
}
