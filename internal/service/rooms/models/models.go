package models

import "github.com/m04kA/SMC-HotelBookingService/internal/domain"

// FeaturesResponse характеристики номера
type FeaturesResponse struct {
	Size        string `json:"size"`
	BedType     string `json:"bedType"`
	View        string `json:"view"`
	Bathroom    string `json:"bathroom"`
	Workspace   bool   `json:"workspace"`
	Kitchenette bool   `json:"kitchenette"`
}

// RoomResponse номер каталога
type RoomResponse struct {
	ID        string           `json:"id"`
	RoomType  string           `json:"roomType"`
	Price     float64          `json:"price"`
	RoomNo    string           `json:"roomNo"`
	Status    string           `json:"status"`
	Images    []string         `json:"images"`
	Amenities []string         `json:"amenities"`
	Features  FeaturesResponse `json:"features"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:        r.ID.String(),
		RoomType:  r.RoomType,
		Price:     r.Price,
		RoomNo:    r.RoomNo,
		Status:    string(r.Status),
		Images:    r.Images,
		Amenities: r.Amenities,
		Features: FeaturesResponse{
			Size:        r.Features.Size,
			BedType:     r.Features.BedType,
			View:        r.Features.View,
			Bathroom:    r.Features.Bathroom,
			Workspace:   r.Features.Workspace,
			Kitchenette: r.Features.Kitchenette,
		},
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{Rooms: make([]RoomResponse, 0, len(rooms))}
	for _, r := range rooms {
		resp.Rooms = append(resp.Rooms, FromDomainRoom(r))
	}
	return resp
}
