package models

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/identity"
)

// UserResponse пользователь
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// SignInResponse выданная сессия и экран, на который переходит клиент
type SignInResponse struct {
	AccessToken  string             `json:"accessToken"`
	RefreshToken string             `json:"refreshToken"`
	ExpiresIn    int                `json:"expiresIn"`
	ExpiresAt    int64              `json:"expiresAt,omitempty"`
	User         UserResponse       `json:"user"`
	Next         domain.Destination `json:"next"`
}

// SignUpResponse результат регистрации
type SignUpResponse struct {
	User                 UserResponse       `json:"user"`
	ConfirmationRequired bool               `json:"confirmationRequired"`
	Message              string             `json:"message"`
	Session              *SignInResponse    `json:"session,omitempty"`
	Next                 domain.Destination `json:"next"`
}

// SessionResponse текущая сессия
type SessionResponse struct {
	User      UserResponse `json:"user"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// OAuthResponse адрес перехода к OAuth провайдеру
type OAuthResponse struct {
	URL string `json:"url"`
}

// FromIdentitySession конвертирует сессию провайдера в DTO
func FromIdentitySession(s *identity.Session) *SignInResponse {
	return &SignInResponse{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresIn:    s.ExpiresIn,
		ExpiresAt:    s.ExpiresAt,
		User:         UserResponse{ID: s.User.ID.String(), Email: s.User.Email},
		Next:         domain.DestinationHotel,
	}
}
