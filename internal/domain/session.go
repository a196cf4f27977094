package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session текущая аутентифицированная личность.
// Передается в операции явно; nil означает анонимного пользователя.
type Session struct {
	UserID      uuid.UUID
	Email       string
	AccessToken string
	ExpiresAt   time.Time
}

// IsAuthenticated returns true if the session carries an identity
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != uuid.Nil
}

// Owns returns true if the booking belongs to the session's user
func (s *Session) Owns(b *Booking) bool {
	return s.IsAuthenticated() && b != nil && b.UserID == s.UserID
}
