package get_session

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/auth/models"
)

type AuthService interface {
	CurrentSession(ctx context.Context, session *domain.Session) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
