package oauth_sign_in

import "github.com/m04kA/SMC-HotelBookingService/internal/service/auth/models"

type AuthService interface {
	OAuthURL(provider string) (*models.OAuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
