package identity

import (
	"time"

	"github.com/google/uuid"
)

// Credentials email и пароль для входа/регистрации
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User пользователь провайдера
type User struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// Session выданная провайдером сессия
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// SignUpResult результат регистрации. Если провайдер требует подтверждения
// email, Session == nil и пользователь должен подтвердить адрес.
type SignUpResult struct {
	User    User
	Session *Session
}

// signUpResponse /signup отвечает либо сессией, либо пользователем
type signUpResponse struct {
	Session
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// errorResponse формат ошибок GoTrue: новые версии отдают code/error_code/msg,
// старые error/error_description
type errorResponse struct {
	Code             interface{} `json:"code"`
	ErrorCode        string      `json:"error_code"`
	Msg              string      `json:"msg"`
	Message          string      `json:"message"`
	Error            string      `json:"error"`
	ErrorDescription string      `json:"error_description"`
}

func (e errorResponse) code() string {
	if e.ErrorCode != "" {
		return e.ErrorCode
	}
	if s, ok := e.Code.(string); ok {
		return s
	}
	return e.Error
}

func (e errorResponse) message() string {
	for _, m := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if m != "" {
			return m
		}
	}
	return ""
}
