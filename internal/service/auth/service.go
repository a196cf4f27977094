package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/infra/throttle"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/identity"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/auth/models"
)

const (
	formSignIn = "sign-in"
	formSignUp = "sign-up"

	msgConfirmEmail = "Check your email to confirm your account"
)

var providerName = regexp.MustCompile(`^[a-z][a-z0-9_-]{1,31}$`)

// Service вход, регистрация и выход через внешний провайдер идентификации
type Service struct {
	client           IdentityClient
	throttle         Throttle
	cooldown         time.Duration
	oauthRedirectURL string
	logger           Logger
}

// NewService создает сервис аутентификации
func NewService(client IdentityClient, th Throttle, cooldown time.Duration, oauthRedirectURL string, logger Logger) *Service {
	return &Service{
		client:           client,
		throttle:         th,
		cooldown:         cooldown,
		oauthRedirectURL: oauthRedirectURL,
		logger:           logger,
	}
}

// SignIn вход по email и паролю. clientKey адрес клиента, по нему считается cool-down формы.
func (s *Service) SignIn(ctx context.Context, clientKey, email, password string) (*models.SignInResponse, error) {
	creds, err := s.prepare(ctx, formSignIn, clientKey, email, password)
	if err != nil {
		return nil, err
	}

	session, err := s.client.SignInWithPassword(ctx, creds)
	if err != nil {
		return nil, s.mapProviderError("SignIn", err)
	}

	s.logger.Info("SignIn: user=%s signed in", session.User.ID)
	return models.FromIdentitySession(session), nil
}

// SignUp регистрация. Если провайдер требует подтверждения email, сессии в ответе нет.
func (s *Service) SignUp(ctx context.Context, clientKey, email, password string) (*models.SignUpResponse, error) {
	creds, err := s.prepare(ctx, formSignUp, clientKey, email, password)
	if err != nil {
		return nil, err
	}

	result, err := s.client.SignUp(ctx, creds)
	if err != nil {
		return nil, s.mapProviderError("SignUp", err)
	}

	resp := &models.SignUpResponse{
		User: models.UserResponse{ID: result.User.ID.String(), Email: result.User.Email},
		Next: domain.DestinationAuth,
	}

	if result.Session != nil {
		resp.Session = models.FromIdentitySession(result.Session)
		resp.Next = domain.DestinationHotel
	} else {
		resp.ConfirmationRequired = true
		resp.Message = msgConfirmEmail
	}

	s.logger.Info("SignUp: user=%s registered, confirmation_required=%t", result.User.ID, resp.ConfirmationRequired)
	return resp, nil
}

// SignOut отзывает сессию у провайдера
func (s *Service) SignOut(ctx context.Context, session *domain.Session) error {
	if !session.IsAuthenticated() {
		return domain.AuthRequired(ErrAuthRequired)
	}

	if err := s.client.SignOut(ctx, session.AccessToken); err != nil {
		if errors.Is(err, identity.ErrUnauthorized) {
			// сессия уже отозвана
			s.logger.Warn("SignOut: session of user=%s already revoked", session.UserID)
			return nil
		}
		s.logger.Error("SignOut: provider error for user=%s: %v", session.UserID, err)
		return domain.RemoteFailure(fmt.Errorf("%w: SignOut - %v", ErrInternal, err))
	}

	s.logger.Info("SignOut: user=%s signed out", session.UserID)
	return nil
}

// CurrentSession данные текущей сессии. Пользователь перечитывается у провайдера,
// чтобы отозванный токен не считался действующим; при недоступности провайдера
// используются данные из токена.
func (s *Service) CurrentSession(ctx context.Context, session *domain.Session) (*models.SessionResponse, error) {
	if !session.IsAuthenticated() {
		return nil, domain.AuthRequired(ErrAuthRequired)
	}

	resp := &models.SessionResponse{
		User:      models.UserResponse{ID: session.UserID.String(), Email: session.Email},
		ExpiresAt: session.ExpiresAt,
	}

	user, err := s.client.GetUser(ctx, session.AccessToken)
	switch {
	case err == nil:
		if user.Email != "" {
			resp.User.Email = user.Email
		}
	case errors.Is(err, identity.ErrUnauthorized):
		s.logger.Warn("CurrentSession: provider rejected token of user=%s", session.UserID)
		return nil, domain.AuthRequired(ErrAuthRequired)
	default:
		s.logger.Warn("CurrentSession: provider unavailable, using token claims for user=%s: %v", session.UserID, err)
	}

	return resp, nil
}

// OAuthURL адрес для входа через внешний OAuth провайдер (google и т.п.)
func (s *Service) OAuthURL(provider string) (*models.OAuthResponse, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if !providerName.MatchString(provider) {
		return nil, domain.Validation(ErrUnsupportedProvider)
	}
	return &models.OAuthResponse{URL: s.client.OAuthURL(provider, s.oauthRedirectURL)}, nil
}

// Вспомогательные методы

func (s *Service) prepare(ctx context.Context, form, clientKey, email, password string) (identity.Credentials, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return identity.Credentials{}, domain.Validation(ErrMissingCredentials)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return identity.Credentials{}, domain.Validation(fmt.Errorf("%w: malformed email", ErrMissingCredentials))
	}

	allowed, err := s.throttle.Allow(ctx, throttle.Key(form, clientKey), s.cooldown)
	if err != nil {
		// при недоступном хранилище cool-down не блокирует вход
		s.logger.Warn("%s: throttle unavailable for client=%s: %v", form, clientKey, err)
	} else if !allowed {
		s.logger.Warn("%s: too many attempts from client=%s", form, clientKey)
		return identity.Credentials{}, ErrTooManyAttempts
	}

	return identity.Credentials{Email: email, Password: password}, nil
}

func (s *Service) mapProviderError(op string, err error) error {
	switch {
	case errors.Is(err, identity.ErrRateLimited):
		s.logger.Warn("%s: provider rate limit: %v", op, err)
		return fmt.Errorf("%w: %w", ErrRateLimited, err)

	case errors.Is(err, identity.ErrRejected), errors.Is(err, identity.ErrUnauthorized):
		s.logger.Warn("%s: rejected by provider: %v", op, err)
		return domain.Validation(fmt.Errorf("%w: %w", ErrRejected, err))

	default:
		s.logger.Error("%s: provider error: %v", op, err)
		return domain.RemoteFailure(fmt.Errorf("%w: %s - %v", ErrInternal, op, err))
	}
}

// ProviderMessage сообщение провайдера для показа пользователю, если оно есть
func ProviderMessage(err error) (string, bool) {
	var pe *identity.ProviderError
	if errors.As(err, &pe) && pe.Message != "" {
		return pe.Message, true
	}
	return "", false
}
