package sign_in

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/identity"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/auth"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/auth/models"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
)

type stubService struct {
	clientKey string
	resp      *models.SignInResponse
	err       error
}

func (s *stubService) SignIn(_ context.Context, clientKey, _, _ string) (*models.SignInResponse, error) {
	s.clientKey = clientKey
	return s.resp, s.err
}

func serve(svc AuthService, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-in", strings.NewReader(body))
	req.RemoteAddr = "198.51.100.4:40000"
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewWithWriter(io.Discard, "error")).Handle(rec, req)
	return rec
}

func TestHandler_SignedIn(t *testing.T) {
	svc := &stubService{resp: &models.SignInResponse{
		AccessToken: "access",
		User:        models.UserResponse{ID: "u1", Email: "guest@example.com"},
		Next:        domain.DestinationHotel,
	}}

	rec := serve(svc, `{"email":"guest@example.com","password":"secret"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.SignInResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "access", body.AccessToken)
	assert.Equal(t, domain.DestinationHotel, body.Next)
	assert.Equal(t, "198.51.100.4", svc.clientKey)
}

func TestHandler_Errors(t *testing.T) {
	rejected := identity.NewProviderError(400, "invalid_credentials", "Invalid login credentials")
	rateLimited := identity.NewProviderError(429, "over_email_send_rate_limit", "email rate limit exceeded")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "cooldown", err: auth.ErrTooManyAttempts, wantStatus: http.StatusTooManyRequests, wantMsg: "Please wait a moment before trying again"},
		{name: "provider rate limit", err: fmt.Errorf("%w: %w", auth.ErrRateLimited, rateLimited), wantStatus: http.StatusTooManyRequests, wantMsg: "Please wait a moment before trying again"},
		{name: "provider rejection", err: domain.Validation(fmt.Errorf("%w: %w", auth.ErrRejected, rejected)), wantStatus: http.StatusBadRequest, wantMsg: "Invalid login credentials"},
		{name: "missing credentials", err: domain.Validation(auth.ErrMissingCredentials), wantStatus: http.StatusBadRequest, wantMsg: "email and password are required"},
		{name: "provider down", err: domain.RemoteFailure(fmt.Errorf("%w: timeout", auth.ErrInternal)), wantStatus: http.StatusBadGateway},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubService{err: tt.err}, `{"email":"guest@example.com","password":"secret"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Contains(t, rec.Body.String(), tt.wantMsg)
			}
		})
	}
}

func TestHandler_InvalidBody(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.clientKey)
}
