package get_user_bookings

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
)

type stubService struct {
	userID uuid.UUID
	resp   *models.BookingListResponse
	err    error
}

func (s *stubService) ListForUser(_ context.Context, _ *domain.Session, userID uuid.UUID) (*models.BookingListResponse, error) {
	s.userID = userID
	return s.resp, s.err
}

func serve(svc BookingService, userID string, session *domain.Session) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+userID+"/bookings", nil)
	req = mux.SetURLVars(req, map[string]string{"userId": userID})
	if session != nil {
		req = req.WithContext(middleware.WithSession(req.Context(), session))
	}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewWithWriter(io.Discard, "error")).Handle(rec, req)
	return rec
}

func TestHandler_List(t *testing.T) {
	session := &domain.Session{UserID: uuid.New()}
	svc := &stubService{resp: &models.BookingListResponse{Bookings: []models.BookingResponse{
		{ID: uuid.New().String(), Status: "Confirmed"},
		{ID: uuid.New().String(), Status: "Pending Payment"},
	}}}

	rec := serve(svc, session.UserID.String(), session)

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.BookingListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body.Bookings, 2)
	assert.Equal(t, "Confirmed", body.Bookings[0].Status)
	assert.Equal(t, session.UserID, svc.userID)
}

func TestHandler_Errors(t *testing.T) {
	session := &domain.Session{UserID: uuid.New()}
	other := uuid.New().String()

	tests := []struct {
		name       string
		userID     string
		session    *domain.Session
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "invalid user id", userID: "42", session: session, wantStatus: http.StatusBadRequest, wantMsg: "invalid user id"},
		{name: "another user", userID: other, session: session, err: bookings.ErrAccessDenied, wantStatus: http.StatusForbidden, wantMsg: "you can only view your own bookings"},
		{name: "no session", userID: other, err: domain.AuthRequired(bookings.ErrAuthRequired), wantStatus: http.StatusUnauthorized},
		{name: "store down", userID: other, session: session, err: domain.RemoteFailure(bookings.ErrInternal), wantStatus: http.StatusBadGateway, wantMsg: "Failed to fetch bookings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubService{err: tt.err}, tt.userID, tt.session)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				var body handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tt.wantMsg, body.Error)
			}
		})
	}
}
