package cancel_booking

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
)

type stubService struct {
	session *domain.Session
	resp    *models.BookingResponse
	err     error
}

func (s *stubService) Cancel(_ context.Context, session *domain.Session, _ uuid.UUID) (*models.BookingResponse, error) {
	s.session = session
	return s.resp, s.err
}

func serve(svc BookingService, id string, session *domain.Session) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+id+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	if session != nil {
		req = req.WithContext(middleware.WithSession(req.Context(), session))
	}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewWithWriter(io.Discard, "error")).Handle(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	session := &domain.Session{UserID: uuid.New()}
	id := uuid.New().String()

	tests := []struct {
		name       string
		id         string
		session    *domain.Session
		resp       *models.BookingResponse
		err        error
		wantStatus int
	}{
		{name: "cancelled", id: id, session: session, resp: &models.BookingResponse{ID: id, Status: "Cancelled"}, wantStatus: http.StatusOK},
		{name: "invalid id", id: "abc", session: session, wantStatus: http.StatusBadRequest},
		{name: "not found", id: id, session: session, err: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "foreign booking", id: id, session: session, err: bookings.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "already cancelled", id: id, session: session, err: domain.InvalidTransition(bookings.ErrAlreadyCancelled), wantStatus: http.StatusConflict},
		{name: "no session", id: id, err: domain.AuthRequired(bookings.ErrAuthRequired), wantStatus: http.StatusUnauthorized},
		{name: "store down", id: id, session: session, err: domain.RemoteFailure(bookings.ErrInternal), wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{resp: tt.resp, err: tt.err}

			rec := serve(svc, tt.id, tt.session)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.id == id {
				assert.Equal(t, tt.session, svc.session)
			}
		})
	}
}
