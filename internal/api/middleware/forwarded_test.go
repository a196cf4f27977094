package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
)

func TestForwardedFor(t *testing.T) {
	tests := []struct {
		name      string
		trusted   bool
		forwarded []string
		want      string
	}{
		{name: "untrusted ignores header", trusted: false, forwarded: []string{"203.0.113.7"}, want: "192.0.2.10"},
		{name: "trusted without header", trusted: true, want: "192.0.2.10"},
		{name: "trusted takes proxy-appended address", trusted: true, forwarded: []string{"6.6.6.6, 203.0.113.7"}, want: "203.0.113.7"},
		{name: "trusted uses last header line", trusted: true, forwarded: []string{"6.6.6.6", "203.0.113.8"}, want: "203.0.113.8"},
		{name: "trusted rejects garbage", trusted: true, forwarded: []string{"not-an-ip"}, want: "192.0.2.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := ForwardedFor(tt.trusted)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = handlers.ClientIP(r)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-in", nil)
			req.RemoteAddr = "192.0.2.10:51234"
			for _, v := range tt.forwarded {
				req.Header.Add("X-Forwarded-For", v)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}
