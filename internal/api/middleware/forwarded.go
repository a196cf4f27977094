package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// ForwardedFor подменяет RemoteAddr адресом из X-Forwarded-For.
// Берется последний адрес цепочки: его дописал ближайший прокси, клиент подделать его не может.
// При trusted=false заголовок игнорируется.
func ForwardedFor(trusted bool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if !trusted {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ip := lastForwarded(r.Header.Values("X-Forwarded-For")); ip != "" {
				r.RemoteAddr = net.JoinHostPort(ip, "0")
			}
			next.ServeHTTP(w, r)
		})
	}
}

func lastForwarded(values []string) string {
	if len(values) == 0 {
		return ""
	}
	parts := strings.Split(values[len(values)-1], ",")
	ip := strings.TrimSpace(parts[len(parts)-1])
	if net.ParseIP(ip) == nil {
		return ""
	}
	return ip
}
