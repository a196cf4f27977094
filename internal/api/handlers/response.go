package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

const (
	MsgInternalError = "internal server error"
	MsgAuthRequired  = "authentication required"
	MsgBadGateway    = "upstream service is unavailable, try again later"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON пишет data в формате JSON со статусом status
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError пишет ошибку с произвольным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondTooManyRequests(w http.ResponseWriter) {
	RespondError(w, http.StatusTooManyRequests, domain.MsgPleaseWait)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, MsgInternalError)
}

// RespondByKind ответ по классу ошибки, когда конкретная ошибка handler'у не знакома
func RespondByKind(w http.ResponseWriter, err error) {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		RespondBadRequest(w, message(err))
	case domain.KindAuthRequired:
		RespondUnauthorized(w, MsgAuthRequired)
	case domain.KindInvalidTransition:
		RespondConflict(w, message(err))
	case domain.KindRemoteFailure:
		RespondError(w, http.StatusBadGateway, MsgBadGateway)
	default:
		RespondInternalError(w)
	}
}

// message текст ошибки без префикса пакета и технических подробностей
func message(err error) string {
	var base error = err
	for {
		next := errors.Unwrap(base)
		if next == nil {
			break
		}
		base = next
	}
	return trimPackagePrefix(base.Error())
}

func trimPackagePrefix(s string) string {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == ':' && s[i+1] == ' ' {
			return s[i+2:]
		}
	}
	return s
}
