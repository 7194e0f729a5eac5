package response

import (
	"encoding/json"
	"net/http"

	"jobbox/internal/common"
)

type errorBody struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Collector receives a signal for every error response, for the
// metrics endpoint.
type Collector interface {
	ObserveError(code common.ErrorCode)
}

var errorCollector Collector

func SetErrorCollector(collector Collector) {
	errorCollector = collector
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func Error(w http.ResponseWriter, err error) {
	code := common.CodeOf(err)
	message := "internal error"
	var fields map[string]string
	if appErr, ok := common.AsAppError(err); ok {
		message = appErr.Message
		fields = appErr.Fields
	}
	if errorCollector != nil {
		errorCollector.ObserveError(code)
	}
	JSON(w, statusFor(code), errorBody{Error: string(code), Message: message, Fields: fields})
}

func statusFor(code common.ErrorCode) int {
	switch code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeConflict:
		return http.StatusConflict
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	case common.CodeStorageUnavailable:
		return http.StatusServiceUnavailable
	case common.CodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
