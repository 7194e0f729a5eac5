package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"jobbox/internal/common"
)

func decodeJSON(r *http.Request, out any) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return common.NewValidationError("empty request body", nil)
		}
		return common.NewError(common.CodeValidation, "malformed request body", err)
	}
	return nil
}

// pathSegment picks the segment at index from the end of the path:
// pathSegment("/jobs/123/apply", 1) == "123".
func pathSegment(r *http.Request, fromEnd int) (string, error) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	index := len(parts) - 1 - fromEnd
	if index < 0 || parts[index] == "" {
		return "", common.NewValidationError("invalid request path", nil)
	}
	return parts[index], nil
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "authentication required", nil)
}
