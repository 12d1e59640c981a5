package youtube

import (
	"errors"
	"fmt"
)

// Sentinel classes for service-reported errors. Transport failures are left
// as wrapped net/http errors and match neither sentinel.
var (
	// ErrQuotaExceeded marks an error.code 403 response — the daily API
	// quota is exhausted.
	ErrQuotaExceeded = errors.New("youtube: quota exceeded")
	// ErrBadRequest marks an error.code 400 response — the request itself
	// was malformed.
	ErrBadRequest = errors.New("youtube: bad request")
)

// apiError is the upstream error envelope: {"error":{"code":..,"message":..}}.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("youtube api error %d: %s", e.Code, e.Message)
}

// Is maps the envelope code onto the sentinel classes so callers can use
// errors.Is without inspecting codes themselves.
func (e *apiError) Is(target error) bool {
	switch target {
	case ErrQuotaExceeded:
		return e.Code == 403
	case ErrBadRequest:
		return e.Code == 400
	}
	return false
}

// UserMessage maps an error from this client onto the message shown to the
// user. Transport-level failures fall back to the caller-supplied message
// since each view words that case differently.
func UserMessage(err error, transportFallback string) string {
	if err == nil {
		return ""
	}
	var api *apiError
	switch {
	case errors.Is(err, ErrQuotaExceeded):
		return "YouTube API quota exceeded. Please try again later."
	case errors.Is(err, ErrBadRequest):
		return "Invalid request to YouTube API."
	case errors.As(err, &api):
		return "YouTube API error: " + api.Message
	default:
		return transportFallback
	}
}
