package ownerapi

import (
	"fmt"
	"net/http"
	"salondash/shared/failure"
	"strings"
)

// envelope is the {ok, error, details} frame every salon backend response carries.
type envelope struct {
	OK      *bool  `json:"ok"`
	Error   string `json:"error"`
	Details string `json:"details"`
	Message string `json:"message"`
}

// succeeded treats a missing "ok" as success; only an explicit false fails.
func (e envelope) succeeded() bool {
	return e.OK == nil || *e.OK
}

func (e envelope) text(status int) string {
	msg := strings.TrimSpace(e.Error)
	if msg == "" {
		msg = strings.TrimSpace(e.Message)
	}

	if msg == "" {
		if status >= http.StatusBadRequest {
			msg = fmt.Sprintf("Request failed with status %d", status)
		} else {
			msg = "Request failed"
		}
	}

	if details := strings.TrimSpace(e.Details); details != "" && details != msg {
		msg = msg + ": " + details
	}

	return msg
}

func (e envelope) failure(status int) error {
	msg := e.text(status)

	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	case http.StatusUnauthorized:
		return failure.Unauthorized(msg) //nolint:wrapcheck
	case http.StatusForbidden:
		return failure.Forbidden(msg) //nolint:wrapcheck
	case http.StatusNotFound:
		return failure.NotFound(msg) //nolint:wrapcheck
	case http.StatusConflict:
		return failure.Conflict(msg) //nolint:wrapcheck
	default:
		return failure.BadGateway(msg) //nolint:wrapcheck
	}
}
