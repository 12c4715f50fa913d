package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"salondash/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for nil input")
	}

	err := failure.BadRequest(errors.New("bad input"))
	if failure.GetCode(err) != http.StatusBadRequest {
		t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(err))
	}

	if err.Error() != "bad input" {
		t.Errorf("expected message 'bad input', got %s", err.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"BadRequestFromString", failure.BadRequestFromString("oops"), http.StatusBadRequest, "oops"},
		{"Unauthorized", failure.Unauthorized("session expired"), http.StatusUnauthorized, "session expired"},
		{"TooManyRequests", failure.TooManyRequests("slow down"), http.StatusTooManyRequests, "slow down"},
		{"BadGateway", failure.BadGateway("upstream down"), http.StatusBadGateway, "upstream down"},
		{"InternalError", failure.InternalError(errors.New("boom")), http.StatusInternalServerError, "boom"},
		{"NotFound", failure.NotFound("booking not found"), http.StatusNotFound, "booking not found"},
		{"Conflict", failure.Conflict("already archived"), http.StatusConflict, "already archived"},
		{"Forbidden", failure.Forbidden("nope"), http.StatusForbidden, "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.err.Error())
			}
		})
	}
}

func TestValidation(t *testing.T) {
	err := failure.Validation("offer form is invalid", map[string]string{"title": "Title is required"})

	if failure.GetCode(err) != http.StatusBadRequest {
		t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(err))
	}

	fields := failure.GetFields(err)
	if fields["title"] != "Title is required" {
		t.Errorf("expected title message, got %v", fields)
	}

	if failure.GetFields(errors.New("plain")) != nil {
		t.Error("expected nil fields for plain error")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("fetch bookings: %w", failure.Unauthorized("expired")),
			expected: http.StatusUnauthorized,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	if failure.IsUnauthorized(nil) {
		t.Error("nil must not be unauthorized")
	}

	if !failure.IsUnauthorized(fmt.Errorf("wrap: %w", failure.Unauthorized("x"))) {
		t.Error("expected wrapped 401 to be unauthorized")
	}

	if failure.IsUnauthorized(failure.NotFound("x")) {
		t.Error("404 must not be unauthorized")
	}
}

func TestGetMessage(t *testing.T) {
	wrapped := fmt.Errorf("GET /api/owner/bookings (booking): %w", failure.NotFound("booking not found"))

	if got := failure.GetMessage(wrapped); got != "booking not found" {
		t.Errorf("expected failure message, got %q", got)
	}

	if got := failure.GetMessage(errors.New("plain")); got != "plain" {
		t.Errorf("expected plain message, got %q", got)
	}

	if got := failure.GetMessage(nil); got != "" {
		t.Errorf("expected empty message, got %q", got)
	}
}
