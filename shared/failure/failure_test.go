package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"lodge/shared/failure"
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

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "NotFound",
			err:     failure.NotFound("Room not found"),
			code:    http.StatusNotFound,
			message: "Room not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("room number already exists"),
			code:    http.StatusConflict,
			message: "room number already exists",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("Room is occupied"),
			code:    http.StatusBadRequest,
			message: "Room is occupied",
		},
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("invalid date range")),
			code:    http.StatusBadRequest,
			message: "invalid date range",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, got)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("expected message to be %q, got %q", tt.message, tt.err.Error())
			}
		})
	}
}

func TestBadRequest_NilError(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode_WrappedAndUnknown(t *testing.T) {
	wrapped := fmt.Errorf("failed to create booking: %w", failure.NotFound("Booking not found"))
	if got := failure.GetCode(wrapped); got != http.StatusNotFound {
		t.Errorf("expected wrapped failure code %d, got %d", http.StatusNotFound, got)
	}

	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected default code %d, got %d", http.StatusInternalServerError, got)
	}
}
