package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		want      string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeStorage, "storage"},
		{ErrorTypeInvalidInput, "invalid_input"},
		{ErrorTypeConflict, "conflict"},
		{ErrorTypeUnauthorized, "unauthorized"},
		{ErrorType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.errorType.String(); got != tt.want {
			t.Errorf("ErrorType.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAppError_Error(t *testing.T) {
	withoutCause := &AppError{Type: ErrorTypeConflict, Message: "taken"}
	if got := withoutCause.Error(); got != "conflict: taken" {
		t.Errorf("Error() = %q, want %q", got, "conflict: taken")
	}

	withCause := &AppError{Type: ErrorTypeStorage, Message: "write failed", Cause: errors.New("disk full")}
	want := "storage: write failed (caused by: disk full)"
	if got := withCause.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &AppError{Type: ErrorTypeStorage, Message: "failed", Cause: cause}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should find the cause through Unwrap")
	}
}

func TestAppError_Is(t *testing.T) {
	a := &AppError{Type: ErrorTypeConflict, Code: "CONFLICT"}
	b := &AppError{Type: ErrorTypeConflict, Code: "CONFLICT"}
	c := &AppError{Type: ErrorTypeStorage, Code: "STORAGE_ERROR"}

	if !a.Is(b) {
		t.Errorf("errors with matching type and code should match")
	}
	if a.Is(c) {
		t.Errorf("errors with different type should not match")
	}
	if a.Is(errors.New("plain")) {
		t.Errorf("plain errors should not match")
	}
}

func TestAppError_IsType(t *testing.T) {
	err := &AppError{Type: ErrorTypeUnauthorized}

	if !err.IsType(ErrorTypeUnauthorized) {
		t.Errorf("IsType should match the error's type")
	}
	if err.IsType(ErrorTypeConflict) {
		t.Errorf("IsType should not match a different type")
	}
}

func TestAppError_WithContext(t *testing.T) {
	err := &AppError{Type: ErrorTypeInvalidInput, Message: "bad input"}
	err.WithContext("field", "username")

	value, ok := err.GetContext("field")
	if !ok || value != "username" {
		t.Errorf("WithContext should store the value")
	}

	if _, ok := err.GetContext("missing"); ok {
		t.Errorf("GetContext should report absent keys")
	}
}
