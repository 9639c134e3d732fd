package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeValidation, "listing validation failed", http.StatusUnprocessableEntity)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.Message != "listing validation failed" {
		t.Errorf("expected message 'listing validation failed', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("mongo: connection refused")
	wrapped := Wrap(originalErr, CodeInternal, "internal error", http.StatusInternalServerError)

	if wrapped.Err != originalErr {
		t.Errorf("expected wrapped error to contain original error")
	}
	if wrapped.Code != CodeInternal {
		t.Errorf("expected code %s, got %s", CodeInternal, wrapped.Code)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeNotFound,
				Message: "listing not found",
			},
			expected: "NOT_FOUND: listing not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeInternal,
				Message: "internal error",
				Err:     errors.New("mongo: connection refused"),
			},
			expected: "INTERNAL_ERROR: internal error (caused by: mongo: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appErr.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := Wrap(originalErr, CodeInternal, "wrapped", http.StatusInternalServerError)

	unwrapped := errors.Unwrap(appErr)
	if unwrapped != originalErr {
		t.Errorf("Unwrap() should return original error")
	}
}

func TestAppError_WithDetails(t *testing.T) {
	err := New(CodeValidation, "validation failed", http.StatusUnprocessableEntity)
	details := map[string]any{
		"field": "nightly_price",
		"error": "must be positive",
	}

	err = err.WithDetails(details)

	if err.Details["field"] != "nightly_price" {
		t.Errorf("expected field 'nightly_price', got %v", err.Details["field"])
	}
	if err.Details["error"] != "must be positive" {
		t.Errorf("expected error 'must be positive', got %v", err.Details["error"])
	}
}

func TestNotFoundWithID(t *testing.T) {
	err := NotFoundWithID("Listing", "66a1f0c2e4b0a1b2c3d4e5f6")

	if err.Code != CodeNotFound {
		t.Errorf("expected code %s, got %s", CodeNotFound, err.Code)
	}
	if err.Details["id"] != "66a1f0c2e4b0a1b2c3d4e5f6" {
		t.Errorf("expected id '66a1f0c2e4b0a1b2c3d4e5f6', got %v", err.Details["id"])
	}
	if err.Details["resource"] != "Listing" {
		t.Errorf("expected resource 'Listing', got %v", err.Details["resource"])
	}
}

func TestConflict(t *testing.T) {
	err := Conflict("booking overlaps a confirmed booking")

	if err.Code != CodeConflict {
		t.Errorf("expected code %s, got %s", CodeConflict, err.Code)
	}
	if err.HTTPStatus != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, err.HTTPStatus)
	}
}

func TestUploadFailed(t *testing.T) {
	cause := errors.New("bucket unreachable")
	err := UploadFailed("listing-images", cause)

	if err.Code != CodeUploadFailed {
		t.Errorf("expected code %s, got %s", CodeUploadFailed, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause to survive errors.Is")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("Booking")
	if got := AsAppError(appErr); got != appErr {
		t.Errorf("AsAppError should return the same *AppError unchanged")
	}

	plain := errors.New("boom")
	got := AsAppError(plain)
	if got.Code != CodeInternal {
		t.Errorf("expected plain errors to map to %s, got %s", CodeInternal, got.Code)
	}
	if got.Err != plain {
		t.Errorf("expected the original error to be preserved as cause")
	}
}
