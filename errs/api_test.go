package errs

import (
	"errors"
	"net/http"
	"testing"
)

// Every constructor must produce an error its own sentinel helper (and plain
// errors.Is) recognizes.
func TestConstructorsCarrySentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        *ApiErr
		sentinel   error
		wantStatus int
	}{
		{"not found", NewNotFoundError("blog post not found"), ErrNotFound, http.StatusNotFound},
		{"forbidden", NewForbiddenError("operation not allowed"), ErrForbidden, http.StatusForbidden},
		{"bad request", NewBadRequestError("invalid id"), ErrBadRequest, http.StatusBadRequest},
		{"unauthorized", NewUnauthorizedError("authentication required"), ErrUnauthorized, http.StatusUnauthorized},
		{"internal", NewInternalError("failed to hash password"), ErrInternal, http.StatusInternalServerError},
		{"conflict", NewConflictError("slug taken"), ErrConflict, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.sentinel)
			}
			if tt.err.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", tt.err.StatusCode, tt.wantStatus)
			}
			if tt.err.Error() == tt.sentinel.Error() {
				t.Error("message detail was lost")
			}
		})
	}
}

func TestSentinelHelpers(t *testing.T) {
	if !IsUnauthorized(NewUnauthorizedError("authentication required")) {
		t.Error("IsUnauthorized missed its own constructor")
	}
	if !IsConflict(NewConflictError("slug taken")) {
		t.Error("IsConflict missed its own constructor")
	}
	if !IsNotFound(NewNotFoundError("faq not found")) {
		t.Error("IsNotFound missed its own constructor")
	}
	if IsUnauthorized(NewNotFoundError("faq not found")) {
		t.Error("IsUnauthorized matched a not-found error")
	}
}

// The database error classifier must carry sentinels too, so callers can
// branch on errors.Is rather than status codes.
func TestDatabaseErrorClassificationCarriesSentinels(t *testing.T) {
	dup := NewDatabaseError("create", "category", errors.New("duplicate key value violates unique constraint"))
	if !errors.Is(dup, ErrAlreadyExists) {
		t.Error("duplicate key error does not wrap ErrAlreadyExists")
	}
	if dup.StatusCode != http.StatusConflict {
		t.Errorf("duplicate key status = %d, want %d", dup.StatusCode, http.StatusConflict)
	}

	missing := NewDatabaseError("update", "faq", errors.New("record not found"))
	if !IsNotFound(missing) {
		t.Error("not-found error does not wrap ErrNotFound")
	}
}
