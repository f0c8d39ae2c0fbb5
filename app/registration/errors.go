package registration

import (
	"fmt"
	"net/http"
)

// ValidationError reports missing or malformed input. The message names the
// offending field or rule so the frontend can show it as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a referenced student, user, or catalog row that does
// not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// ConflictError reports a request that is valid on its own but clashes with
// current state: a duplicate email, or a payment against a settled registration.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// AuthError reports failed credential checks (401) or a valid login against an
// inactive account (403).
type AuthError struct {
	Message   string
	Forbidden bool
}

func (e *AuthError) Error() string { return e.Message }

// StorageError wraps a persistence failure. The wrapped detail is for operator
// logs; callers surface only the outer message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }

// HTTPStatus maps a domain error to the status code the API reports it with.
func HTTPStatus(err error) int {
	switch e := err.(type) {
	case *ValidationError:
		return http.StatusBadRequest
	case *NotFoundError:
		return http.StatusNotFound
	case *ConflictError:
		return http.StatusConflict
	case *AuthError:
		if e.Forbidden {
			return http.StatusForbidden
		}
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
