package apiErrors

import (
	"errors"
	"fmt"

	"github.com/ce-fello/relief-hub/src/internal/model"
)

type ErrorCode string

const (
	ValidationError ErrorCode = "VALIDATION_ERROR"
	Forbidden       ErrorCode = "FORBIDDEN"
	NotFound        ErrorCode = "NOT_FOUND"
	NoCandidate     ErrorCode = "NO_CANDIDATE"
	InternalError   ErrorCode = "INTERNAL_ERROR"
)

type APIError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e APIError) Unwrap() error { return e.Err }

// From classifies a domain error by the model sentinel it matches.
func From(err error) APIError {
	var e APIError
	switch {
	case errors.As(err, &e):
		return e
	case errors.Is(err, model.ErrValidation), errors.Is(err, model.ErrInvalidEnum):
		return APIError{Code: ValidationError, Message: err.Error(), Err: err}
	case errors.Is(err, model.ErrForbidden):
		return APIError{Code: Forbidden, Message: err.Error(), Err: err}
	case errors.Is(err, model.ErrNotFound):
		return APIError{Code: NotFound, Message: err.Error(), Err: err}
	}
	return APIError{Code: InternalError, Message: err.Error(), Err: err}
}
