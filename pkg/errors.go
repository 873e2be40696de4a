package pkg

import (
	"fmt"

	"bidtrack/pkg/response"
)

// AppError is the domain error surfaced at the HTTP edge: a stable machine
// code, a human message and the HTTP status to answer with. The wrapped cause
// stays server-side; ToHTTPError never leaks it.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Err:        err,
		HTTPStatus: httpStatus,
	}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return NewDomainError(code, message, nil, httpStatus)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError renders the error as the standard response envelope.
func (e *AppError) ToHTTPError() response.Envelope {
	return response.Error(e.Code, e.Message)
}
