package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a user-facing error with an HTTP status. The message is part
// of the public contract; internal detail belongs in the server log, never
// here.
type AppError struct {
	Code    int
	Message string
}

func (e AppError) Error() string {
	return e.Message
}

func BadRequest(msg string) error {
	return AppError{Code: http.StatusBadRequest, Message: msg}
}

func UnprocessableEntity(msg string) error {
	return AppError{Code: http.StatusUnprocessableEntity, Message: msg}
}

func InternalServerError(msg string) error {
	return AppError{Code: http.StatusInternalServerError, Message: msg}
}

// HTTPStatus maps any error to a response status, defaulting to 500.
func HTTPStatus(err error) int {
	var app AppError
	if errors.As(err, &app) {
		return app.Code
	}
	return http.StatusInternalServerError
}

// UserInputError is recovered locally: surfaced as a blocking prompt, no
// state change, nothing sent over the wire.
type UserInputError struct {
	Reason string
}

func (e *UserInputError) Error() string {
	return e.Reason
}

// EncodingError means QR generation or ticket rendering failed. The entered
// form data stays intact so the submission can be retried.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("ticket encoding failed: %v", e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// ServiceError covers network failures and non-2xx responses from the order
// service. Callers keep the form populated; no order is considered placed.
type ServiceError struct {
	Reason string
	Err    error
}

func (e *ServiceError) Error() string {
	return e.Reason
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
