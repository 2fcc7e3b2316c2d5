package domain

import (
	"fmt"
	"net/http"
)

// Error is a business outcome carrying the http status it maps to.
// Message is any json serializable value, e.g. a string or validation error map.
type Error struct {
	Code    int `json:"code"`
	Message any `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %v", e.Code, e.Message)
}

func NewError(code int, message any) *Error {
	return &Error{Code: code, Message: message}
}

func BadRequest(message any) *Error {
	return NewError(http.StatusBadRequest, message)
}

func NotFound(message string) *Error {
	return NewError(http.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return NewError(http.StatusConflict, message)
}

func Unprocessable(message string) *Error {
	return NewError(http.StatusUnprocessableEntity, message)
}

func Internal(message string) *Error {
	return NewError(http.StatusInternalServerError, message)
}
