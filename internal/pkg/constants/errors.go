package constants

import "net/http"

type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound      = NewCodedError("not found", http.StatusNotFound)
	ErrUnauthorized    = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrMissingAuth     = NewCodedError("missing admin token", http.StatusUnauthorized)
	ErrValidation      = NewCodedError("validation failed", http.StatusBadRequest)
	ErrBadRequest      = NewCodedError("bad request", http.StatusBadRequest)
	ErrInvalidPassword = NewCodedError("invalid username or password", http.StatusUnauthorized)
)
