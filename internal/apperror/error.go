package apperror

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeValidation Code = "validation"
	CodeNotFound   Code = "not_found"
	CodeInternal   Code = "internal"
)

// Error is returned by the service layer. Message is safe to show to the
// caller; Detail is only written to the server log.
type Error struct {
	Code    Code
	Message string
	Detail  string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func Validation(message string) *Error {
	return New(CodeValidation, message)
}

func NotFoundf(format string, args ...interface{}) *Error {
	return New(CodeNotFound, fmt.Sprintf(format, args...))
}

// Storage wraps a database driver failure. The driver message is kept as the
// public message.
func Storage(err error, detail string) *Error {
	return &Error{
		Code:    CodeInternal,
		Message: err.Error(),
		Detail:  detail,
		Err:     err,
	}
}

func GetCode(err error) Code {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}

func GetDetail(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Detail
	}
	return ""
}
