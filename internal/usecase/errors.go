package usecase

import (
	"errors"
	"fmt"
)

// エラー種別（機械判定用）
const (
	CodeValidation        = "validation_error"
	CodeEmptyCart         = "empty_cart"
	CodeForbidden         = "forbidden"
	CodeNotFound          = "not_found"
	CodeInvalidAssignment = "invalid_assignment"
	CodeTransient         = "transient"
	CodeUnauthorized      = "unauthorized"
	CodeConflict          = "conflict"
	CodeInternal          = "internal"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

func NewHTTPError(status int, code string, message string) error {
	return &HTTPError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
