package apperror

import (
	"errors"
	"net/http"
)

// Kind identifies which member of the closed error taxonomy an AppError
// belongs to. Handlers map kinds to HTTP statuses; the career usecase uses
// KindExternalService to decide whether fallback suggestions may apply.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindExtraction      Kind = "extraction"
	KindNotFound        Kind = "not_found"
	KindExternalService Kind = "external_service"
	KindInternal        Kind = "internal"
)

type AppError struct {
	Kind    Kind   `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, code int, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation rejects malformed caller input (missing profile fields, bad
// upload). Never retried.
func Validation(message string) *AppError {
	return New(KindValidation, http.StatusBadRequest, message, nil)
}

// Extraction signals that no usable text could be obtained for analysis.
func Extraction(message string) *AppError {
	return New(KindExtraction, http.StatusUnprocessableEntity, message, nil)
}

func NotFound(message string) *AppError {
	return New(KindNotFound, http.StatusNotFound, message, nil)
}

// ExternalService wraps a failed AI call: transport error, timeout, non-2xx
// status, or a response body that is not the expected JSON shape.
func ExternalService(message string, err error) *AppError {
	return New(KindExternalService, http.StatusBadGateway, message, err)
}

func Internal(err error) *AppError {
	return New(KindInternal, http.StatusInternalServerError, "Internal Server Error", err)
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
