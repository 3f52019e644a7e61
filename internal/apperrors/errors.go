package apperrors

import (
	"errors"
	"net/http"
)

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrQuoteUnavailable indicates the upstream quote provider could not deliver a usable quote.
var ErrQuoteUnavailable = errors.New("quote unavailable")

// ErrRateUnavailable is the domain-level counterpart of ErrQuoteUnavailable.
// Callers of the conversion service only ever see this one.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// ErrStoreWrite indicates the transaction store failed to persist a record.
var ErrStoreWrite = errors.New("transaction store write failed")

// ErrStoreRead indicates the transaction store failed to read records.
var ErrStoreRead = errors.New("transaction store read failed")

// AppError carries a status code and message alongside the error kind and its cause.
type AppError struct {
	Code    int
	Message string
	Kind    error
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes both the kind sentinel and the underlying cause to errors.Is/As.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewValidationError creates a client-side validation error.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Kind: ErrValidation}
}

// NewQuoteUnavailableError wraps an upstream quote failure.
func NewQuoteUnavailableError(message string, err error) *AppError {
	return &AppError{Code: http.StatusServiceUnavailable, Message: message, Kind: ErrQuoteUnavailable, Err: err}
}

// NewRateUnavailableError reports that no rate could be obtained. The cause is
// kept in the message only, so callers cannot match on transport errors.
func NewRateUnavailableError(cause error) *AppError {
	msg := ErrRateUnavailable.Error()
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return &AppError{Code: http.StatusServiceUnavailable, Message: msg, Kind: ErrRateUnavailable}
}

// NewStoreWriteError wraps a persistence failure on append.
func NewStoreWriteError(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Kind: ErrStoreWrite, Err: err}
}

// NewStoreReadError wraps a persistence failure on read.
func NewStoreReadError(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Kind: ErrStoreRead, Err: err}
}

// StatusCode maps an error to the HTTP status the API layer should answer with.
// An AppError's own Code wins; bare sentinels are mapped by kind.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrRateUnavailable), errors.Is(err, ErrQuoteUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
