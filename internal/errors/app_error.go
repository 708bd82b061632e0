package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

// Level is the severity the front end shows the message with.
func (e *AppError) Level() string {
	return LevelFor(e.Code)
}

const (
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeBadRequest           = "BAD_REQUEST"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeInternal             = "INTERNAL_ERROR"
	ErrCodeDuplicateEntry       = "DUPLICATE_ENTRY"
	ErrCodeThirdPartyError      = "THIRD_PARTY_ERROR"
	ErrCodeUpstream             = "UPSTREAM_ERROR"
	ErrCodeConnection           = "CONNECTION_ERROR"
	ErrCodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	ErrCodeEmptyCart            = "EMPTY_CART"
	ErrCodeOperationInProgress  = "OPERATION_IN_PROGRESS"
	ErrCodeCheckoutInProgress   = "CHECKOUT_IN_PROGRESS"
)

const (
	LevelSuccess = "success"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelDanger  = "danger"
)

func LevelFor(code string) string {
	switch code {
	case ErrCodeValidation, ErrCodeBadRequest, ErrCodeDuplicateEntry, ErrCodeEmptyCart,
		ErrCodeOperationInProgress, ErrCodeCheckoutInProgress:
		return LevelWarning
	case ErrCodeConfirmationRequired:
		return LevelInfo
	default:
		return LevelDanger
	}
}

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func DuplicateEntryError(message string) *AppError {
	return NewAppError(ErrCodeDuplicateEntry, message, http.StatusConflict)
}

func ThirdPartyError(message string) *AppError {
	return NewAppError(ErrCodeThirdPartyError, message, http.StatusBadGateway)
}

// UpstreamError is a non-2xx answer from the articulos API.
func UpstreamError(message string) *AppError {
	return NewAppError(ErrCodeUpstream, message, http.StatusBadGateway)
}

// ConnectionError is a transport failure talking to the articulos API.
func ConnectionError(message string) *AppError {
	return NewAppError(ErrCodeConnection, message, http.StatusServiceUnavailable)
}

func ConfirmationRequiredError(message string) *AppError {
	return NewAppError(ErrCodeConfirmationRequired, message, http.StatusBadRequest)
}

func EmptyCartError(message string) *AppError {
	return NewAppError(ErrCodeEmptyCart, message, http.StatusBadRequest)
}

func OperationInProgressError(message string) *AppError {
	return NewAppError(ErrCodeOperationInProgress, message, http.StatusConflict)
}

func CheckoutInProgressError(message string) *AppError {
	return NewAppError(ErrCodeCheckoutInProgress, message, http.StatusConflict)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}
