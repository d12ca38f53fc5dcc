package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrItemNotFound indicates that the item being priced does not exist.
var ErrItemNotFound = fmt.Errorf("item not found: %w", ErrNotFound)

// ErrMissingPricingData indicates that one or more required pricing inputs are absent.
// Use MissingPricingDataError to carry the offending fields.
var ErrMissingPricingData = errors.New("missing pricing data")

// ErrCategoryMarginMissing indicates that the item's category has no active margin rule.
var ErrCategoryMarginMissing = errors.New("no active margin rule for category")

// ErrFreightRateMissing indicates that no active freight rate exists for the port and container size.
var ErrFreightRateMissing = errors.New("no active freight rate for port and container size")

// ErrNoCurrencyRateAvailable indicates that no currency rate could be resolved at all.
var ErrNoCurrencyRateAvailable = errors.New("no currency rate available")

// AppError is an error carrying an HTTP-ish status code alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// MissingPricingDataError lists the pricing inputs that were required but absent.
// Fields hold stable field keys; callers translate them for display.
type MissingPricingDataError struct {
	Fields []string
}

func (e *MissingPricingDataError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingPricingData.Error(), strings.Join(e.Fields, ", "))
}

func (e *MissingPricingDataError) Unwrap() error {
	return ErrMissingPricingData
}

// NewMissingPricingDataError creates a MissingPricingDataError for the given field keys.
func NewMissingPricingDataError(fields ...string) *MissingPricingDataError {
	return &MissingPricingDataError{Fields: fields}
}
