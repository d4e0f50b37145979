package shared

import (
	"errors"
	"fmt"
)

// Error codes shared by every bounded context
const (
	CodeValidation             = "VALIDATION_ERROR"
	CodeInvalidTransactionType = "INVALID_TRANSACTION_TYPE"
	CodeInvalidAmount          = "INVALID_AMOUNT"
	CodeNotFound               = "NOT_FOUND"
	CodeForbidden              = "FORBIDDEN"
	CodeAlreadyExists          = "ALREADY_EXISTS"
	CodeUnauthorized           = "UNAUTHORIZED"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error bound to a single input field
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: message,
		Field:   field,
	}
}

// Common domain errors
var (
	ErrNotFound               = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists          = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrUnauthorized           = NewDomainError(CodeUnauthorized, "Not authorized to perform this action")
	ErrForbidden              = NewDomainError(CodeForbidden, "Access to this resource is forbidden")
	ErrInvalidTransactionType = NewDomainError(CodeInvalidTransactionType, "Transaction type must be 'income' or 'expense'")
	ErrInvalidAmount          = NewDomainError(CodeInvalidAmount, "Amount must be a positive number")
)

// IsValidation reports whether err is a client input error.
// Invalid type and invalid amount are validation failures too.
func IsValidation(err error) bool {
	var de *DomainError
	if !errors.As(err, &de) {
		return false
	}
	switch de.Code {
	case CodeValidation, CodeInvalidTransactionType, CodeInvalidAmount:
		return true
	}
	return false
}

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsForbidden reports whether err is a forbidden error
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// StoreError wraps a failure surfaced by the persistence layer
type StoreError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying driver error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err as a StoreError, returning nil for a nil err
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// IsStoreError reports whether err originated in the persistence layer
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
