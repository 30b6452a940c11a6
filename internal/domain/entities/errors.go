package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation             = errors.New("validation failed")
	ErrInvalidItem            = errors.New("invalid line item")
	ErrIndexOutOfRange        = errors.New("line item index out of range")
	ErrClaimLocked            = errors.New("claim is locked")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrNotFinalizable         = errors.New("claim is not finalizable")
	ErrArithmeticInvariant    = errors.New("arithmetic invariant violation")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrClaimNotFound          = errors.New("claim not found")
	ErrSettlementNotFound     = errors.New("settlement not found")
	ErrBeneficiaryNotFound    = errors.New("beneficiary not found")
	ErrProviderNotFound       = errors.New("provider not found")
	ErrCatalogEntryNotFound   = errors.New("catalog entry not found")
	ErrUnknownWireCode        = errors.New("unknown wire code")
)

// FieldError attributes a validation failure to one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation. It matches ErrValidation.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TransitionError reports a rejected status change. It matches ErrInvalidTransition.
type TransitionError struct {
	From   StatusKind
	To     StatusKind
	Reason string
}

func (e *TransitionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
	}
	return fmt.Sprintf("invalid status transition from %s to %s: %s", e.From, e.To, e.Reason)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// itemError wraps ErrInvalidItem or ErrIndexOutOfRange with the offending detail.
func itemError(base error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", base, fmt.Sprintf(format, args...))
}
