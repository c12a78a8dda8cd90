package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies a VR model validation error.
type ErrorCode string

const (
	// ErrUnknownType indicates a document with an unrecognized type discriminator.
	ErrUnknownType ErrorCode = "vr-unknown-type"
	// ErrTypeMismatch indicates a type discriminator that does not match the model.
	ErrTypeMismatch ErrorCode = "vr-type-mismatch"
	// ErrRequiredProperty indicates a required model property is absent.
	ErrRequiredProperty ErrorCode = "vr-required-property"
	// ErrCURIESyntax indicates a malformed CURIE.
	ErrCURIESyntax ErrorCode = "vr-curie-syntax"
	// ErrIntervalBounds indicates an interval with end before start or a negative coordinate.
	ErrIntervalBounds ErrorCode = "vr-interval-bounds"
	// ErrSequenceSyntax indicates a sequence state with non-residue characters.
	ErrSequenceSyntax ErrorCode = "vr-sequence-syntax"
	// ErrLocationUnresolved indicates an operation that needs an inline location
	// was given a location reference.
	ErrLocationUnresolved ErrorCode = "vr-location-unresolved"
	// ErrReferenceNotFound indicates a reference CURIE absent from the object store.
	ErrReferenceNotFound ErrorCode = "vr-reference-not-found"
)

// Validation describes a model validation error with an error code and
// optional instance path context.
type Validation struct {
	Code    string
	Message string
	Path    string
	Actual  string
}

// ValidationList is an error that wraps one or more validation errors.
type ValidationList []Validation //nolint:errname // public API name, matches the aggregate it carries.

// Error returns a compact summary of the validation errors.
func (v ValidationList) Error() string {
	switch len(v) {
	case 0:
		return "no validation errors"
	case 1:
		return v[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
	}
}

// Error formats the validation for display, including code, message, and context.
func (v *Validation) Error() string {
	if v == nil {
		return "validation <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", v.Code, v.Message))
	if v.Path != "" {
		b.WriteString(fmt.Sprintf(" at %s", v.Path))
	}
	if v.Actual != "" {
		b.WriteString(fmt.Sprintf(" (actual: %s)", v.Actual))
	}
	return b.String()
}

// NewValidation builds a Validation with a code, message, and optional path.
func NewValidation(code ErrorCode, msg, path string) Validation {
	return Validation{Code: string(code), Message: msg, Path: path}
}

// NewValidationf formats a message and builds a Validation.
func NewValidationf(code ErrorCode, path, format string, args ...any) Validation {
	return NewValidation(code, fmt.Sprintf(format, args...), path)
}

// AsValidations extracts validation errors from an error returned by validation helpers.
func AsValidations(err error) ([]Validation, bool) {
	list, ok := asValidationList(err)
	if !ok {
		return nil, false
	}
	return []Validation(list), true
}

func asValidationList(err error) (ValidationList, bool) {
	if err == nil {
		return nil, false
	}
	var list ValidationList
	if errors.As(err, &list) {
		return list, true
	}

	var listPtr *ValidationList
	if errors.As(err, &listPtr) && listPtr != nil {
		return *listPtr, true
	}

	return nil, false
}
