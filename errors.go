package haxxor

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidInput indicates a required argument was empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingTag indicates a hash was expected to carry a module tag but does not.
	ErrMissingTag = errors.New("hash does not contain a module tag")

	// ErrUnsupported indicates the module cannot perform the operation (decrypting a digest).
	ErrUnsupported = errors.New("operation not supported by module")

	// ErrDecode indicates a hash could not be decoded: malformed base64, a malformed
	// key layer, or key material that does not fit the module.
	ErrDecode = errors.New("decode failed")

	// ErrInvalidTag indicates a struct tag names an unknown or unusable algorithm.
	ErrInvalidTag = errors.New("invalid tag")
)

// Operations reported by ModuleError.
const (
	OpEncrypt  = "encrypt"
	OpDecrypt  = "decrypt"
	OpValidate = "validate"
	OpOwnsTag  = "tag check"
	OpResolve  = "resolve"
	OpCycle    = "cycle"
)

// ModuleError represents a failed module operation.
// It wraps a sentinel error with the algorithm and operation that failed.
type ModuleError struct {
	Err       error     // Underlying sentinel error (ErrInvalidInput, ErrDecode, etc.)
	Algorithm Algorithm // Module that raised the error
	Operation string    // Operation that failed (encrypt, decrypt, validate, ...)
	Cause     error     // Original error from the underlying primitive, if any
}

func (e *ModuleError) Error() string {
	switch {
	case e.Cause == nil:
		return fmt.Sprintf("%s %s: %s", e.Algorithm, e.Operation, e.Err.Error())
	case errors.Is(e.Cause, e.Err):
		return fmt.Sprintf("%s %s: %v", e.Algorithm, e.Operation, e.Cause)
	default:
		return fmt.Sprintf("%s %s: %s: %v", e.Algorithm, e.Operation, e.Err.Error(), e.Cause)
	}
}

// Unwrap exposes both the sentinel and the cause, so errors.Is matches either.
func (e *ModuleError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// FieldError represents a processor failure on a single struct field.
type FieldError struct {
	Err       error  // Underlying error from the module
	Field     string // Field name that failed
	Operation string // seal, open or verify
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s field %s: %v", e.Operation, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// newModuleError creates a ModuleError without an underlying cause.
func newModuleError(sentinel error, algo Algorithm, op string) error {
	return &ModuleError{
		Err:       sentinel,
		Algorithm: algo,
		Operation: op,
	}
}

// newDecodeError creates a ModuleError for a decode failure caused by err.
func newDecodeError(algo Algorithm, op string, cause error) error {
	return &ModuleError{
		Err:       ErrDecode,
		Algorithm: algo,
		Operation: op,
		Cause:     cause,
	}
}

// newFieldError creates a FieldError for processor failures.
func newFieldError(op, field string, err error) error {
	return &FieldError{
		Err:       err,
		Field:     field,
		Operation: op,
	}
}
