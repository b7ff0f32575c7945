// Package apperrors defines the error taxonomy surfaced at the API boundary.
// Controllers map these to HTTP statuses; nothing below the controller layer
// touches gin.
package apperrors

import "fmt"

// ValidationError marks rejected user input. Persistence must not have been
// attempted when one of these is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation builds a ValidationError for a single field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ImportError marks an unrecoverable roster upload failure. Any previously
// persisted roster stays untouched.
type ImportError struct {
	Filename string
	Err      error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import of %q failed: %v", e.Filename, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// StoreError wraps a database failure. The wrapped operation is assumed to
// have left no partial state behind.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store operation %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// WrapStore returns nil when err is nil, otherwise a StoreError tagged with op.
func WrapStore(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
