package models

import "fmt"

// ValidationError reports a caller-supplied value that violates a field
// constraint. Handlers translate it into an HTTP 400 response.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a referenced entity id that does not exist.
// Handlers translate it into an HTTP 404 response.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// InvalidStateError reports an operation attempted on a reservation that is
// not in the required lifecycle state. Handlers translate it into an HTTP
// 400 response.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// StoreError wraps a failure to read or write the persisted document. It is
// not recoverable by the caller and surfaces as an internal error.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
