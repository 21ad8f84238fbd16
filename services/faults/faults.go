// Package faults defines the typed failure outcomes surfaced by the service
// layer. The HTTP boundary maps each kind to a fixed status code.
package faults

import "errors"

// ValidationError signals a business rule violation in a request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation returns a ValidationError with the given message.
func NewValidation(msg string) error {
	return &ValidationError{Message: msg}
}

// NotFoundError signals that a referenced entity does not exist.
// Resource names the entity kind, e.g. "booking" or "property".
type NotFoundError struct {
	Resource string
	Message  string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFound returns a NotFoundError for the given resource.
func NewNotFound(resource, msg string) error {
	return &NotFoundError{Resource: resource, Message: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsNotFound returns the NotFoundError wrapped in err, if any.
func AsNotFound(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}
