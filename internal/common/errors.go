// Package common defines shared constants and sentinel errors used across
// the client and the development backend. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorValidation = errors.New("validation error")

	// Local input errors raised while editing the form.
	ErrInvalidInput = errors.New("invalid input value")
	ErrUnknownField = errors.New("unknown form field")
	ErrNoImage      = errors.New("no image selected")
	ErrNotAnImage   = errors.New("file is not an image")
)
