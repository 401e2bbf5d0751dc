package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Every error returned by this package wraps exactly one of these, so
// the HTTP layer can pick a status code with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrStorage            = errors.New("storage error")
)

// ErrInvalidAdminCredentials is the admin login rejection. It matches
// ErrInvalidCredentials with errors.Is.
var ErrInvalidAdminCredentials error = &worded{msg: "Invalid Admin credentials", err: ErrInvalidCredentials}

type worded struct {
	msg string
	err error
}

func (e *worded) Error() string { return e.msg }

func (e *worded) Unwrap() error { return e.err }

// ValidationError carries the individual field failures of a request.
type ValidationError struct {
	Fields validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + e.Fields.Error()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
