// Package skyerr defines the error types reported by skytranslate.
package skyerr

import (
	"fmt"
)

// ErrorType defines the category of the error.
type ErrorType string

const (
	TypeRead  ErrorType = "ReadError"
	TypeWrite ErrorType = "WriteError"
)

// SkyError is the interface for all skytranslate errors.
type SkyError interface {
	error
	Type() ErrorType
}

// IOError reports a failure to read an input file or write an output file.
// The underlying error is kept as is and rendered unchanged.
type IOError struct {
	ErrType ErrorType
	Path    string
	Err     error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("[%s] %v", e.ErrType, e.Err)
}

func (e *IOError) Type() ErrorType {
	return e.ErrType
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewReadError creates an IOError for a file that could not be read.
func NewReadError(path string, err error) *IOError {
	return &IOError{
		ErrType: TypeRead,
		Path:    path,
		Err:     err,
	}
}

// NewWriteError creates an IOError for a file that could not be written.
func NewWriteError(path string, err error) *IOError {
	return &IOError{
		ErrType: TypeWrite,
		Path:    path,
		Err:     err,
	}
}
