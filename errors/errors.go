package errors

import "strings"

// MultiError collects several independent failures, e.g. from closing a set of resources.
type MultiError interface {
	List() []error
	Size() int
	Add(error)
	Error() string
	// ErrorOrNil returns nil when nothing was collected.
	ErrorOrNil() error
}

func NewMultiError() MultiError {
	return &multiError{
		errors: make([]error, 0),
	}
}

func MultiErrorWith(err error) MultiError {
	return &multiError{
		errors: []error{err},
	}
}

type multiError struct {
	errors []error
}

func (e *multiError) Size() int {
	return len(e.errors)
}

func (e *multiError) List() []error {
	return e.errors
}

func (e *multiError) Add(err error) {
	if err == nil {
		return
	}
	e.errors = append(e.errors, err)
}

func (e *multiError) ErrorOrNil() error {
	if len(e.errors) == 0 {
		return nil
	}
	return e
}

func (e *multiError) Unwrap() []error {
	return e.errors
}

func (e *multiError) Error() string {
	var builder strings.Builder
	for i, err := range e.errors {
		if i > 0 {
			builder.WriteRune('\n')
		}
		builder.WriteString(err.Error())
	}
	return builder.String()
}
