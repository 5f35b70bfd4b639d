package validation

import "errors"

// FieldError is used to indicate an error with a specific request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Error is a recoverable request-validation failure. Nothing is written
// when one is returned; the handler surfaces it to the user.
type Error struct {
	Err    error
	Fields []FieldError
}

func NewError(err error, fields ...FieldError) error {
	return &Error{Err: err, Fields: fields}
}

func NewMessageError(msg string) error {
	return &Error{Err: errors.New(msg)}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError unwraps err into an *Error if it is one.
func AsError(err error) (*Error, bool) {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
