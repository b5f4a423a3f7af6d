package apperr

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrInvalid      = errors.New("invalid")
)

type messageError struct {
	kind error
	msg  string
}

func (e *messageError) Error() string {
	return e.msg
}

func (e *messageError) Unwrap() error {
	return e.kind
}

// WithMessage attaches a caller-facing message to one of the sentinel
// errors above while keeping errors.Is matching intact.
func WithMessage(kind error, msg string) error {
	return &messageError{kind: kind, msg: msg}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
