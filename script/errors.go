package script

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrArity    = errors.New("wrong number of parameters")
	ErrType     = errors.New("wrong parameter type")
)

// Position locates an error in script source. The zero value means no
// position is known, which is the case for errors raised by native code.
type Position struct {
	Line   int
	Column int
}

func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// RuntimeError is returned to the script caller.
type RuntimeError struct {
	Message  string
	Position Position

	kind error
}

func newError(kind error, message string) *RuntimeError {
	return &RuntimeError{Message: message, kind: kind}
}

func (e *RuntimeError) Error() string {
	if e.Position.IsValid() {
		return fmt.Sprintf("%s at %s", e.Message, e.Position)
	}
	return e.Message
}

func (e *RuntimeError) Unwrap() error {
	return e.kind
}

// At attaches pos to err if it is a RuntimeError without a position.
func At(err error, pos Position) error {
	var re *RuntimeError
	if errors.As(err, &re) && !re.Position.IsValid() {
		re.Position = pos
	}
	return err
}

func indexNotFound(key string) error {
	return newError(ErrNotFound, fmt.Sprintf("index not found: %s", key))
}

func cannotSet(key string) error {
	return newError(ErrNotFound, fmt.Sprintf("can not set %s", key))
}

func operationNotFound(key string) error {
	return newError(ErrNotFound, fmt.Sprintf("operation not found: %s", key))
}

func ensureParameters(args []Value, n int) error {
	if len(args) != n {
		return newError(ErrArity, fmt.Sprintf("expected %d parameters, got %d", n, len(args)))
	}
	return nil
}
