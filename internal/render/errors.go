package render

import (
	"errors"
	"fmt"
)

// ErrTemplateNotFound is returned when a template reference cannot be resolved.
var ErrTemplateNotFound = errors.New("template not found")

// Error reports a template that was found but failed to parse or execute,
// typically because it references a parameter that was not supplied.
type Error struct {
	Ref string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to render template %s: %v", e.Ref, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
