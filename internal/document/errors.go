package document

import "fmt"

// ParseError is returned when a document is not well-formed or does not
// have the expected shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid template document: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErrorf(format string, args ...any) error {
	return &ParseError{Err: fmt.Errorf(format, args...)}
}
