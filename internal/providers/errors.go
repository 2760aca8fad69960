package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrParse matches every *ParseError.
	ErrParse = errors.New("page structure changed or manga not found")

	ErrUnsupported = errors.New("unsupported operation")
)

// ParseError reports a required element missing from a fetched page.
type ParseError struct {
	URL      string
	Selector string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q missing on %s", ErrParse, e.Selector, e.URL)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
