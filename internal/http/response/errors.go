package response

import "fmt"

var (
	ErrMalformedStatusLine   = fmt.Errorf("malformed status line")
	ErrMissingStatusLine     = fmt.Errorf("missing status line")
	ErrMissingHeaders        = fmt.Errorf("missing headers")
	ErrMissingRequiredHeader = fmt.Errorf("missing required header")
	ErrContentLengthMismatch = fmt.Errorf("content length does not match body")
)

// RequiredHeaderError names the header a builder was missing. It matches
// ErrMissingRequiredHeader with errors.Is.
type RequiredHeaderError struct {
	Name string
}

func (e *RequiredHeaderError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredHeader, e.Name)
}

func (e *RequiredHeaderError) Is(target error) bool {
	return target == ErrMissingRequiredHeader
}
