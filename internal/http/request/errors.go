package request

import "fmt"

var (
	ErrMalformedRequestLine = fmt.Errorf("malformed request line")
	ErrUnknownMethod        = fmt.Errorf("unknown request method")
	ErrTruncatedBody        = fmt.Errorf("truncated request body")
	ErrMalformedParam       = fmt.Errorf("malformed query or body parameter")
)
