package response

import (
	"fmt"
	"strconv"
	"strings"
)

const Version11 = "HTTP/1.1"

type StatusLine struct {
	version string
	code    int
	reason  string
}

func NewStatusLine(version string, code int, reason string) StatusLine {
	return StatusLine{
		version: version,
		code:    code,
		reason:  reason,
	}
}

// ParseStatusLine reads "<version> <code> <reason...>". The reason phrase is
// every token after the code, rejoined with single spaces.
func ParseStatusLine(s string) (StatusLine, error) {
	parts := strings.Split(s, " ")
	if len(parts) < 3 {
		return StatusLine{}, fmt.Errorf("%w: %q", ErrMalformedStatusLine, s)
	}

	code, err := strconv.Atoi(parts[1])
	if err != nil {
		return StatusLine{}, fmt.Errorf("%w: status code %q", ErrMalformedStatusLine, parts[1])
	}

	return StatusLine{
		version: parts[0],
		code:    code,
		reason:  strings.Join(parts[2:], " "),
	}, nil
}

func (sl StatusLine) Version() string { return sl.version }
func (sl StatusLine) Code() int       { return sl.code }
func (sl StatusLine) Reason() string  { return sl.reason }

func (sl StatusLine) String() string {
	return fmt.Sprintf("%s %d %s", sl.version, sl.code, sl.reason)
}
