package response

import (
	"fmt"
	"strconv"
	"webserver/internal/http/header"
)

const (
	HeaderDate          = "Date"
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
)

// Builder accumulates a status line, headers and an optional body. Build
// refuses to produce a Response unless Date and Content-Type are set, and
// Content-Length whenever there is a body.
type Builder struct {
	statusLine    StatusLine
	hasStatusLine bool
	headers       header.Fields
	body          string
}

func NewBuilder() *Builder {
	return &Builder{
		headers: header.New(),
	}
}

func (b *Builder) StatusLine(sl StatusLine) *Builder {
	b.statusLine = sl
	b.hasStatusLine = true
	return b
}

// Header sets name to value, replacing any earlier value for the same name.
func (b *Builder) Header(name, value string) *Builder {
	b.headers.Set(name, value)
	return b
}

func (b *Builder) Body(body string) *Builder {
	b.body = body
	return b
}

func (b *Builder) Build() (*Response, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	return &Response{
		statusLine: b.statusLine,
		headers:    b.headers.Clone(),
		body:       b.body,
		hasBody:    b.body != "",
	}, nil
}

func (b *Builder) validate() error {
	if !b.hasStatusLine {
		return ErrMissingStatusLine
	}
	if b.headers.Len() == 0 {
		return ErrMissingHeaders
	}
	for _, name := range []string{HeaderDate, HeaderContentType} {
		if _, ok := b.headers.Value(name); !ok {
			return &RequiredHeaderError{Name: name}
		}
	}

	raw, ok := b.headers.Value(HeaderContentLength)
	if !ok {
		if b.body != "" {
			return &RequiredHeaderError{Name: HeaderContentLength}
		}
		return nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n != len(b.body) {
		return fmt.Errorf("%w: header says %q, body has %d bytes", ErrContentLengthMismatch, raw, len(b.body))
	}
	return nil
}
