package request

import (
	"fmt"
	"strings"
)

// Line is the first line of a request: method, request-target split into path
// and raw query, and protocol version.
type Line struct {
	method   Method
	path     string
	query    string
	hasQuery bool
	version  string
}

// ParseLine splits s on single spaces into exactly three tokens. The
// request-target is split on its first '?'; nothing is decoded or normalised.
func ParseLine(s string) (Line, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 3 {
		return Line{}, fmt.Errorf("%w: expected 3 tokens, got %d", ErrMalformedRequestLine, len(parts))
	}

	method, err := ParseMethod(parts[0])
	if err != nil {
		return Line{}, err
	}

	path, query, hasQuery := strings.Cut(parts[1], "?")

	return Line{
		method:   method,
		path:     path,
		query:    query,
		hasQuery: hasQuery,
		version:  parts[2],
	}, nil
}

func (l Line) Method() Method  { return l.method }
func (l Line) Path() string    { return l.path }
func (l Line) Version() string { return l.version }

func (l Line) Query() (string, bool) {
	return l.query, l.hasQuery
}

// Target reassembles the request-target exactly as it appeared on the wire.
func (l Line) Target() string {
	if !l.hasQuery {
		return l.path
	}
	return l.path + "?" + l.query
}

func (l Line) String() string {
	return fmt.Sprintf("%s %s %s", l.method, l.Target(), l.version)
}
