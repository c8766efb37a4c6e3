package request

import (
	"fmt"
	"strings"
)

type Method string

const (
	MethodDelete  Method = "DELETE"
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
	MethodPatch   Method = "PATCH"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
)

var methods = []Method{
	MethodDelete,
	MethodGet,
	MethodHead,
	MethodOptions,
	MethodPatch,
	MethodPost,
	MethodPut,
}

// ParseMethod matches token against the known verbs, ignoring case. The whole
// token must match; "GETX" or "forget" are unknown.
func ParseMethod(token string) (Method, error) {
	for _, m := range methods {
		if strings.EqualFold(token, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, token)
}

func (m Method) String() string {
	return string(m)
}
