package request

import (
	"fmt"
	"strings"
)

// parseParams splits a form-encoded string on '&' and each pair on '='.
// Values are returned raw; a pair without exactly one '=' is an error.
func parseParams(raw string) (map[string]string, error) {
	params := make(map[string]string)
	if raw == "" {
		return params, nil
	}

	for _, pair := range strings.Split(raw, "&") {
		kv := strings.Split(pair, "=")
		if len(kv) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedParam, pair)
		}
		params[kv[0]] = kv[1]
	}
	return params, nil
}
