package response

import (
	"net/http"
	"time"
	"webserver/internal/http/header"
)

const contentTypePlain = "text/plain"

// Date formats t as an HTTP-date in GMT, e.g. "Sun, 06 Nov 1994 08:49:37 GMT".
func Date(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}

// NotFound is the response sent when no handler is registered for a path.
func NotFound() *Response {
	return canned(http.StatusNotFound, time.Now())
}

func BadRequest() *Response {
	return canned(http.StatusBadRequest, time.Now())
}

func InternalServerError() *Response {
	return canned(http.StatusInternalServerError, time.Now())
}

func canned(code int, now time.Time) *Response {
	headers := header.New()
	headers.Set(HeaderDate, Date(now))
	headers.Set(HeaderContentType, contentTypePlain)
	headers.Set(HeaderContentLength, "0")

	return &Response{
		statusLine: NewStatusLine(Version11, code, http.StatusText(code)),
		headers:    headers,
	}
}
