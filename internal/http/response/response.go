package response

import "webserver/internal/http/header"

// Response is an immutable HTTP response produced by Builder.Build.
type Response struct {
	statusLine StatusLine
	headers    header.Fields
	body       string
	hasBody    bool
}

func (resp *Response) StatusLine() StatusLine {
	return resp.statusLine
}

func (resp *Response) Header(key string) (string, bool) {
	return resp.headers.Value(key)
}

// Headers returns a copy of the response header fields.
func (resp *Response) Headers() header.Fields {
	return resp.headers.Clone()
}

func (resp *Response) Body() (string, bool) {
	return resp.body, resp.hasBody
}

// Bytes serializes the response: status line, one CRLF-terminated line per
// header in insertion order, a blank line, then the body verbatim.
func (resp *Response) Bytes() []byte {
	buf := resp.headers.Finalize(resp.statusLine.String())
	if resp.hasBody {
		buf = append(buf, resp.body...)
	}
	return buf
}
