package request

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"webserver/internal/http/header"

	"golang.org/x/text/encoding/unicode"
)

const contentLengthHeader = "Content-Length"

type Request struct {
	line    Line
	headers header.Fields
	body    string
	hasBody bool
}

// Parse reads one request from r: the header block up to the first blank line,
// then exactly Content-Length bytes of body. A missing or unparseable
// Content-Length means no body.
func Parse(r io.Reader) (*Request, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	lines, err := header.ReadBlock(br)
	if err != nil {
		return nil, fmt.Errorf("read header block: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty request", ErrMalformedRequestLine)
	}

	line, err := ParseLine(lines[0])
	if err != nil {
		return nil, err
	}

	headers := header.Parse(lines[1:])

	body, err := readBody(br, contentLength(headers))
	if err != nil {
		return nil, err
	}

	return &Request{
		line:    line,
		headers: headers,
		body:    body,
		hasBody: body != "",
	}, nil
}

func contentLength(headers header.Fields) int64 {
	raw, ok := headers.Value(contentLengthHeader)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func readBody(br *bufio.Reader, n int64) (string, error) {
	if n == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	read, err := io.CopyN(&buf, br, n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: want %d bytes, got %d", ErrTruncatedBody, n, read)
		}
		return "", fmt.Errorf("read body: %w", err)
	}

	return decode(buf.Bytes()), nil
}

// decode converts body bytes to text, replacing invalid UTF-8 with U+FFFD.
func decode(b []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(out)
}

func (req *Request) Line() Line      { return req.line }
func (req *Request) Method() Method  { return req.line.method }
func (req *Request) Path() string    { return req.line.path }
func (req *Request) Version() string { return req.line.version }

func (req *Request) Query() (string, bool) {
	return req.line.Query()
}

func (req *Request) Header(key string) (string, bool) {
	return req.headers.Value(key)
}

// Headers returns a copy of the parsed header fields.
func (req *Request) Headers() header.Fields {
	return req.headers.Clone()
}

func (req *Request) Body() (string, bool) {
	return req.body, req.hasBody
}

// QueryParams splits the raw query string into key/value pairs.
func (req *Request) QueryParams() (map[string]string, error) {
	return parseParams(req.line.query)
}

// BodyParams treats the body as application/x-www-form-urlencoded.
func (req *Request) BodyParams() (map[string]string, error) {
	return parseParams(req.body)
}
