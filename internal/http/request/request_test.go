package request

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		data          string
		expectMethod  Method
		expectPath    string
		expectVersion string
		expectHeaders map[string]string
		expectBody    string
		expectHasBody bool
	}{
		{
			name:          "get without body",
			data:          "GET /path HTTP/1.1\r\nHost: example.com\r\nX-Custom: value\r\n\r\n",
			expectMethod:  MethodGet,
			expectPath:    "/path",
			expectVersion: "HTTP/1.1",
			expectHeaders: map[string]string{
				"Host":     "example.com",
				"X-Custom": "value",
			},
		},
		{
			name:          "post with exact body",
			data:          "POST /login HTTP/1.1\r\nContent-Length: 10\r\n\r\n0123456789",
			expectMethod:  MethodPost,
			expectPath:    "/login",
			expectVersion: "HTTP/1.1",
			expectHeaders: map[string]string{
				"Content-Length": "10",
			},
			expectBody:    "0123456789",
			expectHasBody: true,
		},
		{
			name:          "bytes past content length are left unread",
			data:          "PUT / HTTP/1.1\r\nContent-Length: 3\r\n\r\nabcdef",
			expectMethod:  MethodPut,
			expectPath:    "/",
			expectVersion: "HTTP/1.1",
			expectBody:    "abc",
			expectHasBody: true,
		},
		{
			name:          "unparseable content length means no body",
			data:          "POST / HTTP/1.1\r\nContent-Length: ten\r\n\r\nignored",
			expectMethod:  MethodPost,
			expectPath:    "/",
			expectVersion: "HTTP/1.1",
		},
		{
			name:          "negative content length means no body",
			data:          "POST / HTTP/1.1\r\nContent-Length: -4\r\n\r\nignored",
			expectMethod:  MethodPost,
			expectPath:    "/",
			expectVersion: "HTTP/1.1",
		},
		{
			name:          "zero content length",
			data:          "DELETE /item HTTP/1.1\r\nContent-Length: 0\r\n\r\n",
			expectMethod:  MethodDelete,
			expectPath:    "/item",
			expectVersion: "HTTP/1.1",
		},
		{
			name:          "content length header name is literal",
			data:          "POST / HTTP/1.1\r\ncontent-length: 3\r\n\r\nabc",
			expectMethod:  MethodPost,
			expectPath:    "/",
			expectVersion: "HTTP/1.1",
			expectHeaders: map[string]string{
				"content-length": "3",
			},
		},
		{
			name:          "malformed header line dropped",
			data:          "GET / HTTP/1.1\r\nMalformedLine\r\nK1: V1\r\n\r\n",
			expectMethod:  MethodGet,
			expectPath:    "/",
			expectVersion: "HTTP/1.1",
			expectHeaders: map[string]string{
				"K1": "V1",
			},
		},
		{
			name:          "stream ends without blank line",
			data:          "HEAD /x HTTP/1.0\r\nHost: example.com",
			expectMethod:  MethodHead,
			expectPath:    "/x",
			expectVersion: "HTTP/1.0",
			expectHeaders: map[string]string{
				"Host": "example.com",
			},
		},
		{
			name:          "invalid utf-8 is replaced",
			data:          "POST / HTTP/1.1\r\nContent-Length: 4\r\n\r\n\xffabc",
			expectMethod:  MethodPost,
			expectPath:    "/",
			expectVersion: "HTTP/1.1",
			expectBody:    "�abc",
			expectHasBody: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Parse(strings.NewReader(tt.data))
			require.NoError(t, err)
			require.NotNil(t, req)

			assert.Equal(t, tt.expectMethod, req.Method())
			assert.Equal(t, tt.expectPath, req.Path())
			assert.Equal(t, tt.expectVersion, req.Version())
			for k, v := range tt.expectHeaders {
				got, ok := req.Header(k)
				assert.True(t, ok, k)
				assert.Equal(t, v, got)
			}

			body, ok := req.Body()
			assert.Equal(t, tt.expectHasBody, ok)
			assert.Equal(t, tt.expectBody, body)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		expectErr error
	}{
		{"empty stream", "", ErrMalformedRequestLine},
		{"blank request line", "\r\n\r\n", ErrMalformedRequestLine},
		{"missing version", "GET /path\r\n\r\n", ErrMalformedRequestLine},
		{"unknown method", "ASDF / HTTP/1.1\r\n\r\n", ErrUnknownMethod},
		{"truncated body", "POST / HTTP/1.1\r\nContent-Length: 10\r\n\r\nabc", ErrTruncatedBody},
		{"body missing entirely", "POST / HTTP/1.1\r\nContent-Length: 1\r\n\r\n", ErrTruncatedBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Parse(strings.NewReader(tt.data))
			assert.ErrorIs(t, err, tt.expectErr)
			assert.Nil(t, req)
		})
	}
}

func TestParseReadError(t *testing.T) {
	readErr := errors.New("connection reset")
	data := io.MultiReader(
		strings.NewReader("POST / HTTP/1.1\r\nContent-Length: 10\r\n\r\nabc"),
		iotest.ErrReader(readErr),
	)

	req, err := Parse(data)
	assert.ErrorIs(t, err, readErr)
	assert.NotErrorIs(t, err, ErrTruncatedBody)
	assert.Nil(t, req)
}

func TestParseReusesBufferedReader(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("GET / HTTP/1.1\r\nContent-Length: 2\r\n\r\nhiNEXT"))

	req, err := Parse(br)
	require.NoError(t, err)

	body, _ := req.Body()
	assert.Equal(t, "hi", body)

	rest, err := io.ReadAll(br)
	require.NoError(t, err)
	assert.Equal(t, "NEXT", string(rest))
}

func TestHeadersReturnsCopy(t *testing.T) {
	req, err := Parse(strings.NewReader("GET / HTTP/1.1\r\nHost: a\r\n\r\n"))
	require.NoError(t, err)

	headers := req.Headers()
	headers.Set("Host", "b")

	host, _ := req.Header("Host")
	assert.Equal(t, "a", host)
}

func TestQueryParams(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		expect    map[string]string
		expectErr bool
	}{
		{
			name:   "no query",
			data:   "GET /search HTTP/1.1\r\n\r\n",
			expect: map[string]string{},
		},
		{
			name:   "empty query",
			data:   "GET /search? HTTP/1.1\r\n\r\n",
			expect: map[string]string{},
		},
		{
			name: "pairs",
			data: "GET /search?q=go&page=2 HTTP/1.1\r\n\r\n",
			expect: map[string]string{
				"q":    "go",
				"page": "2",
			},
		},
		{
			name: "values are not decoded",
			data: "GET /search?q=a%20b HTTP/1.1\r\n\r\n",
			expect: map[string]string{
				"q": "a%20b",
			},
		},
		{
			name:      "pair without equals",
			data:      "GET /search?q HTTP/1.1\r\n\r\n",
			expectErr: true,
		},
		{
			name:      "pair with two equals",
			data:      "GET /search?q=a=b HTTP/1.1\r\n\r\n",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Parse(strings.NewReader(tt.data))
			require.NoError(t, err)

			params, err := req.QueryParams()
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrMalformedParam)
				assert.Nil(t, params)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expect, params)
		})
	}
}

func TestBodyParams(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		expect    map[string]string
		expectErr bool
	}{
		{
			name: "form body",
			data: "POST /login HTTP/1.1\r\nContent-Length: 37\r\n\r\nname=alice&password=1234&isHuman=true",
			expect: map[string]string{
				"name":     "alice",
				"password": "1234",
				"isHuman":  "true",
			},
		},
		{
			name:   "absent body",
			data:   "POST /login HTTP/1.1\r\n\r\n",
			expect: map[string]string{},
		},
		{
			name:      "malformed pair",
			data:      "POST /login HTTP/1.1\r\nContent-Length: 9\r\n\r\nname&x=1&",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Parse(strings.NewReader(tt.data))
			require.NoError(t, err)

			params, err := req.BodyParams()
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrMalformedParam)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expect, params)
		})
	}
}
