package header

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const separator = ": "

// ReadBlock reads lines up to the blank line that ends a header block, or to
// end of stream. Line terminators are stripped. The first returned line is the
// start line; an empty slice means the stream ended before any data.
func ReadBlock(br *bufio.Reader) ([]string, error) {
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if line == "" {
			return lines, nil
		}
		lines = append(lines, line)

		if err != nil {
			return lines, nil
		}
	}
}

// Parse builds a field set from header lines. Each line is split on the first
// ": "; lines without one are dropped. A repeated name keeps the last value.
func Parse(lines []string) Fields {
	header := New()
	for _, line := range lines {
		key, value, ok := strings.Cut(line, separator)
		if !ok {
			continue
		}
		header.Set(key, value)
	}
	return header
}

func finalize(startLine string, f *fields) []byte {
	size := len(startLine) + 2
	for _, key := range f.keys {
		size += len(key) + len(separator) + len(f.values[key]) + 2
	}
	size += 2

	buf := make([]byte, 0, size)
	buf = append(buf, startLine...)
	buf = append(buf, '\r', '\n')

	for _, key := range f.keys {
		buf = append(buf, key...)
		buf = append(buf, separator...)
		buf = append(buf, f.values[key]...)
		buf = append(buf, '\r', '\n')
	}

	buf = append(buf, '\r', '\n')
	return buf
}
