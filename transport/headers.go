package transport

import (
	"bufio"
	"io"
	"strings"
)

// ReadHeaders reads one header block: lines of "Name: Value" ended by
// a blank line. CR bytes are skipped and LF terminates a line, so both
// CRLF and bare-LF peers parse the same. A line without a colon is
// kept as a header with the whole line as its name and an empty value.
//
// Every read fault, including a stream that dies mid-line, is folded
// into io.EOF: callers treat "stream ended" and "stream broke"
// uniformly as no more frames.
func ReadHeaders(r *bufio.Reader) (Headers, error) {
	h := Headers{}
	for {
		line, err := readLine(r)
		if err != nil {
			return nil, io.EOF
		}
		if line == "" {
			return h, nil
		}
		name, value := splitHeader(line)
		h[name] = value
	}
}

func readLine(r *bufio.Reader) (string, error) {
	var b strings.Builder
	for {
		c, err := r.ReadByte()
		if err != nil {
			return "", io.EOF
		}
		switch c {
		case '\r':
		case '\n':
			return b.String(), nil
		default:
			b.WriteByte(c)
		}
	}
}

// splitHeader splits at the first colon and strips optional whitespace
// after it.
func splitHeader(line string) (name, value string) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeft(line[i+1:], " \t")
}
