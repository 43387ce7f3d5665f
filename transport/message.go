// Package transport implements the Base Protocol framing used by
// editor tooling protocols: an ASCII header block terminated by a
// blank line, followed by a JSON document body of exactly
// Content-Length bytes.
package transport

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	contentLengthHeader = "Content-Length"
	contentTypeHeader   = "Content-Type"
)

var ErrMissingContentLength = errors.New("transport: missing Content-Length header")

// ErrTruncated marks a stream that ended before a full body arrived.
// Framing cannot resynchronize past a torn body, so readers treat it
// as fatal to the whole stream.
var ErrTruncated = errors.New("transport: stream truncated mid-body")

// Message is one decoded protocol message: a JSON-RPC request,
// response, or notification. Top-level protocol fields (id, jsonrpc,
// method, params, error, result) are reachable under both their wire
// key and the configured internal key.
type Message map[string]interface{}

// Headers holds the raw header block of one frame. Only
// Content-Length and Content-Type are interpreted; other headers are
// retained untouched.
type Headers map[string]string

// ContentLength parses the required Content-Length header as a
// non-negative byte count.
func (h Headers) ContentLength() (int, error) {
	raw, ok := h[contentLengthHeader]
	if !ok {
		return 0, ErrMissingContentLength
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("transport: invalid Content-Length %q: %w", raw, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("transport: negative Content-Length %d", n)
	}
	return n, nil
}

// ParseError marks a byte-complete frame whose body could not be
// decoded into a Message. It is delivered on the input queue as a
// value so the dispatcher can answer with a protocol-level error
// instead of the frame being dropped.
type ParseError struct {
	Headers Headers
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("transport: unparsable frame: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
