package transport

import (
	"bufio"
	"fmt"
	"io"

	"github.com/renqiu/lspipe/codec"
)

// MessageReader decodes Base Protocol frames from a byte source.
//
// A reader is not safe for concurrent use; one input pump owns it.
type MessageReader struct {
	r   *bufio.Reader
	key codec.KeyFunc
}

// NewMessageReader wraps r. key translates wire keys to the internal
// convention; nil means codec.KebabCase.
func NewMessageReader(r io.Reader, key codec.KeyFunc) *MessageReader {
	if key == nil {
		key = codec.KebabCase
	}
	return &MessageReader{
		r:   bufio.NewReader(r),
		key: key,
	}
}

// ReadHeaders reads the next frame's header block. It returns io.EOF
// when the stream yields no further frames, for any reason.
func (mr *MessageReader) ReadHeaders() (Headers, error) {
	return ReadHeaders(mr.r)
}

// ReadBody reads and decodes the body described by h.
//
// Byte-complete frames that fail to decode (bad Content-Length,
// unsupported charset, undecodable bytes, unparsable document) return
// a *ParseError. A stream that ends before Content-Length bytes
// arrived returns an error wrapping ErrTruncated; the caller must
// treat that as fatal, since the next frame boundary is lost.
func (mr *MessageReader) ReadBody(h Headers) (Message, error) {
	n, err := h.ContentLength()
	if err != nil {
		return nil, &ParseError{Headers: h, Err: err}
	}

	body := make([]byte, n)
	if _, err := io.ReadFull(mr.r, body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	mediaType, charset := ResolveContentType(h[contentTypeHeader])
	text, err := decodeBody(body, charset)
	if err != nil {
		return nil, &ParseError{Headers: h, Err: err}
	}

	var doc map[string]interface{}
	if err := codec.Unmarshal(mediaType, text, &doc); err != nil {
		return nil, &ParseError{Headers: h, Err: err}
	}

	msg, ok := codec.TranslateKeys(doc, mr.key).(map[string]interface{})
	if !ok {
		// TranslateKeys preserves container shape; this cannot happen
		// for a map input.
		return nil, &ParseError{Headers: h, Err: fmt.Errorf("transport: body is not an object")}
	}
	codec.ExposeWireKeys(doc, msg, mr.key)
	return Message(msg), nil
}

// Read reads one complete frame, headers and body.
func (mr *MessageReader) Read() (Message, error) {
	h, err := mr.ReadHeaders()
	if err != nil {
		return nil, err
	}
	return mr.ReadBody(h)
}
