package transport

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/renqiu/lspipe/codec"
)

// MessageWriter frames Messages onto a byte sink. The mutex is owned
// by the writer instance, not shared process-wide, so unrelated
// pipelines never contend; all producers targeting one sink must share
// one MessageWriter.
type MessageWriter struct {
	mu  sync.Mutex
	w   *bufio.Writer
	key codec.KeyFunc
}

// NewMessageWriter wraps w. key translates internal keys to the wire
// convention; nil means codec.CamelCase.
func NewMessageWriter(w io.Writer, key codec.KeyFunc) *MessageWriter {
	if key == nil {
		key = codec.CamelCase
	}
	return &MessageWriter{
		w:   bufio.NewWriter(w),
		key: key,
	}
}

// Write serializes m and writes one frame: "Content-Length: N", CRLF,
// CRLF, then exactly N body bytes, flushed. The header and body of
// concurrent Write calls never interleave on the wire.
func (mw *MessageWriter) Write(m Message) error {
	wire := codec.TranslateKeys(map[string]interface{}(m), mw.key)
	body, err := codec.Marshal(codec.MediaTypeJSON, wire)
	if err != nil {
		return fmt.Errorf("transport: serialize message: %w", err)
	}

	mw.mu.Lock()
	defer mw.mu.Unlock()
	if _, err := fmt.Fprintf(mw.w, "Content-Length: %d\r\n\r\n", len(body)); err != nil {
		return err
	}
	if _, err := mw.w.Write(body); err != nil {
		return err
	}
	return mw.w.Flush()
}
