package transport

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"testing"
)

func TestWriteFramingExact(t *testing.T) {
	var buf bytes.Buffer
	mw := NewMessageWriter(&buf, nil)
	err := mw.Write(Message{"jsonrpc": "2.0", "id": 1, "method": "initialize"})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	// Keys are sorted on the wire, so the frame is byte-deterministic.
	want := "Content-Length: 46\r\n\r\n" +
		`{"id":1,"jsonrpc":"2.0","method":"initialize"}`
	if buf.String() != want {
		t.Errorf("frame = %q, want %q", buf.String(), want)
	}
}

func TestWriteTranslatesKeys(t *testing.T) {
	var buf bytes.Buffer
	mw := NewMessageWriter(&buf, nil)
	err := mw.Write(Message{"method": "initialized", "params": map[string]interface{}{
		"text-document-sync": 1,
	}})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"textDocumentSync":1`)) {
		t.Errorf("keys not translated to wire form: %s", buf.Bytes())
	}
	if bytes.Contains(buf.Bytes(), []byte("text-document-sync")) {
		t.Errorf("internal key leaked onto the wire: %s", buf.Bytes())
	}
}

func TestWriteContentLengthMatchesBody(t *testing.T) {
	var buf bytes.Buffer
	mw := NewMessageWriter(&buf, nil)
	if err := mw.Write(Message{"method": "shutdown"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	mr := NewMessageReader(&buf, nil)
	h, err := mr.ReadHeaders()
	if err != nil {
		t.Fatalf("ReadHeaders: %v", err)
	}
	n, err := h.ContentLength()
	if err != nil {
		t.Fatalf("ContentLength: %v", err)
	}
	if n != len(`{"method":"shutdown"}`) {
		t.Errorf("Content-Length = %d", n)
	}
}

func TestConcurrentWritesNeverInterleave(t *testing.T) {
	const writers = 4
	const perWriter = 25

	var buf bytes.Buffer
	mw := NewMessageWriter(&buf, nil)

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				msg := Message{
					"id":     w*perWriter + i,
					"method": fmt.Sprintf("test/%d", w),
				}
				if err := mw.Write(msg); err != nil {
					t.Errorf("Write: %v", err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	// Every frame must parse back whole; any interleaving tears the
	// framing and fails below.
	mr := NewMessageReader(&buf, nil)
	seen := map[float64]bool{}
	for {
		msg, err := mr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		id, ok := msg["id"].(float64)
		if !ok {
			t.Fatalf("id = %#v", msg["id"])
		}
		if seen[id] {
			t.Errorf("duplicate id %v", id)
		}
		seen[id] = true
	}
	if len(seen) != writers*perWriter {
		t.Errorf("got %d frames, want %d", len(seen), writers*perWriter)
	}
}
