package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func TestWebSocketStream(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer c.Close()
		for {
			typ, data, err := c.ReadMessage()
			if err != nil {
				return
			}
			if err := c.WriteMessage(typ, data); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	s := NewWebSocketStream(conn)
	defer s.Close()

	mw := NewMessageWriter(s, nil)
	mr := NewMessageReader(s, nil)

	if err := mw.Write(Message{"id": 1, "method": "ping"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	msg, err := mr.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if msg["method"] != "ping" || msg["id"] != float64(1) {
		t.Errorf("echo = %#v", msg)
	}
}
