package transport

import (
	"errors"
	"io"

	"github.com/gorilla/websocket"
)

// NewWebSocketStream adapts a websocket connection into the plain byte
// stream the adapters consume, one protocol frame spanning any number
// of websocket messages. The adapter holds no session state; the
// connection lifecycle stays with the caller until the stream is
// closed.
func NewWebSocketStream(c *websocket.Conn) io.ReadWriteCloser {
	return &wsStream{conn: c}
}

type wsStream struct {
	conn   *websocket.Conn
	reader io.Reader
}

func (ws *wsStream) Read(buf []byte) (int, error) {
	var (
		typ int
		err error
	)
	if ws.reader == nil {
		typ, ws.reader, err = ws.conn.NextReader()
		if err != nil {
			return 0, err
		}
		if typ == websocket.CloseMessage {
			return 0, errors.New("closed by peer")
		}
	}

	n, err := ws.reader.Read(buf)
	if err == io.EOF {
		ws.reader = nil
		err = nil
	}
	return n, err
}

func (ws *wsStream) Write(buf []byte) (int, error) {
	err := ws.conn.WriteMessage(websocket.BinaryMessage, buf)
	return len(buf), err
}

func (ws *wsStream) Close() error {
	return ws.conn.Close()
}
