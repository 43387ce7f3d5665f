// Package stream runs the two background pumps that bridge byte
// streams to bounded message queues. Each adapter owns one goroutine,
// so blocking I/O never shares a thread with whatever scheduler the
// protocol dispatcher runs on; the queues are the only suspension
// points collaborators see.
package stream

import (
	"errors"
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/renqiu/lspipe/queue"
	"github.com/renqiu/lspipe/transport"
)

// Inbound is one value delivered by an Input queue: a decoded Message,
// or Err set to a *transport.ParseError for a byte-complete frame that
// failed to decode.
type Inbound struct {
	Msg transport.Message
	Err error
}

// Input pumps frames from a byte source onto a bounded queue.
type Input struct {
	src   io.Reader
	queue *queue.Queue[Inbound]
	opts  *Options
	log   *log.Entry
}

// NewInput starts the read pump. The returned Input's queue yields
// messages in wire order and is closed when the source ends, breaks,
// or truncates mid-body. Closing the queue from the consumer side
// stops the pump at its next push and, by default, closes the source.
func NewInput(r io.Reader, options ...Option) *Input {
	op := defaultOptions()
	op.Apply(options)

	in := &Input{
		src:   r,
		queue: queue.New[Inbound](op.QueueCapacity),
		opts:  op,
		log:   adapterLogger(op, "Input"),
	}
	go in.readPump()
	return in
}

// Queue is the receive side handed to the dispatcher.
func (in *Input) Queue() *queue.Queue[Inbound] {
	return in.queue
}

// Recv pops the next inbound value; ok is false once the stream is
// done and drained.
func (in *Input) Recv() (Inbound, bool) {
	return in.queue.Pop()
}

// Close is the consumer-side teardown. The pump notices on its next
// push attempt, not preemptively.
func (in *Input) Close() {
	in.queue.Close()
}

func (in *Input) readPump() {
	mr := transport.NewMessageReader(in.src, in.opts.KeyTranslation)
	for {
		headers, err := mr.ReadHeaders()
		if err != nil {
			in.log.Debug("stream ended")
			in.queue.Close()
			return
		}

		var item Inbound
		msg, err := mr.ReadBody(headers)
		switch {
		case err == nil:
			item.Msg = msg
		case errors.As(err, new(*transport.ParseError)):
			in.log.WithError(err).Debug("unparsable frame")
			item.Err = err
		default:
			// Truncated body: the next frame boundary is lost, the
			// stream cannot be resumed.
			in.log.WithError(err).Error("stream truncated")
			in.queue.Close()
			return
		}

		if pushErr := in.queue.Push(item); pushErr != nil {
			in.log.Debug("queue closed by consumer")
			if in.opts.CloseOnQueueClose {
				if c, ok := in.src.(io.Closer); ok {
					_ = c.Close()
				}
			}
			return
		}
	}
}

func adapterLogger(op *Options, name string) *log.Entry {
	if op.Logger != nil {
		return op.Logger
	}
	return log.WithFields(log.Fields{
		"Name": name,
		"ID":   uuid.NewString(),
	})
}
