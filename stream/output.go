package stream

import (
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/renqiu/lspipe/queue"
	"github.com/renqiu/lspipe/transport"
)

// Output pumps Messages from a bounded queue onto a byte sink.
type Output struct {
	sink  io.Writer
	queue *queue.Queue[transport.Message]
	opts  *Options
	log   *log.Entry

	done chan struct{}
	err  error
}

// NewOutput starts the write pump. Messages pushed onto the queue are
// framed and written in order; closing the queue drains nothing
// further and closes the sink. A write or serialization fault is
// unrecoverable: the queue is closed so producers see the collapse,
// and Err reports the cause after Done.
func NewOutput(w io.Writer, options ...Option) *Output {
	op := defaultOptions()
	op.Apply(options)

	out := &Output{
		sink:  w,
		queue: queue.New[transport.Message](op.QueueCapacity),
		opts:  op,
		log:   adapterLogger(op, "Output"),
		done:  make(chan struct{}),
	}
	go out.writePump()
	return out
}

// Queue is the send side handed to the dispatcher. Pushing a nil
// Message is a caller contract violation.
func (o *Output) Queue() *queue.Queue[transport.Message] {
	return o.queue
}

// Send pushes one message, blocking until the pump takes it or the
// queue is closed.
func (o *Output) Send(m transport.Message) error {
	return o.queue.Push(m)
}

// Close stops the pump after pending messages are written and closes
// the sink.
func (o *Output) Close() {
	o.queue.Close()
}

// Done is closed when the pump has stopped.
func (o *Output) Done() <-chan struct{} {
	return o.done
}

// Err reports the fatal fault that stopped the pump, if any. Valid
// after Done is closed.
func (o *Output) Err() error {
	select {
	case <-o.done:
		return o.err
	default:
		return nil
	}
}

func (o *Output) writePump() {
	defer close(o.done)

	mw := transport.NewMessageWriter(o.sink, o.opts.WireKeyTranslation)
	for {
		msg, ok := o.queue.Pop()
		if !ok {
			// Writes are flushed per frame, so closing is all that is
			// left for the sink.
			if c, isCloser := o.sink.(io.Closer); isCloser {
				_ = c.Close()
			}
			o.log.Debug("queue closed, sink closed")
			return
		}
		if err := mw.Write(msg); err != nil {
			o.err = err
			o.queue.Close()
			o.log.WithError(err).Error("write failed")
			return
		}
	}
}
