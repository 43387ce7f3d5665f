package stream

import (
	log "github.com/sirupsen/logrus"

	"github.com/renqiu/lspipe/codec"
)

type Option = func(*Options)

type Options struct {
	// KeyTranslation maps wire keys to the internal convention on the
	// input side. Default codec.KebabCase.
	KeyTranslation codec.KeyFunc

	// WireKeyTranslation maps internal keys to the wire convention on
	// the output side. Default codec.CamelCase.
	WireKeyTranslation codec.KeyFunc

	// CloseOnQueueClose makes the input adapter close the byte source
	// (when it is an io.Closer) after the consumer closes the queue.
	CloseOnQueueClose bool

	// QueueCapacity bounds the adapter queue. Default 1.
	QueueCapacity int

	Logger *log.Entry
}

func (op *Options) Apply(options []Option) {
	for _, f := range options {
		f(op)
	}
}

func defaultOptions() *Options {
	return &Options{
		KeyTranslation:     codec.KebabCase,
		WireKeyTranslation: codec.CamelCase,
		CloseOnQueueClose:  true,
		QueueCapacity:      1,
	}
}

// WithKeyTranslation sets the wire-to-internal key function used when
// decoding inbound messages.
func WithKeyTranslation(f codec.KeyFunc) Option {
	return func(op *Options) {
		op.KeyTranslation = f
	}
}

// WithWireKeyTranslation sets the internal-to-wire key function used
// when encoding outbound messages.
func WithWireKeyTranslation(f codec.KeyFunc) Option {
	return func(op *Options) {
		op.WireKeyTranslation = f
	}
}

func WithCloseOnQueueClose(b bool) Option {
	return func(op *Options) {
		op.CloseOnQueueClose = b
	}
}

func WithQueueCapacity(n int) Option {
	return func(op *Options) {
		op.QueueCapacity = n
	}
}

func WithLogger(e *log.Entry) Option {
	return func(op *Options) {
		op.Logger = e
	}
}
