package suggest

import (
	"github.com/hupe1980/suggest/codec"
	"github.com/hupe1980/suggest/compress"
	"github.com/hupe1980/suggest/trie"
)

type options struct {
	codec            codec.Codec
	compression      compress.Type
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Build, Open and Read.
type Option func(*options)

// WithCodec configures the codec used to encode and decode the index.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the compression applied when the index is
// saved. Opening detects the compression from the stored data.
func WithCompression(t compress.Type) Option {
	return func(o *options) {
		o.compression = t
	}
}

// WithMetricsCollector sets the metrics collector.
//
// If nil is passed, metrics are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger sets the logger.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func applyOptions(optFns []Option) options {
	opts := options{
		codec:            codec.Default,
		compression:      compress.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

func (o options) trieOptions() []trie.Option {
	return []trie.Option{
		trie.WithCodec(o.codec),
		trie.WithCompression(o.compression),
	}
}
