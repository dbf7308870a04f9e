package prometheus

import (
	"errors"
	"time"

	"github.com/hupe1980/suggest"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusOK       = "ok"
	statusError    = "error"
	statusNotFound = "not_found"
	statusCorrupt  = "corrupt"
)

// Collector implements suggest.MetricsCollector on Prometheus metrics.
type Collector struct {
	opLatency      *prometheus.HistogramVec
	operations     *prometheus.CounterVec
	buildWords     prometheus.Counter
	indexWords     prometheus.Gauge
	indexBytes     prometheus.Gauge
	suggestResults prometheus.Histogram
}

type options struct {
	namespace   string
	constLabels prometheus.Labels
}

// Option configures New.
type Option func(*options)

// WithNamespace sets the metric namespace. Default: "suggest".
func WithNamespace(ns string) Option {
	return func(o *options) { o.namespace = ns }
}

// WithConstLabels attaches constant labels to every metric.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(o *options) { o.constLabels = labels }
}

// New creates a collector and registers its metrics with reg.
func New(reg prometheus.Registerer, optFns ...Option) (*Collector, error) {
	opts := options{namespace: "suggest"}
	for _, fn := range optFns {
		fn(&opts)
	}

	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   opts.namespace,
			Name:        "operation_duration_seconds",
			Help:        "Latency of index operations.",
			Buckets:     prometheus.ExponentialBuckets(0.00001, 4, 10),
			ConstLabels: opts.constLabels,
		}, []string{"op"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   opts.namespace,
			Name:        "operations_total",
			Help:        "Index operations by outcome.",
			ConstLabels: opts.constLabels,
		}, []string{"op", "status"}),
		buildWords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   opts.namespace,
			Name:        "build_input_words_total",
			Help:        "Words read while building indexes, duplicates included.",
			ConstLabels: opts.constLabels,
		}),
		indexWords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   opts.namespace,
			Name:        "index_words",
			Help:        "Distinct words in the most recently built index.",
			ConstLabels: opts.constLabels,
		}),
		indexBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   opts.namespace,
			Name:        "index_size_bytes",
			Help:        "Size of the most recently saved index.",
			ConstLabels: opts.constLabels,
		}),
		suggestResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   opts.namespace,
			Name:        "suggest_results",
			Help:        "Number of words returned per suggest query.",
			Buckets:     prometheus.ExponentialBuckets(1, 4, 8),
			ConstLabels: opts.constLabels,
		}),
	}

	for _, m := range []prometheus.Collector{
		c.opLatency, c.operations, c.buildWords, c.indexWords, c.indexBytes, c.suggestResults,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNew is like New but panics if registration fails.
func MustNew(reg prometheus.Registerer, optFns ...Option) *Collector {
	c, err := New(reg, optFns...)
	if err != nil {
		panic(err)
	}
	return c
}

// RecordBuild implements suggest.MetricsCollector.
func (c *Collector) RecordBuild(words, size int, duration time.Duration) {
	c.observe("build", statusOK, duration)
	c.buildWords.Add(float64(words))
	c.indexWords.Set(float64(size))
}

// RecordSave implements suggest.MetricsCollector.
func (c *Collector) RecordSave(bytes int64, duration time.Duration, err error) {
	c.observe("save", status(err), duration)
	if err == nil {
		c.indexBytes.Set(float64(bytes))
	}
}

// RecordOpen implements suggest.MetricsCollector.
func (c *Collector) RecordOpen(duration time.Duration, err error) {
	c.observe("open", status(err), duration)
}

// RecordSuggest implements suggest.MetricsCollector.
func (c *Collector) RecordSuggest(results int, duration time.Duration) {
	c.observe("suggest", statusOK, duration)
	c.suggestResults.Observe(float64(results))
}

func (c *Collector) observe(op, status string, duration time.Duration) {
	c.operations.WithLabelValues(op, status).Inc()
	c.opLatency.WithLabelValues(op).Observe(duration.Seconds())
}

func status(err error) string {
	switch {
	case err == nil:
		return statusOK
	case errors.Is(err, suggest.ErrNotFound):
		return statusNotFound
	case errors.Is(err, suggest.ErrCorrupt):
		return statusCorrupt
	default:
		return statusError
	}
}

var _ suggest.MetricsCollector = (*Collector)(nil)
