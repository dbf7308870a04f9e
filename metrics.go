package suggest

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; see
// package metrics/prometheus for a Prometheus implementation.
type MetricsCollector interface {
	// RecordBuild is called after an index is built.
	// words is the number of input words, size the number of distinct words.
	RecordBuild(words, size int, duration time.Duration)

	// RecordSave is called after each save. bytes is the stored size.
	RecordSave(bytes int64, duration time.Duration, err error)

	// RecordOpen is called after each open or read.
	RecordOpen(duration time.Duration, err error)

	// RecordSuggest is called after each suggest query.
	RecordSuggest(results int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, int, time.Duration)    {}
func (NoopMetricsCollector) RecordSave(int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordOpen(time.Duration, error)        {}
func (NoopMetricsCollector) RecordSuggest(int, time.Duration)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount        atomic.Int64
	BuildWords        atomic.Int64
	SaveCount         atomic.Int64
	SaveErrors        atomic.Int64
	SaveBytes         atomic.Int64
	OpenCount         atomic.Int64
	OpenErrors        atomic.Int64
	OpenTotalNanos    atomic.Int64
	SuggestCount      atomic.Int64
	SuggestResults    atomic.Int64
	SuggestTotalNanos atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(words, size int, duration time.Duration) {
	b.BuildCount.Add(1)
	b.BuildWords.Add(int64(words))
}

// RecordSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSave(bytes int64, duration time.Duration, err error) {
	b.SaveCount.Add(1)
	if err != nil {
		b.SaveErrors.Add(1)
		return
	}
	b.SaveBytes.Add(bytes)
}

// RecordOpen implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOpen(duration time.Duration, err error) {
	b.OpenCount.Add(1)
	b.OpenTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.OpenErrors.Add(1)
	}
}

// RecordSuggest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSuggest(results int, duration time.Duration) {
	b.SuggestCount.Add(1)
	b.SuggestResults.Add(int64(results))
	b.SuggestTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:      b.BuildCount.Load(),
		BuildWords:      b.BuildWords.Load(),
		SaveCount:       b.SaveCount.Load(),
		SaveErrors:      b.SaveErrors.Load(),
		SaveBytes:       b.SaveBytes.Load(),
		OpenCount:       b.OpenCount.Load(),
		OpenErrors:      b.OpenErrors.Load(),
		OpenAvgNanos:    avg(b.OpenTotalNanos.Load(), b.OpenCount.Load()),
		SuggestCount:    b.SuggestCount.Load(),
		SuggestResults:  b.SuggestResults.Load(),
		SuggestAvgNanos: avg(b.SuggestTotalNanos.Load(), b.SuggestCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount      int64
	BuildWords      int64
	SaveCount       int64
	SaveErrors      int64
	SaveBytes       int64
	OpenCount       int64
	OpenErrors      int64
	OpenAvgNanos    int64
	SuggestCount    int64
	SuggestResults  int64
	SuggestAvgNanos int64
}
