package chainhash

import "sync/atomic"

// MetricsCollector receives per-operation counts from a Table.
// Implement it to feed a monitoring system.
type MetricsCollector interface {
	// RecordInsert is called after each successful insert. overwrite is
	// true when an existing entry's value was replaced.
	RecordInsert(overwrite bool)

	// RecordFind is called after each lookup.
	RecordFind(hit bool)

	// RecordRemove is called after each remove.
	RecordRemove(hit bool)

	// RecordResize is called after the bucket array grows.
	RecordResize(from, to int)
}

// NoopMetricsCollector discards all metrics.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(bool)     {}
func (NoopMetricsCollector) RecordFind(bool)       {}
func (NoopMetricsCollector) RecordRemove(bool)     {}
func (NoopMetricsCollector) RecordResize(int, int) {}

// BasicMetricsCollector counts operations in memory.
type BasicMetricsCollector struct {
	Inserts      atomic.Int64
	Overwrites   atomic.Int64
	FindHits     atomic.Int64
	FindMisses   atomic.Int64
	RemoveHits   atomic.Int64
	RemoveMisses atomic.Int64
	Resizes      atomic.Int64
	PeakCapacity atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(overwrite bool) {
	if overwrite {
		b.Overwrites.Add(1)
		return
	}
	b.Inserts.Add(1)
}

// RecordFind implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFind(hit bool) {
	if hit {
		b.FindHits.Add(1)
		return
	}
	b.FindMisses.Add(1)
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(hit bool) {
	if hit {
		b.RemoveHits.Add(1)
		return
	}
	b.RemoveMisses.Add(1)
}

// RecordResize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResize(_, to int) {
	b.Resizes.Add(1)
	for {
		cur := b.PeakCapacity.Load()
		if int64(to) <= cur || b.PeakCapacity.CompareAndSwap(cur, int64(to)) {
			return
		}
	}
}
