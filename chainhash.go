package chainhash

import "context"

// entry is one stored association. The table owns key; value belongs to
// the caller.
type entry[V any] struct {
	kind   KeyKind
	key    []byte
	keyLen int
	value  V
	next   *entry[V]
}

func (e *entry[V]) stored() []byte {
	return e.key[:e.keyLen]
}

// Table is a separately chained hash table with typed keys.
//
// A Table is not safe for concurrent use. Callers sharing one across
// goroutines must guard every call, including lookups, with a single lock.
//
// Tables are created with New. The zero value behaves like a destroyed
// table: lookups miss and inserts fail with ErrDestroyed.
type Table[V any] struct {
	buckets []*entry[V]
	count   int
	opts    options
}

// New creates an empty table.
func New[V any](optFns ...Option) (*Table[V], error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	return &Table[V]{
		buckets: make([]*entry[V], o.capacity),
		opts:    o,
	}, nil
}

// Len returns the number of stored entries.
func (t *Table[V]) Len() int { return t.count }

// Capacity returns the current number of buckets.
func (t *Table[V]) Capacity() int { return len(t.buckets) }

// LoadFactor returns the configured growth threshold.
func (t *Table[V]) LoadFactor() int { return t.opts.loadFactor }

// Insert stores value under key, replacing the value of an existing match.
// It returns the stored value.
func (t *Table[V]) Insert(key Key, value V) (V, error) {
	return t.insert(key, value)
}

// Find returns the value stored under key. The boolean is false when no
// entry matches, which is distinct from a stored zero value.
func (t *Table[V]) Find(key Key) (V, bool) {
	return t.find(key)
}

// Remove unlinks the entry matching key and returns its value.
// The table never shrinks.
func (t *Table[V]) Remove(key Key) (V, bool) {
	return t.remove(key)
}

// Destroy drops every entry and the bucket array. Values are left to the
// caller. After Destroy, inserts fail with ErrDestroyed and lookups miss.
func (t *Table[V]) Destroy() {
	if t.buckets == nil {
		return
	}
	t.opts.logger.LogDestroy(context.Background(), len(t.buckets), t.count)

	for i, curr := range t.buckets {
		for curr != nil {
			next := curr.next
			curr.key = nil
			curr.next = nil
			curr = next
		}
		t.buckets[i] = nil
	}
	t.buckets = nil
	t.count = 0
}

// metrics returns the configured collector, or a no-op one for a zero-value
// table.
func (t *Table[V]) metrics() MetricsCollector {
	if t.opts.metricsCollector == nil {
		return NoopMetricsCollector{}
	}
	return t.opts.metricsCollector
}

func (t *Table[V]) bucketFor(b []byte, capacity int) int {
	return int(t.opts.hasher(b) % uint32(capacity))
}

func (t *Table[V]) insert(key Key, value V) (V, error) {
	if t.buckets == nil {
		var zero V
		return zero, ErrDestroyed
	}

	bucket := t.bucketFor(key.b, len(t.buckets))

	var match *entry[V]
	i := 0
	for curr := t.buckets[bucket]; curr != nil; curr = curr.next {
		if key.matches(curr.kind, curr.stored()) {
			match = curr
			break
		}
		i++
	}

	grow := t.shouldGrow(i, match == nil)
	if grow && len(t.buckets)*2 > t.opts.maxCapacity {
		if match == nil {
			err := &GrowthError{From: len(t.buckets), To: len(t.buckets) * 2, Max: t.opts.maxCapacity}
			t.opts.logger.LogGrowthRejected(context.Background(), err)
			var zero V
			return zero, err
		}
		// An overwrite adds nothing, so a table at its cap just stays put.
		grow = false
	}

	if match != nil {
		match.value = value
	} else {
		t.buckets[bucket] = &entry[V]{
			kind:   key.kind,
			key:    key.ownedCopy(),
			keyLen: len(key.b),
			value:  value,
			next:   t.buckets[bucket],
		}
		t.count++
	}
	t.metrics().RecordInsert(match != nil)

	if grow {
		t.resize(len(t.buckets) * 2)
	}

	return value, nil
}

// shouldGrow applies the growth policy. visited is the number of entries
// walked before the insert found its match or reached the end of the chain.
func (t *Table[V]) shouldGrow(visited int, adding bool) bool {
	switch t.opts.policy {
	case GrowGlobalLoad:
		return adding && t.count+1 > len(t.buckets)*t.opts.loadFactor
	default:
		return visited >= t.opts.loadFactor
	}
}

func (t *Table[V]) resize(newCapacity int) {
	oldCapacity := len(t.buckets)
	t.opts.logger.LogResize(context.Background(), oldCapacity, newCapacity, t.count)

	newBuckets := make([]*entry[V], newCapacity)
	for _, curr := range t.buckets {
		for curr != nil {
			next := curr.next
			b := t.bucketFor(curr.stored(), newCapacity)
			curr.next = newBuckets[b]
			newBuckets[b] = curr
			curr = next
		}
	}

	t.buckets = newBuckets
	t.metrics().RecordResize(oldCapacity, newCapacity)
}

func (t *Table[V]) find(key Key) (V, bool) {
	if len(t.buckets) == 0 {
		t.metrics().RecordFind(false)
		var zero V
		return zero, false
	}

	bucket := t.bucketFor(key.b, len(t.buckets))
	for curr := t.buckets[bucket]; curr != nil; curr = curr.next {
		if key.matches(curr.kind, curr.stored()) {
			t.metrics().RecordFind(true)
			return curr.value, true
		}
	}

	t.metrics().RecordFind(false)
	var zero V
	return zero, false
}

func (t *Table[V]) remove(key Key) (V, bool) {
	var zero V
	if len(t.buckets) == 0 {
		t.metrics().RecordRemove(false)
		return zero, false
	}

	bucket := t.bucketFor(key.b, len(t.buckets))

	var prev *entry[V]
	for curr := t.buckets[bucket]; curr != nil; curr = curr.next {
		if !key.matches(curr.kind, curr.stored()) {
			prev = curr
			continue
		}

		if prev == nil {
			t.buckets[bucket] = curr.next
		} else {
			prev.next = curr.next
		}
		t.count--

		value := curr.value
		curr.key = nil
		curr.next = nil
		curr.value = zero
		t.metrics().RecordRemove(true)
		return value, true
	}

	t.metrics().RecordRemove(false)
	return zero, false
}
