package chainhash

// Stats is a snapshot of the table's shape.
type Stats struct {
	Capacity     int
	LoadFactor   int
	Policy       GrowthPolicy
	Entries      int
	EmptyBuckets int
	LongestChain int
	// ChainLengths holds the number of entries in each bucket, by index.
	ChainLengths []int
}

// AverageChain returns the mean chain length over non-empty buckets.
func (s Stats) AverageChain() float64 {
	used := s.Capacity - s.EmptyBuckets
	if used == 0 {
		return 0
	}
	return float64(s.Entries) / float64(used)
}

// Stats walks every bucket and reports chain lengths. It is O(n) and meant
// for debugging.
func (t *Table[V]) Stats() Stats {
	s := Stats{
		Capacity:     len(t.buckets),
		LoadFactor:   t.opts.loadFactor,
		Policy:       t.opts.policy,
		ChainLengths: make([]int, len(t.buckets)),
	}

	for i, curr := range t.buckets {
		n := 0
		for ; curr != nil; curr = curr.next {
			n++
		}
		s.ChainLengths[i] = n
		s.Entries += n
		if n == 0 {
			s.EmptyBuckets++
		}
		if n > s.LongestChain {
			s.LongestChain = n
		}
	}

	return s
}
