package chainhash

const (
	// DefaultCapacity is the number of buckets a new table starts with.
	DefaultCapacity = 8

	// DefaultLoadFactor is the chain length that triggers growth.
	DefaultLoadFactor = 4

	// DefaultMaxCapacity bounds how far the bucket array may grow.
	DefaultMaxCapacity = 1 << 30
)

// GrowthPolicy selects when an insert doubles the bucket array.
type GrowthPolicy uint8

const (
	// GrowPerChain doubles capacity when an insert walked at least
	// load-factor entries of its own chain, however sparse the rest of the
	// table is.
	GrowPerChain GrowthPolicy = iota

	// GrowGlobalLoad doubles capacity when the number of entries exceeds
	// capacity times the load factor.
	GrowGlobalLoad
)

// String implements fmt.Stringer.
func (p GrowthPolicy) String() string {
	switch p {
	case GrowPerChain:
		return "per-chain"
	case GrowGlobalLoad:
		return "global-load"
	default:
		return "unknown"
	}
}

type options struct {
	capacity         int
	loadFactor       int
	maxCapacity      int
	policy           GrowthPolicy
	hasher           Hasher
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		capacity:         DefaultCapacity,
		loadFactor:       DefaultLoadFactor,
		maxCapacity:      DefaultMaxCapacity,
		policy:           GrowPerChain,
		hasher:           Murmur3,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures a Table.
type Option func(*options)

// WithInitialCapacity sets the starting number of buckets. It must be a
// power of two.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLoadFactor sets the growth threshold. Under GrowPerChain it is a chain
// length, under GrowGlobalLoad an average number of entries per bucket.
func WithLoadFactor(n int) Option {
	return func(o *options) {
		o.loadFactor = n
	}
}

// WithMaxCapacity caps the bucket array. Inserts that would need to grow
// past it fail with ErrCapacityExceeded and leave the table unchanged.
func WithMaxCapacity(n int) Option {
	return func(o *options) {
		o.maxCapacity = n
	}
}

// WithGrowthPolicy selects the resize trigger. The default is GrowPerChain.
func WithGrowthPolicy(p GrowthPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithHasher replaces the bucket hash. If nil is passed, Murmur3 is used.
func WithHasher(h Hasher) Option {
	return func(o *options) {
		if h == nil {
			h = Murmur3
		}
		o.hasher = h
	}
}

// WithLogger configures structured logging. If nil is passed, logging is
// disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func (o *options) validate() error {
	if !isPowerOfTwo(o.capacity) {
		return &OptionError{Option: "initial capacity", Value: o.capacity, Reason: "must be a positive power of two"}
	}
	if o.loadFactor < 1 {
		return &OptionError{Option: "load factor", Value: o.loadFactor, Reason: "must be at least 1"}
	}
	if !isPowerOfTwo(o.maxCapacity) || o.maxCapacity < o.capacity {
		return &OptionError{Option: "max capacity", Value: o.maxCapacity, Reason: "must be a power of two no smaller than the initial capacity"}
	}
	if o.policy != GrowPerChain && o.policy != GrowGlobalLoad {
		return &OptionError{Option: "growth policy", Value: int(o.policy), Reason: "unknown policy"}
	}
	return nil
}
