package quality

import "runtime"

type options struct {
	samples     int
	pairs       []Pair
	seed        uint32
	shuffle     bool
	concurrency int
	logger      *Logger
}

func defaultOptions() options {
	return options{
		samples:     1024,
		pairs:       ConsecutivePairs(0, 8),
		concurrency: runtime.GOMAXPROCS(0),
		logger:      NoopLogger(),
	}
}

// Option configures Evaluate.
type Option func(*options)

// WithSamples sets the number of points per pair. It must be a power of
// two no larger than 65536. Default: 1024.
func WithSamples(n int) Option {
	return func(o *options) {
		o.samples = n
	}
}

// WithPairs sets the dimension pairs to evaluate.
// Default: ConsecutivePairs(0, 8).
func WithPairs(pairs ...Pair) Option {
	return func(o *options) {
		o.pairs = append([]Pair(nil), pairs...)
	}
}

// WithSeed sets the sampler seed. The random baseline is derived from it
// as well, so reports are reproducible.
func WithSeed(seed uint32) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithShuffle evaluates ShuffledSample instead of Sample.
func WithShuffle(shuffle bool) Option {
	return func(o *options) {
		o.shuffle = shuffle
	}
}

// WithConcurrency limits the number of pairs evaluated in parallel.
// Values <= 0 mean GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.concurrency = n
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
