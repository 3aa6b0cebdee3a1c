package graphfile

import "fmt"

// DefaultCacheSize is the decode cache capacity used when WithCacheSize is
// not given.
const DefaultCacheSize = 1000

// Option configures Open via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Open runs.
type Option func(*options)

type options struct {
	cacheSize  int
	mmap       bool
	orderCheck bool
	err        error
}

func defaultOptions() options {
	return options{
		cacheSize: DefaultCacheSize,
		mmap:      true,
	}
}

// WithCacheSize sets the capacity of the decode cache, shared by index-keyed
// and k-mer-keyed entries. n must be at least 1.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: cache size must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.cacheSize = n
	}
}

// WithMmap selects memory-mapped access (true, the default) or positioned
// reads on an *os.File (false).
func WithMmap(enabled bool) Option {
	return func(o *options) {
		o.mmap = enabled
	}
}

// WithOrderCheck makes Open scan every record once and fail with an
// IntegrityError if the file is not strictly ascending. Without it, order is
// only sampled along each binary search path.
func WithOrderCheck() Option {
	return func(o *options) {
		o.orderCheck = true
	}
}
