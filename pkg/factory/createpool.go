package factory

import (
	"time"

	poolInternal "github.com/dvreede/safexml/internal/pool"
	"github.com/dvreede/safexml/pkg/pool"
	"github.com/dvreede/safexml/pkg/safexml"
)

// DefaultCapacity is the pool capacity used when none is configured.
const DefaultCapacity = 10

// poolOptions represents configuration options for a handle pool,
// including capacity, acquire retry granularity and parser options.
type poolOptions struct {
	capacity      int
	retryInterval time.Duration
	parserOpts    []safexml.Option
}

// poolOption defines a functional option for customizing the behavior
// of a pool by modifying poolOptions.
type poolOption func(*poolOptions)

// WithCapacity configures the number of handles held ready by the pool.
func WithCapacity(capacity int) poolOption {
	return func(options *poolOptions) {
		options.capacity = capacity
	}
}

// WithRetryInterval configures the length of one bounded wait inside
// Acquire. Shorter intervals observe cancellation sooner at the cost of
// more wakeups while the pool is empty.
func WithRetryInterval(retryInterval time.Duration) poolOption {
	return func(options *poolOptions) {
		options.retryInterval = retryInterval
	}
}

// WithParserOptions configures the hardened parser handles built by
// CreateParserPool. It has no effect on pools created with CreatePool,
// whose factories are supplied by the caller.
func WithParserOptions(parserOpts ...safexml.Option) poolOption {
	return func(options *poolOptions) {
		options.parserOpts = append(options.parserOpts, parserOpts...)
	}
}

// CreatePool initializes a bounded handle pool with customizable options
// and returns it, or an error if the initial population fails. It
// defaults the capacity to DefaultCapacity and the acquire retry
// granularity to 10ms. reset may be nil for handle types that need no
// reset between borrowers.
func CreatePool[H any](handleFactory pool.Factory[H], reset pool.ResetFunc[H], opts ...poolOption) (pool.Pool[H], error) {

	options := &poolOptions{
		capacity:      DefaultCapacity,
		retryInterval: poolInternal.DefaultRetryInterval,
	}

	for idx := range opts {
		opts[idx](options)
	}

	return poolInternal.New(options.capacity, handleFactory, reset, options.retryInterval)
}
