package factory

import (
	poolInternal "github.com/dvreede/safexml/internal/pool"
	"github.com/dvreede/safexml/pkg/pool"
	"github.com/dvreede/safexml/pkg/safexml"
)

// CreateParserPool initializes a bounded pool of hardened stream
// parsers: safexml.NewParser is the handle factory and
// (*safexml.Parser).Reset returns each handle to baseline between
// borrowers. This is the pooled arrangement most callers want; use
// CreatePool directly only when pooling a different handle kind.
func CreateParserPool(opts ...poolOption) (pool.Pool[*safexml.Parser], error) {

	options := &poolOptions{
		capacity:      DefaultCapacity,
		retryInterval: poolInternal.DefaultRetryInterval,
	}

	for idx := range opts {
		opts[idx](options)
	}

	handleFactory := func() (*safexml.Parser, error) {
		return safexml.NewParser(options.parserOpts...)
	}
	reset := func(p *safexml.Parser) error {
		return p.Reset()
	}

	return poolInternal.New(options.capacity, handleFactory, reset, options.retryInterval)
}
