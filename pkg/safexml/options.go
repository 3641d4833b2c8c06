package safexml

// Default security limits applied to every handle. They bound what a
// hostile document can make a parser do before the parse is aborted
// with ErrLimitExceeded.
const (
	DefaultMaxDepth     = 512
	DefaultMaxAttrs     = 256
	DefaultMaxTokenSize = 1 << 20
	DefaultMaxTokens    = 1 << 22
)

// limits carries the per-handle parse bounds. Every bound is enforced;
// there is no way to switch one off, only to raise it.
type limits struct {
	maxDepth     int
	maxAttrs     int
	maxTokenSize int
	maxTokens    int
}

// handleOptions represents configuration options for a hardened XML
// handle, currently the parse limits.
type handleOptions struct {
	limits limits
}

// Option defines a functional option for customizing the behavior of a
// hardened XML handle by modifying handleOptions.
type Option func(*handleOptions)

// WithMaxDepth bounds element nesting depth.
func WithMaxDepth(maxDepth int) Option {
	return func(options *handleOptions) {
		options.limits.maxDepth = maxDepth
	}
}

// WithMaxAttrs bounds the number of attributes on a single element.
func WithMaxAttrs(maxAttrs int) Option {
	return func(options *handleOptions) {
		options.limits.maxAttrs = maxAttrs
	}
}

// WithMaxTokenSize bounds the byte size of a single character-data,
// comment or attribute-value token.
func WithMaxTokenSize(maxTokenSize int) Option {
	return func(options *handleOptions) {
		options.limits.maxTokenSize = maxTokenSize
	}
}

// WithMaxTokens bounds the total number of tokens read from one input.
func WithMaxTokens(maxTokens int) Option {
	return func(options *handleOptions) {
		options.limits.maxTokens = maxTokens
	}
}

func defaultHandleOptions() *handleOptions {
	return &handleOptions{
		limits: limits{
			maxDepth:     DefaultMaxDepth,
			maxAttrs:     DefaultMaxAttrs,
			maxTokenSize: DefaultMaxTokenSize,
			maxTokens:    DefaultMaxTokens,
		},
	}
}

// validate rejects non-positive bounds. A handle that cannot enforce
// its limits must not be constructed at all.
func (o *handleOptions) validate() error {
	for _, bound := range []int{
		o.limits.maxDepth,
		o.limits.maxAttrs,
		o.limits.maxTokenSize,
		o.limits.maxTokens,
	} {
		if bound < 1 {
			return ErrInvalidLimit
		}
	}
	return nil
}
