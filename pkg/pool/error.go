package pool

import "errors"

var ErrAcquireInterrupted = errors.New("interrupted while waiting for a handle")
var ErrPoolClosed = errors.New("pool has been closed")
var ErrInvalidCapacity = errors.New("pool capacity must be greater than 0")
var ErrNilFactory = errors.New("pool requires a handle factory")

// ErrResetUnsupported is returned by a ResetFunc to signal that the
// handle type offers no reset operation. The pool treats it as a
// successful no-op reset and re-admits the handle unchanged.
var ErrResetUnsupported = errors.New("handle does not support reset")
