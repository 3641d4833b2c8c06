package pool

import "context"

// Pool represents a bounded collection of reusable handles shared across
// concurrent callers. A handle is an expensively constructed, internally
// stateful unit of work capacity (such as a stream parser) that is not
// itself safe for concurrent use; the pool lends each handle to exactly
// one caller at a time.
//
// Callers borrow a handle with Acquire, use it exclusively, and hand it
// back with Release. A separate administrative path may call Resize at
// any time, including while handles are checked out.
//
// Methods:
//   - Acquire(): Borrow one handle, blocking until one is available or the context is cancelled.
//   - Release(): Return a borrowed handle to the pool on a best-effort basis.
//   - Resize(): Replace the idle collection with freshly constructed handles at a new capacity.
//   - Close(): Permanently shut the pool down and discard all idle handles.
//   - Capacity(): Return the pool's current target capacity.
//   - Idle(): Return the current number of idle handles.
type Pool[H any] interface {

	// Acquire borrows one handle from the pool, removing it from the idle
	// collection and transferring exclusive ownership to the caller. If no
	// handle is idle, Acquire blocks in short bounded waits and retries
	// until one becomes available, checking ctx between attempts so that
	// cancellation is observed promptly rather than after an unbounded delay.
	//
	// Acquire is thread-safe and can be called concurrently. No fairness is
	// guaranteed among blocked callers; any waiter may be served next.
	//
	// Returns:
	// - The handle, on success.
	// - ErrAcquireInterrupted: If ctx was cancelled while waiting.
	// - ErrPoolClosed: If the pool has been closed.
	Acquire(ctx context.Context) (H, error)

	// Release returns a borrowed handle to the pool. The handle is first
	// reset to its reusable baseline; a reset that reports
	// ErrResetUnsupported counts as success, while any other reset failure
	// causes the handle to be discarded. If the idle collection is already
	// full (which legitimately happens right after a shrink, when surplus
	// checked-out handles come home to find no room) the handle is
	// silently discarded.
	//
	// Release never blocks on availability and never fails from the
	// caller's point of view: returning a resource the caller no longer
	// needs is best-effort by contract.
	Release(h H)

	// Resize changes the pool's capacity. It excludes all concurrent
	// Acquire and Release traffic for its duration, replaces the idle
	// collection with a new one of the requested bound, and fills it with
	// exactly capacity freshly constructed handles. Previously idle
	// handles are abandoned; handles currently checked out are unaffected
	// and will be discarded on Release if they no longer fit.
	//
	// If constructing any fresh handle fails, the previous idle collection
	// and capacity are left fully intact and the construction error is
	// returned.
	//
	// Returns:
	// - `nil`: If resizing succeeded, or if capacity already matches the idle count.
	// - ErrInvalidCapacity: If capacity is less than 1.
	// - ErrPoolClosed: If the pool has been closed.
	// - The factory's construction error, wrapped, if a fresh handle could not be built.
	Resize(capacity int) error

	// Close permanently shuts the pool down, discarding all idle handles.
	// Subsequent Acquire and Resize calls fail with ErrPoolClosed;
	// subsequent Release calls discard the returned handle. Close is
	// idempotent and safe to call concurrently.
	Close()

	// Capacity returns the pool's current target capacity.
	Capacity() int

	// Idle returns the number of handles currently available for checkout.
	// The value is advisory: it may change the moment it is read.
	Idle() int
}

// Factory constructs one new poolable handle on demand. The pool calls
// it when populating, refilling after a resize, and never otherwise; it
// must be safe to call from multiple goroutines with no shared mutable
// state beyond process-wide defaults it only reads. A construction
// failure is always propagated to the pool's caller, never swallowed.
type Factory[H any] func() (H, error)

// ResetFunc returns a checked-out handle to a reusable baseline state
// before it goes back into the pool. Returning ErrResetUnsupported means
// the handle type offers no reset and is still good to reuse as-is; any
// other error marks the handle unfit for reuse and it will be discarded.
type ResetFunc[H any] func(h H) error
