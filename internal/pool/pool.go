package pool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dvreede/safexml/pkg/pool"
)

// DefaultRetryInterval is the length of one bounded wait inside Acquire.
// It is internal retry granularity, not a caller-visible timeout: from
// the caller's perspective Acquire blocks until a handle is available or
// the context is cancelled.
const DefaultRetryInterval = 10 * time.Millisecond

// Pool is the reader/writer-guarded implementation of pool.Pool.
// Acquire and Release take the shared side of the guard so many callers
// can move handles in and out concurrently; Resize and Close take the
// exclusive side, stopping all traffic for their (bounded) duration.
// The idle collection and the capacity value are the only shared mutable
// state, and both are protected by that single guard.
type Pool[H any] struct {

	// mu is the single reader/writer coordination primitive. Ordinary
	// acquire/release traffic holds the read side for the duration of one
	// attempt only, so a writer requesting exclusive access is never
	// starved indefinitely.
	mu sync.RWMutex

	// idle is the bounded collection of handles currently available for
	// checkout. It is replaced wholesale by Resize; Release re-admits into
	// whichever collection is current, silently dropping the handle when
	// the collection is full.
	idle chan H

	// capacity is the current target number of idle handles. Only written
	// while mu is held exclusively.
	capacity int

	// factory constructs one fresh handle. It is called only while mu is
	// held exclusively (initial population and Resize), so it is never
	// raced against itself.
	factory pool.Factory[H]

	// reset returns a borrowed handle to its reusable baseline before
	// re-admission. May be nil if the handle type needs no reset.
	reset pool.ResetFunc[H]

	// retryInterval bounds each individual wait inside Acquire.
	retryInterval time.Duration

	// closed marks the pool as permanently shut down. Only written while
	// mu is held exclusively.
	closed bool
}

// New constructs a pool populated with capacity fresh handles. A factory
// failure during initial population is propagated and no pool is
// returned.
func New[H any](capacity int, factory pool.Factory[H], reset pool.ResetFunc[H], retryInterval time.Duration) (*Pool[H], error) {

	if capacity < 1 {
		return nil, pool.ErrInvalidCapacity
	}
	if factory == nil {
		return nil, pool.ErrNilFactory
	}
	if retryInterval <= 0 {
		retryInterval = DefaultRetryInterval
	}

	idle := make(chan H, capacity)
	for i := 0; i < capacity; i++ {
		h, err := factory()
		if err != nil {
			return nil, fmt.Errorf("populating pool with %d handles: %w", capacity, err)
		}
		idle <- h
	}

	return &Pool[H]{
		idle:          idle,
		capacity:      capacity,
		factory:       factory,
		reset:         reset,
		retryInterval: retryInterval,
	}, nil
}

//region Implementation

// Acquire borrows one handle, blocking in retryInterval-long waits until
// one is idle. Each attempt holds the read side of the guard for at most
// one interval, then gives it back, so a pending Resize always gets a
// chance to proceed between attempts. ctx is checked once per attempt;
// a cancellation observed mid-wait fails the call with
// pool.ErrAcquireInterrupted rather than looping forever.
func (p *Pool[H]) Acquire(ctx context.Context) (H, error) {
	var zero H

	for {

		// Observe cancellation between attempts.
		if ctx.Err() != nil {
			return zero, fmt.Errorf("%w: %w", pool.ErrAcquireInterrupted, ctx.Err())
		}

		p.mu.RLock()
		if p.closed {
			p.mu.RUnlock()
			return zero, pool.ErrPoolClosed
		}

		// One bounded attempt: take a handle if one is idle, or give the
		// read lock back after at most one retry interval.
		wait := time.NewTimer(p.retryInterval)
		select {
		case h := <-p.idle:
			wait.Stop()
			p.mu.RUnlock()
			return h, nil

		case <-ctx.Done():
			wait.Stop()
			p.mu.RUnlock()
			return zero, fmt.Errorf("%w: %w", pool.ErrAcquireInterrupted, ctx.Err())

		case <-wait.C:
			p.mu.RUnlock()
		}
	}
}

// Release returns a borrowed handle to the idle collection on a
// best-effort basis. The handle is reset first; pool.ErrResetUnsupported
// counts as success, any other reset error discards the handle. A full
// idle collection (the normal aftermath of a shrink) also discards the
// handle. Neither outcome is reported: release is infallible from the
// caller's point of view.
func (p *Pool[H]) Release(h H) {

	if p.reset != nil {
		if err := p.reset(h); err != nil && !errors.Is(err, pool.ErrResetUnsupported) {
			// Handle could not be brought back to a reusable baseline.
			return
		}
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return
	}

	// Surplus handles returning after a shrink find no room here and are
	// dropped; this is how a shrink takes effect without revoking handles
	// from in-flight borrowers.
	select {
	case p.idle <- h:
	default:
	}
}

// Resize replaces the idle collection with a new one of the requested
// bound, filled with exactly capacity fresh handles. It holds the write
// side of the guard throughout, so no acquire/release attempt overlaps
// the swap. All handles are constructed into a staging slice before the
// swap: if any construction fails, the previous idle collection and
// capacity remain fully intact and the error is returned.
func (p *Pool[H]) Resize(capacity int) error {

	if capacity < 1 {
		return pool.ErrInvalidCapacity
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return pool.ErrPoolClosed
	}

	// Nothing to do when the idle count already matches the request.
	if len(p.idle) == capacity {
		return nil
	}

	fresh := make([]H, 0, capacity)
	for i := 0; i < capacity; i++ {
		h, err := p.factory()
		if err != nil {
			return fmt.Errorf("resizing pool to %d handles: %w", capacity, err)
		}
		fresh = append(fresh, h)
	}

	// Commit. Previously idle handles are abandoned with the old
	// collection; checked-out handles will be re-admitted or dropped by
	// Release depending on the new bound.
	idle := make(chan H, capacity)
	for _, h := range fresh {
		idle <- h
	}
	p.idle = idle
	p.capacity = capacity

	return nil
}

// Close permanently shuts the pool down and discards all idle handles.
// It is idempotent and safe to call concurrently.
func (p *Pool[H]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	for {
		select {
		case <-p.idle:
		default:
			return
		}
	}
}

// Capacity returns the current target capacity.
func (p *Pool[H]) Capacity() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.capacity
}

// Idle returns the number of handles currently available for checkout.
func (p *Pool[H]) Idle() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.idle)
}

//endregion
