// Package pool defines the public surface of a bounded, concurrency-safe
// handle pool: a fixed-capacity set of reusable, non-thread-safe objects
// shared across many concurrent callers, with safe at-runtime resizing
// and a blocking acquisition protocol that stays responsive to
// cancellation.
//
// The pool amortizes the cost of constructing expensive handles (stream
// parsers are the motivating case; see pkg/safexml). It is generic over
// how one handle is constructed — a Factory — and over how a returned
// handle is brought back to baseline — a ResetFunc — and does not need
// to know what a handle is used for.
//
// # Checkout discipline
//
// Between Acquire and Release a handle is owned exclusively by one
// caller. The pool enforces this through the checkout protocol, not
// through the handle's type: two goroutines must never share a borrowed
// handle, and a handle must not be used after it has been released.
// Always pair every successful Acquire with a Release:
//
//	h, err := p.Acquire(ctx)
//	if err != nil {
//	    return err
//	}
//	defer p.Release(h)
//
// # Resizing
//
// Resize is a stop-the-world operation relative to pool traffic: it
// waits for in-flight Acquire/Release attempts to finish, blocks new
// ones, and rebuilds the idle collection from scratch at the new
// capacity. Handles checked out during a shrink are not revoked; they
// are simply discarded on Release if the smaller pool has no room for
// them. This is how a shrink takes effect without coordination with
// in-flight borrowers.
//
// Implementations live in internal/pool and are constructed through
// pkg/factory.
package pool
