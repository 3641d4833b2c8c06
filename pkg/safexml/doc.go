// Package safexml provides hardened XML processing handles: a streaming
// parser, a document builder and an encoder, all configured so that a
// hostile document cannot make them fetch external content or consume
// unbounded resources.
//
// Hardening is two things here. First, refusal: DTDs are rejected
// outright (they are where entity definitions live), entity references
// beyond the five predefined XML entities fail the parse, and charset
// conversion away from UTF-8 is disabled. Second, limits: element
// nesting depth, attributes per element, single-token size and total
// token count are all bounded, with defaults that comfortably fit
// legitimate documents. Crossing a bound aborts the parse with an error
// wrapping ErrLimitExceeded.
//
// Handles are pure configuration plus per-input state; constructing one
// touches no shared mutable state, so construction is safe to call from
// any goroutine. Using a handle is not: each handle belongs to exactly
// one goroutine at a time. Parser is designed to be pooled for exactly
// that reason — construction is the expensive, fallible part, and
// Reset returns a used parser to its baseline so the next borrower
// starts clean. See pkg/factory.CreateParserPool for the pooled
// arrangement.
//
// A typical borrowed parse:
//
//	h, err := parsers.Acquire(ctx)
//	if err != nil {
//	    return err
//	}
//	defer parsers.Release(h)
//
//	if err := h.Bind(input); err != nil {
//	    return err
//	}
//	for {
//	    tok, err := h.Token()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // handle tok
//	}
package safexml
