package safexml

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Parser is a hardened streaming XML parser: the expensively configured,
// internally stateful handle managed by the pool. It refuses DTDs,
// unknown entity references and non-UTF-8 charset conversion, and it
// enforces the configured parse limits while tokenizing.
//
// A Parser is not safe for concurrent use. Borrow one from a pool
// (pkg/factory.CreateParserPool), Bind an input, consume tokens, and
// release it; the pool resets it between borrowers.
type Parser struct {

	// limits are the parse bounds fixed at construction time.
	limits limits

	// dec is the decoder for the currently bound input, nil between
	// borrows.
	dec *xml.Decoder

	// depth is the current element nesting depth of the bound input.
	depth int

	// tokens is the number of tokens read from the bound input so far.
	tokens int
}

// NewParser constructs a hardened stream parser. It is the pool's
// handle factory: safe to call from multiple goroutines, reading only
// the package defaults. A misconfiguration (a non-positive limit) fails
// construction and is propagated, never swallowed.
func NewParser(opts ...Option) (*Parser, error) {

	options := defaultHandleOptions()
	for idx := range opts {
		opts[idx](options)
	}

	if err := options.validate(); err != nil {
		return nil, fmt.Errorf("configuring stream parser: %w", err)
	}

	return &Parser{limits: options.limits}, nil
}

// Bind attaches an input document for the duration of one borrow,
// replacing any previously bound input and zeroing the parse counters.
func (p *Parser) Bind(r io.Reader) error {
	if r == nil {
		return ErrNilInput
	}

	dec := xml.NewDecoder(r)
	dec.Strict = true
	// Predefined XML entities only; any other reference fails the parse.
	dec.Entity = nil
	dec.CharsetReader = refuseCharset

	p.dec = dec
	p.depth = 0
	p.tokens = 0
	return nil
}

// Token returns the next XML token from the bound input, enforcing the
// configured limits. It returns io.EOF at the end of the document,
// ErrNoInput if no input is bound, ErrDTDRefused on any directive, and
// an error wrapping ErrLimitExceeded when a bound is crossed. Once
// Token has returned an error the bound input should be considered
// unusable.
func (p *Parser) Token() (xml.Token, error) {
	if p.dec == nil {
		return nil, ErrNoInput
	}

	tok, err := p.dec.Token()
	if err != nil {
		return nil, err
	}

	p.tokens++
	if p.tokens > p.limits.maxTokens {
		return nil, fmt.Errorf("%w: more than %d tokens", ErrLimitExceeded, p.limits.maxTokens)
	}

	switch t := tok.(type) {
	case xml.StartElement:
		p.depth++
		if p.depth > p.limits.maxDepth {
			return nil, fmt.Errorf("%w: element depth exceeds %d", ErrLimitExceeded, p.limits.maxDepth)
		}
		if len(t.Attr) > p.limits.maxAttrs {
			return nil, fmt.Errorf("%w: %d attributes on a single element exceeds %d", ErrLimitExceeded, len(t.Attr), p.limits.maxAttrs)
		}
		for _, attr := range t.Attr {
			if len(attr.Value) > p.limits.maxTokenSize {
				return nil, fmt.Errorf("%w: attribute value exceeds %d bytes", ErrLimitExceeded, p.limits.maxTokenSize)
			}
		}

	case xml.EndElement:
		p.depth--

	case xml.CharData:
		if len(t) > p.limits.maxTokenSize {
			return nil, fmt.Errorf("%w: character data exceeds %d bytes", ErrLimitExceeded, p.limits.maxTokenSize)
		}

	case xml.Comment:
		if len(t) > p.limits.maxTokenSize {
			return nil, fmt.Errorf("%w: comment exceeds %d bytes", ErrLimitExceeded, p.limits.maxTokenSize)
		}

	case xml.Directive:
		// DOCTYPE and friends carry entity definitions; refuse outright.
		return nil, ErrDTDRefused
	}

	return tok, nil
}

// Depth returns the element nesting depth at the last returned token.
func (p *Parser) Depth() int {
	return p.depth
}

// Reset returns the parser to its reusable baseline, dropping the bound
// input and zeroing the parse counters. It is the pool's reset
// operation and never fails for this handle type.
func (p *Parser) Reset() error {
	p.dec = nil
	p.depth = 0
	p.tokens = 0
	return nil
}

// refuseCharset rejects any charset conversion request. Hardened
// handles accept UTF-8 input only.
func refuseCharset(charset string, input io.Reader) (io.Reader, error) {
	return nil, fmt.Errorf("%w: %q", ErrCharsetRefused, charset)
}
