package safexml

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// TestParser_Token_TestSuite executes the test suite for the Token
// function of the Parser type.
func TestParser_Token_TestSuite(t *testing.T) {
	suite.Run(t, new(Parser_Token_TestSuite))
}

// Parser_Token_TestSuite tests hardened tokenizing.
type Parser_Token_TestSuite struct {
	suite.Suite

	parser *Parser
}

// SetupTest initializes a parser with default limits.
func (s *Parser_Token_TestSuite) SetupTest() {
	var err error
	s.parser, err = NewParser()
	s.Require().NoError(err)
}

// drain consumes tokens until an error and returns it.
func (s *Parser_Token_TestSuite) drain(doc string, opts ...Option) error {
	parser := s.parser
	if len(opts) > 0 {
		var err error
		parser, err = NewParser(opts...)
		s.Require().NoError(err)
	}
	s.Require().NoError(parser.Bind(strings.NewReader(doc)))
	for {
		if _, err := parser.Token(); err != nil {
			return err
		}
	}
}

// TestParser_Token_StreamsWellFormedDocument tests that a well-formed
// document tokenizes to completion.
func (s *Parser_Token_TestSuite) TestParser_Token_StreamsWellFormedDocument() {
	err := s.drain(`<order id="1"><item qty="2">bolt</item><item qty="5">nut</item></order>`)
	s.Require().ErrorIs(err, io.EOF)
}

// TestParser_Token_FailsWithoutBoundInput tests that tokenizing before
// Bind fails with ErrNoInput.
func (s *Parser_Token_TestSuite) TestParser_Token_FailsWithoutBoundInput() {
	_, err := s.parser.Token()
	s.Require().ErrorIs(err, ErrNoInput)
}

// TestParser_Token_EnforcesDepthLimit tests that nesting beyond the
// configured depth aborts the parse.
func (s *Parser_Token_TestSuite) TestParser_Token_EnforcesDepthLimit() {
	err := s.drain(`<a><b><c><d/></c></b></a>`, WithMaxDepth(3))
	s.Require().ErrorIs(err, ErrLimitExceeded)
}

// TestParser_Token_EnforcesAttrLimit tests that an element with too many
// attributes aborts the parse.
func (s *Parser_Token_TestSuite) TestParser_Token_EnforcesAttrLimit() {
	err := s.drain(`<a p="1" q="2" r="3"/>`, WithMaxAttrs(2))
	s.Require().ErrorIs(err, ErrLimitExceeded)
}

// TestParser_Token_EnforcesTokenSizeLimit tests that oversized character
// data aborts the parse.
func (s *Parser_Token_TestSuite) TestParser_Token_EnforcesTokenSizeLimit() {
	err := s.drain(`<a>`+strings.Repeat("x", 64)+`</a>`, WithMaxTokenSize(16))
	s.Require().ErrorIs(err, ErrLimitExceeded)
}

// TestParser_Token_EnforcesTokenCountLimit tests that a document with
// too many tokens aborts the parse.
func (s *Parser_Token_TestSuite) TestParser_Token_EnforcesTokenCountLimit() {
	err := s.drain(`<a><b/><b/><b/><b/><b/></a>`, WithMaxTokens(4))
	s.Require().ErrorIs(err, ErrLimitExceeded)
}

// TestParser_Token_RefusesDoctype tests that DTDs are rejected outright:
// they are where entity definitions live.
func (s *Parser_Token_TestSuite) TestParser_Token_RefusesDoctype() {
	err := s.drain(`<!DOCTYPE a [<!ENTITY bomb "x">]><a>&bomb;</a>`)
	s.Require().ErrorIs(err, ErrDTDRefused)
}

// TestParser_Token_RejectsUnknownEntityReferences tests that references
// beyond the predefined XML entities fail the parse.
func (s *Parser_Token_TestSuite) TestParser_Token_RejectsUnknownEntityReferences() {
	err := s.drain(`<a>&external;</a>`)
	s.Require().Error(err)
	s.Require().NotErrorIs(err, io.EOF)
}

// TestParser_Token_AllowsPredefinedEntities tests that the five
// predefined entities still expand normally.
func (s *Parser_Token_TestSuite) TestParser_Token_AllowsPredefinedEntities() {
	s.Require().NoError(s.parser.Bind(strings.NewReader(`<a>&lt;&amp;&gt;</a>`)))

	var text string
	for {
		tok, err := s.parser.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		s.Require().NoError(err)
		if cd, ok := tok.(xml.CharData); ok {
			text += string(cd)
		}
	}
	s.Require().Equal("<&>", text)
}

// TestParser_Token_RefusesNonUTF8Charset tests that declaring a non-UTF-8
// encoding fails instead of triggering charset conversion.
func (s *Parser_Token_TestSuite) TestParser_Token_RefusesNonUTF8Charset() {
	err := s.drain(`<?xml version="1.0" encoding="ISO-8859-1"?><a/>`)
	s.Require().Error(err)
	s.Require().NotErrorIs(err, io.EOF)
	s.Require().Contains(err.Error(), "charset")
}

// TestParser_Reset_TestSuite executes the test suite for the Reset
// function of the Parser type.
func TestParser_Reset_TestSuite(t *testing.T) {
	suite.Run(t, new(Parser_Reset_TestSuite))
}

// Parser_Reset_TestSuite tests the reusable-baseline contract the pool
// relies on.
type Parser_Reset_TestSuite struct {
	suite.Suite

	parser *Parser
}

// SetupTest initializes a parser with a tight token budget so counter
// reuse is observable.
func (s *Parser_Reset_TestSuite) SetupTest() {
	var err error
	s.parser, err = NewParser(WithMaxTokens(8))
	s.Require().NoError(err)
}

// TestParser_Reset_DropsBoundInput tests that after Reset the parser is
// back to its unbound baseline.
func (s *Parser_Reset_TestSuite) TestParser_Reset_DropsBoundInput() {
	s.Require().NoError(s.parser.Bind(strings.NewReader(`<a/>`)))
	s.Require().NoError(s.parser.Reset())

	_, err := s.parser.Token()
	s.Require().ErrorIs(err, ErrNoInput)
}

// TestParser_Reset_ZeroesCountersForNextBorrower tests that the token
// budget of one borrow does not bleed into the next: two documents that
// each fit the budget both parse after an intervening Reset.
func (s *Parser_Reset_TestSuite) TestParser_Reset_ZeroesCountersForNextBorrower() {
	for i := 0; i < 2; i++ {
		s.Require().NoError(s.parser.Bind(strings.NewReader(`<a><b/></a>`)))
		for {
			_, err := s.parser.Token()
			if errors.Is(err, io.EOF) {
				break
			}
			s.Require().NoError(err)
		}
		s.Require().NoError(s.parser.Reset())
	}
}

// TestParser_New_TestSuite executes the test suite for the NewParser
// function.
func TestParser_New_TestSuite(t *testing.T) {
	suite.Run(t, new(Parser_New_TestSuite))
}

// Parser_New_TestSuite tests parser construction.
type Parser_New_TestSuite struct {
	suite.Suite
}

// TestParser_New_RejectsNonPositiveBounds tests each limit option.
func (s *Parser_New_TestSuite) TestParser_New_RejectsNonPositiveBounds() {
	for _, opt := range []Option{
		WithMaxDepth(0),
		WithMaxAttrs(-1),
		WithMaxTokenSize(0),
		WithMaxTokens(-5),
	} {
		_, err := NewParser(opt)
		s.Require().ErrorIs(err, ErrInvalidLimit)
	}
}

// TestParser_New_RejectsNilBindInput tests that Bind refuses a nil
// reader.
func (s *Parser_New_TestSuite) TestParser_New_RejectsNilBindInput() {
	parser, err := NewParser()
	s.Require().NoError(err)
	s.Require().ErrorIs(parser.Bind(nil), ErrNilInput)
}
