package safexml

import (
	"encoding/xml"
	"errors"
	"io"
)

// Node is one element of a parsed document tree.
type Node struct {

	// Name is the element's namespace-resolved name.
	Name xml.Name

	// Attr holds the element's attributes in document order.
	Attr []xml.Attr

	// Text is the concatenated character data directly inside this
	// element, excluding text inside child elements.
	Text string

	// Children holds the child elements in document order.
	Children []*Node
}

// Document is a fully parsed XML document.
type Document struct {
	Root *Node
}

// DocumentBuilder parses whole documents into a Document tree under the
// same hardened configuration and limits as the stream parser. Like the
// stream parser it is not safe for concurrent use.
type DocumentBuilder struct {
	parser *Parser
}

// NewDocumentBuilder constructs a hardened document builder. A
// misconfiguration fails construction and is propagated.
func NewDocumentBuilder(opts ...Option) (*DocumentBuilder, error) {
	parser, err := NewParser(opts...)
	if err != nil {
		return nil, err
	}
	return &DocumentBuilder{parser: parser}, nil
}

// Parse reads one whole document from r and returns its tree. Exactly
// one root element is required. The underlying parser is reset before
// Parse returns, so the builder can be reused for the next document.
func (b *DocumentBuilder) Parse(r io.Reader) (*Document, error) {
	if err := b.parser.Bind(r); err != nil {
		return nil, err
	}
	defer b.parser.Reset()

	var root *Node
	var stack []*Node

	for {
		tok, err := b.parser.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{
				Name: t.Name,
				Attr: append([]xml.Attr(nil), t.Attr...),
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, ErrMultipleRoots
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, ErrNoRootElement
	}
	return &Document{Root: root}, nil
}
