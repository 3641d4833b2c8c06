package safexml

import (
	"encoding/xml"
	"io"
)

// Encoder serializes a Document tree back to XML with proper escaping
// of character data and attribute values. It is the write-side
// counterpart of DocumentBuilder and, like every handle in this
// package, not safe for concurrent use.
type Encoder struct {
	enc *xml.Encoder
}

// NewEncoder constructs an encoder writing to w.
func NewEncoder(w io.Writer) (*Encoder, error) {
	if w == nil {
		return nil, ErrNilOutput
	}
	return &Encoder{enc: xml.NewEncoder(w)}, nil
}

// Indent sets pretty-printing. Passing empty strings restores compact
// output.
func (e *Encoder) Indent(prefix, indent string) {
	e.enc.Indent(prefix, indent)
}

// Encode writes doc to the underlying writer and flushes it.
func (e *Encoder) Encode(doc *Document) error {
	if doc == nil || doc.Root == nil {
		return ErrNoRootElement
	}
	if err := e.encodeNode(doc.Root); err != nil {
		return err
	}
	return e.enc.Flush()
}

func (e *Encoder) encodeNode(n *Node) error {
	start := xml.StartElement{Name: n.Name, Attr: n.Attr}
	if err := e.enc.EncodeToken(start); err != nil {
		return err
	}
	if n.Text != "" {
		if err := e.enc.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	for _, child := range n.Children {
		if err := e.encodeNode(child); err != nil {
			return err
		}
	}
	return e.enc.EncodeToken(xml.EndElement{Name: n.Name})
}
