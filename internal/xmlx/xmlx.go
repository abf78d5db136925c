// Package xmlx contains XML extensions built on top of etree.
//
// We use [*etree.Element] as the in-memory representation of an API
// document. This package parses documents with explicit settings, serializes
// them, optionally pretty-printing a copy, and compares trees.
package xmlx

import (
	"errors"
	"io"

	"github.com/beevik/etree"
	"github.com/osc-go/obsapi/internal/fsx"
)

// IndentSpaces is the number of spaces per level used when pretty-printing.
const IndentSpaces = 2

// ErrNoRoot indicates that the parsed document has no root element.
var ErrNoRoot = errors.New("xmlx: document has no root element")

// ParseSettings contains the parser configuration. The zero value
// parses strictly and only knows about the predefined XML entities.
type ParseSettings struct {
	// Permissive OPTIONALLY disables strict parsing, which, e.g., allows
	// unknown entities to pass through as literal text.
	Permissive bool

	// Entity OPTIONALLY maps additional entity names to their value.
	Entity map[string]string

	// PreserveCData OPTIONALLY keeps CDATA sections as such instead of
	// turning them into regular character data.
	PreserveCData bool
}

// readSettings converts the settings to their etree representation.
func (s *ParseSettings) readSettings() etree.ReadSettings {
	rs := etree.ReadSettings{}
	if s != nil {
		rs.Permissive = s.Permissive
		rs.Entity = s.Entity
		rs.PreserveCData = s.PreserveCData
	}
	return rs
}

// Parse reads an XML document from r and returns its root element. A nil
// settings is equivalent to the zero [ParseSettings].
func Parse(r io.Reader, settings *ParseSettings) (*etree.Element, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = settings.readSettings()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}

// ParseFile is like [Parse] but reads from the regular file at pathname.
func ParseFile(pathname string, settings *ParseSettings) (*etree.Element, error) {
	file, err := fsx.OpenFile(pathname)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file, settings)
}

// Indented returns a deep copy of node with indentation whitespace inserted
// between elements. The node itself is not modified. Only missing or
// whitespace-only text is replaced, so leaves and mixed content keep
// their character data.
func Indented(node *etree.Element) *etree.Element {
	root := node.Copy()
	indent(root, 0)
	return root
}

// Write serializes a copy of node to w, pretty-printing the copy when indent
// is true. The output has no XML declaration.
func Write(w io.Writer, node *etree.Element, indent bool) error {
	var root *etree.Element
	if indent {
		root = Indented(node)
	} else {
		root = node.Copy()
	}
	doc := etree.NewDocument()
	doc.SetRoot(root)
	_, err := doc.WriteTo(w)
	return err
}
