// Package inflate builds view trees from XML documents.
//
// Element names map to view creators through a registry; attributes are
// applied through the attribute system of the created view, so any
// attribute a view registers (or forwards) is addressable from XML.
package inflate

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lattice-ui/lattice/internal/logging"
	"github.com/lattice-ui/lattice/view"
)

// Creator produces a fresh view for an XML element name.
type Creator func() *view.View

var registry = map[string]Creator{}

func init() {
	Register("View", func() *view.View { return view.NewView() })
	Register("Box", func() *view.View { return view.NewBox(view.AxisRow) })
	Register("Padding", func() *view.View { return view.NewPadding() })
	Register("Label", func() *view.View { return view.NewLabel("").View })
}

// Register binds an XML element name to a view creator, replacing any
// previous binding. Not safe for concurrent use; register at startup.
func Register(name string, creator Creator) {
	registry[name] = creator
}

// fatalf logs and panics. Malformed documents are authoring errors, not
// runtime conditions.
func fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logging.Logger().Error(msg)
	panic("lattice: " + msg)
}

// element is the parsed form of one XML element.
type element struct {
	name     string
	attrs    []xml.Attr
	children []*element
}

// parse reads the document and returns its single root element.
func parse(doc string) *element {
	dec := xml.NewDecoder(strings.NewReader(doc))

	var root *element
	var stack []*element
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			fatalf("malformed XML document: %v", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{name: t.Name.Local, attrs: t.Attr}
			if len(stack) == 0 {
				if root != nil {
					fatalf("XML document has more than one root element")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				fatalf("unexpected text content %q; use the text attribute", strings.TrimSpace(string(t)))
			}
		}
	}

	if root == nil {
		fatalf("XML document has no root element")
	}
	return root
}

// inflateElement creates the view for one element, applies its attributes
// and recursively inflates its children.
func inflateElement(el *element) *view.View {
	creator, ok := registry[el.name]
	if !ok {
		fatalf("unknown element <%s>", el.name)
	}
	v := creator()

	for _, attr := range el.attrs {
		// Namespace declarations are document plumbing, not view state.
		if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
			continue
		}
		if !v.ApplyAttribute(attr.Name.Local, attr.Value) {
			fatalf("unknown attribute %q on <%s>", attr.Name.Local, el.name)
		}
	}

	for _, child := range el.children {
		v.AddView(inflateElement(child))
	}
	return v
}

// FromString inflates a view tree from an XML document held in memory.
// Malformed documents, unknown elements and unknown attributes are fatal.
func FromString(doc string) *view.View {
	return inflateElement(parse(doc))
}

// FromFile inflates a view tree from an XML file on disk.
func FromFile(path string) *view.View {
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("cannot read layout file: %v", err)
	}
	return FromString(string(data))
}
