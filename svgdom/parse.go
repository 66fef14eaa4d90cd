package svgdom

import (
	"encoding/xml"
	"io"
	"strings"
)

const (
	svgNS   = "http://www.w3.org/2000/svg"
	xlinkNS = "http://www.w3.org/1999/xlink"
)

// ParseError reports a malformed document.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "svgdom: parse error: " + e.Reason
}

// Parse reads an SVG document from r and returns the root `<svg>` node.
// Elements in the SVG namespace (bound, declared or not, to the `svg`
// prefix by convention) and the `xlink` namespace are both recognized;
// xlink:href attributes are normalized to the literal name "xlink:href"
// regardless of whether the input declared the xlink namespace, so that
// resolve_use can find them without the caller needing to know whether
// the declaration was present. If the input declared `xlink` but nothing
// in the tree uses it, Parse simply never emits the declaration back out
// (that bookkeeping lives in Serialize, not here).
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	var stack []*Node
	var root *Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Reason: err.Error()}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Tag: localName(t.Name)}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue // namespace declarations are written by Serialize
				}
				n.Attrs = append(n.Attrs, Attr{Name: attrName(a.Name), Value: a.Value})
			}
			if len(stack) > 0 {
				stack[len(stack)-1].AppendChild(n)
			} else {
				root = n
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, &ParseError{Reason: "unbalanced end element"}
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				text := strings.TrimSpace(string(t))
				if text != "" {
					stack[len(stack)-1].Text += text
				}
			}
		}
	}
	if root == nil {
		return nil, &ParseError{Reason: "no root element"}
	}
	return root, nil
}

func localName(n xml.Name) string {
	return n.Local
}

func attrName(n xml.Name) string {
	switch n.Space {
	case "", svgNS:
		return n.Local
	case xlinkNS, "xlink":
		return "xlink:" + n.Local
	default:
		if n.Space != "" {
			return n.Space + ":" + n.Local
		}
		return n.Local
	}
}

// String is a convenience for reading from a string rather than an
// io.Reader.
func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}
