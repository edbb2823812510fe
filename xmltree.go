package kanjivg

import (
	"encoding/xml"
	"errors"
	"io"

	"golang.org/x/net/html/charset"
)

// kvgNamespace is the attribute namespace the diagrams use for their
// structural metadata (element, type, radical, position).
const kvgNamespace = "http://kanjivg.tagaini.net"

// xmlNode is one element of the decoded document tree. Only elements and
// their character data survive decoding; comments, directives, and
// processing instructions are dropped.
type xmlNode struct {
	name     string // local element name
	attrs    []xml.Attr
	children []*xmlNode
	text     string // concatenated character data directly inside this element
}

// attr returns the value of the named attribute, matching by local name.
// Attributes in the kvg namespace are accepted alongside plain ones, so
// "element" finds kvg:element whether or not the namespace declaration was
// resolved by the decoder.
func (n *xmlNode) attr(local string) string {
	for _, a := range n.attrs {
		if a.Name.Local != local {
			continue
		}
		switch a.Name.Space {
		case "", "kvg", kvgNamespace:
			return a.Value
		}
	}
	return ""
}

// walk visits n and every descendant in document order.
func (n *xmlNode) walk(visit func(*xmlNode)) {
	visit(n)
	for _, c := range n.children {
		c.walk(visit)
	}
}

// find returns the first node in document order satisfying pred, or nil.
func (n *xmlNode) find(pred func(*xmlNode) bool) *xmlNode {
	var found *xmlNode
	n.walk(func(m *xmlNode) {
		if found == nil && pred(m) {
			found = m
		}
	})
	return found
}

// decodeTree parses an XML document into an xmlNode tree. Decoding is
// charset-aware and lenient: unknown entities and unclosed tags do not
// abort the walk.
func decodeTree(r io.Reader) (*xmlNode, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity
	dec.CharsetReader = charset.NewReaderLabel

	var root *xmlNode
	var stack []*xmlNode
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &xmlNode{
				name:  t.Name.Local,
				attrs: append([]xml.Attr(nil), t.Attr...),
			}
			if len(stack) == 0 {
				if root == nil {
					root = n
				}
			} else {
				p := stack[len(stack)-1]
				p.children = append(p.children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += string(t)
			}
		}
	}
	if root == nil {
		return nil, errors.New("no root element")
	}
	return root, nil
}
