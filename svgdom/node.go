// Package svgdom is the SVG tree façade: a namespace-aware element tree
// with ordered attributes and parent pointers, plus an explicit
// Clean/Dirty shape-cache state machine that keeps a materialized list of
// (element, shape) pairs in sync with the tree.
package svgdom

// Attr is a single ordered (name, value) pair. Name carries the `xlink:`
// prefix verbatim when present; namespace resolution beyond svg/xlink is
// not modeled, matching the restricted vocabulary this façade serves.
type Attr struct {
	Name  string
	Value string
}

// Node is one element in the tree. Children, Attrs and Parent are the
// façade's only mutable surface; callers never hold a Node by value.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	Parent   *Node
	Text     string
}

// NewNode returns a detached element with the given tag.
func NewNode(tag string) *Node {
	return &Node{Tag: tag}
}

// Attr returns the value of attribute name and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the value of attribute name, or def if absent.
func (n *Node) AttrOr(name, def string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	return def
}

// SetAttr sets attribute name to value, appending it if not already
// present, preserving the position of an existing attribute.
func (n *Node) SetAttr(name, value string) {
	for i, a := range n.Attrs {
		if a.Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{name, value})
}

// RemoveAttr deletes attribute name if present.
func (n *Node) RemoveAttr(name string) {
	for i, a := range n.Attrs {
		if a.Name == name {
			n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			return
		}
	}
}

// AttrMap returns the attributes as a plain map, for callers (like the
// shape package) that only need lookup, not order.
func (n *Node) AttrMap() map[string]string {
	m := make(map[string]string, len(n.Attrs))
	for _, a := range n.Attrs {
		m[a.Name] = a.Value
	}
	return m
}

// AppendChild adds child as the last child of n, setting its parent.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// InsertChild inserts child at position i.
func (n *Node) InsertChild(i int, child *Node) {
	child.Parent = n
	n.Children = append(n.Children, nil)
	copy(n.Children[i+1:], n.Children[i:])
	n.Children[i] = child
}

// IndexOfChild returns the index of child in n.Children, or -1.
func (n *Node) IndexOfChild(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// Replace swaps out with the contents of in at out's position among its
// parent's children, preserving document order.
func Replace(out, in *Node) {
	p := out.Parent
	if p == nil {
		return
	}
	i := p.IndexOfChild(out)
	if i < 0 {
		return
	}
	in.Parent = p
	p.Children[i] = in
}

// AddNext inserts sibling immediately after n among n's parent's children.
func AddNext(n, sibling *Node) {
	p := n.Parent
	if p == nil {
		return
	}
	i := p.IndexOfChild(n)
	if i < 0 {
		return
	}
	p.InsertChild(i+1, sibling)
}

// Remove detaches n from its parent.
func Remove(n *Node) {
	p := n.Parent
	if p == nil {
		return
	}
	i := p.IndexOfChild(n)
	if i < 0 {
		return
	}
	p.Children = append(p.Children[:i], p.Children[i+1:]...)
	n.Parent = nil
}

// DeepCopy returns a detached, recursive copy of n.
func DeepCopy(n *Node) *Node {
	cp := &Node{Tag: n.Tag, Text: n.Text}
	cp.Attrs = append([]Attr(nil), n.Attrs...)
	for _, c := range n.Children {
		cp.AppendChild(DeepCopy(c))
	}
	return cp
}

// Walk calls fn for n and every descendant, in document order (pre-order).
func Walk(n *Node, fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// FindAll returns every descendant of n (inclusive) whose tag is one of
// tags, in document order.
func FindAll(n *Node, tags ...string) []*Node {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	var out []*Node
	Walk(n, func(m *Node) {
		if set[m.Tag] {
			out = append(out, m)
		}
	})
	return out
}
