package svgdom

import "strconv"

// IndexedPath renders n's position in the tree as an indexed path like
// "/svg[0]/defs[0]/path[1]": each segment is the element's tag and its
// zero-based position among ALL of its parent's children (not just
// same-tag siblings). The nano validator (package validate) compares
// these paths against the fixed schema in the spec.
func IndexedPath(n *Node) string {
	var segs []string
	for cur := n; cur != nil; cur = cur.Parent {
		idx := 0
		if cur.Parent != nil {
			idx = cur.Parent.IndexOfChild(cur)
		}
		segs = append([]string{cur.Tag + "[" + strconv.Itoa(idx) + "]"}, segs...)
	}
	out := ""
	for _, s := range segs {
		out += "/" + s
	}
	return out
}
