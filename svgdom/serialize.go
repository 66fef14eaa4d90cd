package svgdom

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Serialize renders root back to XML bytes. It declares the SVG namespace
// on the root element, and declares the xlink namespace there too, but
// only if some attribute in the tree is actually named "xlink:href" — an
// unused xlink declaration is never emitted, completing the repair begun
// at parse time.
func Serialize(root *Node) []byte {
	usesXlink := false
	Walk(root, func(n *Node) {
		if _, ok := n.Attr("xlink:href"); ok {
			usesXlink = true
		}
	})

	var buf bytes.Buffer
	writeNode(&buf, root, true, usesXlink)
	return buf.Bytes()
}

func writeNode(buf *bytes.Buffer, n *Node, isRoot, usesXlink bool) {
	fmt.Fprintf(buf, "<%s", n.Tag)
	if isRoot {
		fmt.Fprintf(buf, " xmlns=%q", svgNS)
		if usesXlink {
			fmt.Fprintf(buf, " xmlns:xlink=%q", xlinkNS)
		}
	}
	for _, a := range n.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Name)
		buf.WriteString(`="`)
		xml.EscapeText(buf, []byte(a.Value))
		buf.WriteByte('"')
	}
	if len(n.Children) == 0 && n.Text == "" {
		buf.WriteString("/>")
		return
	}
	buf.WriteByte('>')
	if n.Text != "" {
		xml.EscapeText(buf, []byte(n.Text))
	}
	for _, c := range n.Children {
		writeNode(buf, c, false, usesXlink)
	}
	fmt.Fprintf(buf, "</%s>", n.Tag)
}
