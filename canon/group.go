package canon

import (
	"strconv"
	"strings"

	"github.com/ulgerang/nanosvg/pathdata"
	"github.com/ulgerang/nanosvg/svgdom"
)

var paintInheritAttrs = []string{
	"fill", "stroke", "stroke-width", "stroke-linecap",
	"stroke-linejoin", "stroke-miterlimit", "stroke-dasharray",
}

var multiplyInheritAttrs = []string{"fill-opacity", "opacity"}

// Ungroup replaces every <g> with its children, in document order, after
// pushing down the group's attributes per the table in §4.5: paint
// attributes win on the child if already set, opacity-like attributes
// multiply, clip-path concatenates as a comma list for a later pass to
// resolve (see ApplyClipPaths), and any other attribute on the group is
// an InheritError — including `transform`, which this pipeline expects
// apply_transforms to have already stripped (see ApplyTransforms).
func Ungroup(doc *svgdom.Doc) error {
	if doc.State() != svgdom.Clean {
		if err := doc.Materialize(); err != nil {
			return err
		}
	}
	for {
		groups := svgdom.FindAll(doc.Root, "g")
		if len(groups) == 0 {
			return nil
		}
		if err := ungroupOne(groups[0]); err != nil {
			return err
		}
	}
}

func ungroupOne(g *svgdom.Node) error {
	for _, a := range g.Attrs {
		if !isGroupInheritable(a.Name) {
			return &InheritError{XPath: svgdom.IndexedPath(g), Attr: a.Name}
		}
	}

	children := append([]*svgdom.Node(nil), g.Children...)
	for _, child := range children {
		inheritPaint(g, child)
	}

	anchor := g
	for _, child := range children {
		svgdom.AddNext(anchor, child)
		anchor = child
	}
	svgdom.Remove(g)
	return nil
}

func inheritPaint(g, child *svgdom.Node) {
	for _, name := range paintInheritAttrs {
		if gv, ok := g.Attr(name); ok {
			if _, has := child.Attr(name); !has {
				child.SetAttr(name, gv)
			}
		}
	}
	for _, name := range multiplyInheritAttrs {
		gv := parseOpacityOr1(g, name)
		cv := parseOpacityOr1(child, name)
		if gv != 1 || cv != 1 {
			child.SetAttr(name, pathdata.FormatNumber(gv*cv))
		}
	}
	if gv, ok := g.Attr("clip-path"); ok && strings.TrimSpace(gv) != "" {
		if cv, ok := child.Attr("clip-path"); ok && strings.TrimSpace(cv) != "" {
			child.SetAttr("clip-path", cv+","+gv)
		} else {
			child.SetAttr("clip-path", gv)
		}
	}
}

func parseOpacityOr1(n *svgdom.Node, name string) float64 {
	v, ok := n.Attr(name)
	if !ok {
		return 1
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 1
	}
	return f
}
