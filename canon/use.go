package canon

import (
	"strconv"
	"strings"

	"github.com/ulgerang/nanosvg/affine"
	"github.com/ulgerang/nanosvg/pathdata"
	"github.com/ulgerang/nanosvg/shape"
	"github.com/ulgerang/nanosvg/svgdom"
)

// groupInheritableAttrs are the attribute names ungroup (and, by the same
// rule, use-expansion's synthetic wrapper <g>) knows how to push down
// onto a single child.
var groupInheritableAttrs = []string{
	"fill", "stroke", "stroke-width", "stroke-linecap", "stroke-linejoin",
	"stroke-miterlimit", "stroke-dasharray", "fill-opacity", "opacity", "clip-path",
}

func isGroupInheritable(name string) bool {
	for _, n := range groupInheritableAttrs {
		if n == name {
			return true
		}
	}
	return false
}

// ResolveUse expands every <use> element in doc (step 2): deep-copies its
// referent, bakes the <use>'s own transform and translate(x,y) into the
// copy's geometry, wraps the copy in a synthetic <g> carrying any
// inheritable attributes the <use> itself carried (only when there are
// any), and replaces the <use> with it. Only fragment references (`#id` or `url(#id)`) are
// supported, ahead of the teacher-grounded href/xlink:href fallback
// (see SPEC_FULL.md §12).
func ResolveUse(doc *svgdom.Doc) error {
	for {
		uses := svgdom.FindAll(doc.Root, "use")
		if len(uses) == 0 {
			return nil
		}
		if err := resolveOneUse(doc, uses[0]); err != nil {
			return err
		}
	}
}

func resolveOneUse(doc *svgdom.Doc, u *svgdom.Node) error {
	href, ok := u.Attr("href")
	if !ok {
		href, ok = u.Attr("xlink:href")
	}
	if !ok {
		return &svgdom.ResolutionError{Ref: "", Reason: "<use> has no href or xlink:href"}
	}
	id, ok := fragmentID(href)
	if !ok {
		return &svgdom.ResolutionError{Ref: href, Reason: "<use> only supports #fragment references"}
	}
	referent, err := findByID(doc.Root, id)
	if err != nil {
		return err
	}
	copy := svgdom.DeepCopy(referent)
	copy.RemoveAttr("id")

	x, _ := parseFloatAttr(u, "x", 0)
	y, _ := parseFloatAttr(u, "y", 0)

	var carried []svgdom.Attr
	for _, a := range u.Attrs {
		if isGroupInheritable(a.Name) {
			carried = append(carried, a)
		}
	}
	ownTransform, hasTransform := u.Attr("transform")

	// x/y/transform are baked into the copy's own geometry rather than
	// carried as a `transform` attribute on the synthetic wrapper: Ungroup
	// treats a surviving `transform` on a <g> as an unhandled attribute
	// (InheritError), so a <use> offset must never reach it as one.
	t := affine.Identity
	if hasTransform && strings.TrimSpace(ownTransform) != "" {
		parsed, err := affine.FromString(ownTransform)
		if err != nil {
			return err
		}
		t = parsed
	}
	if x != 0 || y != 0 {
		t = t.Concat(affine.Translate(x, y))
	}
	if t != affine.Identity {
		if err := bakeTransform(copy, t); err != nil {
			return err
		}
	}

	if len(carried) == 0 {
		svgdom.Replace(u, copy)
		return nil
	}

	g := svgdom.NewNode("g")
	for _, a := range carried {
		g.SetAttr(a.Name, a.Value)
	}
	g.AppendChild(copy)
	svgdom.Replace(u, g)
	return nil
}

// bakeTransform composes t with every transform attribute found while
// descending n's subtree, converts each shape it reaches to its
// transformed Path form, and strips transform attributes along the way —
// the same reduction ApplyTransforms performs tree-wide, applied locally
// to a single expanded <use> referent.
func bakeTransform(n *svgdom.Node, t affine.Transform) error {
	if tv, ok := n.Attr("transform"); ok && strings.TrimSpace(tv) != "" {
		parsed, err := affine.FromString(tv)
		if err != nil {
			return err
		}
		t = t.Concat(parsed)
		n.RemoveAttr("transform")
	}
	if isShapeTag(n.Tag) {
		s, err := shape.FromElement(n.Tag, n.AttrMap())
		if err != nil {
			return err
		}
		p, err := shape.AsPath(s)
		if err != nil {
			return err
		}
		canonical, err := pathdata.Canonicalize(p.D)
		if err != nil {
			return err
		}
		transformed := pathdata.Transform(canonical, t.Apply)
		tag, attrs := shape.ToElement(shape.Path{Paint: s.PaintOf(), D: pathdata.Emit(transformed)})
		n.Tag = tag
		n.Attrs = nil
		for _, a := range attrs {
			n.SetAttr(a.Name, a.Value)
		}
		return nil
	}
	for _, child := range n.Children {
		if err := bakeTransform(child, t); err != nil {
			return err
		}
	}
	return nil
}

func fragmentID(href string) (string, bool) {
	href = strings.TrimSpace(href)
	if strings.HasPrefix(href, "url(#") && strings.HasSuffix(href, ")") {
		return href[len("url(#") : len(href)-1], true
	}
	if strings.HasPrefix(href, "#") {
		return href[1:], true
	}
	return "", false
}

// findByID searches the whole document for the unique element carrying
// id, regardless of tag (a <use> referent may be any element).
func findByID(root *svgdom.Node, id string) (*svgdom.Node, error) {
	var matches []*svgdom.Node
	svgdom.Walk(root, func(n *svgdom.Node) {
		if v, ok := n.Attr("id"); ok && v == id {
			matches = append(matches, n)
		}
	})
	switch len(matches) {
	case 0:
		return nil, &svgdom.ResolutionError{Ref: "#" + id, Reason: "no element found"}
	case 1:
		return matches[0], nil
	default:
		return nil, &svgdom.ResolutionError{Ref: "#" + id, Reason: "multiple elements found"}
	}
}

func parseFloatAttr(n *svgdom.Node, name string, def float64) (float64, error) {
	v, ok := n.Attr(name)
	if !ok || v == "" {
		return def, nil
	}
	return strconv.ParseFloat(strings.TrimSpace(v), 64)
}
