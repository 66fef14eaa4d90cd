package canon

import (
	"strings"

	"github.com/ulgerang/nanosvg/affine"
	"github.com/ulgerang/nanosvg/pathdata"
	"github.com/ulgerang/nanosvg/pathops"
	"github.com/ulgerang/nanosvg/shape"
	"github.com/ulgerang/nanosvg/svgdom"
)

// ApplyClipPaths resolves every element's clip-path chain (step 3): the
// element's own clip-path attribute plus every ancestor's, each split on
// comma (the bookkeeping encoding ungroup's attribute inheritance uses
// for a child that inherited more than one clip — see Open Question b in
// DESIGN.md). Each reference resolves to a <clipPath>, whose children
// (after inlining any nested <use> and flattening any nested <g>) union
// into that reference's own geometry; the chain's references intersect
// pairwise to form the effective clip, which is intersected against the
// target path's own geometry. All <clipPath> defs and clip-path
// attributes are removed afterward, so calling this again when nothing
// remains is a safe no-op.
func ApplyClipPaths(doc *svgdom.Doc) error {
	err := doc.MutateShapes(func(entries []svgdom.ShapeEntry) ([]svgdom.ShapeEntry, error) {
		for i, e := range entries {
			p, ok := e.Shape.(shape.Path)
			if !ok {
				continue
			}
			chain := clipChainOf(e.Element)
			if len(chain) == 0 {
				continue
			}
			effective, err := resolveClipChain(doc, chain)
			if err != nil {
				return nil, err
			}
			own, err := pathdata.Canonicalize(p.D)
			if err != nil {
				return nil, err
			}
			result, err := pathops.Intersection([]pathdata.Path{own, effective})
			if err != nil {
				return nil, &BooleanOpError{Step: "apply_clip_paths", Err: err}
			}
			p.D = pathdata.Emit(result)
			entries[i].Shape = p
		}
		return entries, nil
	})
	if err != nil {
		return err
	}
	if err := doc.Materialize(); err != nil {
		return err
	}

	svgdom.Walk(doc.Root, func(n *svgdom.Node) { n.RemoveAttr("clip-path") })
	for _, cp := range svgdom.FindAll(doc.Root, "clipPath") {
		svgdom.Remove(cp)
	}
	doc.Reset()
	return nil
}

// clipChainOf collects the clip-path references in effect for n: n's own
// clip-path attribute plus every ancestor's, each split on comma, root to
// leaf order (the intersection is commutative, so order is cosmetic).
func clipChainOf(n *svgdom.Node) []string {
	var refs []string
	var chain []string
	for cur := n; cur != nil; cur = cur.Parent {
		if v, ok := cur.Attr("clip-path"); ok && strings.TrimSpace(v) != "" {
			chain = append(chain, v)
		}
	}
	for i := len(chain) - 1; i >= 0; i-- {
		for _, part := range strings.Split(chain[i], ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				refs = append(refs, part)
			}
		}
	}
	return refs
}

func resolveClipChain(doc *svgdom.Doc, refs []string) (pathdata.Path, error) {
	var effective pathdata.Path
	first := true
	for _, ref := range refs {
		clipNode, err := doc.ResolveURL(ref, "clipPath")
		if err != nil {
			return nil, err
		}
		paths, err := collectGeometry(doc, clipNode, affine.Identity)
		if err != nil {
			return nil, err
		}
		geom, err := pathops.Union(paths)
		if err != nil {
			return nil, &BooleanOpError{Step: "apply_clip_paths:union", Err: err}
		}
		if first {
			effective = geom
			first = false
			continue
		}
		effective, err = pathops.Intersection([]pathdata.Path{effective, geom})
		if err != nil {
			return nil, &BooleanOpError{Step: "apply_clip_paths:intersect-chain", Err: err}
		}
	}
	return effective, nil
}

// collectGeometry walks node's subtree composing transform attributes
// the same way ApplyTransforms does (each child's own transform is
// applied to its points before its ancestors'), resolving any <use>
// in place, and returns the canonical absolute arc-free path data of every
// primitive shape it finds, each already transformed into the clipPath's
// own coordinate space.
func collectGeometry(doc *svgdom.Doc, node *svgdom.Node, accum affine.Transform) ([]pathdata.Path, error) {
	t := accum
	if tv, ok := node.Attr("transform"); ok && strings.TrimSpace(tv) != "" {
		parsed, err := affine.FromString(tv)
		if err != nil {
			return nil, err
		}
		t = t.Concat(parsed)
	}

	if node.Tag == "use" {
		href, ok := node.Attr("href")
		if !ok {
			href, ok = node.Attr("xlink:href")
		}
		if !ok {
			return nil, &svgdom.ResolutionError{Ref: "", Reason: "<use> inside clipPath has no href"}
		}
		id, ok := fragmentID(href)
		if !ok {
			return nil, &svgdom.ResolutionError{Ref: href, Reason: "<use> only supports #fragment references"}
		}
		referent, err := findByID(doc.Root, id)
		if err != nil {
			return nil, err
		}
		x, _ := parseFloatAttr(node, "x", 0)
		y, _ := parseFloatAttr(node, "y", 0)
		t = t.Concat(affine.Translate(x, y))
		return collectGeometry(doc, referent, t)
	}

	if isShapeTag(node.Tag) {
		s, err := shape.FromElement(node.Tag, node.AttrMap())
		if err != nil {
			return nil, err
		}
		p, err := shape.AsPath(s)
		if err != nil {
			return nil, err
		}
		canon, err := pathdata.Canonicalize(p.D)
		if err != nil {
			return nil, err
		}
		return []pathdata.Path{pathdata.Transform(canon, t.Apply)}, nil
	}

	var out []pathdata.Path
	for _, child := range node.Children {
		sub, err := collectGeometry(doc, child, t)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	return out, nil
}

func isShapeTag(tag string) bool {
	for _, t := range svgdom.ShapeTags {
		if t == tag {
			return true
		}
	}
	return false
}
