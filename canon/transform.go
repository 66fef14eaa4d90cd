package canon

import (
	"strings"

	"github.com/ulgerang/nanosvg/affine"
	"github.com/ulgerang/nanosvg/pathdata"
	"github.com/ulgerang/nanosvg/shape"
	"github.com/ulgerang/nanosvg/svgdom"
)

// ApplyTransforms bakes every element's composite ancestor transform into
// its own geometry and strips `transform` tree-wide. It is not one of the
// 8 fixed ToNanoSVG steps; it runs standalone, before ToNanoSVG, because
// Ungroup treats a surviving `transform` on a <g> as an unhandled
// attribute (InheritError) rather than something it knows how to push
// down.
//
// Every shape whose composite transform is not the identity is rewritten
// to Path form: only a pure translation leaves a Rect/Circle/Ellipse
// representable in its own fields, and a mixed tree can carry rotation or
// skew, so this pass always takes the AsPath round trip rather than
// special-casing the translation-only case. Shapes with no effective
// transform keep their own kind.
func ApplyTransforms(doc *svgdom.Doc) error {
	err := doc.MutateShapes(func(entries []svgdom.ShapeEntry) ([]svgdom.ShapeEntry, error) {
		for i, e := range entries {
			t, err := ancestorTransform(e.Element)
			if err != nil {
				return nil, err
			}
			if t == affine.Identity {
				continue
			}
			p, err := shape.AsPath(e.Shape)
			if err != nil {
				return nil, err
			}
			canonical, err := pathdata.Canonicalize(p.D)
			if err != nil {
				return nil, err
			}
			transformed := pathdata.Transform(canonical, t.Apply)
			entries[i].Shape = shape.Path{Paint: e.Shape.PaintOf(), D: pathdata.Emit(transformed)}
		}
		return entries, nil
	})
	if err != nil {
		return err
	}
	if err := doc.Materialize(); err != nil {
		return err
	}
	svgdom.Walk(doc.Root, func(n *svgdom.Node) { n.RemoveAttr("transform") })
	doc.Reset()
	return nil
}

// ancestorTransform composes n's own transform with every ancestor's, in
// root-to-leaf order, so the element's own transform is innermost in the
// product and is applied to its points first, before its ancestors',
// matching ordinary SVG nesting semantics.
func ancestorTransform(n *svgdom.Node) (affine.Transform, error) {
	var chain []string
	for cur := n; cur != nil; cur = cur.Parent {
		if v, ok := cur.Attr("transform"); ok && strings.TrimSpace(v) != "" {
			chain = append(chain, v)
		}
	}
	t := affine.Identity
	for i := len(chain) - 1; i >= 0; i-- {
		parsed, err := affine.FromString(chain[i])
		if err != nil {
			return affine.Identity, err
		}
		t = t.Concat(parsed)
	}
	return t, nil
}
