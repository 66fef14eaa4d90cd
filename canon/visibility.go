package canon

import (
	"github.com/ulgerang/nanosvg/shape"
	"github.com/ulgerang/nanosvg/svgdom"
)

// RemoveUnpaintedShapes drops every shape whose shape.Visible is false
// (step 6): invisible fill and stroke, or overall opacity zero.
func RemoveUnpaintedShapes(doc *svgdom.Doc) error {
	entries, err := doc.Shapes()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !shape.Visible(e.Shape) {
			svgdom.Remove(e.Element)
		}
	}
	doc.Reset()
	return nil
}
