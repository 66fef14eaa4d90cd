// Package shape implements the tagged-union shape model: the seven SVG
// primitive kinds, their paint/stroke attribute bag, conversion to and
// from XML elements, reduction to path data, and visibility.
package shape

// Paint is the attribute bag every shape carries, independent of its
// variant. The zero value is not the SVG default; use DefaultPaint.
type Paint struct {
	Fill             string
	FillOpacity      float64
	Stroke           string
	StrokeWidth      float64
	StrokeLinecap    string
	StrokeLinejoin   string
	StrokeMiterlimit float64
	StrokeDasharray  string
	StrokeOpacity    float64
	Opacity          float64
	ClipPath         string
	Transform        string
	ID               string
	FillRule         string
}

// DefaultPaint holds the SVG 1.1 initial values for every paint field this
// model tracks.
var DefaultPaint = Paint{
	Fill:             "black",
	FillOpacity:      1,
	Stroke:           "none",
	StrokeWidth:      1,
	StrokeLinecap:    "butt",
	StrokeLinejoin:   "miter",
	StrokeMiterlimit: 4,
	StrokeDasharray:  "",
	StrokeOpacity:    1,
	Opacity:          1,
	ClipPath:         "",
	Transform:        "",
	ID:               "",
	FillRule:         "",
}

// Visible returns false when the shape contributes nothing to the final
// rendering: fully transparent fill and stroke, or overall opacity zero.
func (p Paint) Visible() bool {
	if p.Opacity == 0 {
		return false
	}
	fillNone := p.Fill == "none" || p.FillOpacity == 0
	strokeNone := p.Stroke == "none" || p.StrokeWidth == 0
	return !(fillNone && strokeNone)
}
