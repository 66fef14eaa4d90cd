package shape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ulgerang/nanosvg/pathdata"
)

// Attr is a single ordered attribute as written back onto an element.
type Attr struct {
	Name, Value string
}

func parseFloatAttr(attrs map[string]string, name string, def float64) (float64, error) {
	v, ok := attrs[name]
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("shape: attribute %s=%q: %w", name, v, err)
	}
	return f, nil
}

func paintFromAttrs(attrs map[string]string) (Paint, error) {
	p := DefaultPaint
	str := func(name string, def string) string {
		if v, ok := attrs[name]; ok {
			return v
		}
		return def
	}
	var err error
	p.Fill = str("fill", DefaultPaint.Fill)
	if p.FillOpacity, err = parseFloatAttr(attrs, "fill-opacity", DefaultPaint.FillOpacity); err != nil {
		return Paint{}, err
	}
	p.Stroke = str("stroke", DefaultPaint.Stroke)
	if p.StrokeWidth, err = parseFloatAttr(attrs, "stroke-width", DefaultPaint.StrokeWidth); err != nil {
		return Paint{}, err
	}
	p.StrokeLinecap = str("stroke-linecap", DefaultPaint.StrokeLinecap)
	p.StrokeLinejoin = str("stroke-linejoin", DefaultPaint.StrokeLinejoin)
	if p.StrokeMiterlimit, err = parseFloatAttr(attrs, "stroke-miterlimit", DefaultPaint.StrokeMiterlimit); err != nil {
		return Paint{}, err
	}
	p.StrokeDasharray = str("stroke-dasharray", DefaultPaint.StrokeDasharray)
	if p.StrokeOpacity, err = parseFloatAttr(attrs, "stroke-opacity", DefaultPaint.StrokeOpacity); err != nil {
		return Paint{}, err
	}
	if p.Opacity, err = parseFloatAttr(attrs, "opacity", DefaultPaint.Opacity); err != nil {
		return Paint{}, err
	}
	p.ClipPath = str("clip-path", DefaultPaint.ClipPath)
	p.Transform = str("transform", DefaultPaint.Transform)
	p.ID = str("id", DefaultPaint.ID)
	p.FillRule = str("fill-rule", DefaultPaint.FillRule)
	return p, nil
}

func paintToAttrs(p Paint) []Attr {
	var out []Attr
	add := func(name, val, def string) {
		if val != def {
			out = append(out, Attr{name, val})
		}
	}
	addf := func(name string, val, def float64) {
		if val != def {
			out = append(out, Attr{name, pathdata.FormatNumber(val)})
		}
	}
	add("fill", p.Fill, DefaultPaint.Fill)
	addf("fill-opacity", p.FillOpacity, DefaultPaint.FillOpacity)
	add("stroke", p.Stroke, DefaultPaint.Stroke)
	addf("stroke-width", p.StrokeWidth, DefaultPaint.StrokeWidth)
	add("stroke-linecap", p.StrokeLinecap, DefaultPaint.StrokeLinecap)
	add("stroke-linejoin", p.StrokeLinejoin, DefaultPaint.StrokeLinejoin)
	addf("stroke-miterlimit", p.StrokeMiterlimit, DefaultPaint.StrokeMiterlimit)
	add("stroke-dasharray", p.StrokeDasharray, DefaultPaint.StrokeDasharray)
	addf("stroke-opacity", p.StrokeOpacity, DefaultPaint.StrokeOpacity)
	addf("opacity", p.Opacity, DefaultPaint.Opacity)
	add("clip-path", p.ClipPath, DefaultPaint.ClipPath)
	add("transform", p.Transform, DefaultPaint.Transform)
	add("id", p.ID, DefaultPaint.ID)
	add("fill-rule", p.FillRule, DefaultPaint.FillRule)
	return out
}

// FromElement reads a shape out of an XML element whose local tag is one
// of the seven primitive kinds, given its attribute map. Attributes that
// are not fields of the target shape are ignored at this layer (they stay
// on the element, since FromElement never mutates it).
func FromElement(tag string, attrs map[string]string) (Shape, error) {
	paint, err := paintFromAttrs(attrs)
	if err != nil {
		return nil, err
	}
	f := func(name string, def float64) (float64, error) { return parseFloatAttr(attrs, name, def) }

	switch tag {
	case "circle":
		cx, err := f("cx", 0)
		if err != nil {
			return nil, err
		}
		cy, err := f("cy", 0)
		if err != nil {
			return nil, err
		}
		r, err := f("r", 0)
		if err != nil {
			return nil, err
		}
		return Circle{Paint: paint, Cx: cx, Cy: cy, R: r}, nil
	case "ellipse":
		cx, _ := f("cx", 0)
		cy, _ := f("cy", 0)
		rx, _ := f("rx", 0)
		ry, _ := f("ry", 0)
		return Ellipse{Paint: paint, Cx: cx, Cy: cy, Rx: rx, Ry: ry}, nil
	case "line":
		x1, _ := f("x1", 0)
		y1, _ := f("y1", 0)
		x2, _ := f("x2", 0)
		y2, _ := f("y2", 0)
		return Line{Paint: paint, X1: x1, Y1: y1, X2: x2, Y2: y2}, nil
	case "rect":
		x, _ := f("x", 0)
		y, _ := f("y", 0)
		w, _ := f("width", 0)
		h, _ := f("height", 0)
		rx, _ := f("rx", 0)
		ry, _ := f("ry", 0)
		if rx == 0 && ry != 0 {
			rx = ry
		}
		if ry == 0 && rx != 0 {
			ry = rx
		}
		return Rect{Paint: paint, X: x, Y: y, Width: w, Height: h, Rx: rx, Ry: ry}, nil
	case "polygon":
		pts, err := parsePoints(attrs["points"])
		if err != nil {
			return nil, err
		}
		return Polygon{Paint: paint, Points: pts}, nil
	case "polyline":
		pts, err := parsePoints(attrs["points"])
		if err != nil {
			return nil, err
		}
		return Polyline{Paint: paint, Points: pts}, nil
	case "path":
		return Path{Paint: paint, D: attrs["d"]}, nil
	default:
		return nil, fmt.Errorf("shape: %q is not a primitive shape tag", tag)
	}
}

// ToElement builds the tag name and ordered attribute list for s, writing
// only fields that differ from their variant default.
func ToElement(s Shape) (tag string, attrs []Attr) {
	switch v := s.(type) {
	case Circle:
		attrs = numAttrs(map[string]float64{"cx": v.Cx, "cy": v.Cy, "r": v.R})
		tag = "circle"
	case Ellipse:
		attrs = numAttrs(map[string]float64{"cx": v.Cx, "cy": v.Cy, "rx": v.Rx, "ry": v.Ry})
		tag = "ellipse"
	case Line:
		attrs = numAttrs(map[string]float64{"x1": v.X1, "y1": v.Y1, "x2": v.X2, "y2": v.Y2})
		tag = "line"
	case Rect:
		attrs = numAttrs(map[string]float64{"x": v.X, "y": v.Y, "width": v.Width, "height": v.Height, "rx": v.Rx, "ry": v.Ry})
		tag = "rect"
	case Polygon:
		attrs = []Attr{{"points", formatPoints(v.Points)}}
		tag = "polygon"
	case Polyline:
		attrs = []Attr{{"points", formatPoints(v.Points)}}
		tag = "polyline"
	case Path:
		attrs = []Attr{{"d", v.D}}
		tag = "path"
	}
	attrs = append(attrs, paintToAttrs(s.PaintOf())...)
	return tag, attrs
}

// numAttrs renders a fixed, order-stable subset of geometry attributes,
// skipping zero values (the implicit default for every geometry field).
func numAttrs(vals map[string]float64) []Attr {
	order := []string{"cx", "cy", "r", "rx", "ry", "x", "y", "x1", "y1", "x2", "y2", "width", "height"}
	var out []Attr
	for _, name := range order {
		v, ok := vals[name]
		if !ok || v == 0 {
			continue
		}
		out = append(out, Attr{name, pathdata.FormatNumber(v)})
	}
	return out
}

func parsePoints(s string) ([]Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("shape: points attribute has odd number of coordinates")
	}
	pts := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("shape: malformed point coordinate %q: %w", fields[i], err)
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("shape: malformed point coordinate %q: %w", fields[i+1], err)
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts, nil
}

func formatPoints(pts []Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(pathdata.FormatNumber(p.X))
		b.WriteByte(',')
		b.WriteString(pathdata.FormatNumber(p.Y))
	}
	return b.String()
}
