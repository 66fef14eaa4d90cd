package shape

import (
	"fmt"

	"github.com/ulgerang/nanosvg/pathdata"
)

// AsPath converts any primitive shape to an equivalent Path, copying the
// paint/stroke attribute bag verbatim. AsPath is idempotent: AsPath of a
// Path shape returns it unchanged.
func AsPath(s Shape) (Path, error) {
	switch v := s.(type) {
	case Circle:
		return Path{Paint: v.Paint, D: circlePath(v.Cx, v.Cy, v.R)}, nil
	case Ellipse:
		return Path{Paint: v.Paint, D: ellipsePath(v.Cx, v.Cy, v.Rx, v.Ry)}, nil
	case Line:
		return Path{Paint: v.Paint, D: linePath(v.X1, v.Y1, v.X2, v.Y2)}, nil
	case Rect:
		return Path{Paint: v.Paint, D: rectPath(v.X, v.Y, v.Width, v.Height, v.Rx, v.Ry)}, nil
	case Polygon:
		return Path{Paint: v.Paint, D: polyPath(v.Points, true)}, nil
	case Polyline:
		return Path{Paint: v.Paint, D: polyPath(v.Points, false)}, nil
	case Path:
		return v, nil
	default:
		return Path{}, fmt.Errorf("shape: AsPath: unknown shape kind %v", s.Kind())
	}
}

func circlePath(cx, cy, r float64) string {
	p := pathdata.Path{
		{Op: pathdata.MoveTo, Args: []float64{cx - r, cy}},
		{Op: pathdata.ArcTo, Args: []float64{r, r, 0, 1, 0, cx + r, cy}},
		{Op: pathdata.ArcTo, Args: []float64{r, r, 0, 1, 0, cx - r, cy}},
		{Op: pathdata.ClosePath},
	}
	return pathdata.Emit(p)
}

func ellipsePath(cx, cy, rx, ry float64) string {
	p := pathdata.Path{
		{Op: pathdata.MoveTo, Args: []float64{cx - rx, cy}},
		{Op: pathdata.ArcTo, Args: []float64{rx, ry, 0, 1, 0, cx + rx, cy}},
		{Op: pathdata.ArcTo, Args: []float64{rx, ry, 0, 1, 0, cx - rx, cy}},
		{Op: pathdata.ClosePath},
	}
	return pathdata.Emit(p)
}

func linePath(x1, y1, x2, y2 float64) string {
	p := pathdata.Path{
		{Op: pathdata.MoveTo, Args: []float64{x1, y1}},
		{Op: pathdata.LineTo, Args: []float64{x2, y2}},
	}
	return pathdata.Emit(p)
}

func rectPath(x, y, w, h, rx, ry float64) string {
	if rx <= 0 || ry <= 0 {
		p := pathdata.Path{
			{Op: pathdata.MoveTo, Args: []float64{x, y}},
			{Op: pathdata.HLineTo, Args: []float64{x + w}},
			{Op: pathdata.VLineTo, Args: []float64{y + h}},
			{Op: pathdata.HLineTo, Args: []float64{x}},
			{Op: pathdata.ClosePath},
		}
		return pathdata.Emit(p)
	}
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}
	p := pathdata.Path{
		{Op: pathdata.MoveTo, Args: []float64{x + rx, y}},
		{Op: pathdata.HLineTo, Args: []float64{x + w - rx}},
		{Op: pathdata.ArcTo, Args: []float64{rx, ry, 0, 0, 1, x + w, y + ry}},
		{Op: pathdata.VLineTo, Args: []float64{y + h - ry}},
		{Op: pathdata.ArcTo, Args: []float64{rx, ry, 0, 0, 1, x + w - rx, y + h}},
		{Op: pathdata.HLineTo, Args: []float64{x + rx}},
		{Op: pathdata.ArcTo, Args: []float64{rx, ry, 0, 0, 1, x, y + h - ry}},
		{Op: pathdata.VLineTo, Args: []float64{y + ry}},
		{Op: pathdata.ArcTo, Args: []float64{rx, ry, 0, 0, 1, x + rx, y}},
		{Op: pathdata.ClosePath},
	}
	return pathdata.Emit(p)
}

func polyPath(pts []Point, closed bool) string {
	if len(pts) == 0 {
		return ""
	}
	p := make(pathdata.Path, 0, len(pts)+1)
	p = append(p, pathdata.Command{Op: pathdata.MoveTo, Args: []float64{pts[0].X, pts[0].Y}})
	for _, pt := range pts[1:] {
		p = append(p, pathdata.Command{Op: pathdata.LineTo, Args: []float64{pt.X, pt.Y}})
	}
	if closed {
		p = append(p, pathdata.Command{Op: pathdata.ClosePath})
	}
	return pathdata.Emit(p)
}
