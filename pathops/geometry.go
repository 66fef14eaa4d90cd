// Package pathops is the thin adapter over a 2D path-boolean engine: union,
// intersection, stroke-to-outline and bounds. No third-party boolean-path
// library is available in this module's dependency set (see DESIGN.md), so
// the adapter's "native representation" is a flattened polygon set, and the
// engine behind the adapter is implemented directly on top of it rather than
// delegated to an external package.
package pathops

import (
	"math"

	"github.com/ulgerang/nanosvg/pathdata"
)

// Pt is a plane point in the engine's native representation.
type Pt struct{ X, Y float64 }

// Polygon is a single closed, flattened subpath.
type Polygon []Pt

// flattenTolerance bounds how far a flattened cubic segment may deviate
// from the true curve, in user units.
const flattenTolerance = 0.25

// Flatten converts an absolute, arc-free path into one polygon per
// subpath, approximating every cubic Bezier with De Casteljau recursive
// subdivision down to flattenTolerance. Quadratic segments are promoted to
// cubics first so there is a single flattening routine.
func Flatten(p pathdata.Path) []Polygon {
	var polys []Polygon
	var cur Polygon
	var cx, cy float64
	flush := func() {
		if len(cur) > 1 {
			polys = append(polys, cur)
		}
		cur = nil
	}
	for _, c := range p {
		switch c.Op {
		case pathdata.MoveTo:
			flush()
			cx, cy = c.Args[0], c.Args[1]
			cur = Polygon{{cx, cy}}
		case pathdata.LineTo:
			cx, cy = c.Args[0], c.Args[1]
			cur = append(cur, Pt{cx, cy})
		case pathdata.CurveTo:
			pts := flattenCubic(Pt{cx, cy}, Pt{c.Args[0], c.Args[1]}, Pt{c.Args[2], c.Args[3]}, Pt{c.Args[4], c.Args[5]}, 0)
			cur = append(cur, pts...)
			cx, cy = c.Args[4], c.Args[5]
		case pathdata.QuadTo:
			// promote to cubic: c1 = p0 + 2/3(p1-p0), c2 = p2 + 2/3(p1-p2)
			p0 := Pt{cx, cy}
			p1 := Pt{c.Args[0], c.Args[1]}
			p2 := Pt{c.Args[2], c.Args[3]}
			c1 := Pt{p0.X + 2.0/3*(p1.X-p0.X), p0.Y + 2.0/3*(p1.Y-p0.Y)}
			c2 := Pt{p2.X + 2.0/3*(p1.X-p2.X), p2.Y + 2.0/3*(p1.Y-p2.Y)}
			pts := flattenCubic(p0, c1, c2, p2, 0)
			cur = append(cur, pts...)
			cx, cy = p2.X, p2.Y
		case pathdata.ClosePath, pathdata.ClosePathLC:
			// subpath remains open in the polygon list; callers treat every
			// polygon as implicitly closed.
		}
	}
	flush()
	return polys
}

func flattenCubic(p0, p1, p2, p3 Pt, depth int) []Pt {
	if depth > 16 || isFlatEnough(p0, p1, p2, p3) {
		return []Pt{p3}
	}
	p01 := mid(p0, p1)
	p12 := mid(p1, p2)
	p23 := mid(p2, p3)
	p012 := mid(p01, p12)
	p123 := mid(p12, p23)
	p0123 := mid(p012, p123)

	left := flattenCubic(p0, p01, p012, p0123, depth+1)
	right := flattenCubic(p0123, p123, p23, p3, depth+1)
	return append(left, right...)
}

func mid(a, b Pt) Pt { return Pt{(a.X + b.X) / 2, (a.Y + b.Y) / 2} }

func isFlatEnough(p0, p1, p2, p3 Pt) bool {
	d1 := distPointToLine(p1, p0, p3)
	d2 := distPointToLine(p2, p0, p3)
	return d1 <= flattenTolerance && d2 <= flattenTolerance
}

func distPointToLine(p, a, b Pt) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	projX, projY := a.X+t*dx, a.Y+t*dy
	return math.Hypot(p.X-projX, p.Y-projY)
}

// ToPath converts a set of flattened polygons back into absolute path
// data: one M + L... + Z per polygon. The engine only ever hands back
// straight segments, so there is nothing to decompose into Q or convert
// from conics here.
func ToPath(polys []Polygon) pathdata.Path {
	var out pathdata.Path
	for _, poly := range polys {
		if len(poly) == 0 {
			continue
		}
		out = append(out, pathdata.Command{Op: pathdata.MoveTo, Args: []float64{poly[0].X, poly[0].Y}})
		for _, p := range poly[1:] {
			out = append(out, pathdata.Command{Op: pathdata.LineTo, Args: []float64{p.X, p.Y}})
		}
		out = append(out, pathdata.Command{Op: pathdata.ClosePath})
	}
	return out
}

// Bounds returns the axis-aligned bounding box of path p.
func Bounds(p pathdata.Path) (minX, minY, maxX, maxY float64) {
	first := true
	for _, poly := range Flatten(p) {
		for _, pt := range poly {
			if first {
				minX, minY, maxX, maxY = pt.X, pt.Y, pt.X, pt.Y
				first = false
				continue
			}
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	return
}
