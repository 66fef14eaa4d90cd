package pathops

import (
	"math"

	"github.com/ulgerang/nanosvg/pathdata"
)

// Cap and Join mirror the SVG stroke-linecap/stroke-linejoin vocabulary,
// translated from the engine-neutral strings the shape model carries.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

type Join int

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// ParseCap and ParseJoin translate the SVG attribute strings to the
// adapter's enums, defaulting to butt/miter for anything unrecognized
// (matching the shape model's paint defaults).
func ParseCap(s string) Cap {
	switch s {
	case "round":
		return CapRound
	case "square":
		return CapSquare
	default:
		return CapButt
	}
}

func ParseJoin(s string) Join {
	switch s {
	case "round":
		return JoinRound
	case "bevel":
		return JoinBevel
	default:
		return JoinMiter
	}
}

// subpath is a flattened polyline plus whether the source path closed it
// with Z; Stroke needs this because an open subpath gets caps and a
// closed one gets a ring with no caps at all.
type subpath struct {
	pts    []Pt
	closed bool
}

func flattenSubpaths(p pathdata.Path) []subpath {
	var out []subpath
	var cur []Pt
	var cx, cy float64
	closed := false
	flush := func() {
		if len(cur) > 1 {
			out = append(out, subpath{pts: cur, closed: closed})
		}
		cur = nil
		closed = false
	}
	for _, c := range p {
		switch c.Op {
		case pathdata.MoveTo:
			flush()
			cx, cy = c.Args[0], c.Args[1]
			cur = []Pt{{cx, cy}}
		case pathdata.LineTo:
			cx, cy = c.Args[0], c.Args[1]
			cur = append(cur, Pt{cx, cy})
		case pathdata.CurveTo:
			pts := flattenCubic(Pt{cx, cy}, Pt{c.Args[0], c.Args[1]}, Pt{c.Args[2], c.Args[3]}, Pt{c.Args[4], c.Args[5]}, 0)
			cur = append(cur, pts...)
			cx, cy = c.Args[4], c.Args[5]
		case pathdata.QuadTo:
			p0 := Pt{cx, cy}
			p1 := Pt{c.Args[0], c.Args[1]}
			p2 := Pt{c.Args[2], c.Args[3]}
			c1 := Pt{p0.X + 2.0/3*(p1.X-p0.X), p0.Y + 2.0/3*(p1.Y-p0.Y)}
			c2 := Pt{p2.X + 2.0/3*(p1.X-p2.X), p2.Y + 2.0/3*(p1.Y-p2.Y)}
			cur = append(cur, flattenCubic(p0, c1, c2, p2, 0)...)
			cx, cy = p2.X, p2.Y
		case pathdata.ClosePath, pathdata.ClosePathLC:
			closed = true
		}
	}
	flush()
	return out
}

// Stroke computes the outline of path stroked at width with the given
// cap/join style and miter limit, returning absolute, arc-free path data
// for the outline (a separate subpath per input subpath; closed subpaths
// produce an outer and a reversed inner contour forming a ring, open ones
// produce a single capped contour).
func Stroke(path pathdata.Path, width float64, cap Cap, join Join, miterLimit float64) (pathdata.Path, error) {
	if width <= 0 {
		return nil, &BooleanOpError{Op: "stroke", Reason: "non-positive width"}
	}
	half := width / 2
	var out pathdata.Path
	for _, sp := range flattenSubpaths(path) {
		pts := dedupe(sp.pts)
		if len(pts) < 2 {
			continue
		}
		if sp.closed {
			outer := offsetClosed(pts, half, join, miterLimit)
			inner := offsetClosed(reversePts(pts), half, join, miterLimit)
			out = append(out, ToPath([]Polygon{outer})...)
			out = append(out, ToPath([]Polygon{inner})...)
		} else {
			ring := offsetOpen(pts, half, cap, join, miterLimit)
			out = append(out, ToPath([]Polygon{ring})...)
		}
	}
	return out, nil
}

func dedupe(pts []Pt) []Pt {
	out := pts[:0:0]
	for i, p := range pts {
		if i == 0 || math.Hypot(p.X-pts[i-1].X, p.Y-pts[i-1].Y) > 1e-9 {
			out = append(out, p)
		}
	}
	return out
}

func reversePts(pts []Pt) []Pt {
	out := make([]Pt, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func normal(a, b Pt) (nx, ny float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 0
	}
	return -dy / l, dx / l
}

// offsetClosed returns the single offset contour of a closed polyline,
// displaced by dist along its left-hand normal, with joins inserted at
// each vertex per the requested style.
func offsetClosed(pts []Pt, dist float64, join Join, miterLimit float64) Polygon {
	n := len(pts)
	var out Polygon
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		prev := pts[(i-1+n)%n]
		nx1, ny1 := normal(prev, a)
		nx2, ny2 := normal(a, b)
		out = appendJoin(out, a, nx1, ny1, nx2, ny2, dist, join, miterLimit)
	}
	return out
}

// offsetOpen returns the single capped contour of an open polyline
// stroked on both sides: forward along the left offset, a cap at the far
// end, backward along the right offset, and a cap back at the start.
func offsetOpen(pts []Pt, dist float64, cap Cap, join Join, miterLimit float64) Polygon {
	n := len(pts)
	var out Polygon

	nx0, ny0 := normal(pts[0], pts[1])
	out = append(out, Pt{pts[0].X + nx0*dist, pts[0].Y + ny0*dist})
	for i := 1; i < n-1; i++ {
		nx1, ny1 := normal(pts[i-1], pts[i])
		nx2, ny2 := normal(pts[i], pts[i+1])
		out = appendJoin(out, pts[i], nx1, ny1, nx2, ny2, dist, join, miterLimit)
	}
	nxLast, nyLast := normal(pts[n-2], pts[n-1])
	out = append(out, Pt{pts[n-1].X + nxLast*dist, pts[n-1].Y + nyLast*dist})

	out = appendCap(out, pts[n-1], nxLast, nyLast, dist, cap)

	out = append(out, Pt{pts[n-1].X - nxLast*dist, pts[n-1].Y - nyLast*dist})
	for i := n - 2; i > 0; i-- {
		nx1, ny1 := normal(pts[i], pts[i+1])
		nx2, ny2 := normal(pts[i-1], pts[i])
		out = appendJoin(out, pts[i], -nx1, -ny1, -nx2, -ny2, dist, join, miterLimit)
	}
	out = append(out, Pt{pts[0].X - nx0*dist, pts[0].Y - ny0*dist})

	out = appendCap(out, pts[0], -nx0, -ny0, dist, cap)

	return out
}

func appendCap(out Polygon, center Pt, nx, ny, dist float64, cap Cap) Polygon {
	switch cap {
	case CapRound:
		start := math.Atan2(ny, nx)
		const steps = 8
		for i := 1; i < steps; i++ {
			a := start - math.Pi*float64(i)/float64(steps)
			out = append(out, Pt{center.X + dist*math.Cos(a), center.Y + dist*math.Sin(a)})
		}
	case CapSquare:
		tx, ty := ny, -nx
		out = append(out, Pt{center.X + nx*dist + tx*dist, center.Y + ny*dist + ty*dist})
		out = append(out, Pt{center.X - nx*dist + tx*dist, center.Y - ny*dist + ty*dist})
	case CapButt:
		// nothing: the straight segment from the offset endpoints is the cap.
	}
	return out
}

// appendJoin appends the vertex offset at corner along the join between
// the incoming edge normal (nx1,ny1) and the outgoing edge normal
// (nx2,ny2), per join style.
func appendJoin(out Polygon, corner Pt, nx1, ny1, nx2, ny2, dist float64, join Join, miterLimit float64) Polygon {
	p1 := Pt{corner.X + nx1*dist, corner.Y + ny1*dist}
	p2 := Pt{corner.X + nx2*dist, corner.Y + ny2*dist}
	if math.Hypot(p1.X-p2.X, p1.Y-p2.Y) < 1e-9 {
		return append(out, p1)
	}
	switch join {
	case JoinRound:
		a1 := math.Atan2(ny1, nx1)
		a2 := math.Atan2(ny2, nx2)
		for a2-a1 > math.Pi {
			a2 -= 2 * math.Pi
		}
		for a1-a2 > math.Pi {
			a2 += 2 * math.Pi
		}
		const steps = 6
		out = append(out, p1)
		for i := 1; i < steps; i++ {
			a := a1 + (a2-a1)*float64(i)/float64(steps)
			out = append(out, Pt{corner.X + dist*math.Cos(a), corner.Y + dist*math.Sin(a)})
		}
		return append(out, p2)
	case JoinMiter:
		mx, my := nx1+nx2, ny1+ny2
		mlen := math.Hypot(mx, my)
		if mlen > 1e-9 {
			cosHalf := mlen / 2
			miterLen := 1 / cosHalf
			if miterLen <= miterLimit {
				mx, my = mx/mlen, my/mlen
				scale := dist / cosHalf
				return append(out, p1, Pt{corner.X + mx*scale, corner.Y + my*scale}, p2)
			}
		}
		return append(out, p1, p2)
	default: // JoinBevel
		return append(out, p1, p2)
	}
}
