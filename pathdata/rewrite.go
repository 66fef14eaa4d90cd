package pathdata

import "math"

// ExplicitLines replaces every H/h/V/v with the equivalent L/l, tracking
// the current point so the missing coordinate can be filled in.
func ExplicitLines(p Path) Path {
	out := make(Path, 0, len(p))
	var cx, cy float64
	var sx, sy float64
	for _, c := range p {
		switch c.Op {
		case MoveTo:
			cx, cy = c.Args[0], c.Args[1]
			sx, sy = cx, cy
			out = append(out, c)
		case MoveToRel:
			cx, cy = cx+c.Args[0], cy+c.Args[1]
			sx, sy = cx, cy
			out = append(out, c)
		case HLineTo:
			cx = c.Args[0]
			out = append(out, Command{Op: LineTo, Args: []float64{cx, cy}})
		case HLineToRel:
			cx = cx + c.Args[0]
			out = append(out, Command{Op: LineToRel, Args: []float64{c.Args[0], 0}})
		case VLineTo:
			cy = c.Args[0]
			out = append(out, Command{Op: LineTo, Args: []float64{cx, cy}})
		case VLineToRel:
			cy = cy + c.Args[0]
			out = append(out, Command{Op: LineToRel, Args: []float64{0, c.Args[0]}})
		case LineTo:
			cx, cy = c.Args[0], c.Args[1]
			out = append(out, c)
		case LineToRel:
			cx, cy = cx+c.Args[0], cy+c.Args[1]
			out = append(out, c)
		case CurveTo:
			cx, cy = c.Args[4], c.Args[5]
			out = append(out, c)
		case CurveToRel:
			cx, cy = cx+c.Args[4], cy+c.Args[5]
			out = append(out, c)
		case SmoothTo:
			cx, cy = c.Args[2], c.Args[3]
			out = append(out, c)
		case SmoothToRel:
			cx, cy = cx+c.Args[2], cy+c.Args[3]
			out = append(out, c)
		case QuadTo:
			cx, cy = c.Args[2], c.Args[3]
			out = append(out, c)
		case QuadToRel:
			cx, cy = cx+c.Args[2], cy+c.Args[3]
			out = append(out, c)
		case QSmoothTo:
			cx, cy = c.Args[0], c.Args[1]
			out = append(out, c)
		case QSmoothRel:
			cx, cy = cx+c.Args[0], cy+c.Args[1]
			out = append(out, c)
		case ArcTo:
			cx, cy = c.Args[5], c.Args[6]
			out = append(out, c)
		case ArcToRel:
			cx, cy = cx+c.Args[5], cy+c.Args[6]
			out = append(out, c)
		case ClosePath, ClosePathLC:
			cx, cy = sx, sy
			out = append(out, c)
		}
	}
	return out
}

// ExpandShorthand replaces S/s with C/c and T/t with Q/q, computing the
// implicit first control point as the reflection of the previous cubic's
// (or quadratic's) final control point about the current point, or the
// current point itself when the previous command was not a matching curve.
// Must run on a path that has already had H/h/V/v removed, and must run
// before Absolute: the reflection is defined in absolute coordinates.
func ExpandShorthand(p Path) Path {
	out := make(Path, 0, len(p))
	var cx, cy float64
	var sx, sy float64
	var lastCtrlX, lastCtrlY float64
	var lastWasCubic, lastWasQuad bool

	abs := func(op Op, x, y float64) (float64, float64) {
		if IsRelative(op) {
			return cx + x, cy + y
		}
		return x, y
	}

	for _, c := range p {
		switch c.Op {
		case MoveTo, MoveToRel:
			x, y := abs(c.Op, c.Args[0], c.Args[1])
			cx, cy = x, y
			sx, sy = x, y
			out = append(out, c)
			lastWasCubic, lastWasQuad = false, false
		case LineTo, LineToRel:
			x, y := abs(c.Op, c.Args[0], c.Args[1])
			cx, cy = x, y
			out = append(out, c)
			lastWasCubic, lastWasQuad = false, false
		case CurveTo, CurveToRel:
			x2, y2 := abs(c.Op, c.Args[2], c.Args[3])
			x, y := abs(c.Op, c.Args[4], c.Args[5])
			lastCtrlX, lastCtrlY = x2, y2
			cx, cy = x, y
			out = append(out, c)
			lastWasCubic, lastWasQuad = true, false
		case SmoothTo, SmoothToRel:
			var rx1, ry1 float64
			if lastWasCubic {
				rx1, ry1 = 2*cx-lastCtrlX, 2*cy-lastCtrlY
			} else {
				rx1, ry1 = cx, cy
			}
			x2, y2 := abs(c.Op, c.Args[0], c.Args[1])
			x, y := abs(c.Op, c.Args[2], c.Args[3])
			newOp := CurveTo
			var args []float64
			if IsRelative(c.Op) {
				newOp = CurveToRel
				args = []float64{rx1 - cx, ry1 - cy, x2 - cx, y2 - cy, x - cx, y - cy}
			} else {
				args = []float64{rx1, ry1, x2, y2, x, y}
			}
			lastCtrlX, lastCtrlY = x2, y2
			cx, cy = x, y
			out = append(out, Command{Op: newOp, Args: args})
			lastWasCubic, lastWasQuad = true, false
		case QuadTo, QuadToRel:
			x1, y1 := abs(c.Op, c.Args[0], c.Args[1])
			x, y := abs(c.Op, c.Args[2], c.Args[3])
			lastCtrlX, lastCtrlY = x1, y1
			cx, cy = x, y
			out = append(out, c)
			lastWasCubic, lastWasQuad = false, true
		case QSmoothTo, QSmoothRel:
			var rx1, ry1 float64
			if lastWasQuad {
				rx1, ry1 = 2*cx-lastCtrlX, 2*cy-lastCtrlY
			} else {
				rx1, ry1 = cx, cy
			}
			x, y := abs(c.Op, c.Args[0], c.Args[1])
			newOp := QuadTo
			var args []float64
			if IsRelative(c.Op) {
				newOp = QuadToRel
				args = []float64{rx1 - cx, ry1 - cy, x - cx, y - cy}
			} else {
				args = []float64{rx1, ry1, x, y}
			}
			lastCtrlX, lastCtrlY = rx1, ry1
			cx, cy = x, y
			out = append(out, Command{Op: newOp, Args: args})
			lastWasCubic, lastWasQuad = false, true
		case ArcTo, ArcToRel:
			x, y := abs(c.Op, c.Args[5], c.Args[6])
			cx, cy = x, y
			out = append(out, c)
			lastWasCubic, lastWasQuad = false, false
		case ClosePath, ClosePathLC:
			cx, cy = sx, sy
			out = append(out, c)
			lastWasCubic, lastWasQuad = false, false
		}
	}
	return out
}

// Absolute rewrites every relative op to its absolute form, maintaining the
// current point and the subpath-start point (restored by Z/z).
func Absolute(p Path) Path {
	out := make(Path, len(p))
	var cx, cy float64
	var sx, sy float64
	for i, c := range p {
		op := c.Op
		args := append([]float64(nil), c.Args...)
		rel := IsRelative(op)
		aop := ToAbsolute(op)

		switch aop {
		case MoveTo:
			if rel {
				args[0] += cx
				args[1] += cy
			}
			cx, cy = args[0], args[1]
			sx, sy = cx, cy
		case LineTo:
			if rel {
				args[0] += cx
				args[1] += cy
			}
			cx, cy = args[0], args[1]
		case CurveTo:
			if rel {
				args[0] += cx
				args[1] += cy
				args[2] += cx
				args[3] += cy
				args[4] += cx
				args[5] += cy
			}
			cx, cy = args[4], args[5]
		case QuadTo:
			if rel {
				args[0] += cx
				args[1] += cy
				args[2] += cx
				args[3] += cy
			}
			cx, cy = args[2], args[3]
		case ArcTo:
			if rel {
				args[5] += cx
				args[6] += cy
			}
			cx, cy = args[5], args[6]
		case ClosePath:
			cx, cy = sx, sy
		}
		out[i] = Command{Op: aop, Args: args}
	}
	return out
}

// Kappa is the standard constant approximating a quarter-circle arc with a
// cubic Bezier: distance from an endpoint to its control point, expressed
// as a fraction of the radius, for a 90-degree arc segment.
const Kappa = 0.5522847498307936

// ArcToCubic decomposes every A/a command in an absolute path into a
// sequence of 1-4 cubic Beziers via the Endpoint-to-Center parameterization
// of SVG 1.1 Appendix F.6.5, preserving endpoints exactly. p must already
// be absolute (ArcToCubic does not handle relative arcs).
func ArcToCubic(p Path) Path {
	out := make(Path, 0, len(p))
	var cx, cy float64
	for _, c := range p {
		if c.Op != ArcTo {
			out = append(out, c)
			switch c.Op {
			case MoveTo, LineTo:
				cx, cy = c.Args[0], c.Args[1]
			case CurveTo:
				cx, cy = c.Args[4], c.Args[5]
			case QuadTo:
				cx, cy = c.Args[2], c.Args[3]
			}
			continue
		}
		rx, ry, phiDeg, largeArc, sweep, x2, y2 := c.Args[0], c.Args[1], c.Args[2], c.Args[3] != 0, c.Args[4] != 0, c.Args[5], c.Args[6]
		cubics := arcSegments(cx, cy, rx, ry, phiDeg, largeArc, sweep, x2, y2)
		out = append(out, cubics...)
		cx, cy = x2, y2
	}
	return out
}

func arcSegments(x1, y1, rx, ry, phiDeg float64, largeArc, sweep bool, x2, y2 float64) Path {
	if rx == 0 || ry == 0 || (x1 == x2 && y1 == y2) {
		return Path{{Op: LineTo, Args: []float64{x2, y2}}}
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	phi := phiDeg * math.Pi / 180

	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	dx2, dy2 := (x1-x2)/2, (y1-y2)/2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	sign := 1.0
	if largeArc == sweep {
		sign = -1
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	radical := 0.0
	if den != 0 && num > 0 {
		radical = math.Sqrt(num / den)
	}
	cxp := sign * radical * (rx * y1p / ry)
	cyp := sign * radical * (-ry * x1p / rx)

	cx := cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lenU := math.Hypot(ux, uy)
		lenV := math.Hypot(vx, vy)
		a := math.Acos(clamp(dot/(lenU*lenV), -1, 1))
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	theta1 := angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dtheta := angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	numSegs := int(math.Ceil(math.Abs(dtheta) / (math.Pi / 2)))
	if numSegs < 1 {
		numSegs = 1
	}
	if numSegs > 4 {
		numSegs = 4
	}
	segTheta := dtheta / float64(numSegs)

	out := make(Path, 0, numSegs)
	t := theta1
	for i := 0; i < numSegs; i++ {
		t2 := t + segTheta
		out = append(out, arcSegmentToBezier(cx, cy, rx, ry, phi, t, t2))
		t = t2
	}
	last := out[len(out)-1].Args
	last[4], last[5] = x2, y2
	return out
}

func arcSegmentToBezier(cx, cy, rx, ry, phi, theta1, theta2 float64) Command {
	alpha := math.Tan((theta2 - theta1) / 4) * 4 / 3

	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	pt := func(theta float64) (float64, float64) {
		ex, ey := rx*math.Cos(theta), ry*math.Sin(theta)
		return cx + cosPhi*ex - sinPhi*ey, cy + sinPhi*ex + cosPhi*ey
	}
	dpt := func(theta float64) (float64, float64) {
		ex, ey := -rx*math.Sin(theta), ry*math.Cos(theta)
		return cosPhi*ex - sinPhi*ey, sinPhi*ex + cosPhi*ey
	}

	x1, y1 := pt(theta1)
	x2, y2 := pt(theta2)
	dx1, dy1 := dpt(theta1)
	dx2, dy2 := dpt(theta2)

	c1x, c1y := x1+alpha*dx1, y1+alpha*dy1
	c2x, c2y := x2-alpha*dx2, y2-alpha*dy2

	return Command{Op: CurveTo, Args: []float64{c1x, c1y, c2x, c2y, x2, y2}}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Point2D is a plane coordinate.
type Point2D struct{ X, Y float64 }

// Transform applies an affine (represented by the Apply function) to every
// coordinate in an absolute, arc-free path. Z is unchanged.
func Transform(p Path, apply func(x, y float64) (float64, float64)) Path {
	out := make(Path, len(p))
	for i, c := range p {
		switch c.Op {
		case ClosePath, ClosePathLC:
			out[i] = c
			continue
		}
		args := make([]float64, len(c.Args))
		copy(args, c.Args)
		for j := 0; j+1 < len(args); j += 2 {
			args[j], args[j+1] = apply(args[j], args[j+1])
		}
		out[i] = Command{Op: c.Op, Args: args}
	}
	return out
}
