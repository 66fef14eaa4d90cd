// Package affine implements 2D affine transform algebra: construction,
// composition, and parsing of SVG transform-list strings.
package affine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Transform is an immutable 2D affine matrix
//
//	[ a c e ]
//	[ b d f ]
//	[ 0 0 1 ]
//
// Every method returns a new value.
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Transform{A: 1, D: 1}

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Transform {
	return Transform{A: 1, D: 1, E: tx, F: ty}
}

// Scale returns a scale by (sx, sy). A single-argument SVG scale(s) maps
// to Scale(s, s).
func Scale(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// Rotate returns a rotation by a radians about the origin.
func Rotate(aRad float64) Transform {
	s, c := math.Sin(aRad), math.Cos(aRad)
	return Transform{A: c, B: s, C: -s, D: c}
}

// RotateAbout returns a rotation by a radians about (cx, cy).
func RotateAbout(aRad, cx, cy float64) Transform {
	return Translate(cx, cy).Concat(Rotate(aRad)).Concat(Translate(-cx, -cy))
}

// SkewX returns a horizontal skew by a radians.
func SkewX(aRad float64) Transform {
	return Transform{A: 1, D: 1, C: math.Tan(aRad)}
}

// SkewY returns a vertical skew by a radians.
func SkewY(aRad float64) Transform {
	return Transform{A: 1, D: 1, B: math.Tan(aRad)}
}

// Matrix returns the general transform (a,b,c,d,e,f).
func Matrix(a, b, c, d, e, f float64) Transform {
	return Transform{A: a, B: b, C: c, D: d, E: e, F: f}
}

// Concat returns self . other: applying the result to a point is
// equivalent to applying other first, then self (column-vector
// convention).
func (t Transform) Concat(other Transform) Transform {
	return Transform{
		A: t.A*other.A + t.C*other.B,
		B: t.B*other.A + t.D*other.B,
		C: t.A*other.C + t.C*other.D,
		D: t.B*other.C + t.D*other.D,
		E: t.A*other.E + t.C*other.F + t.E,
		F: t.B*other.E + t.D*other.F + t.F,
	}
}

// Apply maps the point (x, y) through the transform.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.C*y + t.E, t.B*x + t.D*y + t.F
}

// ParseError reports a malformed SVG transform-list string.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "affine: parse error: " + e.Reason
}

// FromString parses an SVG transform-list attribute value: one or more of
// matrix|translate|scale|rotate|skewX|skewY(args), separated by whitespace
// or commas. Angle arguments to rotate/skewX/skewY are in degrees in the
// input and are converted to radians before the matrix is built. The
// result is the left-to-right composition of the listed transforms.
func FromString(s string) (Transform, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Identity, nil
	}
	result := Identity
	i := 0
	n := len(s)
	for i < n {
		for i < n && isSep(s[i]) {
			i++
		}
		if i >= n {
			break
		}
		start := i
		for i < n && s[i] != '(' {
			i++
		}
		if i >= n {
			return Transform{}, &ParseError{Reason: "missing '(' after " + s[start:]}
		}
		name := strings.TrimSpace(s[start:i])
		i++ // skip '('
		argStart := i
		for i < n && s[i] != ')' {
			i++
		}
		if i >= n {
			return Transform{}, &ParseError{Reason: "missing ')' in " + name}
		}
		argsStr := s[argStart:i]
		i++ // skip ')'

		args, err := parseArgs(argsStr)
		if err != nil {
			return Transform{}, err
		}

		var t Transform
		switch name {
		case "matrix":
			if len(args) != 6 {
				return Transform{}, &ParseError{Reason: fmt.Sprintf("matrix() wants 6 args, got %d", len(args))}
			}
			t = Matrix(args[0], args[1], args[2], args[3], args[4], args[5])
		case "translate":
			switch len(args) {
			case 1:
				t = Translate(args[0], 0)
			case 2:
				t = Translate(args[0], args[1])
			default:
				return Transform{}, &ParseError{Reason: fmt.Sprintf("translate() wants 1 or 2 args, got %d", len(args))}
			}
		case "scale":
			switch len(args) {
			case 1:
				t = Scale(args[0], args[0])
			case 2:
				t = Scale(args[0], args[1])
			default:
				return Transform{}, &ParseError{Reason: fmt.Sprintf("scale() wants 1 or 2 args, got %d", len(args))}
			}
		case "rotate":
			switch len(args) {
			case 1:
				t = Rotate(deg2rad(args[0]))
			case 3:
				t = RotateAbout(deg2rad(args[0]), args[1], args[2])
			default:
				return Transform{}, &ParseError{Reason: fmt.Sprintf("rotate() wants 1 or 3 args, got %d", len(args))}
			}
		case "skewX":
			if len(args) != 1 {
				return Transform{}, &ParseError{Reason: "skewX() wants 1 arg"}
			}
			t = SkewX(deg2rad(args[0]))
		case "skewY":
			if len(args) != 1 {
				return Transform{}, &ParseError{Reason: "skewY() wants 1 arg"}
			}
			t = SkewY(deg2rad(args[0]))
		default:
			return Transform{}, &ParseError{Reason: "unrecognized transform op " + name}
		}
		result = result.Concat(t)
	}
	return result, nil
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

func isSep(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == ','
}

func parseArgs(s string) ([]float64, error) {
	var out []float64
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ','
	})
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, &ParseError{Reason: "malformed number " + strconv.Quote(f)}
		}
		out = append(out, v)
	}
	return out, nil
}
