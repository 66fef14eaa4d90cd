package pathops

import (
	"math"
	"testing"

	"github.com/ulgerang/nanosvg/pathdata"
)

func rectPath(x, y, w, h float64) pathdata.Path {
	return pathdata.Path{
		{Op: pathdata.MoveTo, Args: []float64{x, y}},
		{Op: pathdata.LineTo, Args: []float64{x + w, y}},
		{Op: pathdata.LineTo, Args: []float64{x + w, y + h}},
		{Op: pathdata.LineTo, Args: []float64{x, y + h}},
		{Op: pathdata.ClosePath},
	}
}

func approxEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestUnion_Disjoint(t *testing.T) {
	a := rectPath(0, 0, 1, 1)
	b := rectPath(5, 5, 1, 1)
	out, err := Union([]pathdata.Path{a, b})
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	minX, minY, maxX, maxY := Bounds(out)
	if !approxEqual(minX, 0, 1e-6) || !approxEqual(minY, 0, 1e-6) || !approxEqual(maxX, 6, 1e-6) || !approxEqual(maxY, 6, 1e-6) {
		t.Errorf("bounds = (%v,%v)-(%v,%v), want (0,0)-(6,6)", minX, minY, maxX, maxY)
	}
}

func TestUnion_Overlapping(t *testing.T) {
	a := rectPath(0, 0, 2, 2)
	b := rectPath(1, 1, 2, 2)
	out, err := Union([]pathdata.Path{a, b})
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	minX, minY, maxX, maxY := Bounds(out)
	if !approxEqual(minX, 0, 1e-6) || !approxEqual(minY, 0, 1e-6) || !approxEqual(maxX, 3, 1e-6) || !approxEqual(maxY, 3, 1e-6) {
		t.Errorf("bounds = (%v,%v)-(%v,%v), want (0,0)-(3,3)", minX, minY, maxX, maxY)
	}
}

func TestIntersection_Overlapping(t *testing.T) {
	a := rectPath(0, 0, 2, 2)
	b := rectPath(1, 1, 2, 2)
	out, err := Intersection([]pathdata.Path{a, b})
	if err != nil {
		t.Fatalf("Intersection: %v", err)
	}
	minX, minY, maxX, maxY := Bounds(out)
	if !approxEqual(minX, 1, 1e-6) || !approxEqual(minY, 1, 1e-6) || !approxEqual(maxX, 2, 1e-6) || !approxEqual(maxY, 2, 1e-6) {
		t.Errorf("bounds = (%v,%v)-(%v,%v), want (1,1)-(2,2)", minX, minY, maxX, maxY)
	}
}

func TestIntersection_Disjoint(t *testing.T) {
	a := rectPath(0, 0, 1, 1)
	b := rectPath(5, 5, 1, 1)
	out, err := Intersection([]pathdata.Path{a, b})
	if err != nil {
		t.Fatalf("Intersection: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("Intersection of disjoint rects = %v, want empty", out)
	}
}

func TestIntersection_Containment(t *testing.T) {
	outer := rectPath(0, 0, 10, 10)
	inner := rectPath(2, 2, 2, 2)
	out, err := Intersection([]pathdata.Path{outer, inner})
	if err != nil {
		t.Fatalf("Intersection: %v", err)
	}
	minX, minY, maxX, maxY := Bounds(out)
	if !approxEqual(minX, 2, 1e-6) || !approxEqual(minY, 2, 1e-6) || !approxEqual(maxX, 4, 1e-6) || !approxEqual(maxY, 4, 1e-6) {
		t.Errorf("bounds = (%v,%v)-(%v,%v), want (2,2)-(4,4)", minX, minY, maxX, maxY)
	}
}

func TestBooleanOpError(t *testing.T) {
	err := &BooleanOpError{Op: "stroke", Reason: "non-positive width"}
	if err.Error() == "" {
		t.Error("Error() returned empty string")
	}
}
