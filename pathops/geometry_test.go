package pathops

import (
	"testing"

	"github.com/ulgerang/nanosvg/pathdata"
)

func TestFlatten_StraightEdges(t *testing.T) {
	p := rectPath(0, 0, 4, 2)
	polys := Flatten(p)
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	if len(polys[0]) != 4 {
		t.Errorf("got %d points, want 4 (straight edges need no subdivision)", len(polys[0]))
	}
}

func TestFlatten_Curve(t *testing.T) {
	p := pathdata.Path{
		{Op: pathdata.MoveTo, Args: []float64{0, 0}},
		{Op: pathdata.CurveTo, Args: []float64{0, 10, 10, 10, 10, 0}},
	}
	polys := Flatten(p)
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	if len(polys[0]) < 3 {
		t.Errorf("got %d points for a curved segment, want subdivision", len(polys[0]))
	}
}

func TestToPath_RoundTripsThroughFlatten(t *testing.T) {
	p := rectPath(1, 1, 5, 5)
	polys := Flatten(p)
	out := ToPath(polys)
	minX, minY, maxX, maxY := Bounds(out)
	if !approxEqual(minX, 1, 1e-6) || !approxEqual(minY, 1, 1e-6) || !approxEqual(maxX, 6, 1e-6) || !approxEqual(maxY, 6, 1e-6) {
		t.Errorf("bounds = (%v,%v)-(%v,%v), want (1,1)-(6,6)", minX, minY, maxX, maxY)
	}
}

func TestBounds_EmptyPath(t *testing.T) {
	minX, minY, maxX, maxY := Bounds(nil)
	if minX != 0 || minY != 0 || maxX != 0 || maxY != 0 {
		t.Errorf("Bounds(nil) = (%v,%v)-(%v,%v), want all zero", minX, minY, maxX, maxY)
	}
}
