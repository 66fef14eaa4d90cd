package pathops

import (
	"testing"

	"github.com/ulgerang/nanosvg/pathdata"
)

func TestParseCapAndJoin(t *testing.T) {
	tests := []struct {
		in       string
		wantCap  Cap
		wantJoin Join
	}{
		{"butt", CapButt, JoinMiter},
		{"round", CapRound, JoinRound},
		{"square", CapSquare, JoinMiter},
		{"bevel", CapButt, JoinBevel},
		{"", CapButt, JoinMiter},
		{"nonsense", CapButt, JoinMiter},
	}
	for _, tt := range tests {
		if got := ParseCap(tt.in); got != tt.wantCap {
			t.Errorf("ParseCap(%q) = %v, want %v", tt.in, got, tt.wantCap)
		}
		if got := ParseJoin(tt.in); got != tt.wantJoin {
			t.Errorf("ParseJoin(%q) = %v, want %v", tt.in, got, tt.wantJoin)
		}
	}
}

func TestStroke_HorizontalLine(t *testing.T) {
	line := pathdata.Path{
		{Op: pathdata.MoveTo, Args: []float64{0, 0}},
		{Op: pathdata.LineTo, Args: []float64{10, 0}},
	}
	out, err := Stroke(line, 2, CapButt, JoinMiter, 4)
	if err != nil {
		t.Fatalf("Stroke: %v", err)
	}
	minX, minY, maxX, maxY := Bounds(out)
	if !approxEqual(minX, 0, 1e-6) || !approxEqual(minY, -1, 1e-6) || !approxEqual(maxX, 10, 1e-6) || !approxEqual(maxY, 1, 1e-6) {
		t.Errorf("bounds = (%v,%v)-(%v,%v), want (0,-1)-(10,1)", minX, minY, maxX, maxY)
	}
}

func TestStroke_NonPositiveWidth(t *testing.T) {
	line := pathdata.Path{
		{Op: pathdata.MoveTo, Args: []float64{0, 0}},
		{Op: pathdata.LineTo, Args: []float64{1, 0}},
	}
	if _, err := Stroke(line, 0, CapButt, JoinMiter, 4); err == nil {
		t.Error("expected an error for zero width, got nil")
	}
}

func TestStroke_ClosedSquareProducesTwoContours(t *testing.T) {
	square := rectPath(0, 0, 4, 4)
	out, err := Stroke(square, 1, CapButt, JoinMiter, 4)
	if err != nil {
		t.Fatalf("Stroke: %v", err)
	}
	polys := Flatten(out)
	if len(polys) != 2 {
		t.Fatalf("got %d contours, want 2 (outer ring + inner ring)", len(polys))
	}
}
