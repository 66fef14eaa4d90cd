package pathdata

import "testing"

func TestParseEmit(t *testing.T) {
	cases := []struct {
		name string
		d    string
	}{
		{"rect-ish", "M0 0 H10 V5 H0 Z"},
		{"relative", "m0 0 l10 0 l0 5 z"},
		{"curve", "M0 0 C1 1 2 2 3 3"},
		{"implicit-line-after-move", "M0 0 10 10 20 20"},
		{"arc", "M0 0 A5 5 0 1 0 10 0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := Parse(c.d)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if len(p) == 0 {
				t.Fatalf("empty path")
			}
		})
	}
}

func TestParseImplicitLineAfterMove(t *testing.T) {
	p, err := Parse("M0 0 10 10 20 20")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(p) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(p))
	}
	if p[0].Op != MoveTo {
		t.Errorf("command 0 op = %q, want M", p[0].Op)
	}
	if p[1].Op != LineTo || p[2].Op != LineTo {
		t.Errorf("commands 1,2 should be implicit L, got %q %q", p[1].Op, p[2].Op)
	}
}

func TestParseMustStartWithMove(t *testing.T) {
	if _, err := Parse("L10 10"); err == nil {
		t.Fatalf("expected error for path not starting with M")
	}
}

func TestParseRoundTrip(t *testing.T) {
	d := "M0 0 L10 0 L10 10 Z"
	p, err := Parse(d)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	p2, err := Parse(Emit(p))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if len(p) != len(p2) {
		t.Fatalf("round trip command count mismatch: %d vs %d", len(p), len(p2))
	}
	for i := range p {
		if p[i].Op != p2[i].Op {
			t.Errorf("cmd %d op mismatch: %q vs %q", i, p[i].Op, p2[i].Op)
		}
	}
}

func TestExplicitLinesIdempotent(t *testing.T) {
	p, _ := Parse("M0 0 H10 V5 H0 Z")
	e1 := ExplicitLines(p)
	e2 := ExplicitLines(e1)
	if Emit(e1) != Emit(e2) {
		t.Errorf("explicit_lines not idempotent: %q vs %q", Emit(e1), Emit(e2))
	}
	if !e1.IsExplicit() {
		t.Errorf("result still has H/V/S/T")
	}
}

func TestAbsoluteIdempotent(t *testing.T) {
	p, _ := Parse("m0 0 l10 0 l0 10 z")
	a1 := Absolute(ExpandShorthand(ExplicitLines(p)))
	a2 := Absolute(a1)
	if Emit(a1) != Emit(a2) {
		t.Errorf("absolute not idempotent: %q vs %q", Emit(a1), Emit(a2))
	}
	if !a1.IsAbsolute() {
		t.Errorf("result still has relative ops")
	}
}

func TestExpandShorthandReflection(t *testing.T) {
	p, _ := Parse("M0 0 C0 10 10 10 10 0 S20 -10 20 0")
	e := ExpandShorthand(p)
	if len(e) != 3 {
		t.Fatalf("expected 3 commands after expansion, got %d", len(e))
	}
	last := e[2]
	if last.Op != CurveTo {
		t.Fatalf("expected S expanded to C, got %q", last.Op)
	}
	// reflection of (10,10) about (10,0) is (10,-10)
	if last.Args[0] != 10 || last.Args[1] != -10 {
		t.Errorf("reflected control point = (%v,%v), want (10,-10)", last.Args[0], last.Args[1])
	}
}

func TestArcToCubicPreservesEndpoints(t *testing.T) {
	p, _ := Parse("M0 0 A5 5 0 1 0 10 0")
	abs := Absolute(ExpandShorthand(ExplicitLines(p)))
	cubics := ArcToCubic(abs)
	if !cubics.IsArcFree() {
		t.Fatalf("still contains arcs")
	}
	if len(cubics) < 2 || len(cubics) > 5 {
		t.Fatalf("expected 1-4 cubics plus move, got %d commands", len(cubics))
	}
	last := cubics[len(cubics)-1]
	if last.Op != CurveTo {
		t.Fatalf("last command should be a cubic, got %q", last.Op)
	}
	ex, ey := last.Args[4], last.Args[5]
	if !closeEnough(ex, 10) || !closeEnough(ey, 0) {
		t.Errorf("arc endpoint = (%v,%v), want (10,0)", ex, ey)
	}
}

func closeEnough(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6
}

func TestTransformLeavesCloseUnchanged(t *testing.T) {
	p, _ := Parse("M0 0 L1 1 Z")
	out := Transform(p, func(x, y float64) (float64, float64) { return x + 1, y + 2 })
	if out[2].Op != ClosePathLC && out[2].Op != ClosePath {
		t.Fatalf("expected close command unchanged")
	}
	if out[0].Args[0] != 1 || out[0].Args[1] != 2 {
		t.Errorf("move not translated: %v", out[0].Args)
	}
}
