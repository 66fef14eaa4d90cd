package shape

import "testing"

func TestFromElementDefaults(t *testing.T) {
	s, err := FromElement("circle", map[string]string{"r": "3"})
	if err != nil {
		t.Fatalf("FromElement: %v", err)
	}
	c, ok := s.(Circle)
	if !ok {
		t.Fatalf("expected Circle, got %T", s)
	}
	if c.R != 3 {
		t.Errorf("r = %v, want 3", c.R)
	}
	if c.Fill != "black" || c.Opacity != 1 {
		t.Errorf("defaults not applied: fill=%q opacity=%v", c.Fill, c.Opacity)
	}
}

func TestToElementSuppressesDefaults(t *testing.T) {
	s := Circle{Paint: DefaultPaint, Cx: 5, Cy: 5, R: 3}
	tag, attrs := ToElement(s)
	if tag != "circle" {
		t.Fatalf("tag = %q, want circle", tag)
	}
	for _, a := range attrs {
		if a.Name == "fill" {
			t.Errorf("default fill should be suppressed, got attribute %v", a)
		}
	}
}

func TestAsPathIdempotent(t *testing.T) {
	shapes := []Shape{
		Circle{Paint: DefaultPaint, Cx: 5, Cy: 5, R: 3},
		Rect{Paint: DefaultPaint, X: 0, Y: 0, Width: 10, Height: 5},
		Line{Paint: DefaultPaint, X1: 0, Y1: 0, X2: 10, Y2: 10},
	}
	for _, s := range shapes {
		p1, err := AsPath(s)
		if err != nil {
			t.Fatalf("AsPath: %v", err)
		}
		p2, err := AsPath(p1)
		if err != nil {
			t.Fatalf("AsPath(AsPath): %v", err)
		}
		if p1.D != p2.D {
			t.Errorf("AsPath not idempotent for %v: %q vs %q", s.Kind(), p1.D, p2.D)
		}
	}
}

func TestRectToPath(t *testing.T) {
	r := Rect{Paint: DefaultPaint, X: 0, Y: 0, Width: 10, Height: 5}
	p, err := AsPath(r)
	if err != nil {
		t.Fatalf("AsPath: %v", err)
	}
	want := "M0 0 H10 V5 H0 Z"
	if p.D != want {
		t.Errorf("rect path = %q, want %q", p.D, want)
	}
}

func TestVisible(t *testing.T) {
	invisible := Circle{Paint: DefaultPaint, R: 1}
	invisible.Fill = "none"
	invisible.Stroke = "none"
	if Visible(invisible) {
		t.Errorf("expected invisible shape")
	}
	visible := Circle{Paint: DefaultPaint, R: 1}
	if !Visible(visible) {
		t.Errorf("expected default-painted shape to be visible")
	}
}
