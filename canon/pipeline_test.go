package canon

import (
	"errors"
	"math"
	"testing"

	"github.com/ulgerang/nanosvg/pathdata"
	"github.com/ulgerang/nanosvg/pathops"
	"github.com/ulgerang/nanosvg/svgdom"
)

func mustDoc(t *testing.T, src string) *svgdom.Doc {
	t.Helper()
	root, err := svgdom.ParseString(src)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return svgdom.NewDoc(root)
}

func pathsOf(t *testing.T, doc *svgdom.Doc) []*svgdom.Node {
	t.Helper()
	return svgdom.FindAll(doc.Root, "path")
}

// S1 — rect to path.
func TestToNanoSVG_RectToPath(t *testing.T) {
	doc := mustDoc(t, `<svg><rect x="0" y="0" width="10" height="5"/></svg>`)
	if err := ToNanoSVG(doc); err != nil {
		t.Fatalf("ToNanoSVG: %v", err)
	}
	paths := pathsOf(t, doc)
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(paths))
	}
	d, _ := paths[0].Attr("d")
	minX, minY, maxX, maxY := boundsOf(t, d)
	if minX != 0 || minY != 0 || maxX != 10 || maxY != 5 {
		t.Errorf("bounds = (%v,%v)-(%v,%v), want (0,0)-(10,5)", minX, minY, maxX, maxY)
	}
	if fill, _ := paths[0].Attr("fill"); fill != "" {
		t.Errorf("fill = %q, want unset (default black)", fill)
	}
}

// S2 — <use> expansion.
func TestToNanoSVG_UseExpansion(t *testing.T) {
	doc := mustDoc(t, `<svg><defs><rect id="r" width="4" height="4"/></defs><use xlink:href="#r" x="3" y="0"/></svg>`)
	if err := ToNanoSVG(doc); err != nil {
		t.Fatalf("ToNanoSVG: %v", err)
	}
	paths := pathsOf(t, doc)
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(paths))
	}
	d, _ := paths[0].Attr("d")
	minX, minY, maxX, maxY := boundsOf(t, d)
	if minX != 3 || minY != 0 || maxX != 7 || maxY != 4 {
		t.Errorf("bounds = (%v,%v)-(%v,%v), want (3,0)-(7,4)", minX, minY, maxX, maxY)
	}
}

// S3 — clip-path intersection.
func TestToNanoSVG_ClipPath(t *testing.T) {
	doc := mustDoc(t, `<svg>
		<defs><clipPath id="c"><circle cx="5" cy="5" r="5"/></clipPath></defs>
		<rect width="10" height="10" clip-path="url(#c)"/>
	</svg>`)
	if err := ToNanoSVG(doc); err != nil {
		t.Fatalf("ToNanoSVG: %v", err)
	}
	paths := pathsOf(t, doc)
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(paths))
	}
	d, _ := paths[0].Attr("d")
	minX, minY, maxX, maxY := boundsOf(t, d)
	if math.Abs(minX-0) > 1 || math.Abs(minY-0) > 1 || math.Abs(maxX-10) > 1 || math.Abs(maxY-10) > 1 {
		t.Errorf("bounds = (%v,%v)-(%v,%v), want approximately (0,0)-(10,10)", minX, minY, maxX, maxY)
	}
	for _, attr := range []string{"clip-path"} {
		if v, ok := paths[0].Attr(attr); ok {
			t.Errorf("output still carries %s=%q", attr, v)
		}
	}
}

// S4 — group attribute inheritance.
func TestToNanoSVG_GroupInheritance(t *testing.T) {
	doc := mustDoc(t, `<svg><g fill="red" opacity="0.5"><circle cx="0" cy="0" r="3" opacity="0.4"/></g></svg>`)
	if err := ToNanoSVG(doc); err != nil {
		t.Fatalf("ToNanoSVG: %v", err)
	}
	paths := pathsOf(t, doc)
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(paths))
	}
	if fill, _ := paths[0].Attr("fill"); fill != "red" {
		t.Errorf("fill = %q, want red", fill)
	}
	if opacity, _ := paths[0].Attr("opacity"); opacity != "0.2" {
		t.Errorf("opacity = %q, want 0.2", opacity)
	}
}

// S5 — stroke conversion.
func TestToNanoSVG_StrokeConversion(t *testing.T) {
	doc := mustDoc(t, `<svg><line x1="0" y1="0" x2="10" y2="0" stroke="black" stroke-width="2" fill="none"/></svg>`)
	if err := ToNanoSVG(doc); err != nil {
		t.Fatalf("ToNanoSVG: %v", err)
	}
	paths := pathsOf(t, doc)
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1 (fill=none original is discarded)", len(paths))
	}
	for _, attr := range []string{"stroke", "stroke-width"} {
		if v, ok := paths[0].Attr(attr); ok {
			t.Errorf("output still carries %s=%q", attr, v)
		}
	}
	d, _ := paths[0].Attr("d")
	minX, minY, maxX, maxY := boundsOf(t, d)
	if math.Abs((maxX-minX)-10) > 0.5 || math.Abs((maxY-minY)-2) > 0.5 {
		t.Errorf("outline size = %vx%v, want approximately 10x2", maxX-minX, maxY-minY)
	}
}

// S6 — transform application (apply_transforms then ToNanoSVG).
func TestApplyTransforms_ThenToNanoSVG(t *testing.T) {
	doc := mustDoc(t, `<svg><g transform="translate(5,5) scale(2)"><rect width="1" height="1"/></g></svg>`)
	if err := ApplyTransforms(doc); err != nil {
		t.Fatalf("ApplyTransforms: %v", err)
	}
	if err := ToNanoSVG(doc); err != nil {
		t.Fatalf("ToNanoSVG: %v", err)
	}
	paths := pathsOf(t, doc)
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(paths))
	}
	d, _ := paths[0].Attr("d")
	minX, minY, maxX, maxY := boundsOf(t, d)
	if minX != 5 || minY != 5 || maxX != 7 || maxY != 7 {
		t.Errorf("bounds = (%v,%v)-(%v,%v), want (5,5)-(7,7)", minX, minY, maxX, maxY)
	}
}

func TestRemoveUnpaintedShapes(t *testing.T) {
	doc := mustDoc(t, `<svg><rect width="5" height="5" fill="none" stroke="none"/><rect width="5" height="5"/></svg>`)
	if err := ToNanoSVG(doc); err != nil {
		t.Fatalf("ToNanoSVG: %v", err)
	}
	if got := len(pathsOf(t, doc)); got != 1 {
		t.Fatalf("got %d paths, want 1 (invisible rect dropped)", got)
	}
}

func TestToNanoSVG_GroupWithTransformErrors(t *testing.T) {
	doc := mustDoc(t, `<svg><g transform="translate(1,1)"><rect width="1" height="1"/></g></svg>`)
	err := ToNanoSVG(doc)
	var inheritErr *InheritError
	if !errors.As(err, &inheritErr) {
		t.Errorf("error = %v, want *InheritError", err)
	}
}

func TestToNanoSVG_Idempotent(t *testing.T) {
	doc := mustDoc(t, `<svg><g fill="blue"><circle cx="2" cy="2" r="2"/><rect x="5" y="5" width="3" height="3"/></g></svg>`)
	if err := ToNanoSVG(doc); err != nil {
		t.Fatalf("first ToNanoSVG: %v", err)
	}
	first := svgdom.Serialize(doc.Root)

	doc2 := svgdom.NewDoc(svgdom.DeepCopy(doc.Root))
	if err := ToNanoSVG(doc2); err != nil {
		t.Fatalf("second ToNanoSVG: %v", err)
	}
	second := svgdom.Serialize(doc2.Root)
	if string(first) != string(second) {
		t.Errorf("ToNanoSVG is not idempotent:\n%s\nvs\n%s", first, second)
	}
}

func boundsOf(t *testing.T, d string) (minX, minY, maxX, maxY float64) {
	t.Helper()
	canonical, err := pathdata.Canonicalize(d)
	if err != nil {
		t.Fatalf("canonicalize %q: %v", d, err)
	}
	return pathops.Bounds(canonical)
}
