package svgdom

import "testing"

func TestParseBasic(t *testing.T) {
	root, err := ParseString(`<svg><rect x="0" y="0" width="10" height="5"/></svg>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if root.Tag != "svg" {
		t.Fatalf("root tag = %q, want svg", root.Tag)
	}
	if len(root.Children) != 1 || root.Children[0].Tag != "rect" {
		t.Fatalf("expected one rect child")
	}
	if v, _ := root.Children[0].Attr("width"); v != "10" {
		t.Errorf("width = %q, want 10", v)
	}
}

func TestXlinkHrefNormalized(t *testing.T) {
	root, err := ParseString(`<svg xmlns:xlink="http://www.w3.org/1999/xlink"><use xlink:href="#r"/></svg>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	use := root.Children[0]
	if v, ok := use.Attr("xlink:href"); !ok || v != "#r" {
		t.Errorf("xlink:href = %q, %v", v, ok)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	root, err := ParseString(`<svg><path d="M0 0 L1 1"/></svg>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out := Serialize(root)
	root2, err := ParseString(string(out))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if root2.Children[0].Tag != "path" {
		t.Fatalf("round trip lost path element")
	}
}

func TestShapesAndMaterialize(t *testing.T) {
	root, _ := ParseString(`<svg><circle r="3"/></svg>`)
	d := NewDoc(root)
	entries, err := d.Shapes()
	if err != nil {
		t.Fatalf("Shapes: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 shape, got %d", len(entries))
	}
	if d.State() != Clean {
		t.Errorf("state after build = %v, want Clean", d.State())
	}
	if err := d.Materialize(); err != nil {
		t.Fatalf("materialize: %v", err)
	}
}

func TestResolveURL(t *testing.T) {
	root, _ := ParseString(`<svg><defs><clipPath id="c"><circle r="1"/></clipPath></defs></svg>`)
	d := NewDoc(root)
	n, err := d.ResolveURL("url(#c)", "clipPath")
	if err != nil {
		t.Fatalf("ResolveURL: %v", err)
	}
	if n.Tag != "clipPath" {
		t.Errorf("resolved wrong tag %q", n.Tag)
	}
	if _, err := d.ResolveURL("url(#missing)", "clipPath"); err == nil {
		t.Errorf("expected error for missing id")
	}
}

func TestIndexedPath(t *testing.T) {
	root, _ := ParseString(`<svg><defs></defs><path d="M0 0"/></svg>`)
	p := root.Children[1]
	if got := IndexedPath(p); got != "/svg[0]/path[1]" {
		t.Errorf("IndexedPath = %q, want /svg[0]/path[1]", got)
	}
}
