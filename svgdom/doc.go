package svgdom

import (
	"fmt"
	"strings"

	"github.com/ulgerang/nanosvg/shape"
)

// ShapeTags lists the local tag names of the seven SVG primitive shapes
// the façade's cache and the shape package both recognize.
var ShapeTags = []string{"circle", "ellipse", "line", "rect", "polygon", "polyline", "path"}

// CacheState tracks whether Doc's shape cache is in sync with the DOM
// (Clean — either the cache is empty and the DOM is authoritative, or it
// was just built and nothing has mutated it) or has been written to since
// it was built (Dirty — Materialize must run before the DOM can be
// trusted again).
type CacheState int

const (
	Clean CacheState = iota
	Dirty
)

// ShapeEntry pairs a shape with the element it was read from (or will be
// written back to).
type ShapeEntry struct {
	Element *Node
	Shape   shape.Shape
}

// Doc is the SVG tree façade: it owns the root element and an optional
// cached list of (element, shape) pairs.
type Doc struct {
	Root  *Node
	cache []ShapeEntry
	state CacheState
}

// NewDoc wraps root in a façade with an empty, Clean cache.
func NewDoc(root *Node) *Doc {
	return &Doc{Root: root, state: Clean}
}

// State reports the current cache state.
func (d *Doc) State() CacheState { return d.state }

// Shapes returns the cached list of shapes in document order, building it
// by iterating elements and materializing them via shape.FromElement if
// the cache is currently empty.
func (d *Doc) Shapes() ([]ShapeEntry, error) {
	if d.cache == nil {
		entries, err := buildCache(d.Root)
		if err != nil {
			return nil, err
		}
		d.cache = entries
	}
	return d.cache, nil
}

func buildCache(root *Node) ([]ShapeEntry, error) {
	elems := FindAll(root, ShapeTags...)
	entries := make([]ShapeEntry, 0, len(elems))
	for _, el := range elems {
		s, err := shape.FromElement(el.Tag, el.AttrMap())
		if err != nil {
			return nil, err
		}
		entries = append(entries, ShapeEntry{Element: el, Shape: s})
	}
	return entries, nil
}

// MutateShapes calls fn with the current shape list (building the cache
// first if needed) and lets it replace any entries in place; the façade
// transitions to Dirty regardless of whether fn changed anything, since
// the contract is "you asked to mutate."
func (d *Doc) MutateShapes(fn func([]ShapeEntry) ([]ShapeEntry, error)) error {
	entries, err := d.Shapes()
	if err != nil {
		return err
	}
	out, err := fn(entries)
	if err != nil {
		return err
	}
	d.cache = out
	d.state = Dirty
	return nil
}

// Materialize writes back any cached shape mutations by constructing new
// elements via shape.ToElement and swapping them in place, preserving
// document order, then drops the cache and returns the façade to Clean.
// Every rewrite pass in the canonicalization pipeline leaves the façade
// Clean before the next pass runs: passes that rewrite shapes through
// MutateShapes call Materialize, and passes that restructure the tree
// call Reset.
func (d *Doc) Materialize() error {
	if d.cache == nil {
		d.state = Clean
		return nil
	}
	for _, entry := range d.cache {
		if entry.Element == nil {
			continue // a shape synthesized mid-pipeline with no backing element yet
		}
		tag, attrs := shape.ToElement(entry.Shape)
		entry.Element.Tag = tag
		entry.Element.Attrs = nil
		for _, a := range attrs {
			entry.Element.SetAttr(a.Name, a.Value)
		}
	}
	d.cache = nil
	d.state = Clean
	return nil
}

// Reset drops the cache without writing it back, on the assumption the
// caller already made the DOM authoritative by mutating Nodes directly.
// Passes that restructure the tree in ways Materialize's 1:1 element
// rewrite cannot express (inserting or removing elements, not just
// rewriting one in place) use this to re-establish the Clean invariant.
func (d *Doc) Reset() {
	d.cache = nil
	d.state = Clean
}

// ResolveURL resolves a `url(#id)` style reference to the unique
// descendant element of the given tag carrying that id, failing if there
// are zero or multiple matches.
func (d *Doc) ResolveURL(url, tag string) (*Node, error) {
	id, ok := parseURLRef(url)
	if !ok {
		return nil, &ResolutionError{Ref: url, Reason: "not a #fragment url() reference"}
	}
	var matches []*Node
	for _, n := range FindAll(d.Root, tag) {
		if v, _ := n.Attr("id"); v == id {
			matches = append(matches, n)
		}
	}
	switch len(matches) {
	case 0:
		return nil, &ResolutionError{Ref: url, Reason: fmt.Sprintf("no <%s id=%q> found", tag, id)}
	case 1:
		return matches[0], nil
	default:
		return nil, &ResolutionError{Ref: url, Reason: fmt.Sprintf("multiple <%s id=%q> found", tag, id)}
	}
}

func parseURLRef(s string) (string, bool) {
	s = strings.TrimSpace(s)
	const prefix = "url(#"
	if strings.HasPrefix(s, prefix) {
		rest := s[len(prefix):]
		if i := strings.IndexByte(rest, ')'); i >= 0 {
			return rest[:i], true
		}
	}
	if len(s) > 0 && s[0] == '#' {
		return s[1:], true
	}
	return "", false
}

// ViewBox is the parsed 4-tuple of a root's viewBox attribute.
type ViewBox struct {
	MinX, MinY, Width, Height float64
}

// ViewBoxOf parses the root's viewBox attribute, if present.
func (d *Doc) ViewBoxOf() (ViewBox, bool, error) {
	v, ok := d.Root.Attr("viewBox")
	if !ok {
		return ViewBox{}, false, nil
	}
	fields := splitViewBox(v)
	if len(fields) != 4 {
		return ViewBox{}, false, fmt.Errorf("svgdom: malformed viewBox %q", v)
	}
	nums := make([]float64, 4)
	for i, f := range fields {
		n, err := parseFloatStrict(f)
		if err != nil {
			return ViewBox{}, false, fmt.Errorf("svgdom: malformed viewBox %q: %w", v, err)
		}
		nums[i] = n
	}
	return ViewBox{MinX: nums[0], MinY: nums[1], Width: nums[2], Height: nums[3]}, true, nil
}
