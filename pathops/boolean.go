package pathops

import (
	"math"

	"github.com/ulgerang/nanosvg/pathdata"
)

// BooleanOpError reports a failure inside the boolean path engine: a
// stroke with a non-positive width, or an unknown clip operation.
// Contours with fewer than three points after flattening are skipped,
// not reported.
type BooleanOpError struct {
	Op     string
	Reason string
}

func (e *BooleanOpError) Error() string {
	return "pathops: " + e.Op + ": " + e.Reason
}

// Union returns the set union of every path in paths, each flattened to
// its constituent polygons first. Overlapping contours are merged
// pairwise via Greiner-Hormann clipping; disjoint contours are kept side
// by side in the result.
func Union(paths []pathdata.Path) (pathdata.Path, error) {
	var contours []Polygon
	for _, p := range paths {
		contours = append(contours, Flatten(p)...)
	}
	merged, err := unionContours(contours)
	if err != nil {
		return nil, err
	}
	return ToPath(merged), nil
}

// Intersection returns the set intersection of every path in paths. Each
// path's own contours are first unioned into that path's region (so a
// path with several overlapping subpaths behaves as one shape), then the
// per-path regions are intersected pairwise.
func Intersection(paths []pathdata.Path) (pathdata.Path, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	result, err := unionContours(Flatten(paths[0]))
	if err != nil {
		return nil, err
	}
	for _, p := range paths[1:] {
		region, err := unionContours(Flatten(p))
		if err != nil {
			return nil, err
		}
		result, err = intersectContourSets(result, region)
		if err != nil {
			return nil, err
		}
		if len(result) == 0 {
			break
		}
	}
	return ToPath(result), nil
}

// unionContours folds contours into a minimal set of non-overlapping
// polygons by greedily merging each new contour into the first
// accumulated contour whose bounding box it overlaps. This is not a fully
// general polygon-set union (a contour touching two disjoint accumulated
// islands at once is merged into only the first), but it is exact for the
// contour counts this pipeline ever produces (a handful of gradient/clip
// shapes per group).
func unionContours(contours []Polygon) ([]Polygon, error) {
	var result []Polygon
	for _, c := range contours {
		if len(c) < 3 {
			continue
		}
		merged := false
		for i, r := range result {
			if !bboxOverlap(r, c) {
				continue
			}
			out, ok, err := clipPolygons(r, c, opUnion)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			result[i] = out[0]
			result = append(result, out[1:]...)
			merged = true
			break
		}
		if !merged {
			result = append(result, c)
		}
	}
	return result, nil
}

// intersectContourSets intersects every contour of a against every contour
// of b, keeping only non-empty results.
func intersectContourSets(a, b []Polygon) ([]Polygon, error) {
	var out []Polygon
	for _, ca := range a {
		for _, cb := range b {
			if !bboxOverlap(ca, cb) {
				continue
			}
			res, ok, err := clipPolygons(ca, cb, opIntersection)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, res...)
			}
		}
	}
	return out, nil
}

func bboxOverlap(a, b Polygon) bool {
	aMinX, aMinY, aMaxX, aMaxY := polyBounds(a)
	bMinX, bMinY, bMaxX, bMaxY := polyBounds(b)
	return aMinX <= bMaxX && bMinX <= aMaxX && aMinY <= bMaxY && bMinY <= aMaxY
}

func polyBounds(p Polygon) (minX, minY, maxX, maxY float64) {
	minX, minY = p[0].X, p[0].Y
	maxX, maxY = minX, minY
	for _, pt := range p[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return
}

// clipOp selects the boolean semantics for clipPolygons.
type clipOp int

const (
	opIntersection clipOp = iota
	opUnion
)

// vertex is one node of a Greiner-Hormann polygon vertex list: a circular
// doubly-linked list of the polygon's own points, with inserted
// intersection vertices carrying a link to the matching vertex on the
// other polygon's list.
type vertex struct {
	pt           Pt
	next, prev   *vertex
	neighbor     *vertex
	intersection bool
	entry        bool
	visited      bool
	alpha        float64
}

func buildList(poly Polygon) *vertex {
	var head, tail *vertex
	for _, p := range poly {
		v := &vertex{pt: p}
		if head == nil {
			head = v
		} else {
			tail.next = v
			v.prev = tail
		}
		tail = v
	}
	tail.next = head
	head.prev = tail
	return head
}

func forEach(head *vertex, fn func(*vertex)) {
	v := head
	for {
		next := v.next
		fn(v)
		if next == head {
			break
		}
		v = next
	}
}

// segIntersect computes the intersection of open segments (p1,p2) and
// (p3,p4), returning the interpolation parameters along each and the
// point, when it exists strictly inside both segments.
func segIntersect(p1, p2, p3, p4 Pt) (t, u float64, pt Pt, ok bool) {
	const eps = 1e-9
	dx1, dy1 := p2.X-p1.X, p2.Y-p1.Y
	dx2, dy2 := p4.X-p3.X, p4.Y-p3.Y
	denom := dx1*dy2 - dy1*dx2
	if math.Abs(denom) < eps {
		return 0, 0, Pt{}, false
	}
	dx3, dy3 := p1.X-p3.X, p1.Y-p3.Y
	t = (dx2*dy3 - dy2*dx3) / denom
	u = (dx1*dy3 - dy1*dx3) / denom
	if t <= eps || t >= 1-eps || u <= eps || u >= 1-eps {
		return 0, 0, Pt{}, false
	}
	pt = Pt{p1.X + t*dx1, p1.Y + t*dy1}
	return t, u, pt, true
}

// pointInPolygon reports whether pt lies inside poly via even-odd ray
// casting.
func pointInPolygon(pt Pt, poly Polygon) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			xint := (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if pt.X < xint {
				inside = !inside
			}
		}
	}
	return inside
}

// insertIntersection inserts nv into the edge that starts at edgeStart,
// ordered by nv.alpha among any other intersections already inserted into
// that same edge.
func insertIntersection(edgeStart *vertex, edgeEndOriginal *vertex, nv *vertex) {
	cur := edgeStart
	for cur.next != edgeEndOriginal && cur.next.alpha < nv.alpha {
		cur = cur.next
	}
	nv.next = cur.next
	nv.prev = cur
	cur.next.prev = nv
	cur.next = nv
}

// clipPolygons runs the Greiner-Hormann algorithm over two simple, single
// contour polygons, returning the resulting contour(s) for the requested
// operation. ok is false when the two polygons do not actually intersect
// (in which case the caller should treat them as disjoint/unmerged).
func clipPolygons(subject, clipPoly Polygon, op clipOp) ([]Polygon, bool, error) {
	subjHead := buildList(subject)
	clipHead := buildList(clipPoly)

	type edge struct{ start, end *vertex }
	subjEdges := make([]edge, 0, len(subject))
	forEach(subjHead, func(v *vertex) { subjEdges = append(subjEdges, edge{v, v.next}) })
	clipEdges := make([]edge, 0, len(clipPoly))
	forEach(clipHead, func(v *vertex) { clipEdges = append(clipEdges, edge{v, v.next}) })

	found := false
	for _, se := range subjEdges {
		for _, ce := range clipEdges {
			t, u, pt, ok := segIntersect(se.start.pt, se.end.pt, ce.start.pt, ce.end.pt)
			if !ok {
				continue
			}
			found = true
			sv := &vertex{pt: pt, intersection: true, alpha: t}
			cv := &vertex{pt: pt, intersection: true, alpha: u}
			sv.neighbor = cv
			cv.neighbor = sv
			insertIntersection(se.start, se.end, sv)
			insertIntersection(ce.start, ce.end, cv)
		}
	}
	if !found {
		// No boundary crossings: either disjoint, or one fully contains
		// the other (or they are identical / non-overlapping opposite
		// contours under this approximation). Handle via containment.
		return noCrossingResult(subject, clipPoly, op)
	}

	invert := op == opUnion
	markEntries(subjHead, clipPoly, invert)
	markEntries(clipHead, subject, invert)

	var results []Polygon
	forEach(subjHead, func(start *vertex) {
		if !start.intersection || start.visited {
			return
		}
		var poly Polygon
		cur := start
		for {
			cur.visited = true
			poly = append(poly, cur.pt)
			if cur.entry {
				cur = cur.next
				for !cur.intersection {
					cur.visited = true
					poly = append(poly, cur.pt)
					cur = cur.next
				}
			} else {
				cur = cur.prev
				for !cur.intersection {
					cur.visited = true
					poly = append(poly, cur.pt)
					cur = cur.prev
				}
			}
			cur.visited = true
			cur = cur.neighbor
			if cur == start {
				break
			}
		}
		if len(poly) >= 3 {
			results = append(results, poly)
		}
	})
	if len(results) == 0 {
		return nil, false, nil
	}
	return results, true, nil
}

// markEntries assigns the entry/exit flag to every intersection vertex in
// list by walking it in order and tracking whether the current point lies
// inside other, flipping at each crossing. invert swaps the sense, which
// turns the same traversal into a union instead of an intersection.
func markEntries(head *vertex, other Polygon, invert bool) {
	inside := pointInPolygon(head.pt, other)
	forEach(head, func(v *vertex) {
		if v.intersection {
			entry := !inside
			if invert {
				entry = !entry
			}
			v.entry = entry
			inside = !inside
		}
	})
}

// noCrossingResult handles the case where no edge of subject crosses any
// edge of clipPoly: the polygons are either disjoint or one fully
// contains the other.
func noCrossingResult(subject, clipPoly Polygon, op clipOp) ([]Polygon, bool, error) {
	subjInClip := pointInPolygon(subject[0], clipPoly)
	clipInSubj := pointInPolygon(clipPoly[0], subject)
	switch op {
	case opIntersection:
		if subjInClip {
			return []Polygon{subject}, true, nil
		}
		if clipInSubj {
			return []Polygon{clipPoly}, true, nil
		}
		return nil, false, nil
	case opUnion:
		if subjInClip {
			return []Polygon{clipPoly}, true, nil
		}
		if clipInSubj {
			return []Polygon{subject}, true, nil
		}
		return nil, false, nil
	default:
		return nil, false, &BooleanOpError{Op: "clip", Reason: "unknown operation"}
	}
}
