// Package validate implements the nano SVG schema check (C6): a document
// is admissible when every element's indexed xpath matches the fixed
// nano shape — root svg, one defs of gradients, then a flat run of paths.
package validate

import (
	"regexp"

	"github.com/ulgerang/nanosvg/svgdom"
)

// Violation reports a single element whose indexed xpath does not match
// the nano schema.
type Violation struct {
	XPath  string
	Reason string
}

func (v Violation) Error() string {
	return "validate: " + v.XPath + ": " + v.Reason
}

// NanoViolation is the error kind returned by Validate: the non-empty
// list of schema violations Check found in the document.
type NanoViolation struct {
	Violations []Violation
}

func (e *NanoViolation) Error() string {
	if len(e.Violations) == 1 {
		return e.Violations[0].Error()
	}
	return "validate: " + e.Violations[0].Error() + " (+more)"
}

var (
	reRoot     = regexp.MustCompile(`^/svg\[0\]$`)
	reDefs     = regexp.MustCompile(`^/svg\[0\]/defs\[0\]$`)
	reGradient = regexp.MustCompile(`^/svg\[0\]/defs\[0\]/(linear|radial)Gradient\[\d+\]$`)
	reStop     = regexp.MustCompile(`^/svg\[0\]/defs\[0\]/(linear|radial)Gradient\[\d+\]/stop\[\d+\]$`)
	rePath     = regexp.MustCompile(`^/svg\[0\]/path\[([1-9]\d*)\]$`)
)

// allowed reports whether xpath matches one of the five nano productions.
func allowed(xpath string) bool {
	switch {
	case reRoot.MatchString(xpath), reDefs.MatchString(xpath),
		reGradient.MatchString(xpath), reStop.MatchString(xpath):
		return true
	case rePath.MatchString(xpath):
		return true
	}
	return false
}

// Check walks root and returns one Violation per element whose indexed
// xpath is not part of the nano schema. An empty result means the
// document is valid nano.
func Check(root *svgdom.Node) []Violation {
	var out []Violation
	svgdom.Walk(root, func(n *svgdom.Node) {
		xp := svgdom.IndexedPath(n)
		if !allowed(xp) {
			out = append(out, Violation{XPath: xp, Reason: "element not permitted by nano schema: <" + n.Tag + ">"})
		}
	})
	return out
}

// Validate returns a *NanoViolation error when Check finds any violation,
// or nil when root is valid nano.
func Validate(root *svgdom.Node) error {
	if v := Check(root); len(v) > 0 {
		return &NanoViolation{Violations: v}
	}
	return nil
}
