package canon

import (
	"strconv"
	"strings"

	"github.com/ulgerang/nanosvg/pathdata"
	"github.com/ulgerang/nanosvg/svgdom"
)

// DefsTidy collects every linearGradient/radialGradient anywhere in the
// tree into a single fresh <defs> inserted as the root's first child, and
// removes every other <defs> element (step 7). Gradient stops are
// validated along the way: a <stop> missing `offset` or carrying an
// unparsable `stop-color` is a ParseError rather than being silently
// dropped, per SPEC_FULL.md §12 — nano output must be well-formed for the
// downstream font tooling that consumes it.
func DefsTidy(doc *svgdom.Doc) error {
	if doc.State() != svgdom.Clean {
		if err := doc.Materialize(); err != nil {
			return err
		}
	}
	gradients := svgdom.FindAll(doc.Root, "linearGradient", "radialGradient")
	for _, g := range gradients {
		for _, stop := range svgdom.FindAll(g, "stop") {
			if err := validateStop(stop); err != nil {
				return err
			}
		}
		svgdom.Remove(g)
	}

	for _, d := range svgdom.FindAll(doc.Root, "defs") {
		svgdom.Remove(d)
	}

	defs := svgdom.NewNode("defs")
	for _, g := range gradients {
		defs.AppendChild(g)
	}
	doc.Root.InsertChild(0, defs)
	return nil
}

func validateStop(stop *svgdom.Node) error {
	offset, ok := stop.Attr("offset")
	if !ok || strings.TrimSpace(offset) == "" {
		return &pathdata.ParseError{Reason: "stop missing offset", Offset: 0}
	}
	offset = strings.TrimSuffix(strings.TrimSpace(offset), "%")
	if _, err := strconv.ParseFloat(offset, 64); err != nil {
		return &pathdata.ParseError{Reason: "stop offset " + strconv.Quote(offset) + " is not a number", Offset: 0}
	}
	if color, ok := stop.Attr("stop-color"); ok && strings.TrimSpace(color) != "" {
		if !looksLikeColor(color) {
			return &pathdata.ParseError{Reason: "stop stop-color " + strconv.Quote(color) + " is not recognizable", Offset: 0}
		}
	}
	return nil
}

// looksLikeColor accepts the handful of stop-color forms this pipeline
// actually needs to round-trip: #rgb, #rrggbb, rgb(...)/rgba(...), and
// bare CSS color keywords (anything alphabetic). It does not resolve the
// color to a value — §1 explicitly scopes a real color parser out of
// this repository's CORE.
func looksLikeColor(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		for _, r := range hex {
			if !isHexDigit(byte(r)) {
				return false
			}
		}
		return true
	}
	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return strings.HasSuffix(s, ")")
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '-') {
			return false
		}
	}
	return true
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
