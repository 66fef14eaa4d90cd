package svgdom

import "fmt"

// ResolutionError reports a url(#id)-style reference that failed to
// resolve to exactly one element of the expected tag.
type ResolutionError struct {
	Ref    string
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("svgdom: cannot resolve %q: %s", e.Ref, e.Reason)
}
