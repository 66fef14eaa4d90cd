// Package canon implements the canonicalization pipeline (C5): the fixed
// sequence of tree rewrites that reduce an arbitrary SVG document to the
// nano subset validated by package validate.
package canon

import "fmt"

// InheritError reports a <g> carrying an attribute the ungroup pass has
// no inheritance rule for.
type InheritError struct {
	XPath string
	Attr  string
}

func (e *InheritError) Error() string {
	return fmt.Sprintf("canon: %s: unable to process group attribute %q", e.XPath, e.Attr)
}

// BooleanOpError wraps a failure from the path-ops adapter (union,
// intersection or stroke) with the pipeline step that triggered it.
type BooleanOpError struct {
	Step string
	Err  error
}

func (e *BooleanOpError) Error() string {
	return "canon: " + e.Step + ": " + e.Err.Error()
}

func (e *BooleanOpError) Unwrap() error { return e.Err }
