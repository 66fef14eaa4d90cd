package pathdata

import "fmt"

// ParseError reports malformed path data: an unrecognized command letter,
// a number that fails to scan, or an argument count that does not match
// the command's arity, at the given byte offset into the source string.
type ParseError struct {
	Reason string
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pathdata: parse error at offset %d: %s", e.Offset, e.Reason)
}
