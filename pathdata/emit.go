package pathdata

import "strings"

// Emit renders a command sequence back to canonical path-data text: a
// single-letter op immediately followed by its space-separated, compactly
// formatted arguments ("M0 0 H10"), one command group per letter.
func Emit(p Path) string {
	var b strings.Builder
	for i, c := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(c.Op))
		for j, a := range c.Args {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(FormatNumber(a))
		}
	}
	return b.String()
}
