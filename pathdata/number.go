package pathdata

import (
	"strconv"
	"strings"
)

// FormatNumber is the single canonical decimal formatter used everywhere a
// coordinate or length is written out: fixed notation, never scientific,
// trailing zeros and a trailing decimal point stripped, and negative zero
// normalized to zero, so round-trip output is byte-stable.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = trimTrailingZeros(s)
	if s == "-0" {
		return "0"
	}
	return s
}

func trimTrailingZeros(s string) string {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		end := len(s)
		for end > i+1 && s[end-1] == '0' {
			end--
		}
		if end == i+1 {
			end = i
		}
		s = s[:end]
	}
	return s
}
