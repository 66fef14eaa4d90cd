package svgdom

import (
	"strconv"
	"strings"
)

func splitViewBox(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
}

func parseFloatStrict(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
