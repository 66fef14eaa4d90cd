package pathdata

import (
	"strconv"
	"strings"
)

// token is either a command letter or a number, tagged by isOp.
type token struct {
	isOp   bool
	op     Op
	num    float64
	offset int
}

// tokenize scans an SVG path `d` string into a flat stream of command
// letters and numbers. Numbers may be separated by whitespace, a single
// comma, or nothing at all (a sign or a new decimal point is enough to end
// the previous number), matching the SVG path grammar.
func tokenize(d string) ([]token, error) {
	var toks []token
	i := 0
	n := len(d)

	isCommandLetter := func(b byte) bool {
		switch Op(b) {
		case MoveTo, MoveToRel, LineTo, LineToRel, HLineTo, HLineToRel,
			VLineTo, VLineToRel, CurveTo, CurveToRel, SmoothTo, SmoothToRel,
			QuadTo, QuadToRel, QSmoothTo, QSmoothRel, ArcTo, ArcToRel,
			ClosePath, ClosePathLC:
			return true
		}
		return false
	}

	for i < n {
		c := d[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',':
			i++
		case isCommandLetter(c):
			toks = append(toks, token{isOp: true, op: Op(c), offset: i})
			i++
		case c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9'):
			start := i
			j := i
			if d[j] == '+' || d[j] == '-' {
				j++
			}
			sawDigitOrDot := false
			for j < n && d[j] >= '0' && d[j] <= '9' {
				j++
				sawDigitOrDot = true
			}
			if j < n && d[j] == '.' {
				j++
				for j < n && d[j] >= '0' && d[j] <= '9' {
					j++
					sawDigitOrDot = true
				}
			}
			if !sawDigitOrDot {
				return nil, &ParseError{Reason: "expected digit", Offset: start}
			}
			if j < n && (d[j] == 'e' || d[j] == 'E') {
				k := j + 1
				if k < n && (d[k] == '+' || d[k] == '-') {
					k++
				}
				sawExpDigit := false
				for k < n && d[k] >= '0' && d[k] <= '9' {
					k++
					sawExpDigit = true
				}
				if sawExpDigit {
					j = k
				}
			}
			v, err := strconv.ParseFloat(d[start:j], 64)
			if err != nil {
				return nil, &ParseError{Reason: "malformed number " + strconv.Quote(d[start:j]), Offset: start}
			}
			toks = append(toks, token{isOp: false, num: v, offset: start})
			i = j
		default:
			return nil, &ParseError{Reason: "unexpected character " + strconv.QuoteRune(rune(c)), Offset: i}
		}
	}
	return toks, nil
}

// Parse consumes an SVG path `d` string and returns the ordered command
// sequence. A command letter may be followed by several argument groups,
// which repeat the command — except that after an M/m the repeated
// implicit command is L/l, not M/m, and Z/z takes no arguments and is
// never repeated.
func Parse(d string) (Path, error) {
	d = strings.TrimSpace(d)
	if d == "" {
		return nil, nil
	}
	toks, err := tokenize(d)
	if err != nil {
		return nil, err
	}

	var path Path
	i := 0
	for i < len(toks) {
		t := toks[i]
		if !t.isOp {
			return nil, &ParseError{Reason: "expected command letter, found number", Offset: t.offset}
		}
		op := t.op
		i++

		if op == ClosePath || op == ClosePathLC {
			path = append(path, Command{Op: op})
			continue
		}

		need, ok := arity(op)
		if !ok {
			return nil, &ParseError{Reason: "unrecognized command", Offset: t.offset}
		}

		implicitOp := op
		if op == MoveTo {
			implicitOp = LineTo
		} else if op == MoveToRel {
			implicitOp = LineToRel
		}

		first := true
		for {
			if i >= len(toks) || toks[i].isOp {
				break
			}
			args := make([]float64, 0, need)
			for k := 0; k < need; k++ {
				if i >= len(toks) || toks[i].isOp {
					return nil, &ParseError{Reason: "too few arguments for command", Offset: t.offset}
				}
				args = append(args, toks[i].num)
				i++
			}
			useOp := op
			if !first {
				useOp = implicitOp
			}
			path = append(path, Command{Op: useOp, Args: args})
			first = false
		}
		if first {
			return nil, &ParseError{Reason: "command with no arguments", Offset: t.offset}
		}
	}
	if len(path) > 0 {
		switch path[0].Op {
		case MoveTo, MoveToRel:
		default:
			return nil, &ParseError{Reason: "path must begin with M or m", Offset: 0}
		}
	}
	return path, nil
}
