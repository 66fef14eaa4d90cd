package pathdata

// Canonicalize parses d and reduces it to absolute, explicit, arc-free
// form: tokenize, then ExplicitLines, ExpandShorthand, Absolute,
// ArcToCubic, in that fixed order. ExpandShorthand must run before
// Absolute because the reflected control point it computes is defined in
// absolute coordinates; ArcToCubic requires an absolute path.
func Canonicalize(d string) (Path, error) {
	p, err := Parse(d)
	if err != nil {
		return nil, err
	}
	p = ExplicitLines(p)
	p = ExpandShorthand(p)
	p = Absolute(p)
	p = ArcToCubic(p)
	return p, nil
}
