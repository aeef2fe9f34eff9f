package harmalysis

// Syntax selects which of the two surface grammars a query is parsed
// against, per spec.md §4.5's facade.
type Syntax int

const (
	SyntaxRoman Syntax = iota
	SyntaxChordLabel
)

// Result carries the outcome of Parse. Exactly one of Harmalysis or
// Label is populated, chosen by Syntax — the closest idiomatic Go
// rendering of spec.md's union return type (Harmalysis | string).
type Result struct {
	Syntax     Syntax
	Harmalysis *Harmalysis
	Label      string
}

// Parse dispatches query to the Roman analyzer or the chord-label
// parser according to syntax, generalizing
// jhump-chords/chords.go's ParseChord/MustParseChord top-level entry
// points to the two grammars this package supports.
func (a *Analyzer) Parse(query string, syntax Syntax) (*Result, error) {
	switch syntax {
	case SyntaxRoman:
		h, err := a.ParseRoman(query)
		if err != nil {
			return nil, err
		}
		return &Result{Syntax: syntax, Harmalysis: h}, nil
	case SyntaxChordLabel:
		c, err := ParseChordLabel(query)
		if err != nil {
			return nil, err
		}
		label, err := c.Label()
		if err != nil {
			return nil, err
		}
		return &Result{Syntax: syntax, Label: label}, nil
	default:
		return nil, newError(ParseError, "syntax %d is not recognized", syntax)
	}
}

// Parse dispatches query against a package-level default Analyzer, for
// callers that don't need to carry established-key state themselves.
func Parse(query string, syntax Syntax) (*Result, error) {
	return defaultAnalyzer.Parse(query, syntax)
}
