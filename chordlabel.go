package harmalysis

import "strings"

// phraseToTriad and phraseToSeventh are the chord-label grammar's word
// productions, named after
// original_source/harmalysis/parsers/chordlabel.py (major_triad_chord,
// dominant_seventh_chord, italian_augmented_sixth, ...), reimplemented as
// a small table match rather than a Lark grammar per spec.md §6.
var phraseToTriad = map[string]TriadQuality{
	"major":      MajorTriad,
	"minor":      MinorTriad,
	"diminished": DiminishedTriad,
	"augmented":  AugmentedTriad,
}

var phraseToSeventh = map[string]struct {
	triad   TriadQuality
	seventh Quality
}{
	"dominant seventh":        {MajorTriad, Min},
	"major seventh":           {MajorTriad, Maj},
	"minor seventh":           {MinorTriad, Min},
	"minor major seventh":     {MinorTriad, Maj},
	"fully-diminished seventh": {DiminishedTriad, D},
	"half-diminished seventh": {DiminishedTriad, Min},
	"augmented major seventh": {AugmentedTriad, Maj},
	"augmented seventh":       {AugmentedTriad, Min},
}

var specialLabelPhrases = map[string]ChordKind{
	"italian augmented sixth":             AugmentedSixthChord,
	"french augmented sixth":              AugmentedSixthChord,
	"german augmented sixth":              AugmentedSixthChord,
	"neapolitan sixth":                    NeapolitanChord,
	"cadential six-four":                  CadentialSixFourChord,
	"common-tone diminished seventh":      CommonToneDiminishedChord,
	"common-tone diminished seventh (dominant)": CommonToneDiminishedChord,
}

// ParseChordLabel parses a chord-label string of the form
// "<root><alteration?> <quality words>" and returns the resolved chord,
// built with no governing key directly from the named root and quality,
// per spec.md §4.4.
func ParseChordLabel(label string) (*Chord, error) {
	label = strings.TrimSpace(label)
	parts := strings.SplitN(label, " ", 2)
	if len(parts) != 2 {
		return nil, newParseError(0, "chord label %q is missing a quality phrase", label)
	}
	rootToken, phrase := parts[0], strings.TrimSpace(parts[1])

	root, err := parseRootToken(rootToken)
	if err != nil {
		return nil, err
	}

	if kind, ok := specialLabelPhrases[phrase]; ok {
		return buildSpecialFromPhrase(root, kind, phrase)
	}

	if pair, ok := phraseToSeventh[phrase]; ok {
		c := NewDescriptiveChord(root)
		c.Kind = TertianChord
		c.Root = &root
		if err := c.SetTriadQuality(pair.triad); err != nil {
			return nil, err
		}
		if err := c.AddInterval(7, pair.seventh); err != nil {
			return nil, err
		}
		return c, nil
	}

	if triad, ok := phraseToTriad[phrase]; ok {
		c := NewDescriptiveChord(root)
		c.Kind = TertianChord
		c.Root = &root
		if err := c.SetTriadQuality(triad); err != nil {
			return nil, err
		}
		return c, nil
	}

	return nil, newParseError(0, "%q is not a recognized chord-label quality phrase", phrase)
}

func parseRootToken(token string) (PitchClass, error) {
	s := newScanner(token)
	if s.eof() || !isAlpha(s.peek()) {
		return PitchClass{}, newParseError(0, "chord label root %q does not begin with a note letter", token)
	}
	letter := toUpperLetter(s.next())
	altStr := s.scanAlteration()
	alt, err := ParseAlteration(altStr)
	if err != nil {
		return PitchClass{}, err
	}
	return NewPitchClass(letter, alt)
}

// buildSpecialFromPhrase reconstructs the fixed-shape chords the label
// grammar names without a governing key (the descriptive form: root is
// taken literally from the label rather than resolved from a scale
// degree).
func buildSpecialFromPhrase(root PitchClass, kind ChordKind, phrase string) (*Chord, error) {
	c := &Chord{Kind: kind, Root: &root, Intervals: map[int]Interval{}, Missing: map[int]bool{}}
	switch {
	case phrase == "italian augmented sixth":
		c.AugmentedSixthKind = ItalianSixth
		third, _ := NewInterval(D, 3)
		fifth, _ := NewInterval(D, 5)
		c.Intervals[3] = third
		c.Intervals[5] = fifth
	case phrase == "french augmented sixth":
		c.AugmentedSixthKind = FrenchSixth
		third, _ := NewInterval(D, 3)
		fifth, _ := NewInterval(D, 5)
		sixth, _ := NewInterval(Min, 6)
		c.Intervals[3] = third
		c.Intervals[5] = fifth
		c.Intervals[6] = sixth
	case phrase == "german augmented sixth":
		c.AugmentedSixthKind = GermanSixth
		third, _ := NewInterval(D, 3)
		fifth, _ := NewInterval(D, 5)
		seventh, _ := NewInterval(D, 7)
		c.Intervals[3] = third
		c.Intervals[5] = fifth
		c.Intervals[7] = seventh
	case phrase == "neapolitan sixth":
		c.TriadQuality = MajorTriad
		third, fifth, err := triadIntervals(MajorTriad)
		if err != nil {
			return nil, err
		}
		c.Intervals[3] = third
		c.Intervals[5] = fifth
		if err := c.setInversion(3); err != nil {
			return nil, err
		}
	case phrase == "cadential six-four":
		c.TriadQuality = MajorTriad
		c.BassDegree = 5
		third, fifth, err := triadIntervals(MajorTriad)
		if err != nil {
			return nil, err
		}
		c.Intervals[3] = third
		c.Intervals[5] = fifth
		if err := c.setInversion(5); err != nil {
			return nil, err
		}
	case strings.HasPrefix(phrase, "common-tone diminished seventh"):
		third, _ := NewInterval(Min, 3)
		fifth, _ := NewInterval(D, 5)
		c.Intervals[3] = third
		c.Intervals[5] = fifth
		if strings.Contains(phrase, "dominant") {
			seventh, _ := NewInterval(Min, 7)
			c.Intervals[7] = seventh
		} else {
			sixth, _ := NewInterval(D, 7)
			c.Intervals[7] = sixth
		}
	default:
		return nil, newParseError(0, "%q has no reconstruction rule", phrase)
	}
	return c, nil
}
