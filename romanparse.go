package harmalysis

import "strings"

// ParseRoman parses one Roman-numeral analysis query against a.
// On success it returns the resolved Harmalysis and, as a side effect,
// rebinds a's established key when the query supplied a key prefix or a
// trailing bracket-form key introduction.
func (a *Analyzer) ParseRoman(query string) (*Harmalysis, error) {
	s := newScanner(strings.TrimSpace(query))

	mainKey := a.cell.Get()
	hasPrefix := false
	if k, ok, err := tryParseKeyPrefix(s); err != nil {
		return nil, err
	} else if ok {
		mainKey = k
		hasPrefix = true
	}
	s.skipSpaces()

	body, bracketKey, hasBracket := splitBracketSuffix(s.src[s.pos:])

	h, err := resolveRomanBody(mainKey, body)
	if err != nil {
		return nil, err
	}

	var introduced Key
	if hasBracket {
		bs := newScanner(strings.TrimSpace(bracketKey))
		k, ok, kerr := tryParseKeyPrefix(bs)
		if kerr != nil {
			return nil, kerr
		}
		if !ok {
			return nil, newParseError(s.pos, "bracket clause %q is not a valid key", bracketKey)
		}
		introduced = k
	}

	if hasPrefix {
		a.cell.Set(mainKey)
	}
	if hasBracket {
		a.cell.Set(introduced)
	}
	return h, nil
}

// ParseRoman parses a query against the package-level default Analyzer,
// for callers that don't need to carry established-key state across calls
// themselves. That one Analyzer is shared by every call: it starts at C
// major and keeps whatever key earlier queries established.
func ParseRoman(query string) (*Harmalysis, error) {
	return defaultAnalyzer.ParseRoman(query)
}

var defaultAnalyzer = NewAnalyzer()

// splitBracketSuffix separates a trailing "[key]" clause (spec.md §6's
// inline established-key introduction) from the rest of the line.
func splitBracketSuffix(s string) (body, bracketKey string, hasBracket bool) {
	open := strings.LastIndex(s, "[")
	close := strings.LastIndex(s, "]")
	if open < 0 || close < open {
		return s, "", false
	}
	return strings.TrimSpace(s[:open]), s[open+1 : close], true
}

// tryParseKeyPrefix recognizes "<Letter><alteration?>(_<scaleTag>)?:" at
// the cursor, e.g. "Bb:", "f#_nat:", "c_har:" — the scale-tag suffix
// spelling is taken from original_source/harmalysis/__main__.py's own
// test queries ("f#_nat:..."). Returns ok=false (cursor unmoved) when no
// colon is present before the next whitespace/slash, meaning the query
// carries no key prefix and should inherit the established key.
func tryParseKeyPrefix(s *scanner) (Key, bool, error) {
	start := s.pos
	if s.eof() || !isAlpha(s.peek()) {
		return Key{}, false, nil
	}
	letter := s.next()
	alt := s.scanAlteration()
	var tag string
	if s.peek() == '_' {
		s.pos++
		tag = s.scanAlpha()
	}
	if s.peek() != ':' {
		s.pos = start
		return Key{}, false, nil
	}
	s.pos++ // consume ':'

	alteration, err := ParseAlteration(alt)
	if err != nil {
		return Key{}, false, err
	}

	family := Major
	upper := isUpper(letter)
	if tag != "" {
		family, err = ParseScaleFamily(tag)
		if err != nil {
			return Key{}, false, err
		}
	} else if !upper {
		family = HarmonicMinor
	}

	k, err := NewKey(toUpperLetter(letter), alteration, family)
	if err != nil {
		return Key{}, false, err
	}
	return k, true, nil
}

func toUpperLetter(b byte) byte {
	if isLower(b) {
		return b - ('a' - 'A')
	}
	return b
}

// resolveRomanBody resolves everything after the key prefix: an optional
// chain of tonicizations ("V/V", "ii/V/V") read right-to-left to nest
// secondary keys, a special chord name, or a plain scale-degree numeral
// with its suffixes, figured bass, and added/missing intervals.
func resolveRomanBody(mainKey Key, body string) (*Harmalysis, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, newParseError(0, "empty analysis query")
	}

	segments := strings.Split(body, "/")
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}

	referenceKey := mainKey
	var tonicized []Key
	for i := len(segments) - 1; i >= 1; i-- {
		degree, alt, upper, _, _, _, _, err := parseDegreeToken(segments[i])
		if err != nil {
			return nil, err
		}
		var altPtr *Alteration
		if alt != Natural {
			altPtr = &alt
		}
		tonic, err := referenceKey.Degree(degree, altPtr)
		if err != nil {
			return nil, err
		}
		family := HarmonicMinor
		if upper {
			family = Major
		}
		referenceKey = Key{Tonic: tonic, Family: family}
		tonicized = append(tonicized, referenceKey)
	}

	chord, err := resolveFinalChord(referenceKey, segments[0])
	if err != nil {
		return nil, err
	}

	return &Harmalysis{
		MainKey:       mainKey,
		ReferenceKey:  referenceKey,
		TonicizedKeys: tonicized,
		Chord:         chord,
	}, nil
}

// specialChordNames lists the fixed chord names recognized ahead of the
// ordinary numeral grammar, longest first so "CTo7"/"Cad64" are matched
// before their shorter prefixes "CTo"/"Cad".
var specialChordNames = []string{
	"Cad64", "CTo7", "Cad", "CTo", "Ger", "Gn", "It", "Fr", "Gr", "Tr", "N",
}

// resolveFinalChord resolves the last (leftmost) segment of a
// tonicization chain into a concrete Chord: either one of the special
// chord names or an ordinary scale-degree numeral.
func resolveFinalChord(key Key, token string) (*Chord, error) {
	for _, name := range specialChordNames {
		if strings.HasPrefix(token, name) {
			return resolveSpecialChord(key, name, strings.TrimPrefix(token, name))
		}
	}
	if chord, ok, err := tryResolveHalfDiminishedSeventh(key, token); err != nil {
		return nil, err
	} else if ok {
		return chord, nil
	}
	degree, alt, upper, suffix, figure, figureLetter, remainder, err := parseDegreeToken(token)
	if err != nil {
		return nil, err
	}

	quality := MinorTriad
	if upper {
		quality = MajorTriad
	}
	switch suffix {
	case "o", "dim":
		quality = DiminishedTriad
	case "+", "aug":
		quality = AugmentedTriad
	}

	c, err := NewTertianChord(key, degree, alt, quality)
	if err != nil {
		return nil, err
	}

	if seventhFigures[figure] {
		seventh, err := key.Family.StepToIntervalSpelling(7, degree)
		if err != nil {
			return nil, err
		}
		c.Intervals[7] = seventh
	}

	if err := applyAddedIntervals(c, remainder); err != nil {
		return nil, err
	}
	if figure != 0 {
		if err := c.SetInversionByNumber(figure); err != nil {
			return nil, err
		}
	} else if figureLetter != 0 {
		if err := c.SetInversionByLetter(figureLetter); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// seventhFigures is the subset of recognizedFigures that, per
// original_source/harmalysis/parsers/roman.py's
// tertian_seventh_with_inversion_by_number grammar rule, always imply an
// added seventh above the root (as opposed to {6, 64}, which only invert
// a plain triad).
var seventhFigures = map[int]bool{65: true, 43: true, 42: true, 2: true}

// recognizedFigures is the closed set of numeric figured-bass symbols;
// a digit run that doesn't match one of these is an added interval
// instead (e.g. the "7" in "V7" is a added seventh, not an inversion).
var recognizedFigures = map[int]bool{6: true, 64: true, 65: true, 43: true, 42: true, 2: true}

// parseDegreeToken parses a bare Roman numeral token: leading alteration,
// the numeral itself (case carries triad quality), a quality suffix
// ("o", "+", "dim", "aug"), a trailing figured bass (numeric or letter
// form), and returns whatever text follows as remainder for added/missing
// interval parsing. Returns degree=0 if the token isn't a recognizable
// numeral at all.
func parseDegreeToken(token string) (degree int, alt Alteration, upper bool, suffix string, figure int, figureLetter byte, remainder string, err error) {
	s := newScanner(token)
	altStr := s.scanAlteration()
	alt, err = ParseAlteration(altStr)
	if err != nil {
		return
	}
	start := s.pos
	for !s.eof() && (s.peek() == 'i' || s.peek() == 'v' || s.peek() == 'I' || s.peek() == 'V') {
		s.pos++
	}
	numeral := s.src[start:s.pos]
	if numeral == "" {
		err = newParseError(s.pos, "token %q does not begin with a Roman numeral", token)
		return
	}
	upper = isUpper(numeral[0])
	degree, rerr := RomanToInt(strings.ToLower(numeral))
	if rerr != nil {
		err = rerr
		return
	}

	suffix = s.matchAny("dim", "o", "aug", "+")

	beforeDigits := s.pos
	digits := s.scanDigits()
	if digits != "" {
		n := atoiSmall(digits)
		if recognizedFigures[n] {
			figure = n
		} else {
			s.pos = beforeDigits // not an inversion figure; leave for added-interval parsing
		}
	} else if !s.eof() && isLower(s.peek()) && figureLetterValid(s.peek()) {
		figureLetter = s.next()
	}
	remainder = s.src[s.pos:]
	return
}

func figureLetterValid(b byte) bool {
	_, ok := inversionByLetter[b]
	return ok
}

func atoiSmall(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// applyAddedIntervals scans a degree token's trailing text for explicit
// interval additions (e.g. "7", "M7", "add6", "x5") once the figured
// bass/suffix text has already been consumed by the caller. The missing-
// interval symbol is "x" followed by the diatonic index, per
// original_source/parser.py's missing_interval_symbol production.
func applyAddedIntervals(c *Chord, rest string) error {
	s := newScanner(rest)
	for !s.eof() {
		s.skipSpaces()
		if s.eof() {
			break
		}
		if s.matchLiteral("x") {
			digits := s.scanDigits()
			if digits == "" {
				return newParseError(s.pos, "\"x\" must be followed by an interval number")
			}
			c.MissingInterval(atoiSmall(digits))
			continue
		}
		if s.matchLiteral("add") {
			if err := scanQualifiedInterval(s, c); err != nil {
				return err
			}
			continue
		}
		if err := scanQualifiedInterval(s, c); err != nil {
			return err
		}
	}
	return nil
}

// scanQualifiedInterval consumes an optional quality letter (M, m, D for
// diminished-class tokens written out, A, AA) followed by a digit run,
// and adds the resulting interval to c. With no quality letter, a 7 is
// read as a minor seventh and any other number as a major interval; the
// key's scale is not consulted, and only the named interval is added.
func scanQualifiedInterval(s *scanner, c *Chord) error {
	quality := s.matchAny("AA", "DD", "M", "m", "D", "A")
	digits := s.scanDigits()
	if digits == "" {
		if quality == "" {
			return newParseError(s.pos, "expected an interval number")
		}
		return newParseError(s.pos, "quality %q is not followed by an interval number", quality)
	}
	n := atoiSmall(digits)
	if quality == "" {
		// Default: dominant-style minor seventh on 7, major on others,
		// the conventional unmarked reading in figured-bass shorthand.
		q := Maj
		if n == 7 {
			q = Min
		}
		return c.AddInterval(n, q)
	}
	q, err := ParseQuality(quality)
	if err != nil {
		return err
	}
	return c.AddInterval(n, q)
}

// tryResolveHalfDiminishedSeventh recognizes the "vii0"/"#vii0" shorthand
// for the half-diminished seventh built on the (possibly raised) leading
// tone, the explicit notation spec.md §9 carries forward from the
// source's vii/#vii override.
func tryResolveHalfDiminishedSeventh(key Key, token string) (*Chord, bool, error) {
	s := newScanner(token)
	altStr := s.scanAlteration()
	alt, err := ParseAlteration(altStr)
	if err != nil {
		return nil, false, err
	}
	if !s.matchLiteral("vii") && !s.matchLiteral("VII") {
		return nil, false, nil
	}
	if !s.matchLiteral("0") {
		return nil, false, nil
	}
	c, err := NewHalfDiminishedSeventhChord(key, alt)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

// resolveSpecialChord dispatches one of the fixed chord names (N, Gn,
// It/Fr/Gr, Cad64, CTo/CTo7, Tr) to its constructor, then applies any
// trailing figured bass found in rest (e.g. the "65" in "Ger65").
func resolveSpecialChord(key Key, name, rest string) (*Chord, error) {
	var c *Chord
	var err error
	switch name {
	case "N", "Gn":
		c, err = NewNeapolitanChord(key)
	case "It":
		c, err = NewAugmentedSixthChord(key, ItalianSixth)
	case "Fr":
		c, err = NewAugmentedSixthChord(key, FrenchSixth)
	case "Gr", "Ger":
		c, err = NewAugmentedSixthChord(key, GermanSixth)
	case "Cad64", "Cad":
		c, err = NewCadentialSixFourChord(key, key.Family == Major)
	case "CTo7":
		c, err = NewCommonToneDiminishedChord(key, true)
	case "CTo":
		c, err = NewCommonToneDiminishedChord(key, false)
	case "Tr":
		return nil, newError(ParseError, "the Tristan chord (Tr) has no resolvable interval construction, by design")
	default:
		return nil, newParseError(0, "unrecognized special chord name %q", name)
	}
	if err != nil {
		return nil, err
	}
	if err := applySpecialInversion(c, rest); err != nil {
		return nil, err
	}
	return c, nil
}

// applySpecialInversion parses a special chord name's trailing text for a
// numeric or letter figured-bass inversion and applies it, the same way
// resolveFinalChord does for ordinary scale-degree numerals.
func applySpecialInversion(c *Chord, rest string) error {
	s := newScanner(rest)
	digits := s.scanDigits()
	if digits != "" {
		return c.SetInversionByNumber(atoiSmall(digits))
	}
	if !s.eof() && isLower(s.peek()) && figureLetterValid(s.peek()) {
		return c.SetInversionByLetter(s.next())
	}
	return nil
}
