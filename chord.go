package harmalysis

import "sort"

// TriadQuality names the quality of a chord's 1-3-5 skeleton.
type TriadQuality int

const (
	NoTriad TriadQuality = iota
	MajorTriad
	MinorTriad
	DiminishedTriad
	AugmentedTriad
)

func (q TriadQuality) String() string {
	switch q {
	case MajorTriad:
		return "major"
	case MinorTriad:
		return "minor"
	case DiminishedTriad:
		return "diminished"
	case AugmentedTriad:
		return "augmented"
	default:
		return "none"
	}
}

// HarmonicFunction is one of the three tonal functions a scale degree's
// default/contextual role can carry, per SPEC_FULL.md's supplemented
// function table (the kept source declares the fields but never
// populates them).
type HarmonicFunction int

const (
	NoFunction HarmonicFunction = iota
	Tonic
	Subdominant
	Dominant
)

func (f HarmonicFunction) String() string {
	switch f {
	case Tonic:
		return "tonic"
	case Subdominant:
		return "subdominant"
	case Dominant:
		return "dominant"
	default:
		return "none"
	}
}

// defaultFunctionByDegree is the standard tonal-function table: I/iii/vi
// are tonic-functioning, ii/IV subdominant, V/vii dominant. Supplemented
// per SPEC_FULL.md §3 since the kept source never populates this table.
var defaultFunctionByDegree = [8]HarmonicFunction{
	NoFunction, // unused index 0
	Tonic,      // I
	Subdominant,
	Tonic,
	Subdominant,
	Dominant,
	Tonic,
	Dominant,
}

// AugmentedSixthKind distinguishes the three augmented-sixth chords. The
// italian chord carries no sixth/seventh tone of its own, per spec.md §9.
type AugmentedSixthKind int

const (
	NoAugmentedSixth AugmentedSixthKind = iota
	ItalianSixth
	FrenchSixth
	GermanSixth
)

func (k AugmentedSixthKind) String() string {
	switch k {
	case ItalianSixth:
		return "italian"
	case FrenchSixth:
		return "french"
	case GermanSixth:
		return "german"
	default:
		return "none"
	}
}

// ChordKind tags which of the spec's chord shapes a Chord value
// represents. Fields below are interpreted according to this tag rather
// than through a type hierarchy, per spec.md §9's redesign instruction.
type ChordKind int

const (
	DescriptiveChord ChordKind = iota
	TertianChord
	AugmentedSixthChord
	NeapolitanChord
	HalfDiminishedSeventhChord
	CadentialSixFourChord
	CommonToneDiminishedChord
)

func (k ChordKind) String() string {
	switch k {
	case DescriptiveChord:
		return "descriptive"
	case TertianChord:
		return "tertian"
	case AugmentedSixthChord:
		return "augmented_sixth"
	case NeapolitanChord:
		return "neapolitan"
	case HalfDiminishedSeventhChord:
		return "half_diminished_seventh"
	case CadentialSixFourChord:
		return "cadential_six_four"
	case CommonToneDiminishedChord:
		return "common_tone_diminished"
	default:
		return "unknown"
	}
}

// Chord is a single flat record covering every chord shape the Roman
// grammar can resolve. Optional fields are populated according to Kind
// instead of being carried by distinct struct types, replacing the
// source's DescriptiveChord -> InvertibleChord -> TertianChord ->
// {AugmentedSixthChord, NeapolitanChord, HalfDiminishedChord,
// CadentialSixFourChord, CommonToneDiminishedChord} inheritance chain.
type Chord struct {
	Kind ChordKind

	// Root is the chord's root pitch class once resolved against the
	// governing key; nil for a bare descriptive chord with no resolved
	// key context.
	Root *PitchClass

	// ScaleDegree is the Roman numeral's degree, 1..7. ScaleDegreeAlteration
	// records a leading raise/lower prefix (e.g. "#vii").
	ScaleDegree           int
	ScaleDegreeAlteration Alteration

	// Intervals maps diatonic-interval-number (2, 3, 5, 6, 7, 9, 11, 13, ...)
	// to the spelled interval added above Root. Absent keys mean the tone
	// is not part of the chord.
	Intervals map[int]Interval

	// Missing records intervals explicitly omitted by the grammar's "x5"
	// style syntax, kept distinct from "never specified".
	Missing map[int]bool

	TriadQuality TriadQuality

	// Inversion is the inversion number: 0 (root position), 1 (first),
	// 2 (second), 3 (third, sevenths only), and 4..6 when a ninth, eleventh
	// or thirteenth is in the bass.
	Inversion int

	// Bass is the resolved bass pitch class once Inversion (or an
	// augmented-sixth/cadential chord's fixed bass) is applied.
	Bass *PitchClass

	AugmentedSixthKind AugmentedSixthKind

	// BassDegree records a cadential six-four's bass scale degree
	// (resolved to V, per the Open Question decided in DESIGN.md).
	BassDegree int

	DefaultFunction    HarmonicFunction
	ContextualFunction HarmonicFunction

	// DescriptiveRoot carries a bare letter-named chord
	// parsed outside any key context (spec.md §4.1's "descriptive" form).
	DescriptiveRoot *PitchClass
}

// NewDescriptiveChord builds a chord named directly by pitch class rather
// than by scale degree, e.g. a chord named "Ab" with no governing key.
func NewDescriptiveChord(root PitchClass) *Chord {
	return &Chord{
		Kind:            DescriptiveChord,
		DescriptiveRoot: &root,
		Intervals:       map[int]Interval{},
		Missing:         map[int]bool{},
	}
}

// NewTertianChord builds a stacked-thirds chord rooted at the given scale
// degree of key, with the requested triad quality already resolved.
func NewTertianChord(key Key, scaleDegree int, alt Alteration, quality TriadQuality) (*Chord, error) {
	var altPtr *Alteration
	if alt != Natural {
		a := alt
		altPtr = &a
	}
	root, err := key.Degree(scaleDegree, altPtr)
	if err != nil {
		return nil, err
	}
	c := &Chord{
		Kind:                  TertianChord,
		Root:                  &root,
		ScaleDegree:           scaleDegree,
		ScaleDegreeAlteration: alt,
		TriadQuality:          quality,
		Intervals:             map[int]Interval{},
		Missing:                map[int]bool{},
		DefaultFunction:       defaultFunctionByDegree[scaleDegree],
		ContextualFunction:    defaultFunctionByDegree[scaleDegree],
	}
	third, fifth, err := triadIntervals(quality)
	if err != nil {
		return nil, err
	}
	c.Intervals[3] = third
	c.Intervals[5] = fifth
	return c, nil
}

// triadIntervals returns the spelled third and fifth for a triad quality.
func triadIntervals(quality TriadQuality) (Interval, Interval, error) {
	var thirdQ, fifthQ Quality
	switch quality {
	case MajorTriad:
		thirdQ, fifthQ = Maj, P
	case MinorTriad:
		thirdQ, fifthQ = Min, P
	case DiminishedTriad:
		thirdQ, fifthQ = Min, D
	case AugmentedTriad:
		thirdQ, fifthQ = Maj, Aug
	default:
		return Interval{}, Interval{}, newError(UnsupportedTriadQuality, "triad quality %v has no interval table", quality)
	}
	third, err := NewInterval(thirdQ, 3)
	if err != nil {
		return Interval{}, Interval{}, err
	}
	fifth, err := NewInterval(fifthQ, 5)
	if err != nil {
		return Interval{}, Interval{}, err
	}
	return third, fifth, nil
}

// AddInterval adds (or overwrites) one extension above root, e.g.
// AddInterval(7, Min) for a dominant seventh's lowered seventh.
func (c *Chord) AddInterval(diatonicInterval int, quality Quality) error {
	iv, err := NewInterval(quality, diatonicInterval)
	if err != nil {
		return err
	}
	if c.Intervals == nil {
		c.Intervals = map[int]Interval{}
	}
	c.Intervals[diatonicInterval] = iv
	delete(c.Missing, diatonicInterval)
	return nil
}

// MissingInterval marks an interval as explicitly omitted (the grammar's
// "x5"/"x3" syntax), distinguishing "omitted" from "never specified".
func (c *Chord) MissingInterval(diatonicInterval int) {
	if c.Missing == nil {
		c.Missing = map[int]bool{}
	}
	c.Missing[diatonicInterval] = true
	delete(c.Intervals, diatonicInterval)
}

// sortedIntervalKeys returns the chord's populated interval numbers in
// ascending order, used by String.
func (c *Chord) sortedIntervalKeys() []int {
	keys := make([]int, 0, len(c.Intervals))
	for k := range c.Intervals {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// SetInversionByNumber applies a numeric figured-bass inversion (6, 64,
// 65, 43, 42, 2) by rewriting Bass to the matching chord tone.
func (c *Chord) SetInversionByNumber(figure int) error {
	degree, ok := inversionByFigure[figure]
	if !ok {
		return newError(UnsupportedInversion, "figure %d is not a recognized inversion", figure)
	}
	return c.setInversion(degree)
}

// inversionByFigure maps the numeric figured-bass symbols to the chord
// tone (1 == root, 3 == third, ...) that becomes the bass.
var inversionByFigure = map[int]int{
	6:  3,
	64: 5,
	65: 3,
	43: 5,
	42: 7,
	2:  7,
}

// inversionOrdinal maps a bass chord-tone back to the conventional
// inversion ordinal (0 root, 1 first, 2 second, 3 third, 4..6 for the
// ninth, eleventh and thirteenth).
var inversionOrdinal = map[int]int{1: 0, 3: 1, 5: 2, 7: 3, 9: 4, 11: 5, 13: 6}

func (c *Chord) setInversion(bassDegree int) error {
	if c.Root == nil {
		return newError(UnsupportedInversion, "chord has no resolved root to invert")
	}
	var bass PitchClass
	if bassDegree == 1 {
		bass = *c.Root
	} else {
		iv, ok := c.Intervals[bassDegree]
		if !ok {
			return newError(UnsupportedInversion, "chord has no interval at degree %d to use as bass", bassDegree)
		}
		b, err := c.Root.ToInterval(iv)
		if err != nil {
			return err
		}
		bass = b
	}
	c.Bass = &bass
	c.Inversion = inversionOrdinal[bassDegree]
	return nil
}

// SetInversionByLetter applies the grammar's alternate a..g inversion
// letters: the letter's position in a..g is the inversion ordinal (a root
// position, b first, c second, d third, ...).
func (c *Chord) SetInversionByLetter(letter byte) error {
	bassDegree, ok := inversionByLetter[letter]
	if !ok {
		return newError(UnsupportedInversion, "letter %q is not a recognized inversion", letter)
	}
	return c.setInversion(bassDegree)
}

// inversionByLetter maps each inversion letter to the chord tone that
// becomes the bass.
var inversionByLetter = map[byte]int{
	'a': 1, 'b': 3, 'c': 5, 'd': 7, 'e': 9, 'f': 11, 'g': 13,
}

// NewAugmentedSixthChord builds one of the three augmented-sixth chords
// on the raised fourth scale degree of key, per
// original_source/harmalysis/classes/chord.py's AugmentedSixthChord
// (scale_degree "iv", scale_degree_alteration '#'): a diminished
// third/fifth skeleton, with the german chord adding a diminished
// seventh and the french chord adding a minor sixth.
func NewAugmentedSixthChord(key Key, kind AugmentedSixthKind) (*Chord, error) {
	sharp := Sharp
	root, err := key.Degree(4, &sharp)
	if err != nil {
		return nil, err
	}
	c := &Chord{
		Kind:                  AugmentedSixthChord,
		Root:                  &root,
		ScaleDegree:           4,
		ScaleDegreeAlteration: Sharp,
		AugmentedSixthKind:    kind,
		Intervals:             map[int]Interval{},
		Missing:               map[int]bool{},
	}
	third, err := NewInterval(D, 3)
	if err != nil {
		return nil, err
	}
	fifth, err := NewInterval(D, 5)
	if err != nil {
		return nil, err
	}
	c.Intervals[3] = third
	c.Intervals[5] = fifth
	switch kind {
	case ItalianSixth:
		// no 6th/7th tone beyond the diminished third/fifth skeleton.
	case FrenchSixth:
		sixth, err := NewInterval(Min, 6)
		if err != nil {
			return nil, err
		}
		c.Intervals[6] = sixth
	case GermanSixth:
		seventh, err := NewInterval(D, 7)
		if err != nil {
			return nil, err
		}
		c.Intervals[7] = seventh
	default:
		return nil, newError(UnsupportedTriadQuality, "augmented sixth kind %v is not recognized", kind)
	}
	return c, nil
}

// NewNeapolitanChord builds the Neapolitan sixth: a major triad on the
// lowered second scale degree, conventionally in first inversion.
func NewNeapolitanChord(key Key) (*Chord, error) {
	flat := Flat
	root, err := key.Degree(2, &flat)
	if err != nil {
		return nil, err
	}
	c := &Chord{
		Kind:         NeapolitanChord,
		Root:         &root,
		TriadQuality: MajorTriad,
		Intervals:    map[int]Interval{},
		Missing:      map[int]bool{},
	}
	third, fifth, err := triadIntervals(MajorTriad)
	if err != nil {
		return nil, err
	}
	c.Intervals[3] = third
	c.Intervals[5] = fifth
	if err := c.setInversion(3); err != nil {
		return nil, err
	}
	return c, nil
}

// NewHalfDiminishedSeventhChord builds the vii (or #vii) half-diminished
// seventh chord. scaleDegreeAlteration records whether the source line
// wrote a sharp prefix, per the Open Question decided in DESIGN.md.
func NewHalfDiminishedSeventhChord(key Key, scaleDegreeAlteration Alteration) (*Chord, error) {
	var altPtr *Alteration
	if scaleDegreeAlteration != Natural {
		a := scaleDegreeAlteration
		altPtr = &a
	}
	root, err := key.Degree(7, altPtr)
	if err != nil {
		return nil, err
	}
	c := &Chord{
		Kind:                  HalfDiminishedSeventhChord,
		Root:                  &root,
		ScaleDegree:           7,
		ScaleDegreeAlteration: scaleDegreeAlteration,
		TriadQuality:          DiminishedTriad,
		Intervals:             map[int]Interval{},
		Missing:               map[int]bool{},
		DefaultFunction:       defaultFunctionByDegree[7],
		ContextualFunction:    defaultFunctionByDegree[7],
	}
	third, fifth, err := triadIntervals(DiminishedTriad)
	if err != nil {
		return nil, err
	}
	seventh, err := NewInterval(Min, 7)
	if err != nil {
		return nil, err
	}
	c.Intervals[3] = third
	c.Intervals[5] = fifth
	c.Intervals[7] = seventh
	return c, nil
}

// NewCadentialSixFourChord builds the I64-over-V cadential chord. The
// bass is fixed to the dominant scale degree (resolved per the Open
// Question decided in DESIGN.md), regardless of the tonic triad's own
// quality.
func NewCadentialSixFourChord(key Key, major bool) (*Chord, error) {
	root, err := key.Degree(1, nil)
	if err != nil {
		return nil, err
	}
	quality := MinorTriad
	if major {
		quality = MajorTriad
	}
	c := &Chord{
		Kind:         CadentialSixFourChord,
		Root:         &root,
		ScaleDegree:  5,
		TriadQuality: quality,
		BassDegree:   5,
		Intervals:    map[int]Interval{},
		Missing:      map[int]bool{},
	}
	third, fifth, err := triadIntervals(quality)
	if err != nil {
		return nil, err
	}
	c.Intervals[3] = third
	c.Intervals[5] = fifth
	if err := c.setInversion(5); err != nil {
		return nil, err
	}
	return c, nil
}

// SetAsMajor/SetAsMinor toggle a cadential six-four's tonic-triad quality
// after construction.
func (c *Chord) SetAsMajor() error {
	return c.setCadentialQuality(MajorTriad)
}

func (c *Chord) SetAsMinor() error {
	return c.setCadentialQuality(MinorTriad)
}

func (c *Chord) setCadentialQuality(quality TriadQuality) error {
	if c.Kind != CadentialSixFourChord {
		return newError(UnsupportedTriadQuality, "SetAsMajor/SetAsMinor only apply to cadential six-four chords")
	}
	third, fifth, err := triadIntervals(quality)
	if err != nil {
		return err
	}
	c.TriadQuality = quality
	c.Intervals[3] = third
	c.Intervals[5] = fifth
	return nil
}

// NewCommonToneDiminishedChord builds a common-tone diminished seventh
// chord resolving to the tonic of key (CTo) or, when seventh is true, its
// dominant-seventh variant (CTo7).
func NewCommonToneDiminishedChord(key Key, seventh bool) (*Chord, error) {
	root, err := key.Degree(1, nil)
	if err != nil {
		return nil, err
	}
	c := &Chord{
		Kind:      CommonToneDiminishedChord,
		Root:      &root,
		Intervals: map[int]Interval{},
		Missing:   map[int]bool{},
	}
	third, err := NewInterval(Min, 3)
	if err != nil {
		return nil, err
	}
	fifth, err := NewInterval(D, 5)
	if err != nil {
		return nil, err
	}
	sixth, err := NewInterval(D, 7)
	if err != nil {
		return nil, err
	}
	c.Intervals[3] = third
	c.Intervals[5] = fifth
	c.Intervals[7] = sixth
	if seventh {
		dom, err := NewInterval(Min, 7)
		if err != nil {
			return nil, err
		}
		c.Intervals[7] = dom
	}
	return c, nil
}

// SetTriadQuality overwrites the chord's 1-3-5 skeleton after
// construction, used when the grammar's suffix (o, +, or an explicit
// quality word) overrides the degree's own diatonic default.
func (c *Chord) SetTriadQuality(quality TriadQuality) error {
	third, fifth, err := triadIntervals(quality)
	if err != nil {
		return err
	}
	c.TriadQuality = quality
	c.Intervals[3] = third
	c.Intervals[5] = fifth
	return nil
}

// Label produces the chord-label grammar's canonical word form for the
// chord, e.g. "G dominant seventh". It is the producer half of the
// round-trip spec.md §8 exercises: the kept source feeds str(chord) (a
// raw interval-code dump) into the chord-label parser, which only
// accepts this word form and so never actually composes with it — Label
// is supplemented to close that gap (see SPEC_FULL.md §3).
func (c *Chord) Label() (string, error) {
	root := c.Root
	if root == nil {
		root = c.DescriptiveRoot
	}
	if root == nil {
		return "", newError(ParseError, "chord has no root to label")
	}

	switch c.Kind {
	case AugmentedSixthChord:
		switch c.AugmentedSixthKind {
		case ItalianSixth:
			return root.String() + " italian augmented sixth", nil
		case FrenchSixth:
			return root.String() + " french augmented sixth", nil
		case GermanSixth:
			return root.String() + " german augmented sixth", nil
		default:
			return "", newError(ParseError, "augmented sixth chord has no recognized kind")
		}
	case NeapolitanChord:
		return root.String() + " neapolitan sixth", nil
	case CadentialSixFourChord:
		return root.String() + " cadential six-four", nil
	case CommonToneDiminishedChord:
		if _, ok := c.Intervals[7]; ok {
			seventh := c.Intervals[7]
			if seventh.Quality == Min {
				return root.String() + " common-tone diminished seventh (dominant)", nil
			}
		}
		return root.String() + " common-tone diminished seventh", nil
	}

	phrase, err := triadQualityLabel(c.TriadQuality)
	if err != nil {
		return "", err
	}
	seventh, hasSeventh := c.Intervals[7]
	if !hasSeventh {
		return root.String() + " " + phrase, nil
	}
	seventhPhrase, err := seventhLabel(c.TriadQuality, seventh.Quality)
	if err != nil {
		return "", err
	}
	return root.String() + " " + seventhPhrase, nil
}

func triadQualityLabel(quality TriadQuality) (string, error) {
	switch quality {
	case MajorTriad:
		return "major", nil
	case MinorTriad:
		return "minor", nil
	case DiminishedTriad:
		return "diminished", nil
	case AugmentedTriad:
		return "augmented", nil
	default:
		return "", newError(UnsupportedTriadQuality, "triad quality %v has no label", quality)
	}
}

// seventhLabel names the seventh-chord phrase for a triad quality plus
// its seventh's interval quality, covering the combinations
// spec.md §4.4 lists for the chord-label grammar.
func seventhLabel(triad TriadQuality, seventh Quality) (string, error) {
	switch {
	case triad == MajorTriad && seventh == Min:
		return "dominant seventh", nil
	case triad == MajorTriad && seventh == Maj:
		return "major seventh", nil
	case triad == MinorTriad && seventh == Min:
		return "minor seventh", nil
	case triad == MinorTriad && seventh == Maj:
		return "minor major seventh", nil
	case triad == DiminishedTriad && seventh == D:
		return "fully-diminished seventh", nil
	case triad == DiminishedTriad && seventh == Min:
		return "half-diminished seventh", nil
	case triad == AugmentedTriad && seventh == Maj:
		return "augmented major seventh", nil
	case triad == AugmentedTriad && seventh == Min:
		return "augmented seventh", nil
	default:
		return "", newError(UnsupportedIntervalQuality, "no label for %v triad with %v seventh", triad, seventh)
	}
}

// String renders the chord as its root followed by each interval's wire
// form in ascending order, e.g. "GM3P5m7".
func (c *Chord) String() string {
	root := c.Root
	if root == nil {
		root = c.DescriptiveRoot
	}
	s := ""
	if root != nil {
		s = root.String()
	}
	for _, k := range c.sortedIntervalKeys() {
		s += c.Intervals[k].String()
	}
	return s
}
