package harmalysis

// Key pairs a tonic pitch class with the scale family rooted on it. It is
// the unit the Roman parser resolves scale degrees against, per
// spec.md §4.2.
type Key struct {
	Tonic  PitchClass
	Family ScaleFamily
}

// NewKey builds a Key from a tonic letter/alteration and a scale family.
func NewKey(letter byte, alteration Alteration, family ScaleFamily) (Key, error) {
	tonic, err := NewPitchClass(letter, alteration)
	if err != nil {
		return Key{}, err
	}
	return Key{Tonic: tonic, Family: family}, nil
}

// CMajor is the default established key a fresh Analyzer starts from,
// matching the source's implicit "C major until told otherwise" behavior.
func CMajor() Key {
	k, _ := NewKey('C', Natural, Major)
	return k
}

// romanToInt maps the seven lowercase Roman numerals (the grammar is case
// insensitive about which digit it names; case instead carries triad
// quality, per spec.md §4.3) to their scale-degree number.
var romanToInt = map[string]int{
	"i": 1, "ii": 2, "iii": 3, "iv": 4, "v": 5, "vi": 6, "vii": 7,
}

// RomanToInt resolves a bare Roman numeral token (case-folded by the
// caller) to its 1..7 scale-degree number.
func RomanToInt(roman string) (int, error) {
	n, ok := romanToInt[roman]
	if !ok {
		return 0, newError(ParseError, "%q is not a Roman numeral I..VII", roman)
	}
	return n, nil
}

// Degree returns the pitch class n scale-degrees above the key's tonic
// (1-based, 1 == the tonic itself), optionally displaced by alt after
// the scale's own interval is added — e.g. Key.Degree(7, &Sharp) for a
// raised leading tone borrowed into natural minor.
func (k Key) Degree(n int, alt *Alteration) (PitchClass, error) {
	if n < 1 || n > 7 {
		return PitchClass{}, newError(ScaleDegreeOutOfRange, "scale degree %d is out of range 1..7", n)
	}
	iv, err := k.Family.StepToIntervalSpelling(n, 1)
	if err != nil {
		return PitchClass{}, err
	}
	pc, err := k.Tonic.ToInterval(iv)
	if err != nil {
		return PitchClass{}, err
	}
	if alt == nil || *alt == Natural {
		return pc, nil
	}
	displacement, err := unisonAlteration(*alt)
	if err != nil {
		return PitchClass{}, err
	}
	return pc.ToInterval(displacement)
}

// RotationFor returns the rotation (1..7) for a chord built on the given
// scale degree of the key, wrapping degrees outside 1..7, so that chord can
// reuse the ScaleFamily table lookups with that rotation.
func (k Key) RotationFor(scaleDegree int) int {
	return posMod(scaleDegree-1, 7) + 1
}

// String renders the key as "<tonic> <family>", e.g. "Bb harmonic_minor".
func (k Key) String() string {
	return k.Tonic.String() + " " + k.Family.String()
}
