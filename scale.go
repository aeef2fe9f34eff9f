package harmalysis

// ScaleFamily names one of the four mode families Harmalysis resolves
// chord extensions against. Rather than the source's inheritance chain
// (MajorScale <- NaturalMinorScale <- HarmonicMinorScale <-
// AscendingMelodicMinorScale), each family carries its own literal
// 7x7 table — a tagged variant instead of a class hierarchy, per
// spec.md §9.
type ScaleFamily int

const (
	Major ScaleFamily = iota
	NaturalMinor
	HarmonicMinor
	AscendingMelodicMinor
)

func (f ScaleFamily) String() string {
	switch f {
	case Major:
		return "major"
	case NaturalMinor:
		return "natural_minor"
	case HarmonicMinor:
		return "harmonic_minor"
	case AscendingMelodicMinor:
		return "ascending_melodic_minor"
	default:
		return "unknown_scale"
	}
}

// ParseScaleFamily accepts the grammar's scale tags (nat, har, mel) plus
// the bare "major"/"minor" names used by the facade and tests.
func ParseScaleFamily(s string) (ScaleFamily, error) {
	switch s {
	case "major":
		return Major, nil
	case "minor", "har", "harmonic_minor":
		return HarmonicMinor, nil
	case "nat", "natural_minor":
		return NaturalMinor, nil
	case "mel", "ascending_melodic_minor":
		return AscendingMelodicMinor, nil
	default:
		return 0, newError(UnsupportedScale, "scale %q is not supported", s)
	}
}

// qualityRow holds, for one rotation, the interval quality realized at
// each of the seven diatonic steps above that rotation's own tonic.
type qualityRow [7]Quality

// semitoneRow holds the same rotation's raw semitone offsets, kept
// alongside the quality rows so Scale.StepToSemitones can satisfy
// spec.md §8's invariant independently of interval-quality arithmetic.
type semitoneRow [7]int

// Scale tables below are transcribed directly from
// original_source/harmalysis/classes/scale.py's _qualities/_semitones,
// one row per rotation (I..VII), one column per step above that rotation.

var majorQualities = [7]qualityRow{
	{P, Maj, Maj, P, P, Maj, Maj},
	{P, Maj, Min, P, P, Maj, Min},
	{P, Min, Min, P, P, Min, Min},
	{P, Maj, Maj, Aug, P, Maj, Maj},
	{P, Maj, Maj, P, P, Maj, Min},
	{P, Maj, Min, P, P, Min, Min},
	{P, Min, Min, P, D, Min, Min},
}

var majorSemitones = [7]semitoneRow{
	{0, 2, 4, 5, 7, 9, 11},
	{0, 2, 3, 5, 7, 9, 10},
	{0, 1, 3, 5, 7, 8, 10},
	{0, 2, 4, 6, 7, 9, 11},
	{0, 2, 4, 5, 7, 9, 10},
	{0, 2, 3, 5, 7, 8, 10},
	{0, 1, 3, 5, 6, 8, 10},
}

var naturalMinorQualities = [7]qualityRow{
	{P, Maj, Min, P, P, Min, Min},
	{P, Min, Min, P, D, Min, Min},
	{P, Maj, Maj, P, P, Maj, Maj},
	{P, Maj, Min, P, P, Maj, Min},
	{P, Min, Min, P, P, Min, Min},
	{P, Maj, Maj, Aug, P, Maj, Maj},
	{P, Maj, Maj, P, P, Maj, Min},
}

var naturalMinorSemitones = [7]semitoneRow{
	{0, 2, 3, 5, 7, 8, 10},
	{0, 1, 3, 5, 6, 8, 10},
	{0, 2, 4, 5, 7, 9, 11},
	{0, 2, 3, 5, 7, 9, 10},
	{0, 1, 3, 5, 7, 8, 10},
	{0, 2, 4, 6, 7, 9, 11},
	{0, 2, 4, 5, 7, 9, 10},
}

var harmonicMinorQualities = [7]qualityRow{
	{P, Maj, Min, P, P, Min, Maj},
	{P, Min, Min, P, D, Maj, Min},
	{P, Maj, Maj, P, Aug, Maj, Maj},
	{P, Maj, Min, Aug, P, Maj, Min},
	{P, Min, Maj, P, P, Min, Min},
	{P, Aug, Maj, Aug, P, Maj, Maj},
	{P, Min, Min, D, D, Min, D},
}

var harmonicMinorSemitones = [7]semitoneRow{
	{0, 2, 3, 5, 7, 8, 11},
	{0, 1, 3, 5, 6, 9, 10},
	{0, 2, 4, 5, 8, 9, 11},
	{0, 2, 3, 6, 7, 9, 10},
	{0, 1, 4, 5, 7, 8, 10},
	{0, 3, 4, 6, 7, 9, 11},
	{0, 1, 3, 4, 6, 8, 9},
}

var ascendingMelodicMinorQualities = [7]qualityRow{
	{P, Maj, Min, P, P, Maj, Maj},
	{P, Min, Min, P, P, Maj, Min},
	{P, Maj, Maj, Aug, Aug, Maj, Maj},
	{P, Maj, Maj, Aug, P, Maj, Min},
	{P, Maj, Maj, P, P, Min, Min},
	{P, Maj, Min, P, D, Min, Min},
	{P, Min, Min, D, D, Min, Min},
}

var ascendingMelodicMinorSemitones = [7]semitoneRow{
	{0, 2, 3, 5, 7, 9, 11},
	{0, 1, 3, 5, 7, 9, 10},
	{0, 2, 4, 6, 8, 9, 11},
	{0, 2, 4, 6, 7, 9, 10},
	{0, 2, 4, 5, 7, 8, 10},
	{0, 2, 3, 5, 6, 8, 10},
	{0, 1, 3, 4, 6, 8, 10},
}

func (f ScaleFamily) qualityTable() [7]qualityRow {
	switch f {
	case Major:
		return majorQualities
	case NaturalMinor:
		return naturalMinorQualities
	case HarmonicMinor:
		return harmonicMinorQualities
	case AscendingMelodicMinor:
		return ascendingMelodicMinorQualities
	default:
		return majorQualities
	}
}

func (f ScaleFamily) semitoneTable() [7]semitoneRow {
	switch f {
	case Major:
		return majorSemitones
	case NaturalMinor:
		return naturalMinorSemitones
	case HarmonicMinor:
		return harmonicMinorSemitones
	case AscendingMelodicMinor:
		return ascendingMelodicMinorSemitones
	default:
		return majorSemitones
	}
}

// StepToIntervalSpelling returns the interval from the tonic of the given
// rotation up to the given step, per spec.md §4.1. Step may exceed 7
// (compound intervals, e.g. a requested 9th/11th/13th); rotation selects
// which scale degree (1..7) is treated as tonic, supporting chords whose
// extensions are interpreted relative to a root that sits on some other
// degree of the enclosing key.
func (f ScaleFamily) StepToIntervalSpelling(step, rotation int) (Interval, error) {
	row := posMod(rotation-1, 7)
	idx := posMod(step-1, 7)
	quality := f.qualityTable()[row][idx]
	return NewInterval(quality, step)
}

// StepToSemitones returns the raw semitone distance from the rotation's
// tonic to the given step, independent of interval-quality arithmetic.
// Exposed to satisfy spec.md §8's invariant and for diagnostics; the
// functional path (chord resolution) goes through
// StepToIntervalSpelling, which always references the Major scale per
// spec.md §4.1's rationale.
func (f ScaleFamily) StepToSemitones(step, rotation int) int {
	row := posMod(rotation-1, 7)
	idx := posMod(step-1, 7)
	octaves := (step - 1) / 7
	return 12*octaves + f.semitoneTable()[row][idx]
}
