package harmalysis

// Quality is an interval quality: diminished/minor/perfect/major/augmented
// and their doubled extremes.
type Quality string

const (
	DD    Quality = "DD"
	D     Quality = "D"
	Min   Quality = "m"
	Maj   Quality = "M"
	P     Quality = "P"
	Aug   Quality = "A"
	AugAug Quality = "AA"
)

// qualityOrder fixes iteration order for quality tables so results (e.g.
// IntervalTo's reverse lookup) are deterministic.
var qualityOrder = []Quality{DD, D, Min, Maj, P, Aug, AugAug}

// perfectDeltas and nonPerfectDeltas are the semitone deltas a quality
// applies relative to the Major-scale reference, per spec.md §3's table.
var perfectDeltas = map[Quality]int{
	DD: -2, D: -1, P: 0, Aug: 1, AugAug: 2,
}

var nonPerfectDeltas = map[Quality]int{
	DD: -3, D: -2, Min: -1, Maj: 0, Aug: 1, AugAug: 2,
}

// majorStepSemitones is the Major scale's own semitone offsets at steps
// I..VII, used as the canonical reference frame for every other interval.
var majorStepSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

func majorReferenceSemitones(diatonicInterval int) int {
	octaves := (diatonicInterval - 1) / 7
	index := posMod(diatonicInterval-1, 7)
	return 12*octaves + majorStepSemitones[index]
}

// IsPerfectClass reports whether a diatonic interval belongs to the
// perfect-interval class (unison, fourth, fifth, and their compounds).
func IsPerfectClass(diatonicInterval int) bool {
	d := posMod(diatonicInterval-1, 7)
	return d == 0 || d == 3 || d == 4
}

// Interval is a spelled interval: a quality plus a diatonic interval
// number (1 = unison, 2 = second, ... arbitrary compounds beyond 8).
type Interval struct {
	Quality          Quality
	DiatonicInterval int
	Semitones        int
}

// NewInterval validates quality against the perfect/non-perfect class of
// diatonicInterval and derives Semitones from the Major-scale reference.
func NewInterval(quality Quality, diatonicInterval int) (Interval, error) {
	if diatonicInterval < 1 {
		return Interval{}, newError(IntervalIndexOutOfBounds, "diatonic interval %d must be >= 1", diatonicInterval)
	}
	deltas := nonPerfectDeltas
	if IsPerfectClass(diatonicInterval) {
		deltas = perfectDeltas
	}
	delta, ok := deltas[quality]
	if !ok {
		return Interval{}, newError(UnsupportedIntervalQuality, "quality %q is not valid for diatonic interval %d", quality, diatonicInterval)
	}
	semitones := majorReferenceSemitones(diatonicInterval) + delta
	return Interval{Quality: quality, DiatonicInterval: diatonicInterval, Semitones: semitones}, nil
}

// ParseQuality recognizes the wire form of a quality token as used by the
// Roman grammar's qualified added-interval syntax (M7, m9, D7, AA11, ...).
func ParseQuality(s string) (Quality, error) {
	switch Quality(s) {
	case DD, D, Min, Maj, P, Aug, AugAug:
		return Quality(s), nil
	default:
		return "", newError(UnsupportedIntervalQuality, "quality %q is not recognized", s)
	}
}

// String renders an interval as "<quality><diatonic interval>", e.g. "m3".
func (iv Interval) String() string {
	return string(iv.Quality) + itoa(iv.DiatonicInterval)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
