package harmalysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRomanSimpleTonic(t *testing.T) {
	a := NewAnalyzer()
	h, err := a.ParseRoman("C: I")
	require.NoError(t, err)
	assert.Equal(t, "C", h.Chord.Root.String())
	assert.Equal(t, MajorTriad, h.Chord.TriadQuality)
}

func TestParseRomanInheritsEstablishedKey(t *testing.T) {
	a := NewAnalyzer()
	_, err := a.ParseRoman("D: V")
	require.NoError(t, err)
	h, err := a.ParseRoman("ii")
	require.NoError(t, err)
	assert.Equal(t, "D", h.MainKey.Tonic.String())
	assert.Equal(t, "E", h.Chord.Root.String())
}

func TestParseRomanLowercaseMinorKey(t *testing.T) {
	a := NewAnalyzer()
	h, err := a.ParseRoman("a: i")
	require.NoError(t, err)
	assert.Equal(t, HarmonicMinor, h.MainKey.Family)
	assert.Equal(t, "A", h.Chord.Root.String())
}

func TestParseRomanDominantSeventh(t *testing.T) {
	a := NewAnalyzer()
	h, err := a.ParseRoman("C: V7")
	require.NoError(t, err)
	assert.Equal(t, "G", h.Chord.Root.String())
	seventh, ok := h.Chord.Intervals[7]
	require.True(t, ok)
	assert.Equal(t, Min, seventh.Quality)
}

func TestParseRomanInversionFigure(t *testing.T) {
	a := NewAnalyzer()
	h, err := a.ParseRoman("C: V65")
	require.NoError(t, err)
	assert.Equal(t, 1, h.Chord.Inversion)
}

func TestParseRomanDiminishedSuffix(t *testing.T) {
	a := NewAnalyzer()
	h, err := a.ParseRoman("C: viio")
	require.NoError(t, err)
	assert.Equal(t, DiminishedTriad, h.Chord.TriadQuality)
}

func TestParseRomanTonicizationChain(t *testing.T) {
	a := NewAnalyzer()
	h, err := a.ParseRoman("C: V/V")
	require.NoError(t, err)
	// V of V in C major tonicizes G major, whose own V is D.
	assert.Equal(t, "D", h.Chord.Root.String())
	require.Len(t, h.TonicizedKeys, 1)
	assert.Equal(t, "G", h.TonicizedKeys[0].Tonic.String())
}

func TestParseRomanSpecialChords(t *testing.T) {
	a := NewAnalyzer()

	it, err := a.ParseRoman("C: It")
	require.NoError(t, err)
	assert.Equal(t, ItalianSixth, it.Chord.AugmentedSixthKind)

	n, err := a.ParseRoman("C: N")
	require.NoError(t, err)
	assert.Equal(t, NeapolitanChord, n.Chord.Kind)

	cad, err := a.ParseRoman("C: Cad64")
	require.NoError(t, err)
	assert.Equal(t, CadentialSixFourChord, cad.Chord.Kind)

	cto7, err := a.ParseRoman("C: CTo7")
	require.NoError(t, err)
	assert.Equal(t, Min, cto7.Chord.Intervals[7].Quality)
}

func TestParseRomanHalfDiminishedSeventhShorthand(t *testing.T) {
	a := NewAnalyzer()
	h, err := a.ParseRoman("C: vii0")
	require.NoError(t, err)
	assert.Equal(t, HalfDiminishedSeventhChord, h.Chord.Kind)
	assert.Equal(t, "B", h.Chord.Root.String())
}

func TestParseRomanTristanIsUnresolvable(t *testing.T) {
	a := NewAnalyzer()
	_, err := a.ParseRoman("C: Tr")
	require.Error(t, err)
}

func TestParseRomanBracketKeyIntroduction(t *testing.T) {
	a := NewAnalyzer()
	_, err := a.ParseRoman("C: V [G:]")
	require.NoError(t, err)
	assert.Equal(t, "G", a.EstablishedKey().Tonic.String())
}

func TestParseRomanInvalidNumeralIsParseError(t *testing.T) {
	a := NewAnalyzer()
	_, err := a.ParseRoman("C: viii")
	require.Error(t, err)
}
