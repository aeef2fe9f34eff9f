package harmalysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPitchClass(t *testing.T) {
	pc, err := NewPitchClass('F', Sharp)
	require.NoError(t, err)
	assert.Equal(t, 3, pc.DiatonicClass)
	assert.Equal(t, 6, pc.ChromaticClass)
	assert.Equal(t, "F#", pc.String())
}

func TestNewPitchClassUnsupportedLetter(t *testing.T) {
	_, err := NewPitchClass('H', Natural)
	require.Error(t, err)
	var herr *Error
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, UnsupportedNoteLetter, herr.Kind)
}

func TestPitchClassFromClassesEnharmonicSpelling(t *testing.T) {
	// D diatonic class with chromatic class 3 (Eb's pitch) must spell as D#.
	pc, err := PitchClassFromClasses(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "D#", pc.String())
}

func TestPitchClassFromClassesOutOfBounds(t *testing.T) {
	_, err := PitchClassFromClasses(7, 0)
	require.Error(t, err)
	var herr *Error
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, DiatonicClassOutOfBounds, herr.Kind)

	_, err = PitchClassFromClasses(0, 12)
	require.Error(t, err)
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, ChromaticClassOutOfBounds, herr.Kind)
}

func TestPitchClassToIntervalPreservesSpelling(t *testing.T) {
	fSharp, err := NewPitchClass('F', Sharp)
	require.NoError(t, err)
	m3, err := NewInterval(Min, 3)
	require.NoError(t, err)
	a, err := fSharp.ToInterval(m3)
	require.NoError(t, err)
	assert.Equal(t, "A", a.String())
}

func TestIntervalToRoundTrip(t *testing.T) {
	c, _ := NewPitchClass('C', Natural)
	e, _ := NewPitchClass('E', Natural)
	iv, err := IntervalTo(c, e)
	require.NoError(t, err)
	assert.Equal(t, Maj, iv.Quality)
	assert.Equal(t, 3, iv.DiatonicInterval)
}

func TestParseAlteration(t *testing.T) {
	cases := map[string]Alteration{
		"":   Natural,
		"b":  Flat,
		"-":  Flat,
		"bb": DoubleFlat,
		"--": DoubleFlat,
		"#":  Sharp,
		"x":  DoubleSharp,
		"##": DoubleSharp,
	}
	for in, want := range cases {
		got, err := ParseAlteration(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseAlteration("###")
	require.Error(t, err)
	var herr *Error
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, UnsupportedAlteration, herr.Kind)
}
