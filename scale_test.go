package harmalysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepToIntervalSpellingMajorTonic(t *testing.T) {
	iv, err := Major.StepToIntervalSpelling(5, 1)
	require.NoError(t, err)
	assert.Equal(t, P, iv.Quality)
	assert.Equal(t, 5, iv.DiatonicInterval)
}

func TestStepToIntervalSpellingHarmonicMinorLeadingTone(t *testing.T) {
	// the 7th degree of harmonic minor, read from its own tonic (rotation 1),
	// is a major seventh (the raised leading tone).
	iv, err := HarmonicMinor.StepToIntervalSpelling(7, 1)
	require.NoError(t, err)
	assert.Equal(t, Maj, iv.Quality)
}

func TestStepToSemitonesCompound(t *testing.T) {
	got := Major.StepToSemitones(9, 1)
	assert.Equal(t, 14, got)
}

func TestStepToIntervalSpellingRotation(t *testing.T) {
	// rotation 2 of the major family's table is the dorian mode: its own
	// third is a minor third above its own tonic.
	iv, err := Major.StepToIntervalSpelling(3, 2)
	require.NoError(t, err)
	assert.Equal(t, Min, iv.Quality)
}

func TestParseScaleFamily(t *testing.T) {
	f, err := ParseScaleFamily("har")
	require.NoError(t, err)
	assert.Equal(t, HarmonicMinor, f)

	_, err = ParseScaleFamily("bogus")
	require.Error(t, err)
	var herr *Error
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, UnsupportedScale, herr.Kind)
}
