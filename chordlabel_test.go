package harmalysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChordLabelTriad(t *testing.T) {
	c, err := ParseChordLabel("Bb major")
	require.NoError(t, err)
	assert.Equal(t, MajorTriad, c.TriadQuality)
	assert.Equal(t, "Bb", c.Root.String())
}

func TestParseChordLabelSeventh(t *testing.T) {
	c, err := ParseChordLabel("C# half-diminished seventh")
	require.NoError(t, err)
	assert.Equal(t, DiminishedTriad, c.TriadQuality)
	assert.Equal(t, Min, c.Intervals[7].Quality)
}

func TestParseChordLabelAugmentedSixth(t *testing.T) {
	c, err := ParseChordLabel("Ab german augmented sixth")
	require.NoError(t, err)
	assert.Equal(t, GermanSixth, c.AugmentedSixthKind)
	_, hasFifth := c.Intervals[5]
	assert.True(t, hasFifth)
}

func TestParseChordLabelUnrecognizedPhrase(t *testing.T) {
	_, err := ParseChordLabel("C bogus quality")
	require.Error(t, err)
	var herr *Error
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, ParseError, herr.Kind)
}

func TestParseChordLabelMissingPhrase(t *testing.T) {
	_, err := ParseChordLabel("C")
	require.Error(t, err)
}
