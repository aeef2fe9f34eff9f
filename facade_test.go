package harmalysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDispatchesRoman(t *testing.T) {
	res, err := Parse("C: V7", SyntaxRoman)
	require.NoError(t, err)
	require.NotNil(t, res.Harmalysis)
	assert.Equal(t, "G", res.Harmalysis.Chord.Root.String())
}

func TestParseDispatchesChordLabel(t *testing.T) {
	res, err := Parse("G dominant seventh", SyntaxChordLabel)
	require.NoError(t, err)
	assert.Equal(t, "G dominant seventh", res.Label)
}

func TestParseUnrecognizedSyntax(t *testing.T) {
	_, err := Parse("C: I", Syntax(99))
	require.Error(t, err)
}
