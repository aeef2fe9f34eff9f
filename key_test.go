package harmalysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyDegree(t *testing.T) {
	k, err := NewKey('D', Natural, Major)
	require.NoError(t, err)
	fifth, err := k.Degree(5, nil)
	require.NoError(t, err)
	assert.Equal(t, "A", fifth.String())
}

func TestKeyDegreeWithAlteration(t *testing.T) {
	k, err := NewKey('C', Natural, NaturalMinor)
	require.NoError(t, err)
	sharp := Sharp
	raised, err := k.Degree(7, &sharp)
	require.NoError(t, err)
	assert.Equal(t, "B", raised.String())
}

func TestKeyDegreeOutOfRange(t *testing.T) {
	k := CMajor()
	_, err := k.Degree(0, nil)
	require.Error(t, err)
	var herr *Error
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, ScaleDegreeOutOfRange, herr.Kind)

	_, err = k.Degree(8, nil)
	require.Error(t, err)
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, ScaleDegreeOutOfRange, herr.Kind)
}

func TestRomanToInt(t *testing.T) {
	n, err := RomanToInt("vii")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = RomanToInt("viii")
	require.Error(t, err)
}

func TestCMajor(t *testing.T) {
	k := CMajor()
	assert.Equal(t, "C", k.Tonic.String())
	assert.Equal(t, Major, k.Family)
}
