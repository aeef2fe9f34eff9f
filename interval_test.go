package harmalysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIntervalPerfectClass(t *testing.T) {
	p5, err := NewInterval(P, 5)
	require.NoError(t, err)
	assert.Equal(t, 7, p5.Semitones)

	_, err = NewInterval(Maj, 5)
	require.Error(t, err)
	var herr *Error
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, UnsupportedIntervalQuality, herr.Kind)
}

func TestNewIntervalNonPerfectClass(t *testing.T) {
	m7, err := NewInterval(Min, 7)
	require.NoError(t, err)
	assert.Equal(t, 10, m7.Semitones)

	M7, err := NewInterval(Maj, 7)
	require.NoError(t, err)
	assert.Equal(t, 11, M7.Semitones)
}

func TestNewIntervalCompound(t *testing.T) {
	// a major ninth is an octave plus a major second.
	M9, err := NewInterval(Maj, 9)
	require.NoError(t, err)
	assert.Equal(t, 14, M9.Semitones)
}

func TestNewIntervalIndexOutOfBounds(t *testing.T) {
	_, err := NewInterval(P, 0)
	require.Error(t, err)
	var herr *Error
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, IntervalIndexOutOfBounds, herr.Kind)
}

func TestIsPerfectClass(t *testing.T) {
	assert.True(t, IsPerfectClass(1))
	assert.True(t, IsPerfectClass(4))
	assert.True(t, IsPerfectClass(5))
	assert.True(t, IsPerfectClass(8))
	assert.False(t, IsPerfectClass(2))
	assert.False(t, IsPerfectClass(3))
	assert.False(t, IsPerfectClass(7))
}

func TestIntervalString(t *testing.T) {
	iv, err := NewInterval(Min, 3)
	require.NoError(t, err)
	assert.Equal(t, "m3", iv.String())
}

func TestParseQuality(t *testing.T) {
	q, err := ParseQuality("AA")
	require.NoError(t, err)
	assert.Equal(t, AugAug, q)

	_, err = ParseQuality("Z")
	require.Error(t, err)
}
