package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValueJoins(t *testing.T) {
	v, err := StringList{"Wax", "Interior Vacuum"}.Value()
	require.NoError(t, err)
	assert.Equal(t, "Wax, Interior Vacuum", v)
}

func TestStringListValueEmpty(t *testing.T) {
	v, err := StringList{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestStringListScanRoundTrip(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan("Wax, Interior Vacuum, Tire Shine"))
	assert.Equal(t, StringList{"Wax", "Interior Vacuum", "Tire Shine"}, l)
}

func TestStringListScanNilAndBytes(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan(nil))
	assert.Empty(t, l)

	require.NoError(t, l.Scan([]byte("Wax,,  ,Polish")))
	assert.Equal(t, StringList{"Wax", "Polish"}, l)
}

func TestStringListScanRejectsUnknownType(t *testing.T) {
	var l StringList
	assert.Error(t, l.Scan(42))
}

func TestNormalizePreservesOrder(t *testing.T) {
	in := StringList{"  Wax ", "", "Polish", "  "}
	assert.Equal(t, StringList{"Wax", "Polish"}, in.Normalize())
}

func TestNormalizeSplitsEmbeddedDelimiters(t *testing.T) {
	in := StringList{"Wax, Polish", "Tire Shine"}
	normalized := in.Normalize()
	assert.Equal(t, StringList{"Wax", "Polish", "Tire Shine"}, normalized)

	// A normalized list must come back from storage unchanged.
	v, err := normalized.Value()
	require.NoError(t, err)

	var scanned StringList
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, normalized, scanned)
}
