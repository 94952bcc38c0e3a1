package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressesFullMatch(t *testing.T) {
	a := NewAnalyzer()

	addrs := a.Addresses("Listed at 123 Main Street, Springfield, IL 62704 per records")
	require.NotEmpty(t, addrs)

	top := addrs[0]
	assert.Equal(t, "123 Main Street, Springfield, IL 62704", top.Value)
	assert.Equal(t, "123 Main Street", top.Street)
	assert.Equal(t, "IL", top.State)
	assert.Equal(t, "62704", top.Zip)
	assert.Equal(t, "pattern_match", top.Source)
	assert.Equal(t, 75, top.Confidence)
}

func TestAddressesPartialMatch(t *testing.T) {
	a := NewAnalyzer()

	addrs := a.Addresses("last seen near Austin, TX 78701")
	require.Len(t, addrs, 1)
	assert.Equal(t, "partial_match", addrs[0].Source)
	assert.Equal(t, 55, addrs[0].Confidence)
	assert.Equal(t, "TX", addrs[0].State)
}

func TestAddressesInvalidStateRejected(t *testing.T) {
	a := NewAnalyzer()

	assert.Empty(t, a.Addresses("456 Oak Avenue, Somewhere, ZZ 12345"))
}

func TestAddressesFullRanksAbovePartial(t *testing.T) {
	a := NewAnalyzer()

	text := "123 Main Street, Springfield, IL 62704 and also Portland, OR 97201"
	addrs := a.Addresses(text)
	require.GreaterOrEqual(t, len(addrs), 2)
	assert.Equal(t, 75, addrs[0].Confidence)
	for _, rec := range addrs[1:] {
		assert.LessOrEqual(t, rec.Confidence, addrs[0].Confidence)
	}
}
