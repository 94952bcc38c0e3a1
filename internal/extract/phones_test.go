package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssociatedPhones(t *testing.T) {
	a := NewAnalyzer()

	phones := a.AssociatedPhones("also reachable at (555) 123-4567", "(415) 555-1234")
	require.Len(t, phones, 1)
	assert.Equal(t, "(555) 123-4567", phones[0].Value)
	assert.Equal(t, "5551234567", phones[0].Digits)
	assert.Equal(t, 65, phones[0].Confidence)
	assert.Equal(t, "associated", phones[0].Relationship)
}

func TestAssociatedPhonesExcludesReference(t *testing.T) {
	a := NewAnalyzer()

	phones := a.AssociatedPhones("call (415) 555-1234 today", "(415) 555-1234")
	assert.Empty(t, phones)
}

func TestAssociatedPhonesExcludesReferenceLastTen(t *testing.T) {
	a := NewAnalyzer()

	// reference carries the country code, text shows the national form
	phones := a.AssociatedPhones("listed as 415-555-1234", "+1 (415) 555-1234")
	assert.Empty(t, phones)
}

func TestAssociatedPhonesDeduplicatesAcrossFormats(t *testing.T) {
	a := NewAnalyzer()

	text := "(555) 123-4567 or 555-123-4567 or 5551234567"
	phones := a.AssociatedPhones(text, "(415) 555-1234")
	require.Len(t, phones, 1)
	assert.Equal(t, "5551234567", phones[0].Digits)
}
