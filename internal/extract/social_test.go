package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocialProfiles(t *testing.T) {
	a := NewAnalyzer()

	profiles := a.SocialProfiles("see facebook.com/john.doe and linkedin.com/in/john-doe-123")
	require.Len(t, profiles, 2)

	assert.Equal(t, "facebook", profiles[0].Platform)
	assert.Equal(t, "john.doe", profiles[0].Username)
	assert.Equal(t, "https://facebook.com/john.doe", profiles[0].URL)
	assert.Equal(t, 85, profiles[0].Confidence)

	assert.Equal(t, "linkedin", profiles[1].Platform)
	assert.Equal(t, "john-doe-123", profiles[1].Username)
}

func TestSocialProfilesTwitterAliases(t *testing.T) {
	a := NewAnalyzer()

	// twitter.com and x.com resolve to the same platform and handle
	profiles := a.SocialProfiles("twitter.com/jdoe and x.com/jdoe")
	require.Len(t, profiles, 1)
	assert.Equal(t, "twitter", profiles[0].Platform)
	assert.Equal(t, "jdoe", profiles[0].Username)
}

func TestSocialProfilesSchemeNormalized(t *testing.T) {
	a := NewAnalyzer()

	profiles := a.SocialProfiles("https://instagram.com/someuser")
	require.Len(t, profiles, 1)
	assert.Equal(t, "https://instagram.com/someuser", profiles[0].URL)
}
