package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsernamesMentionAndLabeled(t *testing.T) {
	a := NewAnalyzer()

	users := a.Usernames("found @cooldude99 and username: ghostrider elsewhere")
	require.Len(t, users, 2)

	// labeled match ranks above mention
	assert.Equal(t, "ghostrider", users[0].Value)
	assert.Equal(t, "labeled", users[0].Source)
	assert.Equal(t, 80, users[0].Confidence)

	assert.Equal(t, "@cooldude99", users[1].Value)
	assert.Equal(t, "mention", users[1].Source)
	assert.Equal(t, 70, users[1].Confidence)
}

func TestUsernamesFirstSeenWins(t *testing.T) {
	a := NewAnalyzer()

	users := a.Usernames("@ghostrider posted, username: ghostrider confirmed")
	require.Len(t, users, 1)
	assert.Equal(t, "mention", users[0].Source)
	assert.Equal(t, 70, users[0].Confidence)
}

func TestUsernamesLengthBounds(t *testing.T) {
	a := NewAnalyzer()

	assert.Empty(t, a.Usernames("too short @ab here"))
}
