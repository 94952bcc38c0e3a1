package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailsWebmailBonus(t *testing.T) {
	a := NewAnalyzer()

	emails := a.Emails("Contact jane.doe@gmail.com for details")
	require.Len(t, emails, 1)
	assert.Equal(t, "jane.doe@gmail.com", emails[0].Value)
	assert.Equal(t, "gmail.com", emails[0].Domain)
	// base 60, +10 webmail, +5 one occurrence
	assert.Equal(t, 75, emails[0].Confidence)
}

func TestEmailsPlaceholderDomainsDropped(t *testing.T) {
	a := NewAnalyzer()

	emails := a.Emails("demo user@example.com and real person info@acme.org")
	require.Len(t, emails, 1)
	assert.Equal(t, "info@acme.org", emails[0].Value)
	assert.Equal(t, 65, emails[0].Confidence)
}

func TestEmailsLowercasedAndDeduplicated(t *testing.T) {
	a := NewAnalyzer()

	emails := a.Emails("Jane.Doe@Gmail.com also jane.doe@gmail.com")
	require.Len(t, emails, 1)
	assert.Equal(t, "jane.doe@gmail.com", emails[0].Value)
}

func TestEmailsRepeatBonusCapped(t *testing.T) {
	a := NewAnalyzer()

	text := "a@b.org a@b.org a@b.org a@b.org a@b.org a@b.org"
	emails := a.Emails(text)
	require.Len(t, emails, 1)
	// base 60, repeat bonus capped at +15
	assert.Equal(t, 75, emails[0].Confidence)
}
