package extract

import (
	"regexp"
	"strings"

	"github.com/telespotter/telespotter/internal/model"
)

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// Placeholder domains that never identify a real mailbox.
var placeholderDomains = map[string]bool{
	"example.com": true,
	"test.com":    true,
	"email.com":   true,
	"domain.com":  true,
}

// Personal webmail domains get a confidence boost over corporate ones.
var webmailDomains = map[string]bool{
	"gmail.com":   true,
	"yahoo.com":   true,
	"hotmail.com": true,
	"outlook.com": true,
	"icloud.com":  true,
	"aol.com":     true,
}

// Emails extracts email addresses, lowercased. Duplicates keep the first
// occurrence; placeholder domains are dropped.
func (a *Analyzer) Emails(text string) []model.Record {
	seen := make(map[string]bool)
	var emails []model.Record

	for _, m := range emailRe.FindAllString(text, -1) {
		email := strings.ToLower(m)
		if seen[email] || !isValidEmail(email) {
			continue
		}
		seen[email] = true
		emails = append(emails, model.Record{
			Kind:       model.KindEmail,
			Value:      email,
			Source:     "pattern_match",
			Confidence: emailConfidence(email, text),
			Domain:     emailDomain(email),
		})
	}

	sortByConfidence(emails)
	return capRecords(emails, maxEmails)
}

func emailDomain(email string) string {
	if at := strings.Index(email, "@"); at != -1 {
		return email[at+1:]
	}
	return ""
}

func isValidEmail(email string) bool {
	if placeholderDomains[emailDomain(email)] {
		return false
	}
	if len(email) < 6 || len(email) > 254 {
		return false
	}
	return true
}

// emailConfidence starts at 60, +10 for personal webmail, +5 per repeat
// occurrence (capped +15), clamped to 90.
func emailConfidence(email, text string) int {
	confidence := 60

	if webmailDomains[emailDomain(email)] {
		confidence += 10
	}

	count := strings.Count(strings.ToLower(text), email)
	bonus := count * 5
	if bonus > 15 {
		bonus = 15
	}
	confidence += bonus

	if confidence > 90 {
		confidence = 90
	}
	return confidence
}
