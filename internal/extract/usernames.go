package extract

import (
	"regexp"
	"strings"

	"github.com/telespotter/telespotter/internal/model"
)

var (
	mentionRe       = regexp.MustCompile(`@([A-Za-z0-9_]{3,20})`)
	labeledHandleRe = regexp.MustCompile(`(?i)(?:username|user|handle|screen name)[:\s]+([A-Za-z0-9_]{3,20})`)
)

// Usernames extracts handles from @mentions (confidence 70) and labeled
// "username: x" forms (confidence 80). A lowercase handle claims its slot
// on first sight; later rules never displace it.
func (a *Analyzer) Usernames(text string) []model.Record {
	seen := make(map[string]bool)
	var usernames []model.Record

	for _, m := range mentionRe.FindAllStringSubmatch(text, -1) {
		handle := m[1]
		key := strings.ToLower(handle)
		if seen[key] {
			continue
		}
		seen[key] = true
		usernames = append(usernames, model.Record{
			Kind:       model.KindUsername,
			Value:      "@" + handle,
			Username:   handle,
			Source:     "mention",
			Confidence: 70,
		})
	}

	for _, m := range labeledHandleRe.FindAllStringSubmatch(text, -1) {
		handle := m[1]
		key := strings.ToLower(handle)
		if seen[key] {
			continue
		}
		seen[key] = true
		usernames = append(usernames, model.Record{
			Kind:       model.KindUsername,
			Value:      handle,
			Username:   handle,
			Source:     "labeled",
			Confidence: 80,
		})
	}

	sortByConfidence(usernames)
	return capRecords(usernames, maxUsernames)
}
