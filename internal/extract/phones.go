package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/telespotter/telespotter/internal/model"
)

// Alternative digit groupings for North American numbers.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})\b`),
	regexp.MustCompile(`\b([0-9]{10})\b`),
	regexp.MustCompile(`\b([0-9]{3})[-.]([0-9]{3})[-.]([0-9]{4})\b`),
}

var phoneNonDigitRe = regexp.MustCompile(`[^\d]`)

// AssociatedPhones extracts 10-digit phone numbers other than the
// reference number itself (self-matches are discarded). Fixed confidence
// 65; deduplicated by digit string.
func (a *Analyzer) AssociatedPhones(text, referenceNumber string) []model.Record {
	excludeDigits := phoneNonDigitRe.ReplaceAllString(referenceNumber, "")
	seen := make(map[string]bool)
	var phones []model.Record

	for _, pattern := range phonePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			digits := phoneNonDigitRe.ReplaceAllString(strings.Join(m[1:], ""), "")

			if digits == excludeDigits || digits == lastTen(excludeDigits) {
				continue
			}
			if len(digits) != 10 || seen[digits] {
				continue
			}
			seen[digits] = true
			phones = append(phones, model.Record{
				Kind:         model.KindAssociatedPhone,
				Value:        fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:]),
				Digits:       digits,
				Source:       "pattern_match",
				Confidence:   65,
				Relationship: "associated",
			})
		}
	}

	sortByConfidence(phones)
	return capRecords(phones, maxPhones)
}

func lastTen(digits string) string {
	if len(digits) <= 10 {
		return digits
	}
	return digits[len(digits)-10:]
}
