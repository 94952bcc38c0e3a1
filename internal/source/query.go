package source

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/telespotter/telespotter/internal/model"
)

var queryNonDigitRe = regexp.MustCompile(`[^\d]`)

// BuildQuery turns a phone number into a quoted OR-query covering the
// most common textual formats. Capped at three terms to keep engines
// from truncating the query.
func BuildQuery(phone string) string {
	queries := []string{fmt.Sprintf("%q", phone)}

	digits := queryNonDigitRe.ReplaceAllString(phone, "")
	if len(digits) >= 10 {
		d := digits[len(digits)-10:]
		queries = append(queries,
			fmt.Sprintf(`"%s-%s-%s"`, d[:3], d[3:6], d[6:]),
			fmt.Sprintf(`"(%s) %s-%s"`, d[:3], d[3:6], d[6:]),
		)
	}

	if len(queries) > 3 {
		queries = queries[:3]
	}
	return strings.Join(queries, " OR ")
}

// lastTenDigits strips a number to its last ten digits, used in the
// lookup URLs of most sources.
func lastTenDigits(phone string) string {
	digits := queryNonDigitRe.ReplaceAllString(phone, "")
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	return digits
}

// displayFormat renders the last ten digits as (AAA) BBB-CCCC, falling
// back to the raw input when too short.
func displayFormat(phone string) string {
	d := lastTenDigits(phone)
	if len(d) < 10 {
		return phone
	}
	return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
}

// relevanceKeywords mark search hits that likely concern the number's owner.
var relevanceKeywords = []string{
	"owner", "name", "address", "location", "carrier",
	"caller", "spam", "scam", "review", "report",
	"who called", "reverse lookup", "phone lookup",
	"belongs to", "registered to",
}

// peopleSites earn a relevance bonus when they appear in a result URL.
var peopleSites = []string{
	"whitepages", "truepeoplesearch", "spokeo", "beenverified", "fastpeoplesearch",
}

// scoreRelevance estimates how likely a search hit concerns the queried
// number: +50 for an exact digit match, +10 for the area code, +5 per
// relevance keyword, +20 per people-search site in the URL. Capped at 100.
func scoreRelevance(result model.EngineResult, phone string) int {
	score := 0
	text := strings.ToLower(result.Title + " " + result.Snippet)
	phoneDigits := queryNonDigitRe.ReplaceAllString(phone, "")

	if phoneDigits != "" && strings.Contains(queryNonDigitRe.ReplaceAllString(text, ""), phoneDigits) {
		score += 50
	}

	if len(phoneDigits) >= 10 {
		areaCode := phoneDigits[len(phoneDigits)-10 : len(phoneDigits)-7]
		if strings.Contains(text, areaCode) {
			score += 10
		}
	}

	for _, keyword := range relevanceKeywords {
		if strings.Contains(text, keyword) {
			score += 5
		}
	}

	lowerURL := strings.ToLower(result.URL)
	for _, site := range peopleSites {
		if strings.Contains(lowerURL, site) {
			score += 20
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}
