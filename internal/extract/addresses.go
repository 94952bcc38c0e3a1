package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/telespotter/telespotter/internal/model"
	"github.com/telespotter/telespotter/internal/refdata"
)

var (
	// Full postal pattern: number + street + suffix, city, STATE ZIP.
	fullAddressRe = regexp.MustCompile(`(?i)\b(\d+\s+[A-Za-z0-9\s]+(?:Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Lane|Ln|Boulevard|Blvd|Court|Ct|Way|Place|Pl|Circle|Cir)\.?)[,\s]+([A-Za-z\s]+)[,\s]+([A-Z]{2})\s*(\d{5}(?:-\d{4})?)\b`)

	// Looser city, STATE ZIP fallback.
	partialAddressRe = regexp.MustCompile(`\b([A-Za-z\s]+)[,\s]+([A-Z]{2})\s*(\d{5})\b`)
)

// Addresses extracts US postal addresses. Full matches score 75, partial
// city/state/zip matches 55; both require a real state abbreviation.
// Duplicates keep the highest-confidence instance.
func (a *Analyzer) Addresses(text string) []model.Record {
	byKey := make(map[string]int)
	var addresses []model.Record

	add := func(rec model.Record) {
		key := strings.ToLower(rec.Value)
		if i, ok := byKey[key]; ok {
			if rec.Confidence > addresses[i].Confidence {
				addresses[i] = rec
			}
			return
		}
		byKey[key] = len(addresses)
		addresses = append(addresses, rec)
	}

	for _, m := range fullAddressRe.FindAllStringSubmatch(text, -1) {
		street := strings.TrimSpace(m[1])
		city := strings.TrimSpace(m[2])
		state := strings.ToUpper(m[3])
		zip := m[4]

		if !refdata.StateAbbrevs[state] {
			continue
		}
		add(model.Record{
			Kind:       model.KindAddress,
			Value:      fmt.Sprintf("%s, %s, %s %s", street, city, state, zip),
			Street:     street,
			City:       city,
			State:      state,
			Zip:        zip,
			Source:     "pattern_match",
			Confidence: 75,
		})
	}

	for _, m := range partialAddressRe.FindAllStringSubmatch(text, -1) {
		city := strings.TrimSpace(m[1])
		state := strings.ToUpper(m[2])
		zip := m[3]

		if len(city) <= 2 || !refdata.StateAbbrevs[state] {
			continue
		}
		add(model.Record{
			Kind:       model.KindAddress,
			Value:      fmt.Sprintf("%s, %s %s", city, state, zip),
			City:       city,
			State:      state,
			Zip:        zip,
			Source:     "partial_match",
			Confidence: 55,
		})
	}

	sortByConfidence(addresses)
	return capRecords(addresses, maxAddresses)
}
