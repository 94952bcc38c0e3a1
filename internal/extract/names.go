package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/telespotter/telespotter/internal/model"
)

var (
	// Bare capitalized two-to-three-word sequences.
	bareNameRe = regexp.MustCompile(`\b([A-Z][a-z]+)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`)

	// Sequences preceded by a labeling phrase. Case folding applies to
	// the word groups too; candidate casing is enforced by isValidName.
	labeledNameRe = regexp.MustCompile(`(?i)(?:owner|name|caller|registered to|belongs to)[:\s]+([A-Z][a-z]+\s+[A-Z][a-z]+)`)
)

// nameContextClues boost confidence when found near a candidate.
var nameContextClues = []string{"owner", "registered", "belongs", "name", "caller"}

// nameStopwords rejects web chrome, calendar words, address suffixes and
// other frequent capitalized non-names.
var nameStopwords = map[string]bool{
	"phone": true, "number": true, "search": true, "lookup": true, "reverse": true,
	"caller": true, "owner": true, "address": true, "email": true, "click": true,
	"here": true, "view": true, "more": true, "free": true, "premium": true,
	"results": true, "found": true, "report": true, "united": true, "states": true,
	"america": true, "street": true, "avenue": true, "road": true, "drive": true,
	"lane": true, "court": true, "january": true, "february": true, "march": true,
	"april": true, "may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true, "privacy": true,
	"policy": true, "terms": true, "service": true, "contact": true,
	"about": true, "home": true, "page": true,
}

// Names extracts candidate person names. Labeled matches get a flat +20
// bonus capped at 90; bare matches cap at 95. A candidate seen by both
// rules keeps its highest-confidence scoring.
func (a *Analyzer) Names(text string) []model.Record {
	byKey := make(map[string]int)
	var names []model.Record

	add := func(rec model.Record) {
		key := strings.ToLower(rec.Value)
		if i, ok := byKey[key]; ok {
			if rec.Confidence > names[i].Confidence {
				names[i] = rec
			}
			return
		}
		byKey[key] = len(names)
		names = append(names, rec)
	}

	for _, m := range bareNameRe.FindAllString(text, -1) {
		full := strings.TrimSpace(m)
		if !isValidName(full) {
			continue
		}
		add(model.Record{
			Kind:       model.KindName,
			Value:      full,
			Source:     "pattern_match",
			Confidence: nameConfidence(full, text),
		})
	}

	for _, m := range labeledNameRe.FindAllStringSubmatch(text, -1) {
		full := strings.TrimSpace(m[1])
		if !isValidName(full) {
			continue
		}
		conf := nameConfidence(full, text) + 20
		if conf > 90 {
			conf = 90
		}
		add(model.Record{
			Kind:       model.KindName,
			Value:      full,
			Source:     "labeled_match",
			Confidence: conf,
		})
	}

	sortByConfidence(names)
	return capRecords(names, maxNames)
}

// isValidName rejects candidates with the wrong word count, short words,
// lowercase-led words, or any stop word.
func isValidName(name string) bool {
	words := strings.Fields(name)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, word := range words {
		if nameStopwords[strings.ToLower(word)] {
			return false
		}
		if len(word) < 2 {
			return false
		}
		runes := []rune(word)
		if !unicode.IsUpper(runes[0]) {
			return false
		}
	}
	return true
}

// nameConfidence starts at 50, adds up to 20 for repeated occurrences
// (+5 each), and +10 per context clue inside a 50-character window around
// the first occurrence. Clamped to 95.
func nameConfidence(name, text string) int {
	confidence := 50

	nameLower := strings.ToLower(name)
	textLower := strings.ToLower(text)

	count := strings.Count(textLower, nameLower)
	bonus := count * 5
	if bonus > 20 {
		bonus = 20
	}
	confidence += bonus

	if idx := strings.Index(textLower, nameLower); idx != -1 {
		start := idx - 50
		if start < 0 {
			start = 0
		}
		end := idx + len(name) + 50
		if end > len(textLower) {
			end = len(textLower)
		}
		context := textLower[start:end]
		for _, clue := range nameContextClues {
			if strings.Contains(context, clue) {
				confidence += 10
			}
		}
	}

	if confidence > 95 {
		confidence = 95
	}
	return confidence
}
