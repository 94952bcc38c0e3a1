// Package extract mines raw source text for typed entities: names,
// emails, addresses, usernames, associated phone numbers, and social
// profiles. All extraction is pure text work; confidence scores are
// heuristic integers in [0,100], not calibrated probabilities.
package extract

import (
	"sort"

	"github.com/telespotter/telespotter/internal/model"
)

// Per-kind result caps.
const (
	maxNames     = 20
	maxEmails    = 10
	maxAddresses = 10
	maxUsernames = 15
	maxPhones    = 10
	maxProfiles  = 20
)

// Analyzer extracts entities from free text. Stateless and safe for
// concurrent use.
type Analyzer struct{}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// sortByConfidence orders records descending by confidence, stable so
// ties keep first-seen order.
func sortByConfidence(records []model.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Confidence > records[j].Confidence
	})
}

func capRecords(records []model.Record, limit int) []model.Record {
	if len(records) > limit {
		return records[:limit]
	}
	return records
}
