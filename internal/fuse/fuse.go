// Package fuse performs the cross-source deduplication and ranking pass
// applied once all extraction is complete.
package fuse

import (
	"sort"
	"strings"

	"github.com/telespotter/telespotter/internal/model"
)

// Finalize re-deduplicates the extraction records across sources and
// computes the result summary. Names and addresses keep the
// highest-confidence duplicate and are re-sorted descending; emails keep
// the first occurrence only. Idempotent: Finalize(Finalize(r)) == Finalize(r).
func Finalize(r model.Results) model.Results {
	out := r
	out.Patterns.Names = dedupeHighest(r.Patterns.Names)
	out.Patterns.Emails = dedupeFirst(r.Patterns.Emails)
	out.Patterns.Addresses = dedupeHighest(r.Patterns.Addresses)

	out.Summary = model.Summary{
		TotalNames:            len(out.Patterns.Names),
		TotalEmails:           len(out.Patterns.Emails),
		TotalAddresses:        len(out.Patterns.Addresses),
		TotalUsernames:        len(out.Patterns.Usernames),
		TotalSocialProfiles:   len(out.Patterns.SocialProfiles),
		TotalAssociatedPhones: len(out.Patterns.AssociatedPhones),
		SearchEngineResults:   len(out.Engines),
		PeopleSearchResults:   len(out.People),
	}
	return out
}

// dedupeHighest keeps the highest-confidence record per lowercase value
// and re-sorts descending by confidence, ties in first-seen order.
func dedupeHighest(records []model.Record) []model.Record {
	byKey := make(map[string]int)
	out := make([]model.Record, 0, len(records))

	for _, rec := range records {
		key := strings.ToLower(rec.Value)
		if i, ok := byKey[key]; ok {
			if rec.Confidence > out[i].Confidence {
				out[i] = rec
			}
			continue
		}
		byKey[key] = len(out)
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}

// dedupeFirst keeps the first record per lowercase value, preserving order.
func dedupeFirst(records []model.Record) []model.Record {
	seen := make(map[string]bool)
	out := make([]model.Record, 0, len(records))

	for _, rec := range records {
		key := strings.ToLower(rec.Value)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, rec)
	}
	return out
}
