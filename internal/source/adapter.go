// Package source implements the external-source adapters that turn a
// canonical phone number into raw records. Each adapter wraps one search
// engine or people-search site; the orchestrator is generic over the
// Adapter interface and never sees a concrete source type.
package source

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/telespotter/telespotter/internal/model"
)

// Category groups adapters by the record shape they produce.
type Category int

const (
	// Engine adapters yield title/url/snippet search hits.
	Engine Category = iota + 1
	// People adapters yield person-shaped records.
	People
)

// String returns the human-readable category name.
func (c Category) String() string {
	switch c {
	case Engine:
		return "engine"
	case People:
		return "people"
	default:
		return "unknown"
	}
}

// ParseCategory converts a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "engine":
		return Engine, nil
	case "people":
		return People, nil
	default:
		return 0, eris.Errorf("source: unknown category %q (valid: engine, people)", s)
	}
}

// QueryResult holds one adapter's raw records. Exactly one of the two
// slices is populated, matching the adapter's category.
type QueryResult struct {
	Engine []model.EngineResult
	People []model.PersonRecord
}

// Count returns how many raw records the result carries.
func (r *QueryResult) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Engine) + len(r.People)
}

// Adapter is one external source. Implementations must never panic
// outward; fetch problems come back as errors (and most adapters degrade
// to canned preview records instead of failing).
type Adapter interface {
	// Name returns the unique source identifier (e.g. "google", "spokeo").
	Name() string

	// Category returns the record shape this adapter produces.
	Category() Category

	// Query looks up the number and returns raw records.
	Query(ctx context.Context, number model.PhoneInfo, opts model.Options) (*QueryResult, error)
}
