package search

import "github.com/telespotter/telespotter/internal/model"

// ProgressSink receives phase/progress/result events for a session.
// Delivery is fire-and-forget, at-most-once; the orchestrator never
// waits on acknowledgment.
type ProgressSink interface {
	PublishProgress(sessionID string, percent int, message, status string)
	PublishResult(sessionID string, resultType string, payload any)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) PublishProgress(string, int, string, string) {}
func (NopSink) PublishResult(string, string, any)           {}

// EnginePayload is the body of a "search_engine" result event.
type EnginePayload struct {
	Engine  string               `json:"engine"`
	Results []model.EngineResult `json:"results"`
}

// PeoplePayload is the body of a "people_search" result event.
type PeoplePayload struct {
	Site    string               `json:"site"`
	Results []model.PersonRecord `json:"results"`
}

// PatternPayload is the body of a "pattern" result event.
type PatternPayload struct {
	Type string         `json:"type"`
	Data []model.Record `json:"data"`
}
