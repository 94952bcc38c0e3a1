package model

import "time"

// Phase is the current stage of a search session.
type Phase string

const (
	PhaseInitializing     Phase = "initializing"
	PhaseParsing          Phase = "parsing"
	PhaseSearchingEngines Phase = "searching_engines"
	PhaseSearchingPeople  Phase = "searching_people"
	PhaseAnalyzing        Phase = "analyzing"
	PhaseFinalizing       Phase = "finalizing"
	PhaseComplete         Phase = "complete"
	PhaseError            Phase = "error"
)

// Terminal reports whether no further phase transitions can occur.
func (p Phase) Terminal() bool {
	return p == PhaseComplete || p == PhaseError
}

// Results aggregates everything a search produced.
type Results struct {
	PhoneInfo PhoneInfo      `json:"phone_info"`
	Engines   []EngineResult `json:"search_engines"`
	People    []PersonRecord `json:"people_search"`
	Patterns  Patterns       `json:"patterns"`
	Summary   Summary        `json:"summary"`
}

// SessionState is an immutable snapshot of one search session.
type SessionState struct {
	ID          string    `json:"session_id"`
	PhoneNumber string    `json:"phone_number"`
	Options     Options   `json:"options"`
	Phase       Phase     `json:"status"`
	Progress    int       `json:"progress"`
	Results     Results   `json:"results"`
	Errors      []string  `json:"errors"`
	StartTime   time.Time `json:"start_time"`
}
