package search

import (
	"sync"
	"time"

	"github.com/telespotter/telespotter/internal/model"
)

// Session is the mutable state of one in-flight or finished search.
// The owning worker goroutine is the only writer; Snapshot is safe to
// call from any goroutine.
type Session struct {
	mu sync.RWMutex

	id          string
	phoneNumber string
	options     model.Options
	phase       model.Phase
	progress    int
	results     model.Results
	errors      []string
	startTime   time.Time
}

func newSession(id, phoneNumber string, opts model.Options) *Session {
	return &Session{
		id:          id,
		phoneNumber: phoneNumber,
		options:     opts,
		phase:       model.PhaseInitializing,
		startTime:   time.Now().UTC(),
	}
}

func (s *Session) ID() string { return s.id }

// Snapshot returns a copy of the session state. Slices are copied so
// the caller can hold the snapshot across further worker writes.
func (s *Session) Snapshot() model.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.SessionState{
		ID:          s.id,
		PhoneNumber: s.phoneNumber,
		Options:     s.options,
		Phase:       s.phase,
		Progress:    s.progress,
		Results:     copyResults(s.results),
		Errors:      append([]string(nil), s.errors...),
		StartTime:   s.startTime,
	}
}

func (s *Session) setPhase(p model.Phase) {
	s.mu.Lock()
	s.phase = p
	s.mu.Unlock()
}

// raiseProgress moves progress forward, never back, and returns the
// value actually in effect.
func (s *Session) raiseProgress(p int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p > s.progress {
		s.progress = p
	}
	return s.progress
}

func (s *Session) currentProgress() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress
}

func (s *Session) appendError(msg string) {
	s.mu.Lock()
	s.errors = append(s.errors, msg)
	s.mu.Unlock()
}

func (s *Session) setPhoneInfo(info model.PhoneInfo) {
	s.mu.Lock()
	s.results.PhoneInfo = info
	s.mu.Unlock()
}

func (s *Session) addEngineResults(rs []model.EngineResult) {
	s.mu.Lock()
	s.results.Engines = append(s.results.Engines, rs...)
	s.mu.Unlock()
}

func (s *Session) addPeopleResults(rs []model.PersonRecord) {
	s.mu.Lock()
	s.results.People = append(s.results.People, rs...)
	s.mu.Unlock()
}

func (s *Session) setPatterns(p model.Patterns) {
	s.mu.Lock()
	s.results.Patterns = p
	s.mu.Unlock()
}

func (s *Session) copyOfResults() model.Results {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyResults(s.results)
}

func (s *Session) setResults(r model.Results) {
	s.mu.Lock()
	s.results = r
	s.mu.Unlock()
}

func copyResults(r model.Results) model.Results {
	out := r
	out.Engines = append([]model.EngineResult(nil), r.Engines...)
	out.People = append([]model.PersonRecord(nil), r.People...)
	out.Patterns = model.Patterns{
		Names:            append([]model.Record(nil), r.Patterns.Names...),
		Emails:           append([]model.Record(nil), r.Patterns.Emails...),
		Addresses:        append([]model.Record(nil), r.Patterns.Addresses...),
		Usernames:        append([]model.Record(nil), r.Patterns.Usernames...),
		AssociatedPhones: append([]model.Record(nil), r.Patterns.AssociatedPhones...),
		SocialProfiles:   append([]model.Record(nil), r.Patterns.SocialProfiles...),
	}
	return out
}
