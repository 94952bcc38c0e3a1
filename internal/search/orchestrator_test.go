package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telespotter/telespotter/internal/model"
	"github.com/telespotter/telespotter/internal/source"
)

// stubAdapter returns canned results or a fixed error.
type stubAdapter struct {
	name string
	cat  source.Category
	res  *source.QueryResult
	err  error
}

func (s *stubAdapter) Name() string              { return s.name }
func (s *stubAdapter) Category() source.Category { return s.cat }
func (s *stubAdapter) Query(context.Context, model.PhoneInfo, model.Options) (*source.QueryResult, error) {
	return s.res, s.err
}

type progressCall struct {
	percent int
	message string
	status  string
}

type resultCall struct {
	resultType string
	payload    any
}

// recordingSink captures every published event.
type recordingSink struct {
	mu       sync.Mutex
	progress []progressCall
	results  []resultCall
}

func (r *recordingSink) PublishProgress(_ string, percent int, message, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = append(r.progress, progressCall{percent, message, status})
}

func (r *recordingSink) PublishResult(_ string, resultType string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, resultCall{resultType, payload})
}

func (r *recordingSink) progressCalls() []progressCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]progressCall(nil), r.progress...)
}

func (r *recordingSink) resultTypes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.results))
	for _, c := range r.results {
		out = append(out, c.resultType)
	}
	return out
}

func testConfig() Config {
	return Config{PolitenessDelay: time.Millisecond}
}

func newTestOrchestrator(t *testing.T, reg *source.Registry, sink ProgressSink) *Orchestrator {
	t.Helper()
	o, err := New(reg, sink, testConfig())
	require.NoError(t, err)
	return o
}

func waitTerminal(t *testing.T, o *Orchestrator, id string) model.SessionState {
	t.Helper()
	var state model.SessionState
	require.Eventually(t, func() bool {
		s, err := o.Get(context.Background(), id)
		if err != nil {
			return false
		}
		state = s
		return s.Phase.Terminal()
	}, 5*time.Second, 10*time.Millisecond)
	return state
}

func TestStartSearchEmptyNumber(t *testing.T) {
	o := newTestOrchestrator(t, source.NewRegistry(), NopSink{})

	_, err := o.StartSearch(context.Background(), "   ", model.DefaultOptions())
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrEmptyNumber))
}

func TestGetUnknownSession(t *testing.T) {
	o := newTestOrchestrator(t, source.NewRegistry(), NopSink{})

	_, err := o.Get(context.Background(), "search_missing")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrNotFound))
}

func TestSearchInvalidNumber(t *testing.T) {
	sink := &recordingSink{}
	o := newTestOrchestrator(t, source.NewRegistry(), sink)

	id, err := o.StartSearch(context.Background(), "12345", model.DefaultOptions())
	require.NoError(t, err)

	state := waitTerminal(t, o, id)
	assert.Equal(t, model.PhaseError, state.Phase)
	assert.Equal(t, 100, state.Progress)
	assert.Contains(t, state.Errors, "Invalid phone number format")
	assert.False(t, state.Results.PhoneInfo.Valid)

	calls := sink.progressCalls()
	require.NotEmpty(t, calls)
	last := calls[len(calls)-1]
	assert.Equal(t, "error", last.status)
	assert.Equal(t, "Invalid phone number format", last.message)
}

func TestSearchCompleteFlow(t *testing.T) {
	reg := source.NewRegistry()
	reg.Register(&stubAdapter{
		name: "google",
		cat:  source.Engine,
		res: &source.QueryResult{Engine: []model.EngineResult{
			{Title: "Owner: John Smith", URL: "https://example.net/1", Snippet: "contact jane@gmail.com", Source: "google", Relevance: 80},
		}},
	})
	reg.Register(&stubAdapter{
		name: "whitepages",
		cat:  source.People,
		res: &source.QueryResult{People: []model.PersonRecord{
			{Name: "John Smith", City: "Austin", State: "TX", Source: "whitepages", Confidence: 75},
		}},
	})

	sink := &recordingSink{}
	o := newTestOrchestrator(t, reg, sink)

	id, err := o.StartSearch(context.Background(), "(415) 555-1234", model.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, len(id) > len("search_"))

	state := waitTerminal(t, o, id)
	require.Equal(t, model.PhaseComplete, state.Phase)
	assert.Equal(t, 100, state.Progress)
	assert.Empty(t, state.Errors)

	assert.True(t, state.Results.PhoneInfo.Valid)
	assert.Len(t, state.Results.Engines, 1)
	assert.Len(t, state.Results.People, 1)
	assert.Equal(t, 1, state.Results.Summary.SearchEngineResults)
	assert.Equal(t, 1, state.Results.Summary.PeopleSearchResults)

	// extraction ran over the combined text
	require.NotEmpty(t, state.Results.Patterns.Names)
	assert.Equal(t, "John Smith", state.Results.Patterns.Names[0].Value)
	assert.GreaterOrEqual(t, state.Results.Patterns.Names[0].Confidence, 70)
	require.NotEmpty(t, state.Results.Patterns.Emails)
	assert.Equal(t, "jane@gmail.com", state.Results.Patterns.Emails[0].Value)

	types := sink.resultTypes()
	assert.Contains(t, types, "phone_info")
	assert.Contains(t, types, "search_engine")
	assert.Contains(t, types, "people_search")
	assert.Contains(t, types, "pattern")
	assert.Contains(t, types, "complete")
}

func TestSearchAdapterFailureIsolated(t *testing.T) {
	reg := source.NewRegistry()
	reg.Register(&stubAdapter{name: "google", cat: source.Engine, err: eris.New("boom")})
	reg.Register(&stubAdapter{
		name: "bing",
		cat:  source.Engine,
		res: &source.QueryResult{Engine: []model.EngineResult{
			{Title: "hit", URL: "https://example.net", Source: "bing", Relevance: 50},
		}},
	})

	o := newTestOrchestrator(t, reg, NopSink{})

	opts := model.DefaultOptions()
	opts.PeopleSearch = false

	id, err := o.StartSearch(context.Background(), "4155551234", opts)
	require.NoError(t, err)

	state := waitTerminal(t, o, id)
	assert.Equal(t, model.PhaseComplete, state.Phase)
	require.Len(t, state.Errors, 1)
	assert.Contains(t, state.Errors[0], "google: ")
	assert.Len(t, state.Results.Engines, 1)
}

func TestSearchProgressMonotonic(t *testing.T) {
	reg := source.NewRegistry()
	reg.Register(&stubAdapter{name: "google", cat: source.Engine, res: &source.QueryResult{}})
	reg.Register(&stubAdapter{name: "whitepages", cat: source.People, res: &source.QueryResult{}})

	sink := &recordingSink{}
	o := newTestOrchestrator(t, reg, sink)

	id, err := o.StartSearch(context.Background(), "(415) 555-1234", model.DefaultOptions())
	require.NoError(t, err)
	waitTerminal(t, o, id)

	calls := sink.progressCalls()
	require.NotEmpty(t, calls)

	prev := 0
	seen := make(map[int]bool)
	for _, c := range calls {
		assert.GreaterOrEqual(t, c.percent, prev)
		prev = c.percent
		seen[c.percent] = true
	}
	for _, checkpoint := range []int{5, 10, 40, 70, 75, 78, 81, 84, 87, 90, 95, 100} {
		assert.True(t, seen[checkpoint], "missing progress checkpoint %d", checkpoint)
	}
	assert.Equal(t, "complete", calls[len(calls)-1].status)
	assert.Equal(t, "Search complete!", calls[len(calls)-1].message)
}

func TestSearchSocialProfilesAlwaysExtracted(t *testing.T) {
	reg := source.NewRegistry()
	reg.Register(&stubAdapter{
		name: "google",
		cat:  source.Engine,
		res: &source.QueryResult{Engine: []model.EngineResult{
			{Title: "Profile", URL: "https://example.net/1", Snippet: "found at facebook.com/jsmith42", Source: "google", Relevance: 70},
		}},
	})

	opts := model.DefaultOptions()
	opts.PeopleSearch = false
	opts.IncludeSocial = false

	sink := &recordingSink{}
	o := newTestOrchestrator(t, reg, sink)

	id, err := o.StartSearch(context.Background(), "(415) 555-1234", opts)
	require.NoError(t, err)

	state := waitTerminal(t, o, id)
	require.Equal(t, model.PhaseComplete, state.Phase)

	// The include_social option never gates extraction; every run emits
	// checkpoint 90 and the social profile pass.
	require.NotEmpty(t, state.Results.Patterns.SocialProfiles)
	assert.Equal(t, "facebook", state.Results.Patterns.SocialProfiles[0].Platform)

	var sawCheckpoint bool
	for _, c := range sink.progressCalls() {
		if c.percent == 90 {
			sawCheckpoint = true
			assert.Equal(t, "Finding social profiles...", c.message)
		}
	}
	assert.True(t, sawCheckpoint, "missing progress checkpoint 90")
}

func TestSearchEmptyResultsStillPublished(t *testing.T) {
	reg := source.NewRegistry()
	reg.Register(&stubAdapter{name: "google", cat: source.Engine, res: &source.QueryResult{}})
	reg.Register(&stubAdapter{name: "whitepages", cat: source.People, res: &source.QueryResult{}})

	sink := &recordingSink{}
	o := newTestOrchestrator(t, reg, sink)

	id, err := o.StartSearch(context.Background(), "(415) 555-1234", model.DefaultOptions())
	require.NoError(t, err)

	state := waitTerminal(t, o, id)
	require.Equal(t, model.PhaseComplete, state.Phase)

	// A successful adapter call publishes its event even with zero
	// records, so subscribers see every source finish.
	types := sink.resultTypes()
	assert.Contains(t, types, "search_engine")
	assert.Contains(t, types, "people_search")
}

func TestSearchOptionsDisableSources(t *testing.T) {
	reg := source.NewRegistry()
	reg.Register(&stubAdapter{name: "google", cat: source.Engine, res: &source.QueryResult{
		Engine: []model.EngineResult{{Title: "should not appear"}},
	}})

	opts := model.DefaultOptions()
	opts.Google = false

	o := newTestOrchestrator(t, reg, NopSink{})
	id, err := o.StartSearch(context.Background(), "4155551234", opts)
	require.NoError(t, err)

	state := waitTerminal(t, o, id)
	assert.Equal(t, model.PhaseComplete, state.Phase)
	assert.Empty(t, state.Results.Engines)
}
