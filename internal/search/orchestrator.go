package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	"github.com/telespotter/telespotter/internal/extract"
	"github.com/telespotter/telespotter/internal/fuse"
	"github.com/telespotter/telespotter/internal/model"
	"github.com/telespotter/telespotter/internal/phone"
	"github.com/telespotter/telespotter/internal/source"
	"github.com/telespotter/telespotter/internal/store"
)

var (
	// ErrEmptyNumber is returned by StartSearch for blank input.
	ErrEmptyNumber = eris.New("search: phone number is required")
	// ErrNotFound is returned by Get for unknown session ids.
	ErrNotFound = eris.New("search: session not found")
)

const (
	defaultMaxSessions   = 1024
	defaultMaxConcurrent = 8
	defaultDelay         = 500 * time.Millisecond
)

// Config tunes the orchestrator. Zero values fall back to defaults;
// Archive may be nil to disable persistence.
type Config struct {
	MaxSessions     int
	MaxConcurrent   int64
	PolitenessDelay time.Duration
	Archive         store.Store
}

// Orchestrator runs searches as background workers and tracks their
// sessions in a bounded live registry. Finished sessions are written
// through to the archive store when one is configured.
type Orchestrator struct {
	parser   *phone.Parser
	analyzer *extract.Analyzer
	registry *source.Registry
	sink     ProgressSink
	sessions *lru.Cache[string, *Session]
	archive  store.Store
	limiter  *rate.Limiter
	sem      *semaphore.Weighted
	titler   cases.Caser
}

func New(registry *source.Registry, sink ProgressSink, cfg Config) (*Orchestrator, error) {
	if sink == nil {
		sink = NopSink{}
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaultMaxSessions
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = defaultMaxConcurrent
	}
	if cfg.PolitenessDelay <= 0 {
		cfg.PolitenessDelay = defaultDelay
	}
	sessions, err := lru.New[string, *Session](cfg.MaxSessions)
	if err != nil {
		return nil, eris.Wrap(err, "search: session cache")
	}
	return &Orchestrator{
		parser:   phone.NewParser(),
		analyzer: extract.NewAnalyzer(),
		registry: registry,
		sink:     sink,
		sessions: sessions,
		archive:  cfg.Archive,
		limiter:  rate.NewLimiter(rate.Every(cfg.PolitenessDelay), 1),
		sem:      semaphore.NewWeighted(cfg.MaxConcurrent),
		titler:   cases.Title(language.English),
	}, nil
}

// StartSearch validates the input, registers a session, and kicks off
// the background worker. It returns the session id immediately.
func (o *Orchestrator) StartSearch(ctx context.Context, phoneNumber string, opts model.Options) (string, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return "", ErrEmptyNumber
	}
	id := "search_" + uuid.NewString()
	s := newSession(id, phoneNumber, opts)
	o.sessions.Add(id, s)
	go o.run(context.WithoutCancel(ctx), s)
	return id, nil
}

// Get returns a snapshot of a live session, falling back to the
// archive for sessions already evicted from the registry.
func (o *Orchestrator) Get(ctx context.Context, id string) (model.SessionState, error) {
	if s, ok := o.sessions.Get(id); ok {
		return s.Snapshot(), nil
	}
	if o.archive != nil {
		state, err := o.archive.GetSession(ctx, id)
		if err == nil {
			return state, nil
		}
		if !eris.Is(err, store.ErrNotFound) {
			return model.SessionState{}, err
		}
	}
	return model.SessionState{}, ErrNotFound
}

func (o *Orchestrator) run(ctx context.Context, s *Session) {
	defer func() {
		if r := recover(); r != nil {
			s.appendError(fmt.Sprintf("%v", r))
			s.setPhase(model.PhaseError)
			o.sink.PublishProgress(s.ID(), s.currentProgress(), fmt.Sprintf("Error: %v", r), "error")
			zap.L().Error("search: worker panic", zap.String("session", s.ID()), zap.Any("panic", r))
			o.persist(ctx, s)
		}
	}()

	if err := o.sem.Acquire(ctx, 1); err != nil {
		s.appendError("Error: " + err.Error())
		s.setPhase(model.PhaseError)
		o.sink.PublishProgress(s.ID(), s.currentProgress(), "Error: "+err.Error(), "error")
		return
	}
	defer o.sem.Release(1)

	opts := s.Snapshot().Options

	s.setPhase(model.PhaseParsing)
	o.progress(s, 5, "Parsing phone number...", "running")
	info := o.parser.Parse(s.Snapshot().PhoneNumber)
	s.setPhoneInfo(info)
	o.sink.PublishResult(s.ID(), "phone_info", info)
	if !info.Valid {
		s.appendError("Invalid phone number format")
		s.setPhase(model.PhaseError)
		o.progress(s, 100, "Invalid phone number format", "error")
		o.persist(ctx, s)
		return
	}

	if opts.SearchEngines {
		s.setPhase(model.PhaseSearchingEngines)
		o.progress(s, 10, "Searching search engines...", "running")
		o.queryEngines(ctx, s, info, opts)
	}

	if opts.PeopleSearch {
		s.setPhase(model.PhaseSearchingPeople)
		o.progress(s, 40, "Searching people search sites...", "running")
		o.queryPeople(ctx, s, info, opts)
	}

	s.setPhase(model.PhaseAnalyzing)
	o.progress(s, 70, "Analyzing patterns...", "running")
	o.analyze(s, info)

	s.setPhase(model.PhaseFinalizing)
	o.progress(s, 95, "Finalizing results...", "running")
	s.setResults(fuse.Finalize(s.copyOfResults()))

	s.setPhase(model.PhaseComplete)
	o.progress(s, 100, "Search complete!", "complete")
	o.sink.PublishResult(s.ID(), "complete", s.Snapshot().Results)
	o.persist(ctx, s)
}

func (o *Orchestrator) queryEngines(ctx context.Context, s *Session, info model.PhoneInfo, opts model.Options) {
	adapters := o.enabled(source.Engine, opts)
	if len(adapters) == 0 {
		return
	}
	step := 30.0 / float64(len(adapters))
	current := 10.0
	for _, a := range adapters {
		o.progress(s, int(current), "Searching "+o.titler.String(a.Name())+"...", "running")
		if err := o.limiter.Wait(ctx); err != nil {
			return
		}
		res, err := a.Query(ctx, info, opts)
		if err != nil {
			s.appendError(a.Name() + ": " + err.Error())
		} else if res != nil {
			s.addEngineResults(res.Engine)
			o.sink.PublishResult(s.ID(), "search_engine", EnginePayload{Engine: a.Name(), Results: res.Engine})
		}
		current += step
	}
}

func (o *Orchestrator) queryPeople(ctx context.Context, s *Session, info model.PhoneInfo, opts model.Options) {
	adapters := o.enabled(source.People, opts)
	if len(adapters) == 0 {
		return
	}
	step := 30.0 / float64(len(adapters))
	current := 40.0
	for _, a := range adapters {
		o.progress(s, int(current), "Searching "+o.titler.String(a.Name())+"...", "running")
		if err := o.limiter.Wait(ctx); err != nil {
			return
		}
		res, err := a.Query(ctx, info, opts)
		if err != nil {
			s.appendError(a.Name() + ": " + err.Error())
		} else if res != nil {
			s.addPeopleResults(res.People)
			o.sink.PublishResult(s.ID(), "people_search", PeoplePayload{Site: a.Name(), Results: res.People})
		}
		current += step
	}
}

func (o *Orchestrator) analyze(s *Session, info model.PhoneInfo) {
	text := o.combinedText(s)
	var p model.Patterns

	o.progress(s, 75, "Extracting names...", "running")
	p.Names = o.analyzer.Names(text)
	o.publishPattern(s, "names", p.Names)

	o.progress(s, 78, "Extracting emails...", "running")
	p.Emails = o.analyzer.Emails(text)
	o.publishPattern(s, "emails", p.Emails)

	o.progress(s, 81, "Extracting addresses...", "running")
	p.Addresses = o.analyzer.Addresses(text)
	o.publishPattern(s, "addresses", p.Addresses)

	o.progress(s, 84, "Extracting usernames...", "running")
	p.Usernames = o.analyzer.Usernames(text)
	o.publishPattern(s, "usernames", p.Usernames)

	o.progress(s, 87, "Finding associated phone numbers...", "running")
	p.AssociatedPhones = o.analyzer.AssociatedPhones(text, info.Formatted)
	o.publishPattern(s, "associated_phones", p.AssociatedPhones)

	o.progress(s, 90, "Finding social profiles...", "running")
	p.SocialProfiles = o.analyzer.SocialProfiles(text)
	o.publishPattern(s, "social_profiles", p.SocialProfiles)

	s.setPatterns(p)
}

// combinedText flattens every collected result into one text blob for
// the pattern extractors.
func (o *Orchestrator) combinedText(s *Session) string {
	res := s.copyOfResults()
	var b strings.Builder
	for _, r := range res.Engines {
		b.WriteString(r.Title)
		b.WriteString(" ")
		b.WriteString(r.Snippet)
		b.WriteString(" ")
	}
	for _, p := range res.People {
		if raw, err := json.Marshal(p); err == nil {
			b.Write(raw)
			b.WriteString(" ")
		}
	}
	return b.String()
}

func (o *Orchestrator) publishPattern(s *Session, kind string, data []model.Record) {
	o.sink.PublishResult(s.ID(), "pattern", PatternPayload{Type: kind, Data: data})
}

func (o *Orchestrator) enabled(cat source.Category, opts model.Options) []source.Adapter {
	all := o.registry.ByCategory(cat)
	out := make([]source.Adapter, 0, len(all))
	for _, a := range all {
		if opts.Enabled(a.Name()) {
			out = append(out, a)
		}
	}
	return out
}

func (o *Orchestrator) progress(s *Session, percent int, message, status string) {
	applied := s.raiseProgress(percent)
	o.sink.PublishProgress(s.ID(), applied, message, status)
}

func (o *Orchestrator) persist(ctx context.Context, s *Session) {
	if o.archive == nil {
		return
	}
	if err := o.archive.SaveSession(ctx, s.Snapshot()); err != nil {
		zap.L().Warn("search: archive save failed", zap.String("session", s.ID()), zap.Error(err))
	}
}
