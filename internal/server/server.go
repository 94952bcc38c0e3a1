// Package server exposes the search orchestrator over HTTP and
// websocket. Routes mirror the JSON API the web frontend consumes.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/telespotter/telespotter/internal/export"
	"github.com/telespotter/telespotter/internal/model"
	"github.com/telespotter/telespotter/internal/phone"
	"github.com/telespotter/telespotter/internal/search"
	"github.com/telespotter/telespotter/internal/store"
)

// Server wires the HTTP handlers to the orchestrator and archive.
type Server struct {
	orch    *search.Orchestrator
	parser  *phone.Parser
	archive store.Store
	hub     *Hub
}

// New creates a Server. archive may be nil when persistence is off.
func New(orch *search.Orchestrator, hub *Hub, archive store.Store) *Server {
	return &Server{
		orch:    orch,
		parser:  phone.NewParser(),
		archive: archive,
		hub:     hub,
	}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/ws", s.hub.HandleWS)

	r.Route("/api", func(r chi.Router) {
		r.Post("/search", s.handleStartSearch)
		r.Get("/search/{sessionID}", s.handleGetSearch)
		r.Get("/search/{sessionID}/export", s.handleExport)
		r.Post("/validate", s.handleValidate)
		r.Get("/sessions", s.handleListSessions)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStartSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PhoneNumber string        `json:"phone_number"`
		Options     model.Options `json:"options"`
	}
	req.Options = model.DefaultOptions()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := s.orch.StartSearch(r.Context(), req.PhoneNumber, req.Options)
	if err != nil {
		if eris.Is(err, search.ErrEmptyNumber) {
			writeError(w, http.StatusBadRequest, "Phone number is required")
			return
		}
		zap.L().Error("server: start search", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"session_id":   id,
		"status":       "started",
		"phone_number": strings.TrimSpace(req.PhoneNumber),
	})
}

func (s *Server) handleGetSearch(w http.ResponseWriter, r *http.Request) {
	state, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	state, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid export format")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", "attachment; filename="+format.Filename(state.ID))
	if err := export.Write(w, format, state); err != nil {
		zap.L().Error("server: export", zap.String("session", state.ID), zap.Error(err))
	}
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PhoneNumber string `json:"phone_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	if req.PhoneNumber == "" {
		writeError(w, http.StatusBadRequest, "Phone number is required")
		return
	}

	writeJSON(w, http.StatusOK, s.parser.Parse(req.PhoneNumber))
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		writeJSON(w, http.StatusOK, []store.SessionSummary{})
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	sessions, err := s.archive.ListSessions(r.Context(), limit)
	if err != nil {
		zap.L().Error("server: list sessions", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}
	if sessions == nil {
		sessions = []store.SessionSummary{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (model.SessionState, bool) {
	id := chi.URLParam(r, "sessionID")
	state, err := s.orch.Get(r.Context(), id)
	if err != nil {
		if eris.Is(err, search.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
		} else {
			zap.L().Error("server: get session", zap.String("session", id), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Internal error")
		}
		return model.SessionState{}, false
	}
	return state, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
