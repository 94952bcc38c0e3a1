package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/telespotter/telespotter/internal/model"
)

// ErrNotFound is returned when a session id has no archived row.
var ErrNotFound = eris.New("store: session not found")

// SessionSummary is one row of a session listing.
type SessionSummary struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phone_number"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
	StartTime   string `json:"start_time"`
}

// Store archives finished search sessions. Implementations must be
// safe for concurrent use.
type Store interface {
	Migrate(ctx context.Context) error
	SaveSession(ctx context.Context, s model.SessionState) error
	GetSession(ctx context.Context, id string) (model.SessionState, error)
	ListSessions(ctx context.Context, limit int) ([]SessionSummary, error)
	Close() error
}
