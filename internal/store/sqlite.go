package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/telespotter/telespotter/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS sessions (
	id           TEXT PRIMARY KEY,
	phone_number TEXT NOT NULL,
	status       TEXT NOT NULL,
	progress     INTEGER NOT NULL DEFAULT 0,
	options      TEXT NOT NULL,
	results      TEXT,
	errors       TEXT,
	start_time   DATETIME NOT NULL,
	saved_at     DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_sessions_phone_number ON sessions(phone_number);
CREATE INDEX IF NOT EXISTS idx_sessions_start_time ON sessions(start_time);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveSession(ctx context.Context, state model.SessionState) error {
	optionsJSON, err := json.Marshal(state.Options)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal options")
	}
	resultsJSON, err := json.Marshal(state.Results)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal results")
	}
	errorsJSON, err := json.Marshal(state.Errors)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal errors")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, phone_number, status, progress, options, results, errors, start_time, saved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   status = excluded.status, progress = excluded.progress,
		   results = excluded.results, errors = excluded.errors, saved_at = excluded.saved_at`,
		state.ID, state.PhoneNumber, string(state.Phase), state.Progress,
		string(optionsJSON), string(resultsJSON), string(errorsJSON),
		state.StartTime, time.Now().UTC(),
	)
	return eris.Wrapf(err, "sqlite: save session %s", state.ID)
}

func (s *SQLiteStore) GetSession(ctx context.Context, id string) (model.SessionState, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, phone_number, status, progress, options, results, errors, start_time
		 FROM sessions WHERE id = ?`,
		id,
	)

	var state model.SessionState
	var phase, optionsJSON string
	var resultsJSON, errorsJSON sql.NullString
	err := row.Scan(&state.ID, &state.PhoneNumber, &phase, &state.Progress,
		&optionsJSON, &resultsJSON, &errorsJSON, &state.StartTime)
	if err == sql.ErrNoRows {
		return model.SessionState{}, ErrNotFound
	}
	if err != nil {
		return model.SessionState{}, eris.Wrapf(err, "sqlite: get session %s", id)
	}
	state.Phase = model.Phase(phase)

	if err := json.Unmarshal([]byte(optionsJSON), &state.Options); err != nil {
		return model.SessionState{}, eris.Wrap(err, "sqlite: unmarshal options")
	}
	if resultsJSON.Valid {
		if err := json.Unmarshal([]byte(resultsJSON.String), &state.Results); err != nil {
			return model.SessionState{}, eris.Wrap(err, "sqlite: unmarshal results")
		}
	}
	if errorsJSON.Valid {
		if err := json.Unmarshal([]byte(errorsJSON.String), &state.Errors); err != nil {
			return model.SessionState{}, eris.Wrap(err, "sqlite: unmarshal errors")
		}
	}
	return state, nil
}

func (s *SQLiteStore) ListSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, phone_number, status, progress, start_time
		 FROM sessions ORDER BY start_time DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list sessions")
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var sum SessionSummary
		var start time.Time
		if err := rows.Scan(&sum.ID, &sum.PhoneNumber, &sum.Status, &sum.Progress, &start); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan session")
		}
		sum.StartTime = start.UTC().Format(time.RFC3339)
		out = append(out, sum)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list sessions iterate")
}
