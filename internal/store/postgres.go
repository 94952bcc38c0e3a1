package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/telespotter/telespotter/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses. pgxmock satisfies
// it for unit tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS sessions (
	id           TEXT PRIMARY KEY,
	phone_number TEXT NOT NULL,
	status       TEXT NOT NULL,
	progress     INTEGER NOT NULL DEFAULT 0,
	options      JSONB NOT NULL,
	results      JSONB,
	errors       JSONB,
	start_time   TIMESTAMPTZ NOT NULL,
	saved_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_sessions_phone_number ON sessions(phone_number);
CREATE INDEX IF NOT EXISTS idx_sessions_start_time ON sessions(start_time);
`

func (s *PostgresStore) Ping(ctx context.Context) error {
	return eris.Wrap(s.pool.Ping(ctx), "postgres: ping")
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) SaveSession(ctx context.Context, state model.SessionState) error {
	optionsJSON, err := json.Marshal(state.Options)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal options")
	}
	resultsJSON, err := json.Marshal(state.Results)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal results")
	}
	errorsJSON, err := json.Marshal(state.Errors)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal errors")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO sessions (id, phone_number, status, progress, options, results, errors, start_time, saved_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO UPDATE SET
		   status = $3, progress = $4, results = $6, errors = $7, saved_at = $9`,
		state.ID, state.PhoneNumber, string(state.Phase), state.Progress,
		optionsJSON, resultsJSON, errorsJSON, state.StartTime, time.Now().UTC(),
	)
	return eris.Wrapf(err, "postgres: save session %s", state.ID)
}

func (s *PostgresStore) GetSession(ctx context.Context, id string) (model.SessionState, error) {
	var state model.SessionState
	var phase string
	var optionsJSON []byte
	var resultsJSON, errorsJSON *[]byte

	err := s.pool.QueryRow(ctx,
		`SELECT id, phone_number, status, progress, options, results, errors, start_time
		 FROM sessions WHERE id = $1`,
		id,
	).Scan(&state.ID, &state.PhoneNumber, &phase, &state.Progress,
		&optionsJSON, &resultsJSON, &errorsJSON, &state.StartTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.SessionState{}, ErrNotFound
		}
		return model.SessionState{}, eris.Wrapf(err, "postgres: get session %s", id)
	}
	state.Phase = model.Phase(phase)

	if err := json.Unmarshal(optionsJSON, &state.Options); err != nil {
		return model.SessionState{}, eris.Wrap(err, "postgres: unmarshal options")
	}
	if resultsJSON != nil {
		if err := json.Unmarshal(*resultsJSON, &state.Results); err != nil {
			return model.SessionState{}, eris.Wrap(err, "postgres: unmarshal results")
		}
	}
	if errorsJSON != nil {
		if err := json.Unmarshal(*errorsJSON, &state.Errors); err != nil {
			return model.SessionState{}, eris.Wrap(err, "postgres: unmarshal errors")
		}
	}
	return state, nil
}

func (s *PostgresStore) ListSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, phone_number, status, progress, start_time
		 FROM sessions ORDER BY start_time DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list sessions")
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var sum SessionSummary
		var start time.Time
		if err := rows.Scan(&sum.ID, &sum.PhoneNumber, &sum.Status, &sum.Progress, &start); err != nil {
			return nil, eris.Wrap(err, "postgres: scan session")
		}
		sum.StartTime = start.UTC().Format(time.RFC3339)
		out = append(out, sum)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list sessions iterate")
}
