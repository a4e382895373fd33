package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"synthgen/domain/core"
	"synthgen/domain/run"
	"synthgen/ports"
)

// Schema creates the runs table. Applied by callers that opt into run
// recording; there is no separate migration tool.
const Schema = `
CREATE TABLE IF NOT EXISTS generation_runs (
	id          TEXT PRIMARY KEY,
	scenario_id INTEGER,
	config      JSONB NOT NULL,
	seed        BIGINT NOT NULL,
	row_count   INTEGER NOT NULL,
	output_path TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL
)`

// runRepository implements the RunRepository interface
type runRepository struct {
	db *sqlx.DB
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *sqlx.DB) ports.RunRepository {
	return &runRepository{db: db}
}

// EnsureSchema applies the runs table schema.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to ensure runs schema: %w", err)
	}
	return nil
}

// Create inserts a new run record into the database
func (r *runRepository) Create(ctx context.Context, rec *run.Run) error {
	configJSON, err := json.Marshal(rec.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	query := `INSERT INTO generation_runs (
		id, scenario_id, config, seed, row_count, output_path, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.db.ExecContext(ctx, query,
		rec.ID, rec.ScenarioID, configJSON, rec.Seed, rec.RowCount, rec.OutputPath, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// GetByID retrieves a run by its ID
func (r *runRepository) GetByID(ctx context.Context, id core.RunID) (*run.Run, error) {
	query := `SELECT id, scenario_id, config, seed, row_count, output_path, created_at
	FROM generation_runs WHERE id = $1`

	var rec run.Run
	var configJSON []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID, &rec.ScenarioID, &configJSON, &rec.Seed, &rec.RowCount, &rec.OutputPath, &rec.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: run %s", core.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	if err := json.Unmarshal(configJSON, &rec.Config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &rec, nil
}

// List returns the most recent runs, newest first
func (r *runRepository) List(ctx context.Context, limit int) ([]*run.Run, error) {
	query := `SELECT id, scenario_id, config, seed, row_count, output_path, created_at
	FROM generation_runs ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var out []*run.Run
	for rows.Next() {
		var rec run.Run
		var configJSON []byte
		if err := rows.Scan(
			&rec.ID, &rec.ScenarioID, &configJSON, &rec.Seed, &rec.RowCount, &rec.OutputPath, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if err := json.Unmarshal(configJSON, &rec.Config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// Open connects to Postgres and verifies the connection.
func Open(databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
