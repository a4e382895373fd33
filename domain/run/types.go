package run

import (
	"time"

	"synthgen/domain/core"
	"synthgen/domain/scenario"
)

// Run records one completed generation: what was requested, how it was
// seeded, and where the output went. ScenarioID is nil for hand-built
// configs.
type Run struct {
	ID         core.RunID      `json:"id" db:"id"`
	ScenarioID *int            `json:"scenario_id,omitempty" db:"scenario_id"`
	Config     scenario.Config `json:"config" db:"-"`
	Seed       int64           `json:"seed" db:"seed"`
	RowCount   int             `json:"row_count" db:"row_count"`
	OutputPath string          `json:"output_path,omitempty" db:"output_path"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}

// New builds a run record for a finished generation.
func New(scenarioID *int, cfg scenario.Config, seed int64, rowCount int, outputPath string) *Run {
	return &Run{
		ID:         core.NewRunID(),
		ScenarioID: scenarioID,
		Config:     cfg,
		Seed:       seed,
		RowCount:   rowCount,
		OutputPath: outputPath,
		CreatedAt:  time.Now().UTC(),
	}
}
