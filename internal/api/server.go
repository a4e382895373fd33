// Package api exposes the scenario catalog and the generation engine over
// HTTP. It is presentation glue: every statistical decision lives in the
// generator and the scenario catalog.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"synthgen/domain/core"
	"synthgen/domain/dataset"
	"synthgen/domain/run"
	"synthgen/domain/scenario"
	"synthgen/internal/export"
	"synthgen/internal/generator"
	"synthgen/internal/summary"
	"synthgen/ports"
)

// Server is the HTTP front end for the generator
type Server struct {
	router *chi.Mux
	runs   ports.RunRepository // nil disables run recording
}

// NewServer creates a new API server. runs may be nil.
func NewServer(runs ports.RunRepository) *Server {
	s := &Server{
		router: chi.NewRouter(),
		runs:   runs,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/scenarios", s.handleListScenarios)
		r.Get("/scenarios/{id}", s.handleGetScenario)
		r.Post("/generate", s.handleGenerate)
	})
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenario.Presets())
}

func (s *Server) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "scenario id must be an integer")
		return
	}

	preset, err := scenario.GetPreset(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, preset)
}

// GenerateRequest selects a preset or carries an explicit config. A request
// must set exactly one of the two.
type GenerateRequest struct {
	ScenarioID  *int             `json:"scenario_id,omitempty"`
	Config      *scenario.Config `json:"config,omitempty"`
	GroupPrefix string           `json:"group_prefix,omitempty"` // preset requests only
	Seed        *int64           `json:"seed,omitempty"`
	Format      string           `json:"format,omitempty"` // json (default) or csv
}

// GenerateResponse is the JSON-format generation result
type GenerateResponse struct {
	RunID        core.RunID      `json:"run_id"`
	ExpectedTest string          `json:"expected_test,omitempty"`
	RowCount     int             `json:"row_count"`
	Rows         []dataRow       `json:"rows"`
	Summary      interface{}     `json:"summary"`
	Config       scenario.Config `json:"config"`
	Seed         int64           `json:"seed"`
}

type dataRow struct {
	UserID int    `json:"user_id"`
	Group  string `json:"group"`
	Metric string `json:"metric"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if (req.ScenarioID == nil) == (req.Config == nil) {
		writeError(w, http.StatusBadRequest, "set exactly one of scenario_id or config")
		return
	}

	var cfg scenario.Config
	var expectedTest string
	if req.ScenarioID != nil {
		preset, err := scenario.GetPreset(*req.ScenarioID)
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		prefix := req.GroupPrefix
		if prefix == "" {
			prefix = "Group"
		}
		cfg = preset.Config(prefix)
		expectedTest = preset.ExpectedTest
	} else {
		cfg = *req.Config
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	ds, err := generator.New(seed).Generate(cfg)
	if err != nil {
		if core.IsInvalidConfigError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	rec := run.New(req.ScenarioID, cfg, seed, ds.Len(), "")
	if s.runs != nil {
		if err := s.runs.Create(r.Context(), rec); err != nil {
			log.Printf("failed to record run %s: %v", rec.ID, err)
		}
	}

	if req.Format == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="synthetic_data.csv"`)
		if err := export.WriteCSVTo(w, ds); err != nil {
			log.Printf("failed to stream csv for run %s: %v", rec.ID, err)
		}
		return
	}

	rows := make([]dataRow, ds.Len())
	for i, row := range ds.Rows {
		rows[i] = dataRow{UserID: row.UserID, Group: row.Group, Metric: row.Metric.String()}
	}

	sum, err := summarize(cfg.MetricType, ds)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		RunID:        rec.ID,
		ExpectedTest: expectedTest,
		RowCount:     ds.Len(),
		Rows:         rows,
		Summary:      sum,
		Config:       cfg,
		Seed:         seed,
	})
}

func summarize(metricType scenario.MetricType, ds *dataset.Dataset) (interface{}, error) {
	switch metricType {
	case scenario.MetricContinuous:
		return summary.ForContinuous(ds)
	case scenario.MetricProportion:
		return summary.ForProportion(ds)
	default:
		return summary.ForCategorical(ds), nil
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
