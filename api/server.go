// Package api - Thin, deterministic API layer
// The API is only responsible for input ingestion, engine orchestration
// and output serialization. It never performs cost logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"renovation-cost/core/budget"
	"renovation-cost/core/catalog"
	"renovation-cost/core/engine"
	"renovation-cost/core/output"
	"renovation-cost/core/types"
	"renovation-cost/internal/logging"
)

// Server is the API server
type Server struct {
	mux      *http.ServeMux
	version  string
	settings types.Settings
}

// NewServer creates a new API server with a default settings snapshot
func NewServer(version string, settings types.Settings) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		version:  version,
		settings: settings,
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /estimate", s.handleEstimate)
	s.mux.HandleFunc("POST /budget", s.handleBudget)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	if len(req.Measures) == 0 {
		s.writeError(w, "VALIDATION_ERROR", "at least one measure is required", http.StatusBadRequest)
		return
	}
	for i := range req.Measures {
		if err := catalog.ValidateMeasure(&req.Measures[i]); err != nil {
			s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
			return
		}
	}
	if req.Building != nil {
		if err := catalog.ValidateBuilding(req.Building); err != nil {
			s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
			return
		}
	}

	settings := s.settings
	if req.Settings != nil {
		settings = *req.Settings
	}
	buildingType := types.ParseBuildingType(req.ResidenceType)

	// Execute engine (no cost logic here)
	report := &output.Report{
		BuildingType: buildingType,
		BuildPeriod:  req.BuildPeriod,
		Metadata: output.ReportMetadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   s.version,
		},
	}

	baseTotal := decimal.Zero
	for i := range req.Measures {
		est := engine.EstimateMeasure(engine.Request{
			Measure:      &req.Measures[i],
			Building:     req.Building,
			BuildingType: buildingType,
			BuildPeriod:  req.BuildPeriod,
			CornerHouse:  req.CornerHouse,
			Settings:     &settings,
			HorizonYears: req.HorizonYears,
		})
		baseTotal = baseTotal.Add(est.BaseCost)
		report.Estimates = append(report.Estimates, est)
	}

	breakdown := budget.Cascade(baseTotal, &settings)
	report.Budget = &breakdown
	report.Metadata.Duration = time.Since(start).String()

	logging.Info("estimate served",
		zap.Int("measures", len(req.Measures)),
		zap.String("building_type", buildingType.String()),
		zap.Duration("duration", time.Since(start)))

	s.writeJSON(w, report, http.StatusOK)
}

// handleBudget handles POST /budget
func (s *Server) handleBudget(w http.ResponseWriter, r *http.Request) {
	var req BudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	settings := s.settings
	if req.Settings != nil {
		settings = *req.Settings
	}

	breakdown := budget.Cascade(decimal.NewFromFloat(req.BaseAmount), &settings)
	s.writeJSON(w, breakdown, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "renovation-cost",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}
