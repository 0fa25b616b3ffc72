// Package feasibility exposes the valuation engine over JSON HTTP.
package feasibility

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"land_valuation/pkg/core/report"
	"land_valuation/pkg/core/store"
	"land_valuation/pkg/core/valuation"
	"land_valuation/pkg/core/zoning"
)

type Handler struct {
	log   *logrus.Logger
	cache *store.GridCache
}

func NewHandler(log *logrus.Logger) *Handler {
	return &Handler{
		log:   log,
		cache: store.NewGridCache(),
	}
}

// MetricsResponse carries the computed metrics plus the resolved inputs so
// the client can display exactly what was evaluated.
type MetricsResponse struct {
	EvaluationID string                   `json:"evaluation_id"`
	Zoning       *zoning.Preset           `json:"zoning,omitempty"`
	Input        valuation.ScenarioInput  `json:"input"`
	Output       valuation.ScenarioOutput `json:"output"`
}

// GridResponse carries the sensitivity matrix and whether it was served from
// the memoization cache.
type GridResponse struct {
	Matrix valuation.Matrix `json:"matrix"`
	Cached bool             `json:"cached"`
}

// ReportResponse carries the rendered feasibility report.
type ReportResponse struct {
	EvaluationID string `json:"evaluation_id"`
	Markdown     string `json:"markdown"`
	HTML         string `json:"html"`
}

// HandlePresets serves the zoning catalog for dropdown population.
func (h *Handler) HandlePresets(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSON(w, zoning.Presets())
}

// HandleMetrics evaluates a single scenario.
func (h *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	req, input, preset, ok := h.decodeScenario(w, r)
	if !ok {
		return
	}

	out := valuation.ComputeMetrics(input)
	id := uuid.NewString()
	h.log.WithFields(logrus.Fields{
		"evaluation_id": id,
		"zoning_id":     req.ZoningID,
		"rlv":           out.RLV,
	}).Info("scenario evaluated")

	writeJSON(w, MetricsResponse{
		EvaluationID: id,
		Zoning:       preset,
		Input:        input,
		Output:       out,
	})
}

// HandleGrid builds (or serves from cache) the 4×6 sensitivity matrix.
// The lever fields of the request are ignored: the grid sweeps its own
// fixed level sets.
func (h *Handler) HandleGrid(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	_, input, _, ok := h.decodeScenario(w, r)
	if !ok {
		return
	}

	key := store.GridKey{
		LandArea:         input.LandArea,
		FloorFactor:      input.FloorFactor,
		MarketPrice:      input.MarketPrice,
		ConstructionCost: input.ConstructionCost,
	}
	matrix, cached := h.cache.GetOrBuild(key)
	h.log.WithFields(logrus.Fields{
		"land_area":    key.LandArea,
		"floor_factor": key.FloorFactor,
		"cached":       cached,
	}).Info("sensitivity grid served")

	writeJSON(w, GridResponse{Matrix: matrix, Cached: cached})
}

// HandleReport renders the full feasibility report (metrics + matrix).
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	req, input, preset, ok := h.decodeScenario(w, r)
	if !ok {
		return
	}

	out := valuation.ComputeMetrics(input)
	matrix, _ := h.cache.GetOrBuild(store.GridKey{
		LandArea:         input.LandArea,
		FloorFactor:      input.FloorFactor,
		MarketPrice:      input.MarketPrice,
		ConstructionCost: input.ConstructionCost,
	})

	zoneLabel := req.ZoningID
	if preset != nil {
		zoneLabel = preset.Label
	}
	parking := req.ParkingZone
	if parking == "" {
		parking = ParkingStandard
	}

	md := report.RenderMarkdown(report.Scenario{
		ZoneLabel:   zoneLabel,
		ParkingZone: parking,
		Input:       input,
		Output:      out,
		Matrix:      &matrix,
	})
	html, err := report.RenderHTML(md)
	if err != nil {
		h.log.WithError(err).Error("report rendering failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, ReportResponse{
		EvaluationID: uuid.NewString(),
		Markdown:     md,
		HTML:         html,
	})
}

// decodeScenario parses, validates and resolves the request body, writing
// the appropriate error status on failure.
func (h *Handler) decodeScenario(w http.ResponseWriter, r *http.Request) (ScenarioRequest, valuation.ScenarioInput, *zoning.Preset, bool) {
	var req ScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return req, valuation.ScenarioInput{}, nil, false
	}

	input, preset, err := req.Resolve()
	if err != nil {
		var unknown *zoning.UnknownPresetError
		if errors.As(err, &unknown) {
			h.log.WithField("zoning_id", unknown.ID).Warn("unknown zoning preset requested")
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return req, valuation.ScenarioInput{}, nil, false
	}
	return req, input, preset, true
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
