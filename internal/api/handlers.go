// Package api provides the HTTP surface for the shapeshift engine.
package api

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/HumanAssisted/shapeshift-go/internal/apptype"
	"github.com/HumanAssisted/shapeshift-go/internal/matcher"
)

// Handler holds the engine shared by all HTTP endpoints.
type Handler struct {
	engine *matcher.Engine
}

// NewHandler creates a Handler around the given engine.
func NewHandler(engine *matcher.Engine) *Handler {
	return &Handler{engine: engine}
}

// ShapeshiftRequest is the POST /shapeshift body.
type ShapeshiftRequest struct {
	Source any `json:"source"`
	Target any `json:"target"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleShapeshift maps a source object onto a target template.
func (h *Handler) HandleShapeshift(w http.ResponseWriter, r *http.Request) {
	var req ShapeshiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}
	result, err := h.engine.Shapeshift(r.Context(), req.Source, req.Target)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleHealth reports engine configuration and liveness.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	provider := h.engine.Provider()
	writeJSON(w, http.StatusOK, apptype.HealthResult{
		Status:    "ok",
		Provider:  provider.Name(),
		Dims:      provider.Dimensions(),
		Threshold: h.engine.Threshold(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
