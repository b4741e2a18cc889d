// Package api - API types for building evaluation
// API is stateless, idempotent, and deterministic.
package api

import (
	"time"

	"shadowcost/core/catalog"
	"shadowcost/core/diff"
	"shadowcost/core/explanation"
	"shadowcost/core/geometry"
	"shadowcost/core/pricing"
	"shadowcost/core/pricing/primitives"
	"shadowcost/core/types"
)

// EvaluateRequest is the input to POST /evaluate and POST /compare.
// Fields left out take the server defaults.
type EvaluateRequest = types.BuildingParameters

// EvaluateResponse is the output of POST /evaluate
type EvaluateResponse struct {
	RequestID  string                   `json:"request_id"`
	Status     string                   `json:"status"`
	Parameters types.BuildingParameters `json:"parameters"`
	InputHash  string                   `json:"input_hash"`

	// Prices in presentation order
	Prices []pricing.Entry `json:"prices"`

	// Units are the priced quantities per category and material
	Units []primitives.CostUnit `json:"units"`

	Summary Summary `json:"summary"`

	// Explanations show the formula behind each priced line
	Explanations []*explanation.CostExplanation `json:"explanations"`

	// Building is included when requested with ?include=geometry
	Building *geometry.Building `json:"building,omitempty"`

	DurationMs int64 `json:"duration_ms"`
}

// Summary counts the generated elements
type Summary struct {
	Slabs          int                `json:"slabs"`
	Columns        int                `json:"columns"`
	ColumnsPerAxis geometry.GridSize  `json:"columns_per_axis"`
	Assignment     catalog.Assignment `json:"assignment"`
	SlabAreaM2     string             `json:"slab_area_m2"`
}

// CompareResponse is the output of POST /compare
type CompareResponse struct {
	RequestID string             `json:"request_id"`
	Status    string             `json:"status"`
	Results   []EvaluateResponse `json:"results"`

	// Deltas compare every result against the first
	Deltas     []*diff.Result `json:"deltas"`
	Narratives []string       `json:"narratives"`
}

// MaterialInfo describes one construction system
type MaterialInfo struct {
	Name       string  `json:"name"`
	Slab       string  `json:"slab"`
	Column     string  `json:"column"`
	Core       string  `json:"core"`
	ColumnSpan float64 `json:"column_span"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	RequestID string      `json:"request_id"`
	Status    string      `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Error     ErrorDetail `json:"error"`
}

// ErrorDetail describes an error
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}
