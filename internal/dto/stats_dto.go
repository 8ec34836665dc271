package dto

import "pix-logview-be/internal/model"

type EntriesPerMinuteResponse struct {
	Points []model.MinuteCount `json:"points"`
	// Notices carries non-fatal query failures; the feed degrades to
	// an empty payload instead of an error.
	Notices []string `json:"notices,omitempty"`
}

// FunctionSeries is one pivoted per-function series aligned with the
// Minutes axis (zero-filled buckets).
type FunctionSeries struct {
	Function string  `json:"function"`
	Counts   []int64 `json:"counts"`
}

type OperationsResponse struct {
	HoursBack int                         `json:"hours_back"`
	Minutes   []string                    `json:"minutes"`
	Functions []string                    `json:"functions"`
	Series    []FunctionSeries            `json:"series"`
	Raw       []model.FunctionMinuteCount `json:"raw"`
	Notices   []string                    `json:"notices,omitempty"`
}

type LatestErrorsResponse struct {
	Errors  []model.OperationError `json:"errors"`
	Notices []string               `json:"notices,omitempty"`
}

// DirectionStats summarizes elapsed-time samples for one direction.
type DirectionStats struct {
	Count    int     `json:"count"`
	MeanMS   float64 `json:"mean_ms"`
	MedianMS float64 `json:"median_ms"`
	P95MS    float64 `json:"p95_ms"`
}

type PerformanceResponse struct {
	Window   string         `json:"window"`
	Inbound  DirectionStats `json:"inbound"`
	Outbound DirectionStats `json:"outbound"`
	Notices  []string       `json:"notices,omitempty"`
}
