package models

import (
	"portfolio-sim/internal/analysis"
	"portfolio-sim/internal/metrics"
	"portfolio-sim/internal/model"
)

// SimulateResponse is the success envelope of POST /simulate.
type SimulateResponse struct {
	Status string           `json:"status"` // "success"
	Result SimulationResult `json:"result"`
}

// SimulationResult carries the value path and the derived statistics.
type SimulationResult struct {
	Portfolio   *model.PortfolioPath   `json:"portfolio"`
	Metrics     metrics.Summary        `json:"metrics"`
	Investments []analysis.FundSummary `json:"investments,omitempty"`
}

// ErrorResponse is the uniform failure envelope. Any fault during a run,
// from a missing field to a degenerate numeric result, produces this shape
// with HTTP 500 and no partial result.
type ErrorResponse struct {
	Status  string `json:"status"` // "error"
	Message string `json:"message"`
}

// ScheduleInfo describes one built-in schedule policy.
type ScheduleInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters,omitempty"`
}

// ParameterInfo describes a policy parameter.
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}
