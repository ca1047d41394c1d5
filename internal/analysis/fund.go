// Package analysis derives per-fund lifetime summaries from simulated
// investment series.
package analysis

import (
	"math"

	"portfolio-sim/internal/model"
)

// FundSummary is a commitment-level digest of a simulated private fund.
// DPI (distributed / called) and TVPI ((distributed + final NAV) / called)
// are the standard realization and total-value multiples; both are 0 when
// nothing was ever called.
type FundSummary struct {
	Commitment       float64 `json:"commitment"`
	StartMonth       int     `json:"start_month"`
	FundLife         int     `json:"fund_life"`
	TotalCalled      float64 `json:"total_called"`
	TotalDistributed float64 `json:"total_distributed"`
	PeakNAV          float64 `json:"peak_nav"`
	FinalNAV         float64 `json:"final_nav"`
	DPI              float64 `json:"dpi"`
	TVPI             float64 `json:"tvpi"`
}

// SummarizeFund reduces one investment series to its lifetime summary.
func SummarizeFund(s model.InvestmentSeries) FundSummary {
	out := FundSummary{
		Commitment: s.Params.Commitment,
		StartMonth: s.Params.StartMonth,
		FundLife:   s.Params.FundLife,
	}

	for _, nav := range s.NAVHistory {
		out.PeakNAV = math.Max(out.PeakNAV, nav)
	}
	if len(s.NAVHistory) > 0 {
		out.FinalNAV = s.NAVHistory[len(s.NAVHistory)-1]
	}

	// CashFlows nets calls against distributions per month; the schedules
	// carry the gross amounts.
	for _, frac := range s.Params.CallSchedule {
		out.TotalCalled += frac * s.Params.Commitment
	}
	for _, frac := range s.Params.DistributionSchedule {
		out.TotalDistributed += frac * s.Params.Commitment
	}

	if out.TotalCalled > 0 {
		out.DPI = out.TotalDistributed / out.TotalCalled
		out.TVPI = (out.TotalDistributed + out.FinalNAV) / out.TotalCalled
	}
	return out
}

// SummarizeFunds maps SummarizeFund over a run's investments.
func SummarizeFunds(series []model.InvestmentSeries) []FundSummary {
	out := make([]FundSummary, len(series))
	for i, s := range series {
		out[i] = SummarizeFund(s)
	}
	return out
}
