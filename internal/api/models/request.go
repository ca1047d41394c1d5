package models

// SimulateRequest is the request body for POST /simulate.
// public_weights keys fix the asset set and must be present in every element
// of returns_data.
type SimulateRequest struct {
	InitialCapital     float64              `json:"initial_capital" binding:"required"`
	PublicWeights      map[string]float64   `json:"public_weights" binding:"required"`
	ReturnsData        []map[string]float64 `json:"returns_data" binding:"required"`
	PrivateCommitments []PrivateCommitment  `json:"private_commitments"`
	Options            SimulateOptions      `json:"options,omitempty"`
}

// PrivateCommitment spawns one private investment with the built-in default
// schedules. start_month is stored but only shifts the schedules when
// options.honor_start_month is set.
type PrivateCommitment struct {
	Commitment float64 `json:"commitment" binding:"required"`
	StartMonth int     `json:"start_month,omitempty"`
	FundLife   int     `json:"fund_life,omitempty"` // 0 = default (120)
}

// SimulateOptions contains optional run parameters.
type SimulateOptions struct {
	NMonths            int     `json:"n_months,omitempty"`          // 0 = len(returns_data)
	CashAnnualRate     float64 `json:"cash_annual_rate,omitempty"`  // 0 = 2%
	RiskFreeRate       float64 `json:"risk_free_rate,omitempty"`    // 0 = 2%
	HonorStartMonth    bool    `json:"honor_start_month,omitempty"`
	IncludeInvestments bool    `json:"include_investments,omitempty"`
	IncludeCashFlowIRR bool    `json:"include_cash_flow_irr,omitempty"`
}
