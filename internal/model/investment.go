package model

import (
	"errors"
	"fmt"
	"math"
)

// DefaultFundLife is the horizon of a private fund in months (10 years).
const DefaultFundLife = 120

// PrivateInvestmentParams defines a single private-market commitment.
// Units:
// - Commitment: $ (total committed capital)
// - StartMonth: months from simulation start
// - FundLife: months
// - Schedules: fractions of Commitment per month (call/distribution),
//   multiplicative factor per month (NAV growth)
type PrivateInvestmentParams struct {
	Commitment float64
	StartMonth int
	FundLife   int

	// Each schedule, when set, must have exactly FundLife entries.
	// Nil schedules fall back to the built-in policies in schedules.go.
	CallSchedule         []float64
	NAVGrowthSchedule    []float64
	DistributionSchedule []float64

	// HonorStartMonth shifts all schedules by StartMonth so the fund is
	// dormant until then. Off by default: the fund starts at month 0 and
	// StartMonth is stored but has no effect, matching the historical
	// accounting convention of this engine.
	HonorStartMonth bool
}

// WithDefaults returns a copy with FundLife and any missing schedules filled
// in from the default policies.
func (p PrivateInvestmentParams) WithDefaults() PrivateInvestmentParams {
	out := p
	if out.FundLife == 0 {
		out.FundLife = DefaultFundLife
	}
	if out.CallSchedule == nil {
		out.CallSchedule = DefaultCallSchedule(out.FundLife)
	}
	if out.NAVGrowthSchedule == nil {
		out.NAVGrowthSchedule = DefaultNAVGrowthSchedule(out.FundLife)
	}
	if out.DistributionSchedule == nil {
		out.DistributionSchedule = DefaultDistributionSchedule(out.FundLife)
	}
	return out
}

func (p PrivateInvestmentParams) Validate() error {
	if p.Commitment <= 0 {
		return errors.New("Commitment must be > 0")
	}
	if p.StartMonth < 0 {
		return errors.New("StartMonth must be >= 0")
	}
	if p.FundLife <= 0 {
		return errors.New("FundLife must be > 0")
	}
	if len(p.CallSchedule) != p.FundLife {
		return fmt.Errorf("call schedule has %d entries, want %d", len(p.CallSchedule), p.FundLife)
	}
	if len(p.NAVGrowthSchedule) != p.FundLife {
		return fmt.Errorf("nav growth schedule has %d entries, want %d", len(p.NAVGrowthSchedule), p.FundLife)
	}
	if len(p.DistributionSchedule) != p.FundLife {
		return fmt.Errorf("distribution schedule has %d entries, want %d", len(p.DistributionSchedule), p.FundLife)
	}
	for i, g := range p.NAVGrowthSchedule {
		if g < 0 {
			return fmt.Errorf("nav growth factor at month %d must be >= 0", i)
		}
	}
	return nil
}

// offset is the number of dormant months before the fund's schedules apply.
func (p PrivateInvestmentParams) offset() int {
	if p.HonorStartMonth {
		return p.StartMonth
	}
	return 0
}

// Phase describes a fund's lifecycle at a given portfolio month.
type Phase int

const (
	// PhasePending: before a shifted start month; contributes nothing.
	PhasePending Phase = iota
	// PhaseActive: within the fund's life; contributes NAV and cash flow.
	PhaseActive
	// PhaseExpired: past the fund's life. Terminal NAV is not carried
	// forward; the fund contributes exactly zero from here on.
	PhaseExpired
)

// InvestmentSeries is the fully computed result of one private investment:
// NAV and net cash flow per portfolio month. Immutable once built.
type InvestmentSeries struct {
	Params PrivateInvestmentParams

	// NAVHistory[t] and CashFlows[t] are indexed by portfolio month and
	// cover [0, offset+FundLife). CashFlows[t] = distributions - calls.
	NAVHistory []float64
	CashFlows  []float64
}

// SimulateInvestment runs the monthly recurrence for one commitment:
//
//	nav = nav*growth[i] + call[i]*commitment
//	nav = max(nav - dist[i]*commitment, 0)
//
// Distributions beyond available NAV are not carried as a deficit. The result
// depends only on params; identical inputs produce bit-identical series.
func SimulateInvestment(p PrivateInvestmentParams) (InvestmentSeries, error) {
	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		return InvestmentSeries{}, fmt.Errorf("private investment invalid: %w", err)
	}

	off := p.offset()
	navs := make([]float64, off+p.FundLife)
	flows := make([]float64, off+p.FundLife)

	nav := 0.0
	for i := 0; i < p.FundLife; i++ {
		call := p.CallSchedule[i] * p.Commitment
		nav = nav*p.NAVGrowthSchedule[i] + call

		dist := p.DistributionSchedule[i] * p.Commitment
		nav = math.Max(nav-dist, 0)

		navs[off+i] = nav
		flows[off+i] = dist - call
	}

	return InvestmentSeries{Params: p, NAVHistory: navs, CashFlows: flows}, nil
}

// PhaseAt reports the fund's lifecycle phase at a portfolio month.
func (s InvestmentSeries) PhaseAt(month int) Phase {
	switch {
	case month < s.Params.offset():
		return PhasePending
	case month < len(s.NAVHistory):
		return PhaseActive
	default:
		return PhaseExpired
	}
}

// ContributionAt returns the fund's NAV and net cash flow for a portfolio
// month. Pending and Expired funds contribute zero to both.
func (s InvestmentSeries) ContributionAt(month int) (nav, cashFlow float64) {
	if s.PhaseAt(month) != PhaseActive {
		return 0, 0
	}
	return s.NAVHistory[month], s.CashFlows[month]
}
