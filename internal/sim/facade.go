package sim

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"portfolio-sim/internal/analysis"
	"portfolio-sim/internal/metrics"
	"portfolio-sim/internal/model"
)

// CommitmentInput is one private commitment as supplied by the caller.
// FundLife 0 means the default. Schedules always come from the built-in
// policies at this boundary.
type CommitmentInput struct {
	Commitment float64
	StartMonth int
	FundLife   int
}

// RunInput is the raw, label-keyed input of one simulation run, as it arrives
// from the transport or a scenario file. Zero-valued optional fields take
// defaults: NMonths = len(ReturnsData), CashAnnualRate and RiskFreeRate = 2%.
type RunInput struct {
	InitialCapital     float64
	PublicWeights      map[string]float64
	ReturnsData        []map[string]float64
	PrivateCommitments []CommitmentInput

	NMonths        int
	CashAnnualRate float64
	RiskFreeRate   float64

	// HonorStartMonth shifts each commitment's schedules by its
	// start_month instead of ignoring it.
	HonorStartMonth bool

	IncludeInvestments bool
	IncludeCashFlowIRR bool
}

// RunResult is the combined outcome of one run.
type RunResult struct {
	Path        *model.PortfolioPath
	Metrics     metrics.Summary
	Investments []analysis.FundSummary
}

// Run validates and normalizes raw input, simulates every private commitment,
// runs the portfolio engine and reduces the path to metrics. It is a pure
// function of its input; there is no retry and no partial result on failure.
func Run(in RunInput) (*RunResult, error) {
	if in.InitialCapital <= 0 {
		return nil, errors.New("initial_capital must be a positive number")
	}
	if len(in.PublicWeights) == 0 {
		return nil, errors.New("public_weights is required")
	}
	if len(in.ReturnsData) == 0 {
		return nil, errors.New("returns_data is required")
	}

	// Maps carry no order, so the asset vector layout is fixed by sorted
	// label. The dot product is order-invariant; only alignment matters.
	labels := make([]string, 0, len(in.PublicWeights))
	for label := range in.PublicWeights {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	weights := make([]float64, len(labels))
	for i, label := range labels {
		weights[i] = in.PublicWeights[label]
	}

	returns := make([][]float64, len(in.ReturnsData))
	for t, row := range in.ReturnsData {
		vec := make([]float64, len(labels))
		for i, label := range labels {
			r, ok := row[label]
			if !ok {
				return nil, fmt.Errorf("returns_data row %d is missing asset %q from public_weights", t, label)
			}
			vec[i] = r
		}
		returns[t] = vec
	}

	nMonths := in.NMonths
	if nMonths == 0 {
		nMonths = len(in.ReturnsData)
	}
	cashRate := in.CashAnnualRate
	if cashRate == 0 {
		cashRate = DefaultCashAnnualRate
	}
	riskFree := in.RiskFreeRate
	if riskFree == 0 {
		riskFree = metrics.DefaultRiskFreeRate
	}

	investments := make([]model.InvestmentSeries, 0, len(in.PrivateCommitments))
	for i, c := range in.PrivateCommitments {
		series, err := model.SimulateInvestment(model.PrivateInvestmentParams{
			Commitment:      c.Commitment,
			StartMonth:      c.StartMonth,
			FundLife:        c.FundLife,
			HonorStartMonth: in.HonorStartMonth,
		})
		if err != nil {
			return nil, fmt.Errorf("private_commitments[%d]: %w", i, err)
		}
		investments = append(investments, series)
	}

	path, err := SimulatePortfolio(PortfolioParams{
		InitialCapital: in.InitialCapital,
		AssetLabels:    labels,
		Weights:        weights,
		Returns:        returns,
		NMonths:        nMonths,
		CashAnnualRate: cashRate,
	}, investments)
	if err != nil {
		return nil, err
	}

	summary, err := metrics.Calculate(path, in.InitialCapital, riskFree)
	if err != nil {
		return nil, err
	}

	if in.IncludeCashFlowIRR {
		privateFlows := make([]float64, nMonths)
		for t := 1; t < nMonths; t++ {
			for _, inv := range investments {
				_, cf := inv.ContributionAt(t)
				privateFlows[t] += cf
			}
		}
		irr := metrics.CashFlowIRR(path, in.InitialCapital, privateFlows)
		irrPct := math.Round(irr*100*100) / 100
		summary.CashFlowIRR = &irrPct
	}

	result := &RunResult{Path: path, Metrics: summary}
	if in.IncludeInvestments {
		result.Investments = analysis.SummarizeFunds(investments)
	}
	return result, nil
}
