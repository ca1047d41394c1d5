// Package metrics reduces a simulated portfolio path to summary statistics.
package metrics

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"portfolio-sim/internal/model"
)

// DefaultRiskFreeRate is the annual risk-free rate used by the Sharpe ratio.
const DefaultRiskFreeRate = 0.02

// Summary holds the named statistics of one run. All values are rounded to
// two decimals; percentage fields are scaled by 100. JSON keys match the
// report labels consumed by clients.
//
// Zero volatility yields a non-finite Sharpe ratio and a non-convergent IRR
// yields NaN; both are sentinels for the caller to check, not errors.
type Summary struct {
	FinalValue        float64 `json:"Final Portfolio Value ($)"`
	CumulativeReturn  float64 `json:"Cumulative Return (%)"`
	AnnualizedReturn  float64 `json:"Annualized Return (%)"`
	AnnualizedVol     float64 `json:"Annualized Volatility (%)"`
	SharpeRatio       float64 `json:"Sharpe Ratio"`
	MaxDrawdown       float64 `json:"Max Drawdown (%)"`
	PortfolioIRR      float64 `json:"Portfolio IRR (%)"`
	PublicAllocation  float64 `json:"Final Allocation - Public (%)"`
	PrivateAllocation float64 `json:"Final Allocation - Private (%)"`
	CashAllocation    float64 `json:"Final Allocation - Cash (%)"`

	// CashFlowIRR is the rigorous money-weighted alternative to
	// PortfolioIRR, computed from the actual private cash-flow ledger.
	// Populated only on request.
	CashFlowIRR *float64 `json:"Portfolio IRR (Cash Flow) (%),omitempty"`
}

// Calculate reduces a portfolio path to its summary statistics.
//
// PortfolioIRR treats period-over-period changes in total value as if they
// were external cash flows. That is a documented approximation of a true
// money-weighted return, kept for continuity; see CashFlowIRR for the
// ledger-based variant. The IRR is a monthly rate, reported as a percentage.
func Calculate(path *model.PortfolioPath, initialCapital, riskFreeRate float64) (Summary, error) {
	total := path.Total
	if len(total) < 2 {
		return Summary{}, errors.New("need at least two months of values")
	}
	if initialCapital <= 0 {
		return Summary{}, errors.New("initial capital must be > 0")
	}

	nMonths := len(total) - 1
	nYears := float64(nMonths) / 12

	finalValue := total[len(total)-1]
	cumulativeReturn := finalValue/initialCapital - 1
	annualizedReturn := math.Pow(finalValue/initialCapital, 1/nYears) - 1

	monthlyReturns := make([]float64, nMonths)
	for t := 1; t < len(total); t++ {
		monthlyReturns[t-1] = (total[t] - total[t-1]) / total[t-1]
	}
	// Population std dev: the series is the full path, not a sample.
	annualizedVol := stat.PopStdDev(monthlyReturns, nil) * math.Sqrt(12)

	maxDrawdown := 0.0
	runningMax := total[0]
	for _, v := range total {
		runningMax = math.Max(runningMax, v)
		dd := (runningMax - v) / runningMax
		if dd > maxDrawdown {
			maxDrawdown = dd
		}
	}

	irrFlows := make([]float64, 0, len(total))
	irrFlows = append(irrFlows, -initialCapital)
	for t := 1; t < len(total); t++ {
		irrFlows = append(irrFlows, total[t]-total[t-1])
	}
	irr := IRR(irrFlows)

	sharpe := (annualizedReturn - riskFreeRate) / annualizedVol

	return Summary{
		FinalValue:        round2(finalValue),
		CumulativeReturn:  round2(cumulativeReturn * 100),
		AnnualizedReturn:  round2(annualizedReturn * 100),
		AnnualizedVol:     round2(annualizedVol * 100),
		SharpeRatio:       round2(sharpe),
		MaxDrawdown:       round2(maxDrawdown * 100),
		PortfolioIRR:      round2(irr * 100),
		PublicAllocation:  round2(path.Public[len(path.Public)-1] / finalValue * 100),
		PrivateAllocation: round2(path.Private[len(path.Private)-1] / finalValue * 100),
		CashAllocation:    round2(path.Cash[len(path.Cash)-1] / finalValue * 100),
	}, nil
}

// CashFlowIRR computes a money-weighted monthly IRR from the actual ledger:
// the initial capital leaves at month 0, each month's net private cash flow
// follows, and the final total value returns at the horizon.
func CashFlowIRR(path *model.PortfolioPath, initialCapital float64, privateFlows []float64) float64 {
	n := path.Months()
	flows := make([]float64, n)
	flows[0] = -initialCapital
	for t := 1; t < n; t++ {
		if t < len(privateFlows) {
			flows[t] = privateFlows[t]
		}
	}
	flows[n-1] += path.Total[n-1]
	return IRR(flows)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
