package sim

import (
	"errors"
	"fmt"

	"portfolio-sim/internal/model"
)

// DefaultCashAnnualRate is the annual interest rate earned on idle cash.
const DefaultCashAnnualRate = 0.02

// PortfolioParams are the validated, ordered inputs of one portfolio run.
// AssetLabels fixes the column order; Weights and every row of Returns are
// aligned to it.
type PortfolioParams struct {
	InitialCapital float64
	AssetLabels    []string
	Weights        []float64
	Returns        [][]float64
	NMonths        int
	CashAnnualRate float64
}

func (p PortfolioParams) Validate() error {
	if p.InitialCapital <= 0 {
		return errors.New("initial capital must be > 0")
	}
	if p.NMonths <= 0 {
		return errors.New("n_months must be > 0")
	}
	if len(p.AssetLabels) == 0 {
		return errors.New("at least one public asset is required")
	}
	if len(p.Weights) != len(p.AssetLabels) {
		return fmt.Errorf("%d weights for %d assets", len(p.Weights), len(p.AssetLabels))
	}
	if len(p.Returns) == 0 {
		return errors.New("returns series is empty")
	}
	for i, row := range p.Returns {
		if len(row) != len(p.AssetLabels) {
			return fmt.Errorf("returns row %d has %d columns, want %d", i, len(row), len(p.AssetLabels))
		}
	}
	return nil
}

// SimulatePortfolio combines public compounding, private NAV/cash-flow
// streams and cash interest into a single value path.
//
// Accounting convention: capital not allocated to public weights sits as idle
// cash; private commitments are treated as capital external to InitialCapital
// (their calls and distributions flow through the cash balance but the
// commitment itself never reduces it).
//
// The historical returns series is reused cyclically when NMonths exceeds the
// number of supplied rows.
func SimulatePortfolio(p PortfolioParams, investments []model.InvestmentSeries) (*model.PortfolioPath, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	weightSum := 0.0
	for _, w := range p.Weights {
		weightSum += w
	}

	publicValue := p.InitialCapital * weightSum
	cashBalance := p.InitialCapital * (1 - weightSum)

	path := &model.PortfolioPath{
		Public:  make([]float64, 0, p.NMonths),
		Private: make([]float64, 0, p.NMonths),
		Cash:    make([]float64, 0, p.NMonths),
		Total:   make([]float64, 0, p.NMonths),
	}

	privateValue := 0.0
	for _, inv := range investments {
		nav, _ := inv.ContributionAt(0)
		privateValue += nav
	}
	path.Public = append(path.Public, publicValue)
	path.Private = append(path.Private, privateValue)
	path.Cash = append(path.Cash, cashBalance)
	path.Total = append(path.Total, publicValue+privateValue+cashBalance)

	monthlyCashRate := p.CashAnnualRate / 12

	for t := 1; t < p.NMonths; t++ {
		row := p.Returns[t%len(p.Returns)]
		publicValue *= 1 + dot(p.Weights, row)

		privateValue = 0.0
		netCashFlow := 0.0
		for _, inv := range investments {
			nav, cf := inv.ContributionAt(t)
			privateValue += nav
			netCashFlow += cf
		}

		// Interest compounds on the balance after absorbing this
		// month's private net cash flow.
		cashBalance += netCashFlow
		cashBalance *= 1 + monthlyCashRate

		path.Public = append(path.Public, publicValue)
		path.Private = append(path.Private, privateValue)
		path.Cash = append(path.Cash, cashBalance)
		path.Total = append(path.Total, publicValue+privateValue+cashBalance)
	}

	return path, nil
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
