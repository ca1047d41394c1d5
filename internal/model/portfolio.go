package model

// PortfolioPath is the combined value path of a simulation run: four parallel
// series indexed by month. Invariant: Total[t] = Public[t]+Private[t]+Cash[t]
// for every t. Value object; not mutated after the run that produced it.
type PortfolioPath struct {
	Public  []float64 `json:"public"`
	Private []float64 `json:"private"`
	Cash    []float64 `json:"cash"`
	Total   []float64 `json:"total"`
}

// Months is the length of the path.
func (p *PortfolioPath) Months() int { return len(p.Total) }
