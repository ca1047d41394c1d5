package model

// Built-in schedule policies, used when a commitment supplies none.
// Month indices are relative to the fund's own clock.
const (
	// Calls: 20% of commitment spread evenly over the first 5 years.
	// This is an intentional partial-call assumption, not a full drawdown.
	defaultCallWindow   = 60
	defaultCallFraction = 0.2

	// NAV growth (J-curve): early drag, then slow growth, then harvest.
	defaultDragMonths    = 24
	defaultGrowthMonths  = 60
	defaultDragFactor    = 0.99
	defaultGrowthFactor  = 1.01
	defaultHarvestFactor = 1.03

	// Distributions: 2% of commitment per month once harvest begins.
	defaultDistStart    = 60
	defaultDistFraction = 0.02
)

// DefaultCallSchedule spreads 20% of commitment evenly over the first 60
// months; nothing is called thereafter.
func DefaultCallSchedule(fundLife int) []float64 {
	s := make([]float64, fundLife)
	for i := 0; i < defaultCallWindow && i < fundLife; i++ {
		s[i] = defaultCallFraction / defaultCallWindow
	}
	return s
}

// DefaultNAVGrowthSchedule mimics a J-curve: 0.99 for months 0-23, 1.01 for
// months 24-59, 1.03 from month 60 on.
func DefaultNAVGrowthSchedule(fundLife int) []float64 {
	s := make([]float64, fundLife)
	for i := range s {
		switch {
		case i < defaultDragMonths:
			s[i] = defaultDragFactor
		case i < defaultGrowthMonths:
			s[i] = defaultGrowthFactor
		default:
			s[i] = defaultHarvestFactor
		}
	}
	return s
}

// DefaultDistributionSchedule distributes 2% of commitment per month from
// month 60 through the end of the fund's life.
func DefaultDistributionSchedule(fundLife int) []float64 {
	s := make([]float64, fundLife)
	for i := defaultDistStart; i < fundLife; i++ {
		s[i] = defaultDistFraction
	}
	return s
}
