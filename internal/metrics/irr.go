package metrics

import "math"

const (
	irrTolerance = 1e-9
	irrMaxIter   = 100

	// Bisection bracket for the fallback. A monthly rate below -99.99%
	// or above 1000% is outside anything this engine can produce.
	irrFloor   = -0.9999
	irrCeiling = 10.0
)

// IRR finds the periodic rate r such that the net present value of the
// cash-flow series is zero: sum(flows[i] / (1+r)^i) == 0.
//
// Newton-Raphson with analytic first derivative, falling back to bisection
// when Newton leaves the bracket or stalls. Returns NaN when no sign change
// exists in the bracket or the solver does not converge.
func IRR(flows []float64) float64 {
	if len(flows) < 2 {
		return math.NaN()
	}

	r := 0.1
	for i := 0; i < irrMaxIter; i++ {
		f, df := npvAndDerivative(flows, r)
		if math.Abs(f) < irrTolerance {
			return r
		}
		if df == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			break
		}
		next := r - f/df
		if next <= irrFloor || next >= irrCeiling || math.IsNaN(next) {
			break
		}
		if math.Abs(next-r) < irrTolerance {
			return next
		}
		r = next
	}

	return bisectIRR(flows)
}

func npvAndDerivative(flows []float64, r float64) (npv, d float64) {
	for i, cf := range flows {
		disc := math.Pow(1+r, float64(i))
		npv += cf / disc
		if i > 0 {
			d -= float64(i) * cf / (disc * (1 + r))
		}
	}
	return npv, d
}

func npv(flows []float64, r float64) float64 {
	v, _ := npvAndDerivative(flows, r)
	return v
}

func bisectIRR(flows []float64) float64 {
	lo, hi := irrFloor, irrCeiling
	fLo, fHi := npv(flows, lo), npv(flows, hi)
	if math.IsNaN(fLo) || math.IsNaN(fHi) || fLo*fHi > 0 {
		return math.NaN()
	}
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		fMid := npv(flows, mid)
		if math.Abs(fMid) < irrTolerance || (hi-lo)/2 < irrTolerance {
			return mid
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return math.NaN()
}
