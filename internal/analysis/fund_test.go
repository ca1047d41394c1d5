package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-sim/internal/model"
)

func TestSummarizeFund(t *testing.T) {
	t.Run("default fund", func(t *testing.T) {
		series, err := model.SimulateInvestment(model.PrivateInvestmentParams{Commitment: 200_000})
		require.NoError(t, err)

		s := SummarizeFund(series)
		assert.Equal(t, 200_000.0, s.Commitment)
		assert.Equal(t, model.DefaultFundLife, s.FundLife)

		// 20% of commitment called, 2%/month distributed for 60 months.
		assert.InDelta(t, 40_000, s.TotalCalled, 1e-6)
		assert.InDelta(t, 240_000, s.TotalDistributed, 1e-6)
		assert.InDelta(t, 6.0, s.DPI, 1e-9)
		assert.Greater(t, s.TVPI, s.DPI-1e-9)
		assert.Greater(t, s.PeakNAV, 0.0)
		assert.GreaterOrEqual(t, s.PeakNAV, s.FinalNAV)
	})

	t.Run("nothing called", func(t *testing.T) {
		series, err := model.SimulateInvestment(model.PrivateInvestmentParams{
			Commitment:           50_000,
			FundLife:             6,
			CallSchedule:         make([]float64, 6),
			NAVGrowthSchedule:    []float64{1, 1, 1, 1, 1, 1},
			DistributionSchedule: make([]float64, 6),
		})
		require.NoError(t, err)

		s := SummarizeFund(series)
		assert.Zero(t, s.TotalCalled)
		assert.Zero(t, s.DPI)
		assert.Zero(t, s.TVPI)
	})

	t.Run("batch", func(t *testing.T) {
		a, err := model.SimulateInvestment(model.PrivateInvestmentParams{Commitment: 100_000})
		require.NoError(t, err)
		b, err := model.SimulateInvestment(model.PrivateInvestmentParams{Commitment: 300_000})
		require.NoError(t, err)

		out := SummarizeFunds([]model.InvestmentSeries{a, b})
		require.Len(t, out, 2)
		assert.InDelta(t, 3*out[0].TotalCalled, out[1].TotalCalled, 1e-6)
	})
}
