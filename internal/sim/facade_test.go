package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRunInput() RunInput {
	return RunInput{
		InitialCapital: 1_000_000,
		PublicWeights:  map[string]float64{"SPY": 0.5, "TLT": 0.3, "VNQ": 0.2},
		ReturnsData: []map[string]float64{
			{"SPY": 0.01, "TLT": -0.005, "VNQ": 0.002},
			{"SPY": 0.007, "TLT": 0.002, "VNQ": -0.003},
			{"SPY": -0.006, "TLT": 0.001, "VNQ": 0.005},
			{"SPY": 0.012, "TLT": 0.003, "VNQ": 0.001},
			{"SPY": -0.008, "TLT": -0.002, "VNQ": 0.002},
		},
		PrivateCommitments: []CommitmentInput{
			{Commitment: 200_000},
			{Commitment: 100_000, StartMonth: 2},
		},
	}
}

func TestRun(t *testing.T) {
	t.Run("months default to returns length", func(t *testing.T) {
		result, err := Run(testRunInput())
		require.NoError(t, err)
		assert.Equal(t, 5, result.Path.Months())
	})

	t.Run("months can exceed returns via bootstrap", func(t *testing.T) {
		in := testRunInput()
		in.NMonths = 36
		result, err := Run(in)
		require.NoError(t, err)
		assert.Equal(t, 36, result.Path.Months())
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := Run(testRunInput())
		require.NoError(t, err)
		b, err := Run(testRunInput())
		require.NoError(t, err)
		assert.Equal(t, a.Path, b.Path)
		// Metrics may contain NaN sentinels (non-convergent IRR), which
		// never compare equal; check the finite fields directly.
		assert.Equal(t, a.Metrics.FinalValue, b.Metrics.FinalValue)
		assert.Equal(t, a.Metrics.CumulativeReturn, b.Metrics.CumulativeReturn)
		assert.Equal(t, a.Metrics.AnnualizedVol, b.Metrics.AnnualizedVol)
	})

	t.Run("total invariant", func(t *testing.T) {
		in := testRunInput()
		in.NMonths = 48
		result, err := Run(in)
		require.NoError(t, err)
		for tm := 0; tm < result.Path.Months(); tm++ {
			sum := result.Path.Public[tm] + result.Path.Private[tm] + result.Path.Cash[tm]
			assert.InDelta(t, sum, result.Path.Total[tm], 1e-9)
		}
	})

	t.Run("start month ignored by default", func(t *testing.T) {
		result, err := Run(testRunInput())
		require.NoError(t, err)
		// Both funds call capital at month 0 regardless of start_month.
		firstCall := (200_000 + 100_000) * 0.2 / 60
		assert.InDelta(t, firstCall, result.Path.Private[0], 0.01)
	})

	t.Run("honor start month defers the second fund", func(t *testing.T) {
		in := testRunInput()
		in.HonorStartMonth = true
		result, err := Run(in)
		require.NoError(t, err)
		firstFundCall := 200_000 * 0.2 / 60
		assert.InDelta(t, firstFundCall, result.Path.Private[0], 0.01)
		// Month 1: still only the first fund.
		assert.InDelta(t, firstFundCall*0.99+firstFundCall, result.Path.Private[1], 0.01)
		// Month 2: first fund's third month plus the second fund's first call.
		secondFundCall := 100_000 * 0.2 / 60
		firstFundNAV2 := (firstFundCall*0.99+firstFundCall)*0.99 + firstFundCall
		assert.InDelta(t, firstFundNAV2+secondFundCall, result.Path.Private[2], 0.01)
	})

	t.Run("fund summaries on request", func(t *testing.T) {
		in := testRunInput()
		in.IncludeInvestments = true
		result, err := Run(in)
		require.NoError(t, err)
		require.Len(t, result.Investments, 2)
		assert.InDelta(t, 40_000, result.Investments[0].TotalCalled, 1e-6)
	})

	t.Run("cash flow irr on request", func(t *testing.T) {
		in := testRunInput()
		in.IncludeCashFlowIRR = true
		result, err := Run(in)
		require.NoError(t, err)
		require.NotNil(t, result.Metrics.CashFlowIRR)

		base, err := Run(testRunInput())
		require.NoError(t, err)
		assert.Nil(t, base.Metrics.CashFlowIRR)
	})

	t.Run("missing asset in returns row", func(t *testing.T) {
		in := testRunInput()
		delete(in.ReturnsData[3], "TLT")
		_, err := Run(in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TLT")
		assert.Contains(t, err.Error(), "row 3")
	})

	t.Run("extra returns columns are ignored", func(t *testing.T) {
		in := testRunInput()
		for _, row := range in.ReturnsData {
			row["GLD"] = 0.001
		}
		result, err := Run(in)
		require.NoError(t, err)
		base, err := Run(testRunInput())
		require.NoError(t, err)
		assert.Equal(t, base.Path, result.Path)
	})

	t.Run("input validation", func(t *testing.T) {
		in := testRunInput()
		in.InitialCapital = 0
		_, err := Run(in)
		require.Error(t, err)

		in = testRunInput()
		in.PublicWeights = nil
		_, err = Run(in)
		require.Error(t, err)

		in = testRunInput()
		in.ReturnsData = nil
		_, err = Run(in)
		require.Error(t, err)

		in = testRunInput()
		in.PrivateCommitments = []CommitmentInput{{Commitment: -1}}
		_, err = Run(in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "private_commitments[0]")
	})
}
