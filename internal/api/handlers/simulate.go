package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"portfolio-sim/internal/api/models"
	"portfolio-sim/internal/sim"
)

// SimulateHandler handles simulation requests.
type SimulateHandler struct {
	log zerolog.Logger
}

// NewSimulateHandler creates a new simulate handler.
func NewSimulateHandler(log zerolog.Logger) *SimulateHandler {
	return &SimulateHandler{log: log.With().Str("component", "simulate_handler").Logger()}
}

// RunSimulation handles POST /simulate.
//
// The engine is deterministic and pure, so there is no retry path: every
// fault, whether a missing field, an asset/weight mismatch or a metrics
// series that cannot be JSON-encoded (NaN/Inf sentinels), is reported once
// as the uniform error envelope with HTTP 500 and no partial result.
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, err)
		return
	}

	commitments := make([]sim.CommitmentInput, len(req.PrivateCommitments))
	for i, pc := range req.PrivateCommitments {
		commitments[i] = sim.CommitmentInput{
			Commitment: pc.Commitment,
			StartMonth: pc.StartMonth,
			FundLife:   pc.FundLife,
		}
	}

	result, err := sim.Run(sim.RunInput{
		InitialCapital:     req.InitialCapital,
		PublicWeights:      req.PublicWeights,
		ReturnsData:        req.ReturnsData,
		PrivateCommitments: commitments,
		NMonths:            req.Options.NMonths,
		CashAnnualRate:     req.Options.CashAnnualRate,
		RiskFreeRate:       req.Options.RiskFreeRate,
		HonorStartMonth:    req.Options.HonorStartMonth,
		IncludeInvestments: req.Options.IncludeInvestments,
		IncludeCashFlowIRR: req.Options.IncludeCashFlowIRR,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := models.SimulateResponse{
		Status: "success",
		Result: models.SimulationResult{
			Portfolio:   result.Path,
			Metrics:     result.Metrics,
			Investments: result.Investments,
		},
	}

	// Pre-marshal so a non-finite metric surfaces as the error envelope
	// instead of a truncated body.
	body, err := json.Marshal(resp)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.log.Info().
		Int("months", result.Path.Months()).
		Int("commitments", len(commitments)).
		Msg("simulation completed")
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (h *SimulateHandler) fail(c *gin.Context, err error) {
	h.log.Error().Err(err).Msg("simulation failed")
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Status:  "error",
		Message: err.Error(),
	})
}
