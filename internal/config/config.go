package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"portfolio-sim/internal/metrics"
	"portfolio-sim/internal/model"
	"portfolio-sim/internal/sim"
)

// Config is the on-disk scenario shape (YAML) consumed by the CLI and demo.
type Config struct {
	Scenario ScenarioConfig `yaml:"scenario"`
}

type ScenarioConfig struct {
	InitialCapital float64            `yaml:"initial_capital"`
	PublicWeights  map[string]float64 `yaml:"public_weights"`

	// ReturnsFile points at a JSON returns file (see internal/data);
	// relative paths are resolved against the config file directory.
	ReturnsFile string `yaml:"returns_file"`

	NMonths        int     `yaml:"n_months"`
	CashAnnualRate float64 `yaml:"cash_annual_rate"`
	RiskFreeRate   float64 `yaml:"risk_free_rate"`

	HonorStartMonth    bool `yaml:"honor_start_month"`
	IncludeCashFlowIRR bool `yaml:"include_cash_flow_irr"`

	PrivateCommitments []CommitmentConfig `yaml:"private_commitments"`
}

type CommitmentConfig struct {
	Commitment float64 `yaml:"commitment"`
	StartMonth int     `yaml:"start_month"`
	FundLife   int     `yaml:"fund_life"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Keep scenario files concise: unset rates take the engine defaults.
	if c.Scenario.CashAnnualRate == 0 {
		c.Scenario.CashAnnualRate = sim.DefaultCashAnnualRate
	}
	if c.Scenario.RiskFreeRate == 0 {
		c.Scenario.RiskFreeRate = metrics.DefaultRiskFreeRate
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads a scenario but does not validate or default it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.Scenario.ReturnsFile != "" && !filepath.IsAbs(c.Scenario.ReturnsFile) {
		cand := filepath.Join(filepath.Dir(path), c.Scenario.ReturnsFile)
		if _, err := os.Stat(cand); err == nil {
			c.Scenario.ReturnsFile = cand
		}
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	s := c.Scenario
	if s.InitialCapital <= 0 {
		return errors.New("scenario.initial_capital must be > 0")
	}
	if len(s.PublicWeights) == 0 {
		return errors.New("scenario.public_weights is required")
	}
	if s.ReturnsFile == "" {
		return errors.New("scenario.returns_file is required")
	}
	// Validate commitments by constructing model params.
	for i, pc := range s.PrivateCommitments {
		params := model.PrivateInvestmentParams{
			Commitment: pc.Commitment,
			StartMonth: pc.StartMonth,
			FundLife:   pc.FundLife,
		}.WithDefaults()
		if err := params.Validate(); err != nil {
			return fmt.Errorf("scenario.private_commitments[%d] invalid: %w", i, err)
		}
	}
	return nil
}

// RunInput assembles the facade input from the scenario and loaded returns.
func (s ScenarioConfig) RunInput(returns []map[string]float64) sim.RunInput {
	commitments := make([]sim.CommitmentInput, len(s.PrivateCommitments))
	for i, pc := range s.PrivateCommitments {
		commitments[i] = sim.CommitmentInput{
			Commitment: pc.Commitment,
			StartMonth: pc.StartMonth,
			FundLife:   pc.FundLife,
		}
	}
	return sim.RunInput{
		InitialCapital:     s.InitialCapital,
		PublicWeights:      s.PublicWeights,
		ReturnsData:        returns,
		PrivateCommitments: commitments,
		NMonths:            s.NMonths,
		CashAnnualRate:     s.CashAnnualRate,
		RiskFreeRate:       s.RiskFreeRate,
		HonorStartMonth:    s.HonorStartMonth,
		IncludeInvestments: true,
		IncludeCashFlowIRR: s.IncludeCashFlowIRR,
	}
}
