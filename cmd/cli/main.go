package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"portfolio-sim/internal/analysis"
	"portfolio-sim/internal/config"
	"portfolio-sim/internal/data"
	"portfolio-sim/internal/model"
	"portfolio-sim/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "funds":
		cmdFunds(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/scenario.yaml --out results/portfolio.csv")
	fmt.Println("  cli funds --config examples/scenario.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate prints the metrics summary as JSON and optionally writes the monthly value path as CSV")
	fmt.Println("  - funds prints per-commitment lifetime summaries (called, distributed, DPI, TVPI)")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	outPath := fs.String("out", "", "Optional output CSV path for the value path (e.g. results/portfolio.csv)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fatal(fmt.Errorf("--config is required"))
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}
	returns, err := data.LoadReturnsJSON(cfg.Scenario.ReturnsFile)
	if err != nil {
		fatal(err)
	}

	result, err := sim.Run(cfg.Scenario.RunInput(returns))
	if err != nil {
		fatal(err)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fatal(err)
		}
		if err := sim.WritePathCSV(*outPath, result.Path); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %d months to %s\n", result.Path.Months(), *outPath)
	}

	printJSON(result.Metrics)
}

func cmdFunds(args []string) {
	fs := flag.NewFlagSet("funds", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fatal(fmt.Errorf("--config is required"))
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}

	summaries := make([]analysis.FundSummary, 0, len(cfg.Scenario.PrivateCommitments))
	for i, pc := range cfg.Scenario.PrivateCommitments {
		series, err := model.SimulateInvestment(model.PrivateInvestmentParams{
			Commitment:      pc.Commitment,
			StartMonth:      pc.StartMonth,
			FundLife:        pc.FundLife,
			HonorStartMonth: cfg.Scenario.HonorStartMonth,
		})
		if err != nil {
			fatal(fmt.Errorf("commitment %d: %w", i, err))
		}
		summaries = append(summaries, analysis.SummarizeFund(series))
	}

	printJSON(summaries)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
