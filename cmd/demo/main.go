package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"portfolio-sim/internal/sim"
)

// Demo:
// - Run the sample scenario (three public assets, two private commitments)
// - Print the metrics summary and the first few months of the value path
func main() {
	months := flag.Int("n", 0, "Number of months to simulate (0 = length of returns data)")
	flag.Parse()

	input := sim.RunInput{
		InitialCapital: 1_000_000,
		PublicWeights: map[string]float64{
			"SPY": 0.5,
			"TLT": 0.3,
			"VNQ": 0.2,
		},
		ReturnsData: []map[string]float64{
			{"SPY": 0.010, "TLT": 0.003, "VNQ": 0.002},
			{"SPY": 0.007, "TLT": 0.002, "VNQ": 0.003},
			{"SPY": 0.006, "TLT": 0.001, "VNQ": 0.005},
			{"SPY": 0.012, "TLT": 0.003, "VNQ": 0.001},
			{"SPY": 0.008, "TLT": 0.002, "VNQ": 0.002},
		},
		PrivateCommitments: []sim.CommitmentInput{
			{Commitment: 200_000, StartMonth: 0},
			{Commitment: 100_000, StartMonth: 2},
		},
		NMonths:            *months,
		IncludeInvestments: true,
	}

	result, err := sim.Run(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Println("metrics:")
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result.Metrics); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Println("value path (first months):")
	n := result.Path.Months()
	if n > 6 {
		n = 6
	}
	for t := 0; t < n; t++ {
		fmt.Printf("  month %d: public=%.2f private=%.2f cash=%.2f total=%.2f\n",
			t, result.Path.Public[t], result.Path.Private[t], result.Path.Cash[t], result.Path.Total[t])
	}
}
