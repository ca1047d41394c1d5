package sim

import (
	"encoding/csv"
	"os"
	"strconv"

	"portfolio-sim/internal/model"
)

// WritePathCSV writes the month-by-month value path to a CSV file.
// This is the primary artifact for "what happened" in a run.
func WritePathCSV(path string, p *model.PortfolioPath) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"month", "public", "private", "cash", "total"}
	if err := w.Write(header); err != nil {
		return err
	}

	for t := 0; t < p.Months(); t++ {
		row := []string{
			strconv.Itoa(t),
			fmtFloat(p.Public[t]),
			fmtFloat(p.Private[t]),
			fmtFloat(p.Cash[t]),
			fmtFloat(p.Total[t]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
