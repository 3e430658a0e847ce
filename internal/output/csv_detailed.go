package output

import (
	"errors"
	"strconv"

	"github.com/rpgo/buyout-calculator/internal/domain"
)

// ErrNoTrialData is returned when a formatter needs per-trial results the report does not carry.
var ErrNoTrialData = errors.New("report carries no per-trial results")

// CSVDetailedExporter writes one row per trial with both NPVs and their difference.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "trials-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	if report.Result == nil {
		return nil, ErrNoTrialData
	}
	r := report.Result
	rows := make([][]string, 0, len(r.NPVDifferences)+1)
	rows = append(rows, []string{"Trial", "StayNPV", "BuyoutNPV", "Difference"})
	for i, d := range r.NPVDifferences {
		rows = append(rows, []string{
			intToString(i),
			floatToString(r.StayNPVs[i]),
			floatToString(r.BuyoutNPVs[i]),
			floatToString(d),
		})
	}
	return writeCSV(rows)
}

func floatToString(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }
