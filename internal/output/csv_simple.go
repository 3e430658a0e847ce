package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/buyout-calculator/internal/domain"
)

// CSVSummarizer writes one metric per row.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	s := report.Summary
	rows := [][]string{
		{"Metric", "Value", "Description"},
		{"Iterations", intToString(report.Iterations), "Number of simulated trials"},
		{"MeanDifference", s.MeanDifference.StringFixed(2), "Mean NPV of staying minus mean NPV of the buyout"},
		{"ProbStaySuperior", s.ProbStaySuperior.StringFixed(4), "Share of trials where staying has the higher NPV"},
		{"ProbBuyoutSuperior", s.ProbBuyoutSuperior.StringFixed(4), "Share of trials where the buyout has the higher NPV"},
		{"MeanStayNPV", s.MeanStayNPV.StringFixed(2), "Mean NPV of staying in the current job"},
		{"MeanBuyoutNPV", s.MeanBuyoutNPV.StringFixed(2), "Mean NPV of taking the buyout"},
		{"P10Difference", s.DifferencePercentile.P10.StringFixed(2), "10th percentile of the NPV difference"},
		{"P25Difference", s.DifferencePercentile.P25.StringFixed(2), "25th percentile of the NPV difference"},
		{"P50Difference", s.DifferencePercentile.P50.StringFixed(2), "Median NPV difference"},
		{"P75Difference", s.DifferencePercentile.P75.StringFixed(2), "75th percentile of the NPV difference"},
		{"P90Difference", s.DifferencePercentile.P90.StringFixed(2), "90th percentile of the NPV difference"},
		{"MinDifference", s.MinDifference.StringFixed(2), "Smallest NPV difference"},
		{"MaxDifference", s.MaxDifference.StringFixed(2), "Largest NPV difference"},
	}
	return writeCSV(rows)
}

func writeCSV(rows [][]string) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
