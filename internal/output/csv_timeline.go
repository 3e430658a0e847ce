package output

import "github.com/rpgo/buyout-calculator/internal/domain"

// TimelineCSVFormatter exports mean and cumulative monthly payments per option.
type TimelineCSVFormatter struct{}

func (TimelineCSVFormatter) Name() string      { return "timeline-csv" }
func (TimelineCSVFormatter) Extension() string { return "csv" }

func (TimelineCSVFormatter) Format(report *domain.Report) ([]byte, error) {
	rows := [][]string{{"Month", "MeanStay", "MeanBuyout", "CumulativeStay", "CumulativeBuyout"}}
	for _, m := range report.Summary.Timeline {
		rows = append(rows, []string{
			intToString(m.Month),
			m.MeanStay.StringFixed(2),
			m.MeanBuyout.StringFixed(2),
			m.CumulativeStay.StringFixed(2),
			m.CumulativeBuyout.StringFixed(2),
		})
	}
	return writeCSV(rows)
}

// HistogramCSVFormatter exports the NPV difference histogram.
type HistogramCSVFormatter struct{}

func (HistogramCSVFormatter) Name() string      { return "histogram-csv" }
func (HistogramCSVFormatter) Extension() string { return "csv" }

func (HistogramCSVFormatter) Format(report *domain.Report) ([]byte, error) {
	rows := [][]string{{"Lower", "Upper", "Count"}}
	for _, b := range report.Summary.Histogram {
		rows = append(rows, []string{b.Lower.StringFixed(2), b.Upper.StringFixed(2), intToString(b.Count)})
	}
	return writeCSV(rows)
}
