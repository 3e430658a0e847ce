package output

import (
	"bytes"
	_ "embed"
	"html/template"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/rpgo/buyout-calculator/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report with a histogram chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"prob": FormatProbability,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Report
		Recommendation Recommendation
		Assumptions    []string
	}{report, AnalyzeSummary(report.Summary), GenerateAssumptions(report.Parameters)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decimalFromFloat(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }
