package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/buyout-calculator/internal/config"
	"github.com/rpgo/buyout-calculator/internal/domain"
	"github.com/rpgo/buyout-calculator/internal/output"
)

func minimalReport() *domain.Report {
	return &domain.Report{
		Iterations: 1,
		Summary: domain.SimulationSummary{
			MeanDifference:     stddec.NewFromInt(-100),
			ProbStaySuperior:   stddec.Zero,
			ProbBuyoutSuperior: stddec.NewFromInt(1),
		},
	}
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "$123.45", output.FormatCurrency(stddec.NewFromFloat(123.45)))
	assert.Equal(t, "12.34%", output.FormatPercentage(stddec.NewFromFloat(12.34)))
}

func TestSaveConfiguration_RoundTripsThroughParser(t *testing.T) {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, output.SaveConfiguration(cfg, path))

	loaded, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.ResolveParameters(), loaded.ResolveParameters())
}

func TestWriteConfiguration(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.WriteConfiguration(&buf, config.NewInputParser().CreateExampleConfiguration()))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "inputs")
	assert.Contains(t, decoded, "simulation")
	assert.NotContains(t, decoded, "parameters")
}

func TestGenerateReport_JSON_CSV(t *testing.T) {
	for _, format := range []string{"json", "csv", "console", "timeline-csv", "histogram-csv", "html"} {
		var buf bytes.Buffer
		require.NoError(t, output.GenerateReport(&buf, minimalReport(), format), format)
		assert.NotEmpty(t, buf.String(), format)
	}
}

func TestGenerateReport_ConsoleRecommendsBuyout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.GenerateReport(&buf, minimalReport(), "text"))
	assert.Contains(t, buf.String(), "Recommended: Take the buyout (better in 100.00% of trials)")
}

func TestGenerateReport_AllSkipsTrialFormatterWithoutResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.GenerateReport(&buf, minimalReport(), "all"))
	out := buf.String()
	assert.Contains(t, out, "BUYOUT DECISION SUMMARY")
	assert.Contains(t, out, "Metric,Value,Description")
	assert.NotContains(t, out, "Trial,StayNPV")
}

func TestGenerateReport_TrialsWithoutResultFails(t *testing.T) {
	err := output.GenerateReport(&bytes.Buffer{}, minimalReport(), "trials-csv")
	require.ErrorIs(t, err, output.ErrNoTrialData)
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	err := output.GenerateReport(&bytes.Buffer{}, minimalReport(), "definitely-not-a-format")
	require.ErrorIs(t, err, output.ErrUnsupportedFormat)
	msg := err.Error()
	assert.True(t, strings.Contains(msg, "Try one of:"), msg)
	assert.Contains(t, msg, "timeline-csv")
}

func TestSaveConfiguration_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.yaml")
	err := output.SaveConfiguration(&domain.Configuration{}, path)
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
