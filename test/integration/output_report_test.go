package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/buyout-calculator/internal/calculation"
	"github.com/rpgo/buyout-calculator/internal/domain"
	"github.com/rpgo/buyout-calculator/internal/output"
)

func exampleReport(t *testing.T) *domain.Report {
	t.Helper()
	cfg, result := runConfig(t, "../testdata/example_config.yaml")
	return &domain.Report{
		Parameters: cfg.ResolveParameters(),
		Iterations: result.NumIterations,
		Seed:       result.Seed,
		Summary:    calculation.Analyze(result, 20),
		Result:     result,
	}
}

func TestOutputGeneration(t *testing.T) {
	report := exampleReport(t)
	for _, format := range output.AvailableFormatterNames() {
		var buf bytes.Buffer
		require.NoError(t, output.GenerateReport(&buf, report, format), format)
		assert.NotEmpty(t, buf.Bytes(), format)
	}
}

func TestConsoleReportHeadlines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.GenerateReport(&buf, exampleReport(t), "console"))
	out := buf.String()
	assert.Contains(t, out, "Mean NPV Difference (Stay - Buyout): $")
	assert.Contains(t, out, "Probability Staying in Current Job is Superior:")
	assert.Contains(t, out, "Probability Taking the Buyout is Superior:")
	assert.Contains(t, out, "Recommended: Stay in current job")
}

func TestCSVExportsHaveExpectedShape(t *testing.T) {
	report := exampleReport(t)

	var timeline bytes.Buffer
	require.NoError(t, output.GenerateReport(&timeline, report, "csv-timeline"))
	assert.Len(t, strings.Split(strings.TrimSpace(timeline.String()), "\n"), 25)

	var hist bytes.Buffer
	require.NoError(t, output.GenerateReport(&hist, report, "histogram-csv"))
	assert.Len(t, strings.Split(strings.TrimSpace(hist.String()), "\n"), 21)

	var trials bytes.Buffer
	require.NoError(t, output.GenerateReport(&trials, report, "trials-csv"))
	assert.Len(t, strings.Split(strings.TrimSpace(trials.String()), "\n"), 5001)
}

func TestSaveConfiguration_WritesFile(t *testing.T) {
	cfg := &domain.Configuration{}
	out := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, output.SaveConfiguration(cfg, out))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "inputs:")
}
