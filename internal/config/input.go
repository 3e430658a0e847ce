package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rpgo/buyout-calculator/internal/calculation"
	"github.com/rpgo/buyout-calculator/internal/domain"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates configuration bytes.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. Every failure wraps
// domain.ErrConfiguration.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Parameters == nil {
		if err := ip.validateInputs(&config.Inputs); err != nil {
			return fmt.Errorf("inputs validation failed: %w", err)
		}
	}

	params := config.ResolveParameters()
	if err := params.Validate(); err != nil {
		return fmt.Errorf("parameters validation failed: %w", err)
	}
	if _, err := calculation.NewHazardModel(params.OptimisticMonths, params.LikelyMonths, params.PessimisticMonths); err != nil {
		return fmt.Errorf("job search estimates rejected: %w", err)
	}

	if err := ip.validateSimulation(&config.Simulation); err != nil {
		return fmt.Errorf("simulation settings validation failed: %w", err)
	}

	return nil
}

// validateInputs checks the user-facing figures before conversion
func (ip *InputParser) validateInputs(in *domain.Inputs) error {
	if in.AnnualSalaryBeforeTax <= 0 {
		return domain.ConfigErrorf("annual salary before tax must be positive")
	}
	if in.ExpectedNewJobAnnualSalary <= 0 {
		return domain.ConfigErrorf("expected new job annual salary must be positive")
	}
	if in.MonthlyTaxRate < 0 || in.MonthlyTaxRate > 1 {
		return domain.ConfigErrorf("monthly tax rate must be between 0 and 1")
	}
	if in.AnnualJobLossProbability < 0 || in.AnnualJobLossProbability > 1 {
		return domain.ConfigErrorf("annual job loss probability must be between 0 and 1")
	}
	return nil
}

// validateSimulation validates Monte Carlo run settings
func (ip *InputParser) validateSimulation(sim *domain.SimulationSettings) error {
	if sim.Iterations < 0 {
		return domain.ConfigErrorf("iterations cannot be negative (0 uses the default of %d)", domain.DefaultIterations)
	}
	if sim.Workers < 0 {
		return domain.ConfigErrorf("workers cannot be negative")
	}
	return nil
}

// CreateExampleConfiguration returns the interactive tool's default inputs.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Inputs: domain.Inputs{
			AnnualSalaryBeforeTax:      100000,
			MonthlyTaxRate:             0.3,
			AnnualJobLossProbability:   0.1,
			LumpSum:                    75000,
			LumpSumTaxRate:             0.5,
			OptimisticMonths:           2,
			LikelyMonths:               9,
			PessimisticMonths:          18,
			ExpectedNewJobAnnualSalary: 90000,
			DiscountRate:               0.05,
			TimeHorizonMonths:          24,
		},
		Simulation: domain.SimulationSettings{
			Iterations: domain.DefaultIterations,
		},
	}
}
