package domain

import (
	"errors"
	"fmt"
)

// ErrConfiguration is wrapped by every validation failure on a ParameterSet or
// simulation setting. It is always reported before any trial runs.
var ErrConfiguration = errors.New("configuration error")

// ErrNumericDegeneracy marks job-search estimates whose Beta-PERT shape
// parameters are not strictly positive. It wraps ErrConfiguration.
var ErrNumericDegeneracy = fmt.Errorf("%w: numeric degeneracy", ErrConfiguration)

// ConfigErrorf builds an error that wraps ErrConfiguration.
func ConfigErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
