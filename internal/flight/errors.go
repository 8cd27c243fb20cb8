package flight

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidConfiguration indicates non-finite or otherwise unusable
	// start parameters. The simulation does not enter Running.
	ErrInvalidConfiguration = errors.New("flight: invalid configuration")

	// ErrNotRunning indicates Tick was called before Start or after Stop.
	ErrNotRunning = errors.New("flight: simulation not running")

	// ErrStepBudgetExhausted indicates the run reached its tick budget.
	ErrStepBudgetExhausted = errors.New("flight: step budget exhausted")
)

// ConfigError names the offending start parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfiguration, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}
