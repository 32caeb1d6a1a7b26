package schema

import (
	"fmt"
	"runtime"
)

// Default engine option values.
const (
	DefaultCriticalMissPenalty  = 0.5
	DefaultConfidenceMultiplier = 1.5
	DefaultStreamCapacity       = 1
)

// Options are the engine knobs recognized by scoring, allocation and gap
// analysis. Plain serializable data; validated before any computation.
type Options struct {
	// ExclusiveAssignment removes a member from later candidate pools once
	// assigned, modeling single-project staffing.
	ExclusiveAssignment bool `json:"exclusiveAssignment" mapstructure:"exclusive"`

	// CriticalMissPenalty multiplies a stream score once per missed critical
	// requirement. Must sit in (0, 1].
	CriticalMissPenalty float64 `json:"criticalMissPenalty" mapstructure:"penalty"`

	// ConfidenceMultiplier scales a requirement's minimum level into the
	// threshold for confident coverage. Must be >= 1.
	ConfidenceMultiplier float64 `json:"confidenceMultiplier" mapstructure:"confidence"`

	// DefaultCapacity staffs streams that declare no capacity. Must be >= 1.
	DefaultCapacity int `json:"defaultCapacity" mapstructure:"capacity"`

	// Strict promotes empty-input warnings to hard failures.
	Strict bool `json:"strict" mapstructure:"strict"`

	// Workers bounds the scoring pool. Must be >= 1.
	Workers int `json:"workers" mapstructure:"workers"`
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		ExclusiveAssignment:  false,
		CriticalMissPenalty:  DefaultCriticalMissPenalty,
		ConfidenceMultiplier: DefaultConfidenceMultiplier,
		DefaultCapacity:      DefaultStreamCapacity,
		Strict:               false,
		Workers:              runtime.NumCPU(),
	}
}

// Validate fails fast on out-of-range values so no partial scoring happens.
func (o Options) Validate() error {
	if o.CriticalMissPenalty <= 0 || o.CriticalMissPenalty > 1 {
		return fmt.Errorf("%w: criticalMissPenalty %v not in (0, 1]", ErrInvalidOptions, o.CriticalMissPenalty)
	}
	if o.ConfidenceMultiplier < 1 {
		return fmt.Errorf("%w: confidenceMultiplier %v below 1", ErrInvalidOptions, o.ConfidenceMultiplier)
	}
	if o.DefaultCapacity < 1 {
		return fmt.Errorf("%w: defaultCapacity %d below 1", ErrInvalidOptions, o.DefaultCapacity)
	}
	if o.Workers < 1 {
		return fmt.Errorf("%w: workers %d below 1", ErrInvalidOptions, o.Workers)
	}
	return nil
}
