package schema

import "errors"

// Sentinel errors surfaced by model construction and engine validation.
// Callers wrap these with the offending entity via fmt.Errorf("...: %w", ...)
// and match with errors.Is.
var (
	// ErrInvalidScale marks a proficiency or minimum level outside the
	// declared 0-100 domain, including unrecognized tier keywords.
	ErrInvalidScale = errors.New("level outside the 0-100 scale")

	// ErrEmptyInput marks a run with zero team members or zero work streams.
	// Warning-level unless strict mode promotes it to a failure.
	ErrEmptyInput = errors.New("no team members or work streams to analyze")

	// ErrInvalidOptions marks an out-of-range engine option, detected before
	// any scoring starts.
	ErrInvalidOptions = errors.New("invalid engine options")
)
