package schema

import (
	"fmt"
	"strings"
)

// Custom string types for type safety.
type (
	// Criticality represents how important a requirement is to its stream.
	Criticality string

	// GapKind represents the class of a coverage gap.
	GapKind string

	// OutputMode represents the format of the output.
	OutputMode string
)

// All criticality tiers supported.
const (
	NiceToHave Criticality = "nice-to-have"
	Required   Criticality = "required" // default
	Critical   Criticality = "critical"
)

// All gap kinds supported, in descending severity.
const (
	UncoveredGap    GapKind = "uncovered"
	SinglePointGap  GapKind = "single-point-of-failure"
	UnderLeveledGap GapKind = "under-leveled"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// AllCriticalities returns a list of all supported criticality tiers.
var AllCriticalities = []Criticality{NiceToHave, Required, Critical}

// AllGapKinds returns a list of all supported gap kinds in severity order.
var AllGapKinds = []GapKind{UncoveredGap, SinglePointGap, UnderLeveledGap}

// ValidCriticalities lists all valid criticality tiers.
var ValidCriticalities = map[Criticality]struct{}{
	NiceToHave: {},
	Required:   {},
	Critical:   {},
}

// ValidGapKinds lists all valid gap kinds.
var ValidGapKinds = map[GapKind]struct{}{
	UncoveredGap:    {},
	SinglePointGap:  {},
	UnderLeveledGap: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// criticalityAliases maps spellings seen in source documents to tiers.
var criticalityAliases = map[string]Criticality{
	"nice-to-have": NiceToHave,
	"nice to have": NiceToHave,
	"nice_to_have": NiceToHave,
	"optional":     NiceToHave,
	"required":     Required,
	"critical":     Critical,
	"must-have":    Critical,
	"must have":    Critical,
}

// ParseCriticality converts a document spelling into a criticality tier.
// Empty input defaults to Required.
func ParseCriticality(raw string) (Criticality, error) {
	folded := strings.ToLower(strings.TrimSpace(raw))
	if folded == "" {
		return Required, nil
	}
	if c, ok := criticalityAliases[folded]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown criticality %q", raw)
}

// GapSeverity ranks gap kinds for sorting; lower sorts first.
func GapSeverity(kind GapKind) int {
	switch kind {
	case UncoveredGap:
		return 0
	case SinglePointGap:
		return 1
	case UnderLeveledGap:
		return 2
	default:
		return 3
	}
}

// GetSeverityName returns the display label for a gap kind.
func GetSeverityName(kind GapKind) string {
	switch kind {
	case UncoveredGap:
		return "Critical"
	case SinglePointGap:
		return "High"
	case UnderLeveledGap:
		return "Moderate"
	default:
		return "Low"
	}
}
