package schema

import (
	"fmt"
	"math"
)

// Bounds of the proficiency scale shared by claims, minimum levels and fit scores.
const (
	ScaleMin = 0.0
	ScaleMax = 100.0
)

// Numeric levels for tier keywords accepted in source documents.
const (
	NoviceLevel     = 30.0
	ProficientLevel = 60.0
	ExpertLevel     = 90.0
)

// TierLevels maps folded tier keywords to their numeric level.
var TierLevels = map[string]float64{
	"novice":     NoviceLevel,
	"proficient": ProficientLevel,
	"expert":     ExpertLevel,
}

// ValidLevel reports whether a numeric level is inside the scale.
func ValidLevel(level float64) bool {
	return !math.IsNaN(level) && level >= ScaleMin && level <= ScaleMax
}

// ParseLevel converts any document proficiency representation into the numeric
// scale: numbers pass through bounds-checked, tier keywords map through
// TierLevels. Out-of-domain input fails with ErrInvalidScale; the caller is
// expected to halt rather than clamp, so upstream extraction errors surface.
func ParseLevel(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return checkLevel(v)
	case float32:
		return checkLevel(float64(v))
	case int:
		return checkLevel(float64(v))
	case int64:
		return checkLevel(float64(v))
	case uint64:
		return checkLevel(float64(v))
	case string:
		folded := Fold(v)
		if level, ok := TierLevels[folded]; ok {
			return level, nil
		}
		return 0, fmt.Errorf("%w: unrecognized tier %q", ErrInvalidScale, v)
	case nil:
		return 0, fmt.Errorf("%w: missing level", ErrInvalidScale)
	default:
		return 0, fmt.Errorf("%w: unsupported level type %T", ErrInvalidScale, value)
	}
}

func checkLevel(level float64) (float64, error) {
	if !ValidLevel(level) {
		return 0, fmt.Errorf("%w: %v is outside [%v, %v]", ErrInvalidScale, level, ScaleMin, ScaleMax)
	}
	return level, nil
}

// ClampScore bounds a computed fit score to the scale. Only derived scores are
// clamped; input levels are validated, never coerced.
func ClampScore(score float64) float64 {
	return min(max(score, ScaleMin), ScaleMax)
}

// DisplayScore rounds a fit score half-to-even to the integer shown in
// rationale text and exported label rows.
func DisplayScore(score float64) int {
	return int(math.RoundToEven(score))
}
