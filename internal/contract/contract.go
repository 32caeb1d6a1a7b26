// Package contract provides shared configuration and output utilities for internal architecture.
package contract

import (
	"github.com/fatih/color"

	"github.com/teamfit/teamfit/schema"
)

// Color variables for console output.
var (
	StrongColor  = color.New(color.FgGreen, color.Bold) // strongColor marks safe picks.
	GoodColor    = color.New(color.FgCyan)              // goodColor marks solid, unremarkable fits.
	PartialColor = color.New(color.FgYellow)            // partialColor marks fits that need a closer look.
	LimitedColor = color.New(color.FgRed)               // limitedColor marks placement risks.

	CriticalColor = color.New(color.FgRed, color.Bold)    // criticalColor represents standard danger.
	HighColor     = color.New(color.FgYellow, color.Bold) // highColor represents strong, distinct warning.
	ModerateColor = color.New(color.FgCyan)               // moderateColor represents informational caution.
)

// GetColorMatchLabel returns a colored match-quality label for console output (table).
// It uses schema.GetMatchLabel to determine the string, and then applies the appropriate color.
func GetColorMatchLabel(score float64) string {
	text := schema.GetMatchLabel(score)

	switch text {
	case "Strong":
		return StrongColor.Sprint(text)
	case "Good":
		return GoodColor.Sprint(text)
	case "Partial":
		return PartialColor.Sprint(text)
	default: // "Limited"
		return LimitedColor.Sprint(text)
	}
}

// GetColorSeverity returns a colored severity label for console output (table).
// It uses schema.GetSeverityName to determine the string, and then applies the appropriate color.
func GetColorSeverity(kind schema.GapKind) string {
	text := schema.GetSeverityName(kind)

	switch text {
	case "Critical":
		return CriticalColor.Sprint(text)
	case "High":
		return HighColor.Sprint(text)
	default: // "Moderate"
		return ModerateColor.Sprint(text)
	}
}
