// Package outwriter has output and writer logic for analysis reports.
package outwriter

import (
	"os"
	"strings"

	"github.com/teamfit/teamfit/internal/contract"
	"github.com/teamfit/teamfit/schema"
	"golang.org/x/term"
)

// matchLabel returns the match-quality label for a score, colorized when
// colored output is enabled.
func matchLabel(score float64, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorMatchLabel(score)
	}
	return schema.GetMatchLabel(score)
}

// severityLabel returns the severity label for a gap kind, colorized when
// colored output is enabled.
func severityLabel(kind schema.GapKind, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorSeverity(kind)
	}
	return schema.GetSeverityName(kind)
}

// sectionHeading renders a report section heading, dropping the emoji prefix
// when emoji output is disabled.
func sectionHeading(emoji, title string, cfg *contract.Config) string {
	if cfg.UseEmojis {
		return emoji + " " + title
	}
	return title
}

// formatDriverSummary joins the strongest score drivers for display.
// The engine already orders drivers by descending contribution.
func formatDriverSummary(drivers []schema.Driver) string {
	var parts []string
	for _, d := range drivers {
		if d.Contribution <= 0 {
			continue
		}
		parts = append(parts, d.Skill)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " > ")
}

// getMaxTableDetailWidth calculates the maximum width for free-text columns
// in table output based on terminal width and fixed column usage.
func getMaxTableDetailWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns with borders and padding
	baseWidth := 55

	// Calculate available space for free text
	available := termWidth - baseWidth
	if available < 20 {
		// Minimum reasonable detail width
		return 20
	}
	if available > 70 {
		// Maximum detail width to prevent overly long rows
		return 70
	}
	return available
}
