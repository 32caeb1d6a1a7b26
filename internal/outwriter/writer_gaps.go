package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/teamfit/teamfit/schema"
)

// writeJSONResultsForGaps marshals the findings and strengths to JSON and writes them.
func writeJSONResultsForGaps(w io.Writer, findings []schema.GapFinding, strengths []schema.Strength) error {
	// 1. Prepare the data structure for JSON with rank and severity added
	type JSONGapReport struct {
		Findings  []schema.EnrichedGapFinding `json:"findings"`
		Strengths []schema.Strength           `json:"strengths,omitempty"`
	}

	output := JSONGapReport{
		Findings:  schema.EnrichFindings(findings),
		Strengths: strengths,
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// writeCSVResultsForGaps writes the gap findings to a CSV writer.
func writeCSVResultsForGaps(w *csv.Writer, findings []schema.GapFinding) error {
	// 1. Write Header Row
	header := []string{
		"rank",
		"kind",
		"severity",
		"stream_id",
		"stream_name",
		"skill",
		"criticality",
		"min_level",
		"member_ids",
		"detail",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for i, f := range findings {
		row := []string{
			strconv.Itoa(i + 1),             // Rank
			string(f.Kind),                  // Gap kind
			schema.GetSeverityName(f.Kind),  // Severity label
			f.StreamID,                      // Stream
			f.StreamName,                    // Display name
			f.Skill,                         // Normalized skill key
			string(f.Criticality),           // Requirement tier
			formatLevel(f.MinimumLevel),     // Minimum level
			strings.Join(f.MemberIDs, "|"),  // Members involved
			f.Detail,                        // Finding detail
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
