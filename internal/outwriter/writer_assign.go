package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/teamfit/teamfit/schema"
)

// writeJSONResultsForAssignments marshals the assignments to JSON and writes them.
func writeJSONResultsForAssignments(w io.Writer, assignments []schema.Assignment) error {
	return writeJSON(w, schema.EnrichAssignments(assignments))
}

// writeCSVResultsForAssignments writes the staffing picks to a CSV writer.
// Unstaffed streams get a row with empty member columns.
func writeCSVResultsForAssignments(w *csv.Writer, assignments []schema.Assignment) error {
	fmtFloat, _ := createFormatters(scorePrecision)

	// 1. Write Header Row
	header := []string{
		"rank",
		"stream_id",
		"stream_name",
		"capacity",
		"member_id",
		"member_name",
		"score",
		"label",
		"rationale",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for i, a := range assignments {
		rank := strconv.Itoa(i + 1)
		capacity := strconv.Itoa(a.Capacity)
		if len(a.Members) == 0 {
			row := []string{rank, a.StreamID, a.StreamName, capacity, "", "", "", "", "unstaffed"}
			if err := w.Write(row); err != nil {
				return err
			}
			continue
		}
		for _, m := range a.Members {
			row := []string{
				rank,                          // Stream priority rank
				a.StreamID,                    // Stream
				a.StreamName,                  // Display name
				capacity,                      // Resolved capacity
				m.MemberID,                    // Member
				m.Name,                        // Display name
				fmtFloat(m.Score),             // Fit Score
				schema.GetMatchLabel(m.Score), // Label
				m.Rationale,                   // Why this pick
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}
