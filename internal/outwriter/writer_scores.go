package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/teamfit/teamfit/schema"
)

// writeJSONResultsForScores marshals the ranked score cells to JSON and writes them.
func writeJSONResultsForScores(w io.Writer, cells []schema.ScoreCell) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONScoreCell struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.ScoreCell
	}

	output := make([]JSONScoreCell, len(cells))
	for i, cell := range cells {
		output[i] = JSONScoreCell{
			Rank:      i + 1,
			Label:     schema.GetMatchLabel(cell.Score),
			ScoreCell: cell,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// writeCSVResultsForScores writes the ranked score cells to a CSV writer.
func writeCSVResultsForScores(w *csv.Writer, cells []schema.ScoreCell) error {
	fmtFloat, intFmt := createFormatters(scorePrecision)

	// 1. Write Header Row
	header := []string{
		"rank",
		"member_id",
		"stream_id",
		"score",
		"label",
		"met_count",
		"requirement_count",
		"drivers",
		"critical_misses",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for i, cell := range cells {
		var driverKeys []string
		for _, d := range cell.Drivers {
			driverKeys = append(driverKeys, d.Skill)
		}
		row := []string{
			strconv.Itoa(i + 1),              // Rank
			cell.MemberID,                    // Member
			cell.StreamID,                    // Stream
			fmtFloat(cell.Score),             // Fit Score
			schema.GetMatchLabel(cell.Score), // Label
			fmt.Sprintf(intFmt, cell.MetCount),          // Requirements fully covered
			fmt.Sprintf(intFmt, cell.RequirementCount),  // Requirements on the stream
			strings.Join(driverKeys, "|"),               // Top drivers
			strings.Join(cell.CriticalMisses, "|"),      // Missed critical skills
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
