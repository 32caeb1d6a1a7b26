package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/teamfit/teamfit/internal/contract"
	"github.com/teamfit/teamfit/internal/parquet"
	"github.com/teamfit/teamfit/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintAssignmentResults outputs the recommended staffing, dispatching based on the output format configured.
func PrintAssignmentResults(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printAssignmentJSONResults(result.Assignments, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printAssignmentCSVResults(result.Assignments, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printAssignmentParquetResults(result, cfg); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeAssignmentTable(w, result.Assignments, cfg); err != nil {
				return err
			}
			return writeCompletionFooter(w, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

// printAssignmentJSONResults handles opening the file and calling the JSON writer.
func printAssignmentJSONResults(assignments []schema.Assignment, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForAssignments(w, assignments)
	}, "Wrote JSON")
}

// printAssignmentCSVResults handles opening the file and calling the CSV writer.
func printAssignmentCSVResults(assignments []schema.Assignment, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForAssignments(csvWriter, assignments)
	}, "Wrote CSV")
}

// printAssignmentParquetResults converts the assignments and writes the columnar export.
func printAssignmentParquetResults(result *schema.AnalysisResult, cfg *contract.Config) error {
	prefix, err := parquetPrefix(cfg)
	if err != nil {
		return err
	}
	path := prefix + parquet.AssignmentsSuffix
	if err := parquet.WriteAssignmentsParquet(parquet.ConvertAssignments(result), path); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", path)
	return nil
}

// writeAssignmentTable generates and writes the human-readable staffing table.
// Streams appear in priority order with one row per recommended member;
// unstaffed streams keep a placeholder row so every stream stays visible.
func writeAssignmentTable(writer io.Writer, assignments []schema.Assignment, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(scorePrecision)
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Stream", "Capacity", "Member", "Score", "Label", "Rationale"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Prepare Data Rows
	detailWidth := getMaxTableDetailWidth(cfg)
	var data [][]string
	staffed := 0
	picks := 0
	for i, a := range assignments {
		rank := strconv.Itoa(i + 1)
		if len(a.Members) == 0 {
			data = append(data, []string{
				rank, a.StreamID, strconv.Itoa(a.Capacity),
				"(unstaffed)", "-", "-", "no candidate with positive fit",
			})
			continue
		}
		staffed++
		for _, m := range a.Members {
			picks++
			data = append(data, []string{
				rank,                           // Stream priority rank
				a.StreamID,                     // Stream
				strconv.Itoa(a.Capacity),       // Resolved capacity
				schema.AbbreviateName(m.Name),  // Member
				fmtFloat(m.Score),              // Fit Score
				matchLabel(m.Score, cfg),       // Label
				contract.TruncateText(m.Rationale, detailWidth), // Why this pick
			})
		}
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Staffed %d of %d streams (%d assignment(s))\n", staffed, len(assignments), picks)
	return err
}
