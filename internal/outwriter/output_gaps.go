package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/teamfit/teamfit/internal/contract"
	"github.com/teamfit/teamfit/internal/parquet"
	"github.com/teamfit/teamfit/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintGapResults outputs the gap findings and team strengths, dispatching
// based on the output format configured.
func PrintGapResults(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printGapJSONResults(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printGapCSVResults(result.Findings, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printGapParquetResults(result, cfg); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeGapReport(w, result, cfg); err != nil {
				return err
			}
			return writeCompletionFooter(w, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

// printGapJSONResults handles opening the file and calling the JSON writer.
func printGapJSONResults(result *schema.AnalysisResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForGaps(w, result.Findings, result.Strengths)
	}, "Wrote JSON")
}

// printGapCSVResults handles opening the file and calling the CSV writer.
// CSV keeps a single record type, so strengths stay out of this export.
func printGapCSVResults(findings []schema.GapFinding, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForGaps(csvWriter, findings)
	}, "Wrote CSV")
}

// printGapParquetResults converts the findings and writes the columnar export.
func printGapParquetResults(result *schema.AnalysisResult, cfg *contract.Config) error {
	prefix, err := parquetPrefix(cfg)
	if err != nil {
		return err
	}
	path := prefix + parquet.GapsSuffix
	if err := parquet.WriteGapsParquet(parquet.ConvertGapFindings(result), path); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", path)
	return nil
}

// writeGapReport writes the findings table, the per-kind summary and the
// team-strengths section.
func writeGapReport(writer io.Writer, result *schema.AnalysisResult, cfg *contract.Config) error {
	if err := writeGapTable(writer, result.Findings, cfg); err != nil {
		return err
	}
	return writeStrengthsSection(writer, result.Strengths, cfg)
}

// writeGapTable generates and writes the human-readable findings table.
func writeGapTable(writer io.Writer, findings []schema.GapFinding, cfg *contract.Config) error {
	if len(findings) == 0 {
		_, err := fmt.Fprintf(writer, "No coverage gaps detected\n")
		return err
	}

	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Severity", "Stream", "Skill", "Criticality", "Min", "Members", "Detail"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Prepare Data Rows
	detailWidth := getMaxTableDetailWidth(cfg)
	var data [][]string
	for i, f := range findings {
		row := []string{
			strconv.Itoa(i + 1),         // Rank
			severityLabel(f.Kind, cfg),  // Severity
			f.StreamID,                  // Stream
			f.Skill,                     // Normalized skill key
			string(f.Criticality),       // Requirement tier
			formatLevel(f.MinimumLevel), // Minimum level
			strings.Join(f.MemberIDs, ", "),                 // Members involved
			contract.TruncateText(f.Detail, detailWidth),    // Finding detail
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Per-kind summary in severity order
	counts := make(map[schema.GapKind]int)
	for _, f := range findings {
		counts[f.Kind]++
	}
	var parts []string
	for _, kind := range schema.AllGapKinds {
		parts = append(parts, fmt.Sprintf("%d %s", counts[kind], kind))
	}
	_, err := fmt.Fprintf(writer, "%d finding(s): %s\n", len(findings), strings.Join(parts, ", "))
	return err
}

// writeStrengthsSection lists skills the team holds at useful depth that no
// stream requires. Empty strengths render nothing.
func writeStrengthsSection(writer io.Writer, strengths []schema.Strength, cfg *contract.Config) error {
	if len(strengths) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(writer, "\n%s\n", sectionHeading("💪", "Team strengths (claimed, unrequired)", cfg)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Skill", "Top Level", "Members"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range strengths {
		data = append(data, []string{
			s.Skill,
			formatLevel(s.TopLevel),
			strings.Join(s.MemberIDs, ", "),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
