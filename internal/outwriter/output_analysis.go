package outwriter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/teamfit/teamfit/internal/contract"
	"github.com/teamfit/teamfit/internal/parquet"
	"github.com/teamfit/teamfit/schema"
)

// PrintAnalysisResults outputs the full report: fit scores, recommended
// assignments, gap findings and team strengths, dispatching based on the
// output format configured.
func PrintAnalysisResults(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printAnalysisJSONResults(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		// The combined report mixes record shapes that a single CSV cannot hold
		return errors.New("csv output covers one report section; use the scores, assign or gaps command")
	case schema.ParquetOut:
		if err := printAnalysisParquetResults(result, cfg); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable report
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisReport(w, result, cfg, duration)
		}, "Wrote report")
	}
	return nil
}

// printAnalysisJSONResults writes the complete result as one JSON document.
func printAnalysisJSONResults(result *schema.AnalysisResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON")
}

// printAnalysisParquetResults writes the score, assignment and gap exports
// side by side under the configured file prefix.
func printAnalysisParquetResults(result *schema.AnalysisResult, cfg *contract.Config) error {
	prefix, err := parquetPrefix(cfg)
	if err != nil {
		return err
	}

	cells := rankScoreCells(&result.Matrix, cfg)
	if len(cells) > cfg.ResultLimit {
		cells = cells[:cfg.ResultLimit]
	}

	targets := []struct {
		path  string
		write func(string) error
	}{
		{prefix + parquet.ScoresSuffix, func(path string) error {
			return parquet.WriteScoresParquet(parquet.ConvertScoreCells(result, cells), path)
		}},
		{prefix + parquet.AssignmentsSuffix, func(path string) error {
			return parquet.WriteAssignmentsParquet(parquet.ConvertAssignments(result), path)
		}},
		{prefix + parquet.GapsSuffix, func(path string) error {
			return parquet.WriteGapsParquet(parquet.ConvertGapFindings(result), path)
		}},
	}
	for _, t := range targets {
		if err := t.write(t.path); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", t.path)
	}
	return nil
}

// writeAnalysisReport composes the section tables into one readable report.
func writeAnalysisReport(writer io.Writer, result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	title := "Team fit report"
	if result.Project != "" {
		title = fmt.Sprintf("%s - %s", title, result.Project)
	}
	if _, err := fmt.Fprintf(writer, "%s\n", sectionHeading("🧭", title, cfg)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Run %s: %d member(s), %d stream(s), generated %s\n",
		result.RunID, result.MemberCount, result.StreamCount,
		result.GeneratedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	cells := rankScoreCells(&result.Matrix, cfg)
	total := len(cells)
	if total > cfg.ResultLimit {
		cells = cells[:cfg.ResultLimit]
	}
	if _, err := fmt.Fprintf(writer, "\n%s\n", sectionHeading("📊", "Fit scores", cfg)); err != nil {
		return err
	}
	if err := writeScoreTable(writer, cells, total, cfg); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "\n%s\n", sectionHeading("🤝", "Recommended assignments", cfg)); err != nil {
		return err
	}
	if err := writeAssignmentTable(writer, result.Assignments, cfg); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "\n%s\n", sectionHeading("🚨", "Gap findings", cfg)); err != nil {
		return err
	}
	if err := writeGapReport(writer, result, cfg); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(writer); err != nil {
		return err
	}
	return writeCompletionFooter(writer, cfg, duration)
}
