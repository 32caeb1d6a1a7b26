package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/teamfit/teamfit/internal/contract"
	"github.com/teamfit/teamfit/internal/parquet"
	"github.com/teamfit/teamfit/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintScoreResults outputs the fit-score matrix, dispatching based on the output format configured.
func PrintScoreResults(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	cells := rankScoreCells(&result.Matrix, cfg)
	total := len(cells)
	if total > cfg.ResultLimit {
		cells = cells[:cfg.ResultLimit]
	}

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printScoreJSONResults(cells, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printScoreCSVResults(cells, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printScoreParquetResults(cells, result, cfg); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeScoreTable(w, cells, total, cfg); err != nil {
				return err
			}
			return writeCompletionFooter(w, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

// rankScoreCells flattens the matrix into cells ordered by descending score,
// ties by member id then stream id, honoring the member and stream filters.
func rankScoreCells(matrix *schema.ScoreMatrix, cfg *contract.Config) []schema.ScoreCell {
	var cells []schema.ScoreCell
	for _, row := range matrix.Rows {
		for _, cell := range row {
			if cfg.Member != "" && cell.MemberID != cfg.Member {
				continue
			}
			if cfg.Stream != "" && cell.StreamID != cfg.Stream {
				continue
			}
			cells = append(cells, cell)
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Score != cells[j].Score {
			return cells[i].Score > cells[j].Score
		}
		if cells[i].MemberID != cells[j].MemberID {
			return cells[i].MemberID < cells[j].MemberID
		}
		return cells[i].StreamID < cells[j].StreamID
	})
	return cells
}

// printScoreJSONResults handles opening the file and calling the JSON writer.
func printScoreJSONResults(cells []schema.ScoreCell, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForScores(w, cells)
	}, "Wrote JSON")
}

// printScoreCSVResults handles opening the file and calling the CSV writer.
func printScoreCSVResults(cells []schema.ScoreCell, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForScores(csvWriter, cells)
	}, "Wrote CSV")
}

// printScoreParquetResults converts the ranked cells and writes the columnar export.
func printScoreParquetResults(cells []schema.ScoreCell, result *schema.AnalysisResult, cfg *contract.Config) error {
	prefix, err := parquetPrefix(cfg)
	if err != nil {
		return err
	}
	path := prefix + parquet.ScoresSuffix
	if err := parquet.WriteScoresParquet(parquet.ConvertScoreCells(result, cells), path); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", path)
	return nil
}

// writeScoreTable generates and writes the human-readable score table.
func writeScoreTable(writer io.Writer, cells []schema.ScoreCell, total int, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(scorePrecision)
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Member", "Stream", "Score", "Label", "Met", "Drivers"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Prepare Data Rows
	var data [][]string
	for i, cell := range cells {
		row := []string{
			strconv.Itoa(i + 1), // Rank
			cell.MemberID,       // Member
			cell.StreamID,       // Stream
			fmtFloat(cell.Score),        // Fit Score
			matchLabel(cell.Score, cfg), // Label
			fmt.Sprintf("%d/%d", cell.MetCount, cell.RequirementCount), // Requirements met
			contract.TruncateText(formatDriverSummary(cell.Drivers), getMaxTableDetailWidth(cfg)), // Top drivers
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
	_, err := fmt.Fprintf(writer, "Showing top %d of %d member-stream pairs\n", len(cells), total)
	return err
}
