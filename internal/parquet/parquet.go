// Package parquet provides data structures and functions for exporting team
// fit analysis data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/teamfit/teamfit/schema"
)

// File suffixes appended to the export prefix, one per record type.
const (
	ScoresSuffix      = "_scores.parquet"
	AssignmentsSuffix = "_assignments.parquet"
	GapsSuffix        = "_gaps.parquet"
)

// ScoreRecord is one (member, stream) fit-score row.
type ScoreRecord struct {
	// RunID identifies the analysis run that produced this row
	RunID string `parquet:"run_id,snappy"`

	// GeneratedAt is when the analysis ran (stored as TIMESTAMP with nanosecond precision)
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	// MemberID is the team member side of the pair
	MemberID string `parquet:"member_id,snappy"`

	// StreamID is the work stream side of the pair
	StreamID string `parquet:"stream_id,snappy"`

	// Score is the fit score on the [0, 100] scale
	Score float64 `parquet:"score,snappy"`

	// DisplayScore is the rounded score shown in reports
	DisplayScore int32 `parquet:"display_score,snappy"`

	// Label is the match-quality label derived from the score
	Label string `parquet:"label,snappy"`

	// MetCount is the number of requirements fully covered
	MetCount int32 `parquet:"met_count,snappy"`

	// RequirementCount is the number of requirements on the stream
	RequirementCount int32 `parquet:"requirement_count,snappy"`

	// Drivers lists the strongest contributing skills, pipe-separated
	Drivers string `parquet:"drivers,snappy"`

	// CriticalMisses lists missed critical skills, pipe-separated (nullable)
	CriticalMisses *string `parquet:"critical_misses,optional,snappy"`
}

// AssignmentRecord is one staffing pick, or a placeholder row for an
// unstaffed stream.
type AssignmentRecord struct {
	// RunID identifies the analysis run that produced this row
	RunID string `parquet:"run_id,snappy"`

	// GeneratedAt is when the analysis ran (stored as TIMESTAMP with nanosecond precision)
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	// StreamRank is the stream's staffing priority, starting at 1
	StreamRank int32 `parquet:"stream_rank,snappy"`

	// StreamID is the staffed work stream
	StreamID string `parquet:"stream_id,snappy"`

	// StreamName is the stream's display name
	StreamName string `parquet:"stream_name,snappy"`

	// Capacity is the resolved head count used by the solver
	Capacity int32 `parquet:"capacity,snappy"`

	// MemberID is the recommended member (nullable for unstaffed streams)
	MemberID *string `parquet:"member_id,optional,snappy"`

	// MemberName is the member's display name (nullable for unstaffed streams)
	MemberName *string `parquet:"member_name,optional,snappy"`

	// Score is the member's fit score for this stream (nullable for unstaffed streams)
	Score *float64 `parquet:"score,optional,snappy"`

	// Label is the match-quality label (nullable for unstaffed streams)
	Label *string `parquet:"label,optional,snappy"`

	// Rationale explains why the member was picked (nullable for unstaffed streams)
	Rationale *string `parquet:"rationale,optional,snappy"`
}

// GapRecord is one coverage-risk finding.
type GapRecord struct {
	// RunID identifies the analysis run that produced this row
	RunID string `parquet:"run_id,snappy"`

	// GeneratedAt is when the analysis ran (stored as TIMESTAMP with nanosecond precision)
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	// Rank is the finding's position in severity order, starting at 1
	Rank int32 `parquet:"rank,snappy"`

	// Kind is the gap class: uncovered, single-point-of-failure or under-leveled
	Kind string `parquet:"kind,snappy"`

	// Severity is the display label for the kind
	Severity string `parquet:"severity,snappy"`

	// StreamID is the stream carrying the requirement at risk
	StreamID string `parquet:"stream_id,snappy"`

	// StreamName is the stream's display name
	StreamName string `parquet:"stream_name,snappy"`

	// Skill is the normalized skill key of the requirement
	Skill string `parquet:"skill,snappy"`

	// Criticality is the requirement tier
	Criticality string `parquet:"criticality,snappy"`

	// MinimumLevel is the requirement's minimum proficiency
	MinimumLevel float64 `parquet:"minimum_level,snappy"`

	// MemberIDs lists the members involved, pipe-separated (nullable)
	MemberIDs *string `parquet:"member_ids,optional,snappy"`

	// Detail is the human-readable finding text
	Detail string `parquet:"detail,snappy"`
}

// WriteScoresParquet writes a slice of ScoreRecord structs to a Parquet file.
func WriteScoresParquet(data []ScoreRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteAssignmentsParquet writes a slice of AssignmentRecord structs to a Parquet file.
func WriteAssignmentsParquet(data []AssignmentRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteGapsParquet writes a slice of GapRecord structs to a Parquet file.
func WriteGapsParquet(data []GapRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet creates the output file and streams the records through a
// generic writer. The schema is derived from the record struct tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertScoreCells converts ranked score cells to ScoreRecord rows for Parquet export.
func ConvertScoreCells(result *schema.AnalysisResult, cells []schema.ScoreCell) []ScoreRecord {
	records := make([]ScoreRecord, len(cells))
	for i, cell := range cells {
		var misses *string
		if len(cell.CriticalMisses) > 0 {
			joined := strings.Join(cell.CriticalMisses, "|")
			misses = &joined
		}
		driverKeys := make([]string, 0, len(cell.Drivers))
		for _, d := range cell.Drivers {
			driverKeys = append(driverKeys, d.Skill)
		}
		records[i] = ScoreRecord{
			RunID:            result.RunID,
			GeneratedAt:      result.GeneratedAt,
			MemberID:         cell.MemberID,
			StreamID:         cell.StreamID,
			Score:            cell.Score,
			DisplayScore:     int32(schema.DisplayScore(cell.Score)),
			Label:            schema.GetMatchLabel(cell.Score),
			MetCount:         int32(cell.MetCount),
			RequirementCount: int32(cell.RequirementCount),
			Drivers:          strings.Join(driverKeys, "|"),
			CriticalMisses:   misses,
		}
	}
	return records
}

// ConvertAssignments converts the staffing picks to AssignmentRecord rows for
// Parquet export. Unstaffed streams keep one row with null member columns.
func ConvertAssignments(result *schema.AnalysisResult) []AssignmentRecord {
	var records []AssignmentRecord
	for i, a := range result.Assignments {
		base := AssignmentRecord{
			RunID:       result.RunID,
			GeneratedAt: result.GeneratedAt,
			StreamRank:  int32(i + 1),
			StreamID:    a.StreamID,
			StreamName:  a.StreamName,
			Capacity:    int32(a.Capacity),
		}
		if len(a.Members) == 0 {
			records = append(records, base)
			continue
		}
		for _, m := range a.Members {
			record := base
			memberID := m.MemberID
			memberName := m.Name
			score := m.Score
			label := schema.GetMatchLabel(m.Score)
			rationale := m.Rationale
			record.MemberID = &memberID
			record.MemberName = &memberName
			record.Score = &score
			record.Label = &label
			record.Rationale = &rationale
			records = append(records, record)
		}
	}
	return records
}

// ConvertGapFindings converts the gap findings to GapRecord rows for Parquet export.
func ConvertGapFindings(result *schema.AnalysisResult) []GapRecord {
	records := make([]GapRecord, len(result.Findings))
	for i, f := range result.Findings {
		var members *string
		if len(f.MemberIDs) > 0 {
			joined := strings.Join(f.MemberIDs, "|")
			members = &joined
		}
		records[i] = GapRecord{
			RunID:        result.RunID,
			GeneratedAt:  result.GeneratedAt,
			Rank:         int32(i + 1),
			Kind:         string(f.Kind),
			Severity:     schema.GetSeverityName(f.Kind),
			StreamID:     f.StreamID,
			StreamName:   f.StreamName,
			Skill:        f.Skill,
			Criticality:  string(f.Criticality),
			MinimumLevel: f.MinimumLevel,
			MemberIDs:    members,
			Detail:       f.Detail,
		}
	}
	return records
}
