package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamfit/teamfit/schema"
)

// sampleResult builds a small analysis result covering staffed and unstaffed
// streams plus findings with and without involved members.
func sampleResult() *schema.AnalysisResult {
	return &schema.AnalysisResult{
		RunID:       "run-0001",
		GeneratedAt: time.Now(),
		Project:     "Apollo",
		MemberCount: 2,
		StreamCount: 2,
		Matrix: schema.ScoreMatrix{
			MemberIDs: []string{"ana", "bob"},
			StreamIDs: []string{"backend", "reporting"},
			Rows: [][]schema.ScoreCell{
				{
					{MemberID: "ana", StreamID: "backend", Score: 39.285714, MetCount: 1, RequirementCount: 2,
						Drivers:        []schema.Driver{{Skill: "python", Coverage: 1, Contribution: 1}},
						CriticalMisses: []string{"sql"}},
					{MemberID: "ana", StreamID: "reporting", Score: 100, MetCount: 1, RequirementCount: 1,
						Drivers: []schema.Driver{{Skill: "excel", Coverage: 1, Contribution: 2}}},
				},
				{
					{MemberID: "bob", StreamID: "backend", Score: 0, RequirementCount: 2},
					{MemberID: "bob", StreamID: "reporting", Score: 50, MetCount: 0, RequirementCount: 1},
				},
			},
		},
		Assignments: []schema.Assignment{
			{StreamID: "backend", StreamName: "Backend", Capacity: 1, Members: []schema.AssignedMember{
				{MemberID: "ana", Name: "Ana Flores", Score: 39.285714, Rationale: "Limited match: driven by python"},
			}},
			{StreamID: "reporting", StreamName: "Reporting", Capacity: 2},
		},
		Findings: []schema.GapFinding{
			{Kind: schema.UncoveredGap, StreamID: "backend", StreamName: "Backend", Skill: "sql",
				Criticality: schema.Critical, MinimumLevel: 70,
				Detail: "no team member holds sql at level 70 or above"},
			{Kind: schema.SinglePointGap, StreamID: "reporting", StreamName: "Reporting", Skill: "excel",
				Criticality: schema.Required, MinimumLevel: 50, MemberIDs: []string{"ana"},
				Detail: "only Ana Flores covers excel (min 50)"},
		},
	}
}

func TestScoreRecordStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	fileSchema := parquet.SchemaOf(new(ScoreRecord))
	require.NotNil(t, fileSchema)

	expectedColumns := []string{
		"run_id",
		"generated_at",
		"member_id",
		"stream_id",
		"score",
		"display_score",
		"label",
		"met_count",
		"requirement_count",
		"drivers",
		"critical_misses",
	}

	for _, colName := range expectedColumns {
		col, ok := fileSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestAssignmentRecordStructTags(t *testing.T) {
	fileSchema := parquet.SchemaOf(new(AssignmentRecord))
	require.NotNil(t, fileSchema)

	expectedColumns := []string{
		"run_id",
		"generated_at",
		"stream_rank",
		"stream_id",
		"stream_name",
		"capacity",
		"member_id",
		"member_name",
		"score",
		"label",
		"rationale",
	}

	for _, colName := range expectedColumns {
		col, ok := fileSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestGapRecordStructTags(t *testing.T) {
	fileSchema := parquet.SchemaOf(new(GapRecord))
	require.NotNil(t, fileSchema)

	expectedColumns := []string{
		"run_id",
		"generated_at",
		"rank",
		"kind",
		"severity",
		"stream_id",
		"stream_name",
		"skill",
		"criticality",
		"minimum_level",
		"member_ids",
		"detail",
	}

	for _, colName := range expectedColumns {
		col, ok := fileSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestConvertScoreCells(t *testing.T) {
	result := sampleResult()
	cells := []schema.ScoreCell{
		result.Matrix.Rows[0][0],
		result.Matrix.Rows[1][0],
	}

	records := ConvertScoreCells(result, cells)
	require.Len(t, records, 2)

	assert.Equal(t, "run-0001", records[0].RunID)
	assert.Equal(t, "ana", records[0].MemberID)
	assert.Equal(t, "backend", records[0].StreamID)
	assert.InDelta(t, 39.285714, records[0].Score, 0.0001)
	assert.Equal(t, int32(39), records[0].DisplayScore)
	assert.Equal(t, "Limited", records[0].Label)
	assert.Equal(t, "python", records[0].Drivers)
	require.NotNil(t, records[0].CriticalMisses)
	assert.Equal(t, "sql", *records[0].CriticalMisses)

	// Zero-score cell has no misses recorded
	assert.Nil(t, records[1].CriticalMisses)
	assert.Equal(t, int32(0), records[1].MetCount)
}

func TestConvertAssignments(t *testing.T) {
	records := ConvertAssignments(sampleResult())
	require.Len(t, records, 2)

	// Staffed stream carries the member columns
	assert.Equal(t, int32(1), records[0].StreamRank)
	assert.Equal(t, "backend", records[0].StreamID)
	require.NotNil(t, records[0].MemberID)
	assert.Equal(t, "ana", *records[0].MemberID)
	require.NotNil(t, records[0].Label)
	assert.Equal(t, "Limited", *records[0].Label)
	require.NotNil(t, records[0].Rationale)
	assert.Contains(t, *records[0].Rationale, "python")

	// Unstaffed stream keeps a placeholder row with null member columns
	assert.Equal(t, int32(2), records[1].StreamRank)
	assert.Equal(t, "reporting", records[1].StreamID)
	assert.Nil(t, records[1].MemberID)
	assert.Nil(t, records[1].MemberName)
	assert.Nil(t, records[1].Score)
	assert.Nil(t, records[1].Label)
	assert.Nil(t, records[1].Rationale)
}

func TestConvertGapFindings(t *testing.T) {
	records := ConvertGapFindings(sampleResult())
	require.Len(t, records, 2)

	assert.Equal(t, int32(1), records[0].Rank)
	assert.Equal(t, "uncovered", records[0].Kind)
	assert.Equal(t, "Critical", records[0].Severity)
	assert.Nil(t, records[0].MemberIDs)

	assert.Equal(t, "single-point-of-failure", records[1].Kind)
	assert.Equal(t, "High", records[1].Severity)
	require.NotNil(t, records[1].MemberIDs)
	assert.Equal(t, "ana", *records[1].MemberIDs)
}

func TestWriteScoresParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "scores.parquet")

	result := sampleResult()
	data := ConvertScoreCells(result, []schema.ScoreCell{
		result.Matrix.Rows[0][0],
		result.Matrix.Rows[0][1],
		result.Matrix.Rows[1][1],
	})
	require.NotEmpty(t, data)

	err := WriteScoresParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[ScoreRecord](file)
	defer reader.Close()

	readData := make([]ScoreRecord, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := range data {
		assert.Equal(t, data[i].MemberID, readData[i].MemberID, "MemberID should match")
		assert.Equal(t, data[i].StreamID, readData[i].StreamID, "StreamID should match")
		assert.InDelta(t, data[i].Score, readData[i].Score, 0.0001, "Score should match")
		assert.Equal(t, data[i].Label, readData[i].Label, "Label should match")
		assert.WithinDuration(t, data[i].GeneratedAt, readData[i].GeneratedAt, time.Nanosecond, "GeneratedAt should match within nanosecond precision")

		if data[i].CriticalMisses == nil {
			assert.Nil(t, readData[i].CriticalMisses, "CriticalMisses should be nil")
		} else {
			require.NotNil(t, readData[i].CriticalMisses, "CriticalMisses should not be nil")
			assert.Equal(t, *data[i].CriticalMisses, *readData[i].CriticalMisses, "CriticalMisses should match")
		}
	}
}

func TestWriteAssignmentsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "assignments.parquet")

	data := ConvertAssignments(sampleResult())
	require.NotEmpty(t, data)

	err := WriteAssignmentsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[AssignmentRecord](file)
	defer reader.Close()

	readData := make([]AssignmentRecord, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	// Staffed row keeps member columns, unstaffed row keeps nulls
	require.NotNil(t, readData[0].MemberID)
	assert.Equal(t, "ana", *readData[0].MemberID)
	assert.Nil(t, readData[1].MemberID)
	assert.Nil(t, readData[1].Score)
}

func TestWriteGapsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "gaps.parquet")

	data := ConvertGapFindings(sampleResult())
	require.NotEmpty(t, data)

	err := WriteGapsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[GapRecord](file)
	defer reader.Close()

	readData := make([]GapRecord, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	assert.Equal(t, "uncovered", readData[0].Kind)
	assert.Equal(t, "sql", readData[0].Skill)
	assert.InDelta(t, 70.0, readData[0].MinimumLevel, 0.0001)
	require.NotNil(t, readData[1].MemberIDs)
	assert.Equal(t, "ana", *readData[1].MemberIDs)
}

func TestWriteScoresParquet_EmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_scores.parquet")

	err := WriteScoresParquet([]ScoreRecord{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteScoresParquet_InvalidPath(t *testing.T) {
	result := sampleResult()
	data := ConvertScoreCells(result, []schema.ScoreCell{result.Matrix.Rows[0][0]})
	err := WriteScoresParquet(data, "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}
