package schema

import "time"

// Driver captures one requirement's contribution to a fit score.
type Driver struct {
	Skill        string  `json:"skill"`        // Normalized key
	Coverage     float64 `json:"coverage"`     // Fraction of the minimum level satisfied, capped at 1
	Contribution float64 `json:"contribution"` // Weight × coverage
}

// ScoreCell is one (member, stream) entry of the fit-score matrix.
type ScoreCell struct {
	MemberID         string   `json:"memberId"`
	StreamID         string   `json:"streamId"`
	Score            float64  `json:"score"`
	MetCount         int      `json:"metCount"`                 // Requirements fully covered
	RequirementCount int      `json:"requirementCount"`         // All requirements on the stream
	Drivers          []Driver `json:"drivers,omitempty"`        // Top contributors, descending
	CriticalMisses   []string `json:"criticalMisses,omitempty"` // Skill keys of missed critical requirements
}

// ScoreMatrix is the full member × stream fit-score grid.
// Rows[i][j] pairs MemberIDs[i] with StreamIDs[j].
type ScoreMatrix struct {
	MemberIDs []string      `json:"memberIds"` // Ascending member id
	StreamIDs []string      `json:"streamIds"` // Plan order
	Rows      [][]ScoreCell `json:"rows"`
}

// Cell returns the matrix entry for a (member, stream) pair.
func (m *ScoreMatrix) Cell(memberID, streamID string) (ScoreCell, bool) {
	for i, mid := range m.MemberIDs {
		if mid != memberID {
			continue
		}
		for j, sid := range m.StreamIDs {
			if sid == streamID {
				return m.Rows[i][j], true
			}
		}
	}
	return ScoreCell{}, false
}

// Score returns the fit score for a (member, stream) pair, or 0 when absent.
func (m *ScoreMatrix) Score(memberID, streamID string) float64 {
	if cell, ok := m.Cell(memberID, streamID); ok {
		return cell.Score
	}
	return 0
}

// AssignedMember is one staffing pick inside an assignment, with the score
// and requirement drivers that justified it.
type AssignedMember struct {
	MemberID  string   `json:"memberId"`
	Name      string   `json:"name"`
	Score     float64  `json:"score"`
	Drivers   []Driver `json:"drivers,omitempty"`
	Rationale string   `json:"rationale"`
}

// Assignment is the recommended staffing for one work stream, members ordered
// by descending fit. An empty member list is valid and surfaces as a gap.
type Assignment struct {
	StreamID   string           `json:"streamId"`
	StreamName string           `json:"streamName"`
	Capacity   int              `json:"capacity"` // Resolved capacity used by the solver
	Members    []AssignedMember `json:"members"`
}

// GapFinding is one detected coverage risk for a required or critical
// requirement.
type GapFinding struct {
	Kind         GapKind     `json:"kind"`
	StreamID     string      `json:"streamId"`
	StreamName   string      `json:"streamName"`
	Skill        string      `json:"skill"` // Normalized key
	Criticality  Criticality `json:"criticality"`
	MinimumLevel float64     `json:"minimumLevel"`
	MemberIDs    []string    `json:"memberIds,omitempty"` // SPOF: the sole qualifier; under-leveled: best assigned
	Detail       string      `json:"detail"`
}

// Strength is a skill the team holds at useful depth that no stream requires.
type Strength struct {
	Skill     string   `json:"skill"`
	MemberIDs []string `json:"memberIds"`
	TopLevel  float64  `json:"topLevel"`
}

// AnalysisResult is everything one run produces. Plain serializable data,
// owned by the caller; nothing survives the run.
type AnalysisResult struct {
	RunID       string       `json:"runId"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Project     string       `json:"project,omitempty"`
	MemberCount int          `json:"memberCount"`
	StreamCount int          `json:"streamCount"`
	Options     Options      `json:"options"`
	Matrix      ScoreMatrix  `json:"matrix"`
	Assignments []Assignment `json:"assignments"`
	Findings    []GapFinding `json:"findings"`
	Strengths   []Strength   `json:"strengths,omitempty"`
	Warnings    []string     `json:"warnings,omitempty"`
}

// EnrichedAssignment adds presentation data to an Assignment.
type EnrichedAssignment struct {
	Rank int `json:"rank"`
	Assignment
}

// EnrichedGapFinding adds presentation data to a GapFinding.
type EnrichedGapFinding struct {
	Rank     int    `json:"rank"`
	Severity string `json:"severity"`
	GapFinding
}

// GetMatchLabel returns a plain text label indicating match quality
// based on the fit score.
func GetMatchLabel(score float64) string {
	switch {
	case score >= 80:
		return "Strong"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Partial"
	default:
		return "Limited"
	}
}

// EnrichAssignments adds rank to a list of assignments.
func EnrichAssignments(assignments []Assignment) []EnrichedAssignment {
	output := make([]EnrichedAssignment, len(assignments))
	for i, a := range assignments {
		output[i] = EnrichedAssignment{
			Rank:       i + 1,
			Assignment: a,
		}
	}
	return output
}

// EnrichFindings adds rank and severity label to a list of gap findings.
func EnrichFindings(findings []GapFinding) []EnrichedGapFinding {
	output := make([]EnrichedGapFinding, len(findings))
	for i, f := range findings {
		output[i] = EnrichedGapFinding{
			Rank:       i + 1,
			Severity:   GetSeverityName(f.Kind),
			GapFinding: f,
		}
	}
	return output
}
