package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/teamfit/teamfit/schema"
)

// Run executes one full analysis: scoring, allocation, gap analysis and team
// strengths. All inputs and options arrive as arguments and everything the
// run produces is in the returned result; no state survives between calls.
//
// Empty inputs are a warning unless strict mode promotes them to an error;
// the pipeline still runs and yields empty outputs so reports always render.
func Run(roster *schema.Roster, project *schema.Project, opts schema.Options) (*schema.AnalysisResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var warnings []string
	if len(roster.Members) == 0 || len(project.Streams) == 0 {
		err := fmt.Errorf("%w: got %d member(s) and %d stream(s)",
			schema.ErrEmptyInput, len(roster.Members), len(project.Streams))
		if opts.Strict {
			return nil, err
		}
		warnings = append(warnings, err.Error())
	}

	matrix := BuildMatrix(roster.Members, project.Streams, opts)
	assignments := Allocate(&matrix, project.Streams, roster.Members, opts)
	findings := FindGaps(&matrix, assignments, project.Streams, roster.Members, opts)
	strengths := TeamStrengths(roster.Members, project.Streams)

	return &schema.AnalysisResult{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Project:     project.Name,
		MemberCount: len(roster.Members),
		StreamCount: len(project.Streams),
		Options:     opts,
		Matrix:      matrix,
		Assignments: assignments,
		Findings:    findings,
		Strengths:   strengths,
		Warnings:    warnings,
	}, nil
}
