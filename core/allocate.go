package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/teamfit/teamfit/schema"
)

// StreamPriorityOrder returns streams in allocation order: streams with any
// critical requirement first, then descending total requirement weight, ties
// by ascending stream id. The order is stable so reports reproduce exactly.
func StreamPriorityOrder(streams []schema.WorkStream) []schema.WorkStream {
	ordered := make([]schema.WorkStream, len(streams))
	copy(ordered, streams)
	sort.SliceStable(ordered, func(i, j int) bool {
		ci, cj := ordered[i].HasCritical(), ordered[j].HasCritical()
		if ci != cj {
			return ci
		}
		wi, wj := ordered[i].TotalWeight(), ordered[j].TotalWeight()
		if wi != wj {
			return wi > wj
		}
		return ordered[i].ID < ordered[j].ID
	})
	return ordered
}

// Allocate turns the score matrix into recommended assignments.
//
// Greedy, stream-priority, capacity-bounded: streams are staffed in priority
// order, each taking candidates by descending fit score (ties by member id)
// until capacity fills or no candidate scores above zero. With exclusive
// assignment a member staffed once leaves the pool for all later streams.
// A stream nobody fits produces an assignment with an empty member list; the
// gap analyzer surfaces it, so it is never an error here.
func Allocate(matrix *schema.ScoreMatrix, streams []schema.WorkStream, members []schema.TeamMember, opts schema.Options) []schema.Assignment {
	nameByID := make(map[string]string, len(members))
	for _, m := range members {
		nameByID[m.ID] = m.Name
	}

	taken := make(map[string]struct{})
	ordered := StreamPriorityOrder(streams)
	assignments := make([]schema.Assignment, 0, len(ordered))

	for _, stream := range ordered {
		capacity := stream.ResolvedCapacity(opts.DefaultCapacity)
		candidates := streamCandidates(matrix, stream.ID, taken)

		picked := make([]schema.AssignedMember, 0, min(capacity, len(candidates)))
		for _, cell := range candidates {
			if len(picked) == capacity {
				break
			}
			picked = append(picked, schema.AssignedMember{
				MemberID:  cell.MemberID,
				Name:      nameByID[cell.MemberID],
				Score:     cell.Score,
				Drivers:   cell.Drivers,
				Rationale: buildRationale(cell),
			})
			if opts.ExclusiveAssignment {
				taken[cell.MemberID] = struct{}{}
			}
		}

		assignments = append(assignments, schema.Assignment{
			StreamID:   stream.ID,
			StreamName: stream.Name,
			Capacity:   capacity,
			Members:    picked,
		})
	}

	return assignments
}

// streamCandidates pulls one matrix column and orders it for staffing:
// descending score, ties by ascending member id. Zero-fit members never
// qualify; assigning one is a defect.
func streamCandidates(matrix *schema.ScoreMatrix, streamID string, taken map[string]struct{}) []schema.ScoreCell {
	col := -1
	for j, sid := range matrix.StreamIDs {
		if sid == streamID {
			col = j
			break
		}
	}
	if col < 0 {
		return nil
	}

	candidates := make([]schema.ScoreCell, 0, len(matrix.Rows))
	for i := range matrix.Rows {
		cell := matrix.Rows[i][col]
		if cell.Score <= 0 {
			continue
		}
		if _, gone := taken[cell.MemberID]; gone {
			continue
		}
		candidates = append(candidates, cell)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].MemberID < candidates[j].MemberID
	})
	return candidates
}

// buildRationale renders the score drivers as one human sentence, e.g.
// "Strong match (82): 2/3 requirements met, driven by python, sql".
func buildRationale(cell schema.ScoreCell) string {
	skills := make([]string, len(cell.Drivers))
	for i, d := range cell.Drivers {
		skills[i] = d.Skill
	}
	return fmt.Sprintf("%s match (%d): %d/%d requirements met, driven by %s",
		schema.GetMatchLabel(cell.Score),
		schema.DisplayScore(cell.Score),
		cell.MetCount,
		cell.RequirementCount,
		strings.Join(skills, ", "))
}
