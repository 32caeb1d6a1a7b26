package core

import (
	"fmt"
	"sort"

	"github.com/teamfit/teamfit/schema"
)

// FindGaps detects coverage risks for every required or critical requirement:
//
//   - uncovered: no member meets the minimum level.
//   - single-point-of-failure: exactly one member meets it.
//   - under-leveled: two or more members qualify, but the best assigned
//     member's claim sits below the confidence threshold
//     (confidenceMultiplier × minimumLevel, capped at the scale maximum).
//
// Findings are ordered by severity, then stream priority, then skill key.
func FindGaps(matrix *schema.ScoreMatrix, assignments []schema.Assignment, streams []schema.WorkStream, members []schema.TeamMember, opts schema.Options) []schema.GapFinding {
	byID := make(map[string]*schema.TeamMember, len(members))
	for i := range members {
		byID[members[i].ID] = &members[i]
	}
	assignedByStream := make(map[string][]schema.AssignedMember, len(assignments))
	for _, a := range assignments {
		assignedByStream[a.StreamID] = a.Members
	}

	ordered := StreamPriorityOrder(streams)
	streamRank := make(map[string]int, len(ordered))
	for i, s := range ordered {
		streamRank[s.ID] = i
	}

	var findings []schema.GapFinding
	for _, stream := range ordered {
		for _, r := range stream.Requirements {
			if r.Criticality == schema.NiceToHave {
				continue
			}

			qualifying := qualifyingMembers(matrix.MemberIDs, byID, r)
			finding := schema.GapFinding{
				StreamID:     stream.ID,
				StreamName:   stream.Name,
				Skill:        r.Skill.Key,
				Criticality:  r.Criticality,
				MinimumLevel: r.MinimumLevel,
			}

			switch len(qualifying) {
			case 0:
				finding.Kind = schema.UncoveredGap
				finding.Detail = fmt.Sprintf("no team member holds %s at level %g or above", r.Skill.Key, r.MinimumLevel)
			case 1:
				finding.Kind = schema.SinglePointGap
				finding.MemberIDs = qualifying
				finding.Detail = fmt.Sprintf("only %s covers %s (min %g)", byID[qualifying[0]].Name, r.Skill.Key, r.MinimumLevel)
			default:
				threshold := min(opts.ConfidenceMultiplier*r.MinimumLevel, schema.ScaleMax)
				bestID, bestLevel := bestAssignedLevel(assignedByStream[stream.ID], byID, r.Skill.Key)
				if bestLevel >= threshold {
					continue
				}
				finding.Kind = schema.UnderLeveledGap
				if bestID != "" {
					finding.MemberIDs = []string{bestID}
					finding.Detail = fmt.Sprintf("best assigned claim for %s is %g, below the confidence threshold %g", r.Skill.Key, bestLevel, threshold)
				} else {
					finding.Detail = fmt.Sprintf("no assigned member holds %s; confidence threshold is %g", r.Skill.Key, threshold)
				}
			}

			findings = append(findings, finding)
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		si, sj := schema.GapSeverity(findings[i].Kind), schema.GapSeverity(findings[j].Kind)
		if si != sj {
			return si < sj
		}
		ri, rj := streamRank[findings[i].StreamID], streamRank[findings[j].StreamID]
		if ri != rj {
			return ri < rj
		}
		return findings[i].Skill < findings[j].Skill
	})
	return findings
}

// qualifyingMembers lists members whose claim for the requirement's skill
// exists and meets the minimum level, in matrix row order.
func qualifyingMembers(memberIDs []string, byID map[string]*schema.TeamMember, r schema.Requirement) []string {
	var qualifying []string
	for _, id := range memberIDs {
		m, ok := byID[id]
		if !ok {
			continue
		}
		if claim, has := m.ClaimFor(r.Skill.Key); has && claim.Level >= r.MinimumLevel {
			qualifying = append(qualifying, id)
		}
	}
	return qualifying
}

// bestAssignedLevel finds the strongest claim for a skill among a stream's
// assigned members. An unstaffed stream reports level 0.
func bestAssignedLevel(assigned []schema.AssignedMember, byID map[string]*schema.TeamMember, key string) (string, float64) {
	var bestID string
	var bestLevel float64
	for _, am := range assigned {
		m, ok := byID[am.MemberID]
		if !ok {
			continue
		}
		level := m.LevelFor(key)
		if bestID == "" || level > bestLevel {
			bestID = am.MemberID
			bestLevel = level
		}
	}
	return bestID, bestLevel
}
