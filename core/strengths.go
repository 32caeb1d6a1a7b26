package core

import (
	"sort"

	"github.com/teamfit/teamfit/schema"
)

const (
	// strengthMinLevel is the depth a claim needs before it counts as a
	// team strength.
	strengthMinLevel = schema.ProficientLevel

	// maxStrengths caps the report section.
	maxStrengths = 10
)

// TeamStrengths lists skills the team holds at useful depth that no stream
// requires. Ordered by claimant count, then top level, then skill key.
func TeamStrengths(members []schema.TeamMember, streams []schema.WorkStream) []schema.Strength {
	required := make(map[string]struct{})
	for _, s := range streams {
		for _, r := range s.Requirements {
			required[r.Skill.Key] = struct{}{}
		}
	}

	type bucket struct {
		memberIDs []string
		topLevel  float64
	}
	byKey := make(map[string]*bucket)

	sorted := make([]schema.TeamMember, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	for _, m := range sorted {
		for _, c := range m.Claims {
			if c.Level < strengthMinLevel {
				continue
			}
			if _, demanded := required[c.Skill.Key]; demanded {
				continue
			}
			b, ok := byKey[c.Skill.Key]
			if !ok {
				b = &bucket{}
				byKey[c.Skill.Key] = b
			}
			b.memberIDs = append(b.memberIDs, m.ID)
			b.topLevel = max(b.topLevel, c.Level)
		}
	}

	strengths := make([]schema.Strength, 0, len(byKey))
	for key, b := range byKey {
		strengths = append(strengths, schema.Strength{
			Skill:     key,
			MemberIDs: b.memberIDs,
			TopLevel:  b.topLevel,
		})
	}

	sort.Slice(strengths, func(i, j int) bool {
		if len(strengths[i].MemberIDs) != len(strengths[j].MemberIDs) {
			return len(strengths[i].MemberIDs) > len(strengths[j].MemberIDs)
		}
		if strengths[i].TopLevel != strengths[j].TopLevel {
			return strengths[i].TopLevel > strengths[j].TopLevel
		}
		return strengths[i].Skill < strengths[j].Skill
	})
	if len(strengths) > maxStrengths {
		return strengths[:maxStrengths]
	}
	return strengths
}
