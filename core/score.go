package core

import (
	"sort"

	"github.com/teamfit/teamfit/schema"
)

// topDriverCount caps how many requirement drivers a score cell records.
const topDriverCount = 3

// Score computes a member's fit (0-100) against one work stream.
//
// Each requirement contributes weight × coverage, where coverage is the
// fraction of the minimum level the member's claim satisfies, capped at 1.
// A requirement with no minimum counts as covered whenever a claim exists.
// Every missed critical requirement multiplies the whole stream score by the
// configured penalty, so a critical miss dominates the score instead of just
// subtracting its own weight.
//
// Pure function over immutable inputs; safe to call concurrently across the
// full (member, stream) cross product.
func Score(member *schema.TeamMember, stream *schema.WorkStream, opts schema.Options) schema.ScoreCell {
	cell := schema.ScoreCell{
		MemberID:         member.ID,
		StreamID:         stream.ID,
		RequirementCount: len(stream.Requirements),
	}

	// A stream with nothing to match is defined as 0 for every member,
	// never as a full match.
	if len(stream.Requirements) == 0 {
		return cell
	}

	var totalWeight, raw float64
	var drivers []schema.Driver
	penalty := 1.0

	for _, r := range stream.Requirements {
		totalWeight += r.Weight

		claim, ok := member.ClaimFor(r.Skill.Key)
		var coverage float64
		switch {
		case r.MinimumLevel > 0:
			coverage = min(1, claim.Level/r.MinimumLevel)
		case ok:
			coverage = 1
		}

		contribution := r.Weight * coverage
		raw += contribution
		if coverage >= 1 {
			cell.MetCount++
		}
		if contribution > 0 {
			drivers = append(drivers, schema.Driver{
				Skill:        r.Skill.Key,
				Coverage:     coverage,
				Contribution: contribution,
			})
		}

		if r.Criticality == schema.Critical && claim.Level < r.MinimumLevel {
			penalty *= opts.CriticalMissPenalty
			cell.CriticalMisses = append(cell.CriticalMisses, r.Skill.Key)
		}
	}

	if totalWeight <= 0 {
		return cell
	}

	cell.Score = schema.ClampScore(100 * (raw / totalWeight) * penalty)
	cell.Drivers = topDrivers(drivers)
	sort.Strings(cell.CriticalMisses)
	return cell
}

// topDrivers keeps the strongest contributors in a deterministic order:
// descending contribution, ties by skill key.
func topDrivers(drivers []schema.Driver) []schema.Driver {
	sort.Slice(drivers, func(i, j int) bool {
		if drivers[i].Contribution != drivers[j].Contribution {
			return drivers[i].Contribution > drivers[j].Contribution
		}
		return drivers[i].Skill < drivers[j].Skill
	})
	if len(drivers) > topDriverCount {
		return drivers[:topDriverCount]
	}
	return drivers
}
