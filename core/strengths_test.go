package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamfit/teamfit/schema"
)

func TestTeamStrengths(t *testing.T) {
	members := []schema.TeamMember{
		testMember("ana", map[string]float64{"python": 90, "figma": 85, "rust": 70}),
		testMember("bob", map[string]float64{"sql": 80, "rust": 95}),
		testMember("carol", map[string]float64{"rust": 62, "excel": 40}),
	}
	streams := []schema.WorkStream{
		testStream("s1", 0,
			testReq("python", 60, 1, schema.Required),
			testReq("sql", 50, 1, schema.NiceToHave)),
	}

	strengths := TeamStrengths(members, streams)

	// python and sql are demanded (nice-to-have still counts as demanded),
	// excel sits below the proficiency bar.
	require.Len(t, strengths, 2)

	assert.Equal(t, "rust", strengths[0].Skill)
	assert.Equal(t, []string{"ana", "bob", "carol"}, strengths[0].MemberIDs)
	assert.Equal(t, float64(95), strengths[0].TopLevel)

	assert.Equal(t, "figma", strengths[1].Skill)
	assert.Equal(t, []string{"ana"}, strengths[1].MemberIDs)
}

func TestTeamStrengthsTieOrdering(t *testing.T) {
	members := []schema.TeamMember{
		testMember("ana", map[string]float64{"go": 80, "kotlin": 80, "swift": 90}),
	}

	strengths := TeamStrengths(members, nil)

	// Same claimant count everywhere: top level breaks the tie, then key.
	require.Len(t, strengths, 3)
	assert.Equal(t, "swift", strengths[0].Skill)
	assert.Equal(t, "go", strengths[1].Skill)
	assert.Equal(t, "kotlin", strengths[2].Skill)
}

func TestTeamStrengthsCapped(t *testing.T) {
	skills := make(map[string]float64, 14)
	for i := range 14 {
		skills[fmt.Sprintf("skill-%02d", i)] = 75
	}
	members := []schema.TeamMember{testMember("ana", skills)}

	strengths := TeamStrengths(members, nil)
	assert.Len(t, strengths, 10)
}

func TestTeamStrengthsEmpty(t *testing.T) {
	assert.Empty(t, TeamStrengths(nil, nil))

	members := []schema.TeamMember{
		testMember("ana", map[string]float64{"python": 90}),
	}
	streams := []schema.WorkStream{
		testStream("s1", 0, testReq("python", 60, 1, schema.Required)),
	}
	assert.Empty(t, TeamStrengths(members, streams))
}
