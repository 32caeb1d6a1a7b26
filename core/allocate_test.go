package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamfit/teamfit/schema"
)

func TestStreamPriorityOrder(t *testing.T) {
	streams := []schema.WorkStream{
		testStream("light", 0, testReq("excel", 50, 1, schema.Required)),
		testStream("heavy", 0, testReq("go", 50, 5, schema.Required)),
		testStream("vital", 0, testReq("sql", 70, 1, schema.Critical)),
		testStream("also-light", 0, testReq("ppt", 50, 1, schema.Required)),
	}

	ordered := StreamPriorityOrder(streams)

	ids := make([]string, len(ordered))
	for i, s := range ordered {
		ids[i] = s.ID
	}
	// Critical-bearing first, then by weight, ties by id.
	assert.Equal(t, []string{"vital", "heavy", "also-light", "light"}, ids)
}

func TestAllocatePicksBestCandidate(t *testing.T) {
	members := []schema.TeamMember{
		testMember("ana", map[string]float64{"sql": 80}),
		testMember("bob", map[string]float64{"sql": 95}),
	}
	streams := []schema.WorkStream{
		testStream("s1", 0, testReq("sql", 70, 1, schema.Required)),
	}
	opts := testOptions()

	matrix := BuildMatrix(members, streams, opts)
	assignments := Allocate(&matrix, streams, members, opts)

	require.Len(t, assignments, 1)
	require.Len(t, assignments[0].Members, 1)
	assert.Equal(t, "ana", assignments[0].Members[0].MemberID) // both hit 100, id breaks the tie
	assert.Equal(t, 1, assignments[0].Capacity)
}

func TestAllocateCapacityBounded(t *testing.T) {
	members := []schema.TeamMember{
		testMember("ana", map[string]float64{"sql": 90}),
		testMember("bob", map[string]float64{"sql": 60}),
		testMember("carol", map[string]float64{"sql": 75}),
	}
	streams := []schema.WorkStream{
		testStream("s1", 2, testReq("sql", 80, 1, schema.Required)),
	}
	opts := testOptions()

	matrix := BuildMatrix(members, streams, opts)
	assignments := Allocate(&matrix, streams, members, opts)

	require.Len(t, assignments, 1)
	require.Len(t, assignments[0].Members, 2)
	assert.Equal(t, "ana", assignments[0].Members[0].MemberID)
	assert.Equal(t, "carol", assignments[0].Members[1].MemberID)
	assert.Equal(t, 2, assignments[0].Capacity)
}

func TestAllocateZeroFitProducesEmptyAssignment(t *testing.T) {
	members := []schema.TeamMember{
		testMember("ana", map[string]float64{"python": 90}),
	}
	streams := []schema.WorkStream{
		testStream("s2", 0, testReq("excel", 50, 1, schema.Critical)),
	}
	opts := testOptions()

	matrix := BuildMatrix(members, streams, opts)
	assignments := Allocate(&matrix, streams, members, opts)

	require.Len(t, assignments, 1)
	assert.Empty(t, assignments[0].Members)
}

func TestAllocateExclusive(t *testing.T) {
	members := []schema.TeamMember{
		testMember("ana", map[string]float64{"sql": 95, "python": 90}),
		testMember("bob", map[string]float64{"sql": 75, "python": 60}),
	}
	streams := []schema.WorkStream{
		testStream("first", 0, testReq("sql", 70, 1, schema.Critical)),
		testStream("second", 0, testReq("python", 50, 1, schema.Required)),
	}

	opts := testOptions()
	opts.ExclusiveAssignment = true

	matrix := BuildMatrix(members, streams, opts)
	assignments := Allocate(&matrix, streams, members, opts)

	require.Len(t, assignments, 2)
	require.Len(t, assignments[0].Members, 1)
	require.Len(t, assignments[1].Members, 1)
	assert.Equal(t, "ana", assignments[0].Members[0].MemberID)
	assert.Equal(t, "bob", assignments[1].Members[0].MemberID)

	seen := map[string]int{}
	for _, a := range assignments {
		for _, m := range a.Members {
			seen[m.MemberID]++
		}
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "member %s assigned more than once", id)
	}
}

func TestAllocateSharedByDefault(t *testing.T) {
	members := []schema.TeamMember{
		testMember("ana", map[string]float64{"sql": 95, "python": 90}),
	}
	streams := []schema.WorkStream{
		testStream("first", 0, testReq("sql", 70, 1, schema.Required)),
		testStream("second", 0, testReq("python", 50, 1, schema.Required)),
	}
	opts := testOptions()

	matrix := BuildMatrix(members, streams, opts)
	assignments := Allocate(&matrix, streams, members, opts)

	require.Len(t, assignments, 2)
	require.Len(t, assignments[0].Members, 1)
	require.Len(t, assignments[1].Members, 1)
	assert.Equal(t, "ana", assignments[0].Members[0].MemberID)
	assert.Equal(t, "ana", assignments[1].Members[0].MemberID)
}

func TestAllocateDeterministic(t *testing.T) {
	members := []schema.TeamMember{
		testMember("carol", map[string]float64{"go": 75, "sql": 60}),
		testMember("ana", map[string]float64{"go": 75, "sql": 90}),
		testMember("bob", map[string]float64{"go": 75, "sql": 90}),
	}
	streams := []schema.WorkStream{
		testStream("s2", 2, testReq("go", 60, 1, schema.Required)),
		testStream("s1", 0, testReq("sql", 70, 1, schema.Critical)),
	}
	opts := testOptions()

	matrix := BuildMatrix(members, streams, opts)
	first := Allocate(&matrix, streams, members, opts)
	second := Allocate(&matrix, streams, members, opts)

	assert.Equal(t, first, second)
}

func TestAllocateRationale(t *testing.T) {
	members := []schema.TeamMember{
		testMember("ana", map[string]float64{"python": 90, "sql": 80}),
	}
	streams := []schema.WorkStream{
		testStream("s1", 0,
			testReq("python", 50, 1, schema.Required),
			testReq("sql", 70, 1, schema.Required)),
	}
	opts := testOptions()

	matrix := BuildMatrix(members, streams, opts)
	assignments := Allocate(&matrix, streams, members, opts)

	require.Len(t, assignments, 1)
	require.Len(t, assignments[0].Members, 1)
	rationale := assignments[0].Members[0].Rationale
	assert.Equal(t, "Strong match (100): 2/2 requirements met, driven by python, sql", rationale)
}

func TestBuildMatrixOrdering(t *testing.T) {
	members := []schema.TeamMember{
		testMember("zoe", map[string]float64{"sql": 50}),
		testMember("ana", map[string]float64{"sql": 90}),
	}
	streams := []schema.WorkStream{
		testStream("beta", 0, testReq("sql", 50, 1, schema.Required)),
		testStream("alpha", 0, testReq("sql", 80, 1, schema.Required)),
	}
	opts := testOptions()

	matrix := BuildMatrix(members, streams, opts)

	// Rows sort by member id; columns keep plan order.
	assert.Equal(t, []string{"ana", "zoe"}, matrix.MemberIDs)
	assert.Equal(t, []string{"beta", "alpha"}, matrix.StreamIDs)
	assert.Equal(t, "ana", matrix.Rows[0][0].MemberID)
	assert.Equal(t, "beta", matrix.Rows[0][0].StreamID)
	assert.Equal(t, "alpha", matrix.Rows[0][1].StreamID)
}

func TestBuildMatrixWorkerCountInvariance(t *testing.T) {
	members := make([]schema.TeamMember, 0, 8)
	names := []string{"ana", "bob", "carol", "dave", "eve", "frank", "gina", "hank"}
	for i, name := range names {
		members = append(members, testMember(name, map[string]float64{
			"python": float64(10 * i), "sql": float64(100 - 10*i),
		}))
	}
	streams := []schema.WorkStream{
		testStream("s1", 0, testReq("python", 50, 1, schema.Required)),
		testStream("s2", 0, testReq("sql", 60, 2, schema.Critical)),
	}

	serial := testOptions()
	serial.Workers = 1
	parallel := testOptions()
	parallel.Workers = 8

	assert.Equal(t, BuildMatrix(members, streams, serial), BuildMatrix(members, streams, parallel))
}

func TestBuildMatrixEmptyInputs(t *testing.T) {
	opts := testOptions()

	noMembers := BuildMatrix(nil, []schema.WorkStream{testStream("s1", 0)}, opts)
	assert.Empty(t, noMembers.MemberIDs)
	assert.Equal(t, []string{"s1"}, noMembers.StreamIDs)
	assert.Empty(t, noMembers.Rows)

	noStreams := BuildMatrix([]schema.TeamMember{testMember("ana", nil)}, nil, opts)
	assert.Equal(t, []string{"ana"}, noStreams.MemberIDs)
	assert.Empty(t, noStreams.StreamIDs)
	require.Len(t, noStreams.Rows, 1)
	assert.Empty(t, noStreams.Rows[0])
}
