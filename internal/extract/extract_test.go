package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamfit/teamfit/schema"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestLoader() *Loader {
	return NewLoader(schema.NewNormalizer(nil))
}

func TestLoadRosterJSON(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "team.json", `{
		"members": [
			{
				"id": "priya",
				"name": "Priya Sharma",
				"role": "Data Engineer",
				"experience_years": 6,
				"skills": [
					{"name": "Python 3", "level": 90, "category": "technical"},
					{"name": "SQL", "level": "proficient"},
					{"name": "python", "level": 85}
				]
			}
		]
	}`)

	roster, err := newTestLoader().LoadRoster(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, roster.Members, 1)

	m := roster.Members[0]
	assert.Equal(t, "priya", m.ID)
	assert.Equal(t, "Priya Sharma", m.Name)
	assert.Equal(t, "Data Engineer", m.Role)
	assert.Equal(t, 6.0, m.Years)

	// "Python 3" folds to python via the synonym table, then the later plain
	// "python" claim wins.
	require.Len(t, m.Claims, 2)
	assert.Equal(t, "python", m.Claims[0].Skill.Key)
	assert.Equal(t, 85.0, m.Claims[0].Level)
	assert.Equal(t, "sql", m.Claims[1].Skill.Key)
	assert.Equal(t, schema.ProficientLevel, m.Claims[1].Level)
}

func TestLoadRosterSingleMemberYAML(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "marcus.yaml", `
name: Marcus Webb
skills:
  - name: JS
    level: expert
  - name: Excel
    level: 70
`)

	roster, err := newTestLoader().LoadRoster(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, roster.Members, 1)

	m := roster.Members[0]
	assert.Equal(t, "marcus-webb", m.ID)
	require.Len(t, m.Claims, 2)
	assert.Equal(t, "javascript", m.Claims[0].Skill.Key)
	assert.Equal(t, schema.ExpertLevel, m.Claims[0].Level)
	assert.Equal(t, "excel", m.Claims[1].Skill.Key)
}

func TestLoadRosterDirectory(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "a_core.json", `{"members": [{"name": "Ana Lopez", "skills": []}]}`)
	writeDoc(t, dir, "b_contractors.yaml", `
members:
  - name: Bob Reyes
    skills:
      - name: sql
        level: 80
`)
	writeDoc(t, dir, "notes.txt", "ignored")

	roster, err := newTestLoader().LoadRoster(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, roster.Members, 2)
	assert.Equal(t, "ana-lopez", roster.Members[0].ID)
	assert.Equal(t, "bob-reyes", roster.Members[1].ID)
}

func TestLoadRosterErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		contains string
	}{
		{
			name:     "missing member name",
			file:     "team.json",
			content:  `{"members": [{"id": "x", "skills": []}]}`,
			contains: "member name is required",
		},
		{
			name:     "skill without name",
			file:     "team.json",
			content:  `{"members": [{"name": "Ana", "skills": [{"level": 50}]}]}`,
			contains: "skill without a name",
		},
		{
			name:     "missing skill level",
			file:     "team.json",
			content:  `{"members": [{"name": "Ana", "skills": [{"name": "sql"}]}]}`,
			contains: "missing level",
		},
		{
			name:     "duplicate member id",
			file:     "team.yaml",
			content:  "members:\n  - name: Ana\n  - name: ana\n",
			contains: "duplicate member id",
		},
		{
			name:     "malformed json",
			file:     "team.json",
			content:  `{"members": [`,
			contains: "team.json",
		},
		{
			name:     "unsupported extension",
			file:     "team.txt",
			content:  "whatever",
			contains: "unsupported document type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDoc(t, t.TempDir(), tt.file, tt.content)
			_, err := newTestLoader().LoadRoster(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadRosterInvalidLevel(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "team.json",
		`{"members": [{"name": "Ana", "skills": [{"name": "sql", "level": 150}]}]}`)

	_, err := newTestLoader().LoadRoster(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrInvalidScale)
	assert.Contains(t, err.Error(), `skill "sql"`)
}

func TestLoadRosterMissingFile(t *testing.T) {
	_, err := newTestLoader().LoadRoster(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadRosterContextCanceled(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "team.json", `{"members": [{"name": "Ana"}]}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestLoader().LoadRoster(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadProjectYAML(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "project.yaml", `
name: Apollo
description: CRM migration program
streams:
  - name: Data Migration
    capacity: 2
    requirements:
      - skill: python
        min_level: proficient
        weight: 2
        criticality: must-have
      - skill: SQL
  - id: reporting
    name: Reporting
    requirements:
      - skill: MS Excel
        min_level: 50
`)

	project, err := newTestLoader().LoadProject(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Apollo", project.Name)
	assert.Equal(t, "CRM migration program", project.Description)
	require.Len(t, project.Streams, 2)

	migration := project.Streams[0]
	assert.Equal(t, "data-migration", migration.ID)
	assert.Equal(t, 2, migration.Capacity)
	require.Len(t, migration.Requirements, 2)

	python := migration.Requirements[0]
	assert.Equal(t, "python", python.Skill.Key)
	assert.Equal(t, schema.ProficientLevel, python.MinimumLevel)
	assert.Equal(t, 2.0, python.Weight)
	assert.Equal(t, schema.Critical, python.Criticality)

	// Absent fields take their defaults.
	sql := migration.Requirements[1]
	assert.Equal(t, "sql", sql.Skill.Key)
	assert.Equal(t, 0.0, sql.MinimumLevel)
	assert.Equal(t, 1.0, sql.Weight)
	assert.Equal(t, schema.Required, sql.Criticality)

	reporting := project.Streams[1]
	assert.Equal(t, "reporting", reporting.ID)
	assert.Equal(t, "excel", reporting.Requirements[0].Skill.Key)
	assert.Equal(t, 50.0, reporting.Requirements[0].MinimumLevel)
}

func TestLoadProjectDirectoryMerge(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "01_base.yaml", `
name: Apollo
streams:
  - name: Data Migration
    requirements:
      - skill: sql
`)
	writeDoc(t, dir, "02_extra.yaml", `
name: Ignored Later Name
streams:
  - name: Reporting
    requirements:
      - skill: excel
`)

	project, err := newTestLoader().LoadProject(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "Apollo", project.Name)
	require.Len(t, project.Streams, 2)
	assert.Equal(t, "data-migration", project.Streams[0].ID)
	assert.Equal(t, "reporting", project.Streams[1].ID)
}

func TestLoadProjectErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{
			name:     "missing stream name",
			content:  "streams:\n  - capacity: 1\n",
			contains: "stream name is required",
		},
		{
			name:     "negative capacity",
			content:  "streams:\n  - name: S1\n    capacity: -1\n",
			contains: "capacity cannot be negative",
		},
		{
			name:     "duplicate stream id",
			content:  "streams:\n  - name: S1\n  - name: s1\n",
			contains: "duplicate stream id",
		},
		{
			name:     "requirement without skill",
			content:  "streams:\n  - name: S1\n    requirements:\n      - min_level: 50\n",
			contains: "requirement without a skill",
		},
		{
			name:     "zero weight",
			content:  "streams:\n  - name: S1\n    requirements:\n      - skill: sql\n        weight: 0\n",
			contains: "weight must be positive",
		},
		{
			name:     "unknown criticality",
			content:  "streams:\n  - name: S1\n    requirements:\n      - skill: sql\n        criticality: urgent\n",
			contains: "unknown criticality",
		},
		{
			name:     "duplicate requirement skill",
			content:  "streams:\n  - name: S1\n    requirements:\n      - skill: sql\n      - skill: SQL\n",
			contains: "duplicate requirement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDoc(t, t.TempDir(), "project.yaml", tt.content)
			_, err := newTestLoader().LoadProject(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadProjectInvalidMinLevel(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "project.yaml",
		"streams:\n  - name: S1\n    requirements:\n      - skill: sql\n        min_level: wizard\n")

	_, err := newTestLoader().LoadProject(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrInvalidScale)
}

func TestLoadProjectEmptyDirectory(t *testing.T) {
	_, err := newTestLoader().LoadProject(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input documents found")
}
