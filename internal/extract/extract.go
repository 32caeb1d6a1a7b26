// Package extract loads team and project documents into skill model values.
//
// Documents are the output contract of external extraction tooling: strict
// JSON or YAML, no text understanding. The loader decodes, validates and
// normalizes them, and halts on the first schema problem rather than building
// a partial model.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/teamfit/teamfit/schema"
)

// Loader converts team and project documents into model values, resolving
// skill names through a shared normalizer so claims and requirements agree
// on skill identity.
type Loader struct {
	normalizer *schema.Normalizer
}

// NewLoader returns a Loader backed by the given normalizer.
func NewLoader(normalizer *schema.Normalizer) *Loader {
	return &Loader{normalizer: normalizer}
}

// document is one input file's raw bytes plus its origin for error context.
type document struct {
	path string
	data []byte
}

// docExtensions lists the supported document extensions.
var docExtensions = map[string]struct{}{
	".json": {},
	".yaml": {},
	".yml":  {},
}

type rawSkill struct {
	Name     string `json:"name" yaml:"name"`
	Level    any    `json:"level" yaml:"level"`
	Category string `json:"category" yaml:"category"`
}

type rawMember struct {
	ID     string     `json:"id" yaml:"id"`
	Name   string     `json:"name" yaml:"name"`
	Role   string     `json:"role" yaml:"role"`
	Years  float64    `json:"experience_years" yaml:"experience_years"`
	Skills []rawSkill `json:"skills" yaml:"skills"`
}

type rawTeamDoc struct {
	Members []rawMember `json:"members" yaml:"members"`
}

type rawRequirement struct {
	Skill       string   `json:"skill" yaml:"skill"`
	MinLevel    any      `json:"min_level" yaml:"min_level"`
	Weight      *float64 `json:"weight" yaml:"weight"`
	Criticality string   `json:"criticality" yaml:"criticality"`
	Category    string   `json:"category" yaml:"category"`
}

type rawStream struct {
	ID           string           `json:"id" yaml:"id"`
	Name         string           `json:"name" yaml:"name"`
	Description  string           `json:"description" yaml:"description"`
	Capacity     int              `json:"capacity" yaml:"capacity"`
	Requirements []rawRequirement `json:"requirements" yaml:"requirements"`
}

type rawProjectDoc struct {
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Streams     []rawStream `json:"streams" yaml:"streams"`
}

// LoadRoster loads team documents from a file or a directory of files merged
// in sorted filename order. Member ids must be unique across all documents;
// duplicate skill claims resolve last-write-wins in document order.
func (l *Loader) LoadRoster(ctx context.Context, path string) (*schema.Roster, error) {
	docs, err := readDocuments(path)
	if err != nil {
		return nil, err
	}

	roster := &schema.Roster{}
	seen := make(map[string]string) // member id -> first document
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		members, err := decodeMembers(doc)
		if err != nil {
			return nil, err
		}
		for _, raw := range members {
			member, err := l.buildMember(doc.path, raw)
			if err != nil {
				return nil, err
			}
			if first, dup := seen[member.ID]; dup {
				return nil, fmt.Errorf("%s: duplicate member id %q (first seen in %s)", doc.path, member.ID, first)
			}
			seen[member.ID] = doc.path
			roster.Members = append(roster.Members, member)
		}
	}
	return roster, nil
}

// LoadProject loads project documents from a file or a directory of files
// merged in sorted filename order. The first non-empty name and description
// win; stream ids must be unique across all documents.
func (l *Loader) LoadProject(ctx context.Context, path string) (*schema.Project, error) {
	docs, err := readDocuments(path)
	if err != nil {
		return nil, err
	}

	project := &schema.Project{}
	seen := make(map[string]string) // stream id -> first document
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var raw rawProjectDoc
		if err := decodeInto(doc, &raw); err != nil {
			return nil, err
		}
		if project.Name == "" {
			project.Name = strings.TrimSpace(raw.Name)
		}
		if project.Description == "" {
			project.Description = strings.TrimSpace(raw.Description)
		}

		for _, rs := range raw.Streams {
			stream, err := l.buildStream(doc.path, rs)
			if err != nil {
				return nil, err
			}
			if first, dup := seen[stream.ID]; dup {
				return nil, fmt.Errorf("%s: duplicate stream id %q (first seen in %s)", doc.path, stream.ID, first)
			}
			seen[stream.ID] = doc.path
			project.Streams = append(project.Streams, stream)
		}
	}
	return project, nil
}

// buildMember validates one raw member and folds its claims.
func (l *Loader) buildMember(path string, raw rawMember) (schema.TeamMember, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return schema.TeamMember{}, fmt.Errorf("%s: member name is required", path)
	}

	id := strings.TrimSpace(raw.ID)
	if id == "" {
		id = schema.DeriveID(name)
	}

	member := schema.TeamMember{
		ID:    id,
		Name:  name,
		Role:  strings.TrimSpace(raw.Role),
		Years: raw.Years,
	}

	index := make(map[string]int, len(raw.Skills))
	for _, rs := range raw.Skills {
		if strings.TrimSpace(rs.Name) == "" {
			return schema.TeamMember{}, fmt.Errorf("%s: member %q has a skill without a name", path, id)
		}
		level, err := schema.ParseLevel(rs.Level)
		if err != nil {
			return schema.TeamMember{}, fmt.Errorf("%s: member %q skill %q: %w", path, id, rs.Name, err)
		}

		claim := schema.ProficiencyClaim{
			Skill: l.normalizer.Skill(rs.Name, rs.Category),
			Level: level,
		}
		if i, dup := index[claim.Skill.Key]; dup {
			member.Claims[i] = claim // last write wins
			continue
		}
		index[claim.Skill.Key] = len(member.Claims)
		member.Claims = append(member.Claims, claim)
	}
	return member, nil
}

// buildStream validates one raw work stream and its requirements.
func (l *Loader) buildStream(path string, raw rawStream) (schema.WorkStream, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return schema.WorkStream{}, fmt.Errorf("%s: stream name is required", path)
	}

	id := strings.TrimSpace(raw.ID)
	if id == "" {
		id = schema.DeriveID(name)
	}
	if raw.Capacity < 0 {
		return schema.WorkStream{}, fmt.Errorf("%s: stream %q capacity cannot be negative", path, id)
	}

	stream := schema.WorkStream{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(raw.Description),
		Capacity:    raw.Capacity,
	}

	seen := make(map[string]struct{}, len(raw.Requirements))
	for _, rr := range raw.Requirements {
		req, err := l.buildRequirement(path, id, rr)
		if err != nil {
			return schema.WorkStream{}, err
		}
		if _, dup := seen[req.Skill.Key]; dup {
			return schema.WorkStream{}, fmt.Errorf("%s: stream %q has duplicate requirement %q", path, id, req.Skill.Key)
		}
		seen[req.Skill.Key] = struct{}{}
		stream.Requirements = append(stream.Requirements, req)
	}
	return stream, nil
}

// buildRequirement validates one raw requirement and applies its defaults.
func (l *Loader) buildRequirement(path, streamID string, raw rawRequirement) (schema.Requirement, error) {
	if strings.TrimSpace(raw.Skill) == "" {
		return schema.Requirement{}, fmt.Errorf("%s: stream %q has a requirement without a skill", path, streamID)
	}

	minLevel := 0.0
	if raw.MinLevel != nil {
		level, err := schema.ParseLevel(raw.MinLevel)
		if err != nil {
			return schema.Requirement{}, fmt.Errorf("%s: stream %q requirement %q: %w", path, streamID, raw.Skill, err)
		}
		minLevel = level
	}

	weight := 1.0
	if raw.Weight != nil {
		weight = *raw.Weight
		if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
			return schema.Requirement{}, fmt.Errorf("%s: stream %q requirement %q: weight must be positive (received %v)", path, streamID, raw.Skill, weight)
		}
	}

	criticality, err := schema.ParseCriticality(raw.Criticality)
	if err != nil {
		return schema.Requirement{}, fmt.Errorf("%s: stream %q requirement %q: %w", path, streamID, raw.Skill, err)
	}

	return schema.Requirement{
		Skill:        l.normalizer.Skill(raw.Skill, raw.Category),
		MinimumLevel: minLevel,
		Weight:       weight,
		Criticality:  criticality,
	}, nil
}

// decodeMembers accepts either a {members: [...]} document or a single
// member object.
func decodeMembers(doc document) ([]rawMember, error) {
	var team rawTeamDoc
	if err := decodeInto(doc, &team); err != nil {
		return nil, err
	}
	if len(team.Members) > 0 {
		return team.Members, nil
	}

	var single rawMember
	if err := decodeInto(doc, &single); err != nil {
		return nil, err
	}
	if single.ID != "" || single.Name != "" || len(single.Skills) > 0 {
		return []rawMember{single}, nil
	}
	return nil, nil
}

// readDocuments reads a single document, or every supported document in a
// directory. os.ReadDir returns entries in sorted filename order, which fixes
// the merge order.
func readDocuments(path string) ([]document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if _, ok := docExtensions[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil, fmt.Errorf("unsupported document type %q (expected .json, .yaml or .yml)", filepath.Ext(path))
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return []document{{path: path, data: data}}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var docs []document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := docExtensions[strings.ToLower(filepath.Ext(entry.Name()))]; !ok {
			continue
		}
		full := filepath.Join(path, entry.Name())
		data, err := os.ReadFile(full)
		if err != nil {
			return nil, err
		}
		docs = append(docs, document{path: full, data: data})
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no input documents found in %s", path)
	}
	return docs, nil
}

// decodeInto unmarshals a document by extension.
func decodeInto(doc document, v any) error {
	var err error
	switch strings.ToLower(filepath.Ext(doc.path)) {
	case ".json":
		err = json.Unmarshal(doc.data, v)
	default:
		err = yaml.Unmarshal(doc.data, v)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", doc.path, err)
	}
	return nil
}
