// Package schema has the skill model, options and result types for all parts of teamfit.
package schema

// Skill is the canonical identity of one skill. Two skills are the same
// entity iff their normalized keys match; everything else is display data.
type Skill struct {
	Key      string `json:"key"`                // Normalized identity (folded + synonym-resolved)
	Display  string `json:"display"`            // Raw spelling as first seen in the source document
	Category string `json:"category,omitempty"` // Free-form grouping tag, optional
}

// ProficiencyClaim binds a skill to the level a team member claims for it.
// Level lives on the 0-100 scale; tier keywords are converted before this point.
type ProficiencyClaim struct {
	Skill Skill   `json:"skill"`
	Level float64 `json:"level"`
}

// TeamMember is one extracted profile. Built once per run and never mutated;
// claims are unique by skill key (duplicates resolve last-write-wins upstream).
type TeamMember struct {
	ID     string             `json:"id"`
	Name   string             `json:"name"`
	Role   string             `json:"role,omitempty"`
	Years  float64            `json:"experienceYears,omitempty"` // Display metadata, never scored
	Claims []ProficiencyClaim `json:"claims"`
}

// ClaimFor returns the member's claim for a normalized skill key.
func (m *TeamMember) ClaimFor(key string) (ProficiencyClaim, bool) {
	for _, c := range m.Claims {
		if c.Skill.Key == key {
			return c, true
		}
	}
	return ProficiencyClaim{}, false
}

// LevelFor returns the claimed level for a skill key, or 0 when absent.
func (m *TeamMember) LevelFor(key string) float64 {
	if c, ok := m.ClaimFor(key); ok {
		return c.Level
	}
	return 0
}

// Requirement is one skill demand of a work stream.
type Requirement struct {
	Skill        Skill       `json:"skill"`
	MinimumLevel float64     `json:"minimumLevel"` // Same 0-100 scale as claims
	Weight       float64     `json:"weight"`       // Positive; scales contribution to the stream score
	Criticality  Criticality `json:"criticality"`
}

// WorkStream is a unit of project work with skill requirements and a staffing capacity.
type WorkStream struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	Capacity     int           `json:"capacity,omitempty"` // 0 means "use the configured default"
	Requirements []Requirement `json:"requirements"`
}

// HasCritical reports whether any requirement is critical.
func (w *WorkStream) HasCritical() bool {
	for _, r := range w.Requirements {
		if r.Criticality == Critical {
			return true
		}
	}
	return false
}

// TotalWeight sums all requirement weights.
func (w *WorkStream) TotalWeight() float64 {
	var total float64
	for _, r := range w.Requirements {
		total += r.Weight
	}
	return total
}

// ResolvedCapacity applies the configured default to unset capacities.
func (w *WorkStream) ResolvedCapacity(defaultCapacity int) int {
	if w.Capacity > 0 {
		return w.Capacity
	}
	return defaultCapacity
}

// Roster is the extracted team: every member available for allocation.
type Roster struct {
	Members []TeamMember `json:"members"`
}

// Project is the extracted project plan: named work streams with requirements.
type Project struct {
	Name        string       `json:"name,omitempty"`
	Description string       `json:"description,omitempty"`
	Streams     []WorkStream `json:"streams"`
}
