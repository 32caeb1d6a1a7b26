package schema

import "strings"

// Fold canonicalizes raw skill text: trim outer whitespace, lower-case,
// collapse internal whitespace runs to single spaces.
func Fold(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// DefaultSynonyms maps folded aliases to their canonical skill key.
// Resolution is a single hop: canonical keys are never themselves aliases.
var DefaultSynonyms = map[string]string{
	"python3":                "python",
	"python 3":               "python",
	"python programming":     "python",
	"js":                     "javascript",
	"node":                   "javascript",
	"nodejs":                 "javascript",
	"node.js":                "javascript",
	"pm":                     "project management",
	"pmp":                    "project management",
	"project manager":        "project management",
	"stakeholder engagement": "stakeholder management",
	"client management":      "stakeholder management",
	"data analytics":         "data analysis",
	"analytics":              "data analysis",
	"data analyst":           "data analysis",
	"ms excel":               "excel",
	"microsoft excel":        "excel",
	"spreadsheets":           "excel",
	"ppt":                    "powerpoint",
	"presentations":          "powerpoint",
	"ms powerpoint":          "powerpoint",
	"communications":         "communication",
	"written communication":  "communication",
	"verbal communication":   "communication",
	"team leadership":        "leadership",
	"people leadership":      "leadership",
	"strategic planning":     "strategy",
	"strategic thinking":     "strategy",
}

// Normalizer resolves raw skill spellings to canonical identities.
// The table is fixed for the lifetime of a run.
type Normalizer struct {
	synonyms map[string]string
}

// NewNormalizer builds a normalizer from the default synonym table overlaid
// with extra entries (both sides folded). Extra entries win on conflict.
func NewNormalizer(extra map[string]string) *Normalizer {
	merged := make(map[string]string, len(DefaultSynonyms)+len(extra))
	for alias, canonical := range DefaultSynonyms {
		merged[alias] = canonical
	}
	for alias, canonical := range extra {
		merged[Fold(alias)] = Fold(canonical)
	}
	return &Normalizer{synonyms: merged}
}

// Key returns the canonical identity key for a raw skill spelling.
func (n *Normalizer) Key(raw string) string {
	folded := Fold(raw)
	if canonical, ok := n.synonyms[folded]; ok {
		return canonical
	}
	return folded
}

// Skill builds a Skill from a raw spelling, keeping the trimmed raw text
// as display data.
func (n *Normalizer) Skill(raw, category string) Skill {
	return Skill{
		Key:      n.Key(raw),
		Display:  strings.TrimSpace(raw),
		Category: strings.TrimSpace(category),
	}
}

// Size reports how many alias entries the normalizer carries.
func (n *Normalizer) Size() int {
	return len(n.synonyms)
}

// Entries returns a copy of the alias table for display purposes.
func (n *Normalizer) Entries() map[string]string {
	out := make(map[string]string, len(n.synonyms))
	for alias, canonical := range n.synonyms {
		out[alias] = canonical
	}
	return out
}
