package schema

import (
	"strings"
	"unicode"
)

// DeriveID builds a stable identifier from a display name: folded text with
// whitespace runs replaced by hyphens. Used when a document omits an id.
func DeriveID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// cleanParts trims non-alphanumeric punctuation from the ends of name parts,
// additionally dropping trailing periods.
func cleanParts(parts []string) []string {
	var cleaned []string
	for _, p := range parts {
		cp := strings.TrimFunc(p, func(r rune) bool {
			if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '\'' || r == '.' {
				return false
			}
			return true
		})
		cp = strings.TrimSuffix(cp, ".")
		if cp != "" {
			cleaned = append(cleaned, cp)
		}
	}
	return cleaned
}

// AbbreviateName formats "Priya Sharma" to "Priya S" so assignment tables
// stay narrow. Single-word names pass through unchanged.
func AbbreviateName(name string) string {
	trimmed := strings.Trim(strings.TrimSpace(name), "()\"'`")
	cleaned := cleanParts(strings.Fields(trimmed))

	if len(cleaned) >= 2 {
		first := cleaned[0]
		last := []rune(cleaned[len(cleaned)-1])
		if len(last) > 0 {
			return first + " " + string(last[0])
		}
		return first
	}
	if len(cleaned) == 1 {
		return cleaned[0]
	}
	return trimmed
}

// FormatMemberNames formats assigned members as "Priya S, Marcus W".
func FormatMemberNames(names []string) string {
	var abbreviated []string
	for _, name := range names {
		abbreviated = append(abbreviated, AbbreviateName(name))
	}
	return strings.Join(abbreviated, ", ")
}
