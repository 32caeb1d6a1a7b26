package schema

// CheckResult holds the outcome of a gap-policy check.
type CheckResult struct {
	Passed     bool
	Counts     map[GapKind]int // Findings per kind, all kinds present
	Limits     map[GapKind]int // Checked kinds only
	Violations []CheckViolation
	Total      int // All findings, checked or not
}

// CheckViolation is one gap kind whose finding count exceeded its limit.
type CheckViolation struct {
	Kind  GapKind
	Count int
	Limit int
}
