package core

import (
	"fmt"
	"time"

	"github.com/teamfit/teamfit/schema"
)

// EvaluateGate checks gap findings against per-kind limits. Kinds missing
// from limits are reported but never fail the gate.
func EvaluateGate(findings []schema.GapFinding, limits map[schema.GapKind]int) schema.CheckResult {
	counts := make(map[schema.GapKind]int, len(schema.AllGapKinds))
	for _, kind := range schema.AllGapKinds {
		counts[kind] = 0
	}
	for _, f := range findings {
		counts[f.Kind]++
	}

	result := schema.CheckResult{
		Passed: true,
		Counts: counts,
		Limits: limits,
		Total:  len(findings),
	}
	for _, kind := range schema.AllGapKinds {
		limit, checked := limits[kind]
		if !checked {
			continue
		}
		if counts[kind] > limit {
			result.Passed = false
			result.Violations = append(result.Violations, schema.CheckViolation{
				Kind:  kind,
				Count: counts[kind],
				Limit: limit,
			})
		}
	}
	return result
}

// printCheckResult prints the gate outcome in a concise format suitable for CI/CD.
func printCheckResult(result *schema.CheckResult, duration time.Duration) {
	fmt.Printf("🔎 Gap policy check (%d finding(s), %.2fs)\n", result.Total, duration.Seconds())

	for _, kind := range schema.AllGapKinds {
		if limit, checked := result.Limits[kind]; checked {
			status := "ok"
			if result.Counts[kind] > limit {
				status = "FAIL"
			}
			fmt.Printf("  %-23s %d (limit %d) %s\n", kind, result.Counts[kind], limit, status)
		} else {
			fmt.Printf("  %-23s %d (unchecked)\n", kind, result.Counts[kind])
		}
	}

	if result.Passed {
		fmt.Println("✅ Check passed")
	} else {
		fmt.Println("❌ Check failed")
	}
}
