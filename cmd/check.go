package cmd

import (
	"github.com/spf13/cobra"

	"github.com/teamfit/teamfit/core"
	"github.com/teamfit/teamfit/internal/contract"
)

// checkCmd focused on CI/CD policy enforcement.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Enforce gap limits for CI/CD pipelines (fails build on violations)",
	Long: `Run the gap analysis and enforce per-kind finding limits.

Designed for CI/CD integration - fails with a non-zero exit code when the
count of any checked gap kind exceeds its limit. Kinds omitted from the
thresholds string are reported but never fail the gate.

Default gate: zero uncovered requirements allowed.

Use cases:
- Block a staffing plan that leaves critical requirements uncovered
- Keep single-point-of-failure skills below an agreed ceiling
- Re-check coverage automatically when team or project documents change

Examples:
  # Fail when any requirement is uncovered (the default gate)
  teamfit check --team team.yaml --project project.yaml

  # Custom limits per kind
  teamfit check -t team.yaml -p project.yaml --thresholds "uncovered:0,spof:2,underleveled:5"

  # Only police single points of failure
  teamfit check -t team.yaml -p project.yaml --thresholds "spof:0"`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// Gate evaluation is done in ExecuteCheck
		if err := core.ExecuteCheck(rootCtx, cfg); err != nil {
			contract.LogFatal("Policy check failed", err)
		}
	},
}
