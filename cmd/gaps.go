package cmd

import (
	"github.com/spf13/cobra"

	"github.com/teamfit/teamfit/core"
	"github.com/teamfit/teamfit/internal/contract"
)

// gapsCmd prints gap findings and team strengths only.
var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Show coverage gaps and single points of failure.",
	Long: `Analyze required and critical requirements for coverage risk.

Findings come in three kinds, most severe first:
- uncovered: no team member meets the requirement's minimum level
- single-point-of-failure: exactly one member meets it
- under-leveled: coverage exists but the best assigned member sits below
  the confident-coverage threshold

Also lists team strengths: skills the team holds at depth that no current
work stream requires.

Examples:
  # Gap report for a project
  teamfit gaps --team team.yaml --project project.yaml

  # Stricter confident-coverage bar
  teamfit gaps -t team.yaml -p project.yaml --confidence 2.0

  # Export findings for tracking
  teamfit gaps -t team.yaml -p project.yaml --output csv --output-file gaps.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGaps(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run gap analysis", err)
		}
	},
}
