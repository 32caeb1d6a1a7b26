package cmd

import (
	"github.com/spf13/cobra"

	"github.com/teamfit/teamfit/core"
	"github.com/teamfit/teamfit/internal/contract"
)

// analyzeCmd runs the full analysis pipeline and prints the combined report.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis: fit scores, assignments and gaps.",
	Long: `Score every team member against every work stream and print the combined report.

Consumes extracted team and project documents (JSON or YAML) and computes:
- A member-by-stream fit-score matrix with per-requirement drivers
- Recommended assignments per work stream under capacity constraints
- Coverage gaps: uncovered requirements, single points of failure, under-leveled coverage
- Team strengths that no current stream takes advantage of

Examples:
  # Full report from single documents
  teamfit analyze --team team.yaml --project project.yaml

  # Merge a folder of extracted profiles, one member per stream only
  teamfit analyze --team ./profiles --project project.json --exclusive

  # Export everything as JSON for downstream templating
  teamfit analyze -t team.yaml -p project.yaml --output json --output-file report.json

  # Harsher penalty for missing critical skills
  teamfit analyze -t team.yaml -p project.yaml --penalty 0.3`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run analysis", err)
		}
	},
}
