package cmd

import (
	"github.com/spf13/cobra"

	"github.com/teamfit/teamfit/core"
	"github.com/teamfit/teamfit/internal/contract"
)

// scoresCmd prints the fit-score matrix only.
var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the member-by-stream fit-score matrix.",
	Long: `Rank every (member, stream) pair by fit score.

Each row shows the 0-100 fit score, its match-quality label, how many of the
stream's requirements the member fully covers, and the requirements that drove
the score. Useful for:
- Seeing who the realistic candidates for a stream are before committing
- Spotting members whose skills no stream is using well
- Feeding raw scores into your own staffing spreadsheet via CSV

Examples:
  # Top pairs across the whole matrix
  teamfit scores --team team.yaml --project project.yaml

  # One stream's candidate list
  teamfit scores -t team.yaml -p project.yaml --stream data-platform

  # One member's options, machine readable
  teamfit scores -t team.yaml -p project.yaml --member alice --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScores(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run score analysis", err)
		}
	},
}
