package cmd

import (
	"github.com/spf13/cobra"

	"github.com/teamfit/teamfit/core"
	"github.com/teamfit/teamfit/internal/contract"
)

// assignCmd prints the recommended assignments only.
var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Show recommended assignments per work stream.",
	Long: `Allocate members to work streams and print the staffing recommendation.

Streams are staffed in priority order: streams with critical requirements
first, then by descending total requirement weight. Candidates fill each
stream's capacity by descending fit score; a stream nobody fits stays empty
and surfaces as a gap. Each pick carries a rationale naming the requirements
that drove the match.

Examples:
  # Default staffing (members may serve several streams)
  teamfit assign --team team.yaml --project project.yaml

  # Single-project staffing
  teamfit assign -t team.yaml -p project.yaml --exclusive

  # Staff two people per stream unless the stream says otherwise
  teamfit assign -t team.yaml -p project.yaml --capacity 2`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAssignments(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run assignment analysis", err)
		}
	},
}
