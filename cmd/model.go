package cmd

import (
	"github.com/spf13/cobra"

	"github.com/teamfit/teamfit/core"
	"github.com/teamfit/teamfit/internal/contract"
)

// modelCmd displays the scoring model without needing any input documents.
var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Show the scoring model, option values and synonym table.",
	Long: `Display how teamfit turns skills and requirements into scores.

Shows:
- The fit-score formula and the critical-miss penalty
- Active option values (penalty, confidence, capacity, exclusivity)
- The proficiency tier mapping (novice/proficient/expert)
- Criticality tiers and gap severity meanings
- The active skill synonym table, including config-file extensions

Useful for:
- Understanding why a member scored the way they did
- Verifying config-file options and synonyms are picked up
- Documenting the model alongside a generated report

Examples:
  # Human-readable model card
  teamfit model

  # Machine-readable, for embedding in reports
  teamfit model --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteModel(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot show model", err)
		}
	},
}
