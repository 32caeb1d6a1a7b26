// Package cmd defines the command-line interface for teamfit.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teamfit/teamfit/internal/contract"
	"github.com/teamfit/teamfit/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(gapsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("team", "t", "", "Path to a team document or a directory of team documents")
	rootCmd.PersistentFlags().StringP("project", "p", "", "Path to a project document or a directory of project documents")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("workers", schema.DefaultOptions().Workers, "Number of concurrent scoring workers")
	rootCmd.PersistentFlags().Bool("exclusive", false, "Assign each member to at most one work stream")
	rootCmd.PersistentFlags().Float64("penalty", schema.DefaultCriticalMissPenalty, "Score multiplier per missed critical requirement, in (0,1]")
	rootCmd.PersistentFlags().Float64("confidence", schema.DefaultConfidenceMultiplier, "Minimum-level multiplier for confident coverage, >= 1")
	rootCmd.PersistentFlags().Int("capacity", schema.DefaultStreamCapacity, "Default staffing capacity for streams that declare none")
	rootCmd.PersistentFlags().Bool("strict", false, "Treat empty team or project inputs as a hard failure")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log stage diagnostics to stderr")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of scoresCmd to Viper
	scoresCmd.Flags().String("member", "", "Only show scores for this member id")
	scoresCmd.Flags().String("stream", "", "Only show scores for this stream id")
	if err := viper.BindPFlags(scoresCmd.Flags()); err != nil {
		contract.LogFatal("Error binding scores flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().String("thresholds", "", "Gap limits for CI/CD gating (format: 'uncovered:0,spof:2,underleveled:5')")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}
}
