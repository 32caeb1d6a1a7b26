// Package core has core logic for scoring, allocation and gap analysis.
package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/teamfit/teamfit/internal/contract"
	"github.com/teamfit/teamfit/internal/extract"
	"github.com/teamfit/teamfit/internal/outwriter"
	"github.com/teamfit/teamfit/schema"
)

// ExecutorFunc defines the function signature for executing different report modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// loadAndRun extracts both input documents and runs the full analysis.
// Warnings surface on stderr so they reach the user even when the report
// itself goes to a file.
func loadAndRun(ctx context.Context, cfg *contract.Config) (*schema.AnalysisResult, error) {
	if cfg.TeamPath == "" || cfg.ProjectPath == "" {
		return nil, fmt.Errorf("both --team and --project inputs are required")
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	loader := extract.NewLoader(schema.NewNormalizer(cfg.Synonyms))

	loadStart := time.Now()
	roster, err := loader.LoadRoster(ctx, cfg.TeamPath)
	if err != nil {
		return nil, err
	}
	project, err := loader.LoadProject(ctx, cfg.ProjectPath)
	if err != nil {
		return nil, err
	}
	log.Debug("inputs extracted",
		zap.Int("members", len(roster.Members)),
		zap.Int("streams", len(project.Streams)),
		zap.Duration("elapsed", time.Since(loadStart)))

	runStart := time.Now()
	result, err := Run(roster, project, cfg.Options)
	if err != nil {
		return nil, err
	}
	log.Debug("analysis complete",
		zap.String("run", result.RunID),
		zap.Int("findings", len(result.Findings)),
		zap.Duration("elapsed", time.Since(runStart)))

	for _, w := range result.Warnings {
		contract.LogWarning(w)
	}
	return result, nil
}

// GetAnalysisResults loads the configured inputs and returns the raw analysis
// result for callers that render their own output, such as the MCP tools.
func GetAnalysisResults(ctx context.Context, cfg *contract.Config) (*schema.AnalysisResult, error) {
	return loadAndRun(ctx, cfg)
}

// ExecuteAnalyze runs the full pipeline and prints the combined report:
// score matrix, recommended assignments and gap findings.
// It serves as the main entry point for the 'analyze' mode.
func ExecuteAnalyze(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	result, err := loadAndRun(ctx, cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintAnalysisResults(result, cfg, duration)
}

// ExecuteScores runs the pipeline and prints only the fit-score matrix.
func ExecuteScores(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	result, err := loadAndRun(ctx, cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintScoreResults(result, cfg, duration)
}

// ExecuteAssignments runs the pipeline and prints only the recommended
// assignments.
func ExecuteAssignments(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	result, err := loadAndRun(ctx, cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintAssignmentResults(result, cfg, duration)
}

// ExecuteGaps runs the pipeline and prints gap findings plus team strengths.
func ExecuteGaps(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	result, err := loadAndRun(ctx, cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintGapResults(result, cfg, duration)
}

// ExecuteCheck runs the check command for CI/CD gating. It analyzes both
// inputs, compares gap-finding counts against the configured limits, and
// exits non-zero when any limit is exceeded.
func ExecuteCheck(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	result, err := loadAndRun(ctx, cfg)
	if err != nil {
		return err
	}

	gate := EvaluateGate(result.Findings, cfg.GateLimits)
	printCheckResult(&gate, time.Since(start))

	if !gate.Passed {
		fmt.Printf("%d violation(s) found\n", len(gate.Violations))
		os.Exit(1)
	}
	return nil
}

// ExecuteModel displays the scoring model: formula, option values, tier
// mapping and the active synonym table. This is a static display that does
// not require input documents.
func ExecuteModel(_ context.Context, cfg *contract.Config) error {
	return outwriter.PrintModelDefinitions(cfg)
}
