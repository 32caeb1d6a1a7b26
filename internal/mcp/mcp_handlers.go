package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teamfit/teamfit/core"
	"github.com/teamfit/teamfit/internal/contract"
	"github.com/teamfit/teamfit/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// requestConfig clones the base config and applies the document paths shared
// by every tool. Both paths are required per request so one server can serve
// many teams and projects.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()

	teamFile := request.GetString("team_file", "")
	if teamFile == "" {
		return nil, fmt.Errorf("team_file is required")
	}
	projectFile := request.GetString("project_file", "")
	if projectFile == "" {
		return nil, fmt.Errorf("project_file is required")
	}

	cfg.TeamPath = teamFile
	cfg.ProjectPath = projectFile
	return cfg, nil
}

func (h *toolHandler) handleAnalyzeTeam(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cfg.Options.ExclusiveAssignment = request.GetBool("exclusive", cfg.Options.ExclusiveAssignment)
	cfg.Options.Strict = request.GetBool("strict", cfg.Options.Strict)

	result, err := core.GetAnalysisResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleScoreMatrix(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cfg.Member = request.GetString("member", "")
	cfg.Stream = request.GetString("stream", "")

	result, err := core.GetAnalysisResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(filterMatrixCells(&result.Matrix, cfg), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRecommendAssignments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cfg.Options.ExclusiveAssignment = request.GetBool("exclusive", cfg.Options.ExclusiveAssignment)
	if c := request.GetInt("capacity", 0); c > 0 {
		cfg.Options.DefaultCapacity = c
	}

	result, err := core.GetAnalysisResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("allocation failed: %v", err)), nil
	}

	enriched := schema.EnrichAssignments(result.Assignments)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleFindGaps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if c := request.GetFloat("confidence", 0); c >= 1 {
		cfg.Options.ConfidenceMultiplier = c
	}

	result, err := core.GetAnalysisResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("gap analysis failed: %v", err)), nil
	}

	report := struct {
		Findings  []schema.EnrichedGapFinding `json:"findings"`
		Strengths []schema.Strength           `json:"strengths,omitempty"`
	}{
		Findings:  schema.EnrichFindings(result.Findings),
		Strengths: result.Strengths,
	}
	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// filterMatrixCells flattens the matrix honoring the member and stream
// filters, preserving matrix order.
func filterMatrixCells(matrix *schema.ScoreMatrix, cfg *contract.Config) []schema.ScoreCell {
	cells := make([]schema.ScoreCell, 0, len(matrix.MemberIDs)*len(matrix.StreamIDs))
	for _, row := range matrix.Rows {
		for _, cell := range row {
			if cfg.Member != "" && cell.MemberID != cfg.Member {
				continue
			}
			if cfg.Stream != "" && cell.StreamID != cfg.Stream {
				continue
			}
			cells = append(cells, cell)
		}
	}
	return cells
}
