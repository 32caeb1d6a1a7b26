// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/teamfit/teamfit/internal/contract"
)

// NewMCPServer initializes and configures the Teamfit MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Teamfit Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: analyze_team ---
	s.AddTool(mcp.NewTool("analyze_team",
		mcp.WithDescription("Run the full skill-fit analysis: score matrix, recommended assignments and gap findings."),
		mcp.WithString("team_file", mcp.Description("Path to a team document or directory of extracted team documents (JSON/YAML)."), mcp.Required()),
		mcp.WithString("project_file", mcp.Description("Path to a project document or directory of extracted project documents (JSON/YAML)."), mcp.Required()),
		mcp.WithBoolean("exclusive", mcp.Description("Assign each member to at most one work stream.")),
		mcp.WithBoolean("strict", mcp.Description("Treat empty team or project inputs as a hard failure.")),
	), h.handleAnalyzeTeam)

	// --- 2. Tool: score_matrix ---
	s.AddTool(mcp.NewTool("score_matrix",
		mcp.WithDescription("Compute the member-by-stream fit-score matrix with per-requirement drivers."),
		mcp.WithString("team_file", mcp.Description("Path to a team document or directory."), mcp.Required()),
		mcp.WithString("project_file", mcp.Description("Path to a project document or directory."), mcp.Required()),
		mcp.WithString("member", mcp.Description("Only return scores for this member id.")),
		mcp.WithString("stream", mcp.Description("Only return scores for this stream id.")),
	), h.handleScoreMatrix)

	// --- 3. Tool: recommend_assignments ---
	s.AddTool(mcp.NewTool("recommend_assignments",
		mcp.WithDescription("Recommend a capacity-bounded staffing per work stream, with rationale per pick."),
		mcp.WithString("team_file", mcp.Description("Path to a team document or directory."), mcp.Required()),
		mcp.WithString("project_file", mcp.Description("Path to a project document or directory."), mcp.Required()),
		mcp.WithBoolean("exclusive", mcp.Description("Assign each member to at most one work stream.")),
		mcp.WithNumber("capacity", mcp.Description("Default staffing capacity for streams that declare none.")),
	), h.handleRecommendAssignments)

	// --- 4. Tool: find_gaps ---
	s.AddTool(mcp.NewTool("find_gaps",
		mcp.WithDescription("Detect uncovered requirements, single-point-of-failure skills and under-leveled coverage."),
		mcp.WithString("team_file", mcp.Description("Path to a team document or directory."), mcp.Required()),
		mcp.WithString("project_file", mcp.Description("Path to a project document or directory."), mcp.Required()),
		mcp.WithNumber("confidence", mcp.Description("Minimum-level multiplier for confident coverage (>= 1).")),
	), h.handleFindGaps)

	return s
}

// StartMCPServer starts the Teamfit MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
