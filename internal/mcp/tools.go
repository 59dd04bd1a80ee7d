// ABOUTME: MCP tool implementations for the analytic query catalog.
// ABOUTME: Exposes trends, moving averages, deltas, filters, and the pivot.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// get_trend
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_trend",
		Description: "Get all rows of one fact table (or the growth join), ordered by year",
	}, s.handleGetTrend)

	// moving_averages
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "moving_averages",
		Description: "Centered 5-year moving averages of four headline indicators",
	}, s.handleMovingAverages)

	// year_over_year_changes
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "year_over_year_changes",
		Description: "Year-over-year deltas for four indicators, optionally only significant years",
	}, s.handleYearOverYearChanges)

	// above_average_years
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "above_average_years",
		Description: "Years whose GDP growth strictly beat the series mean",
	}, s.handleAboveAverageYears)

	// education_pivot
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "education_pivot",
		Description: "Education indicators reassembled via unpivot/pivot round trip",
	}, s.handleEducationPivot)

	// dataset_status
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "dataset_status",
		Description: "Row counts per fact table and the covered year range",
	}, s.handleDatasetStatus)
}

// Tool input/output types

type getTrendInput struct {
	Table string `json:"table" jsonschema:"Fact table (economic, demographic, education, health) or 'growth' for the economic+demographic join"`
}

// emptyInput is the schema for tools that take no arguments.
type emptyInput struct{}

type changesInput struct {
	SignificantOnly bool `json:"significant_only,omitempty" jsonschema:"Only return years where at least one delta breaches its threshold"`
}

type statusOutput struct {
	Counts    map[string]int `json:"counts"`
	FirstYear int            `json:"first_year,omitempty"`
	LastYear  int            `json:"last_year,omitempty"`
	Message   string         `json:"message"`
}

// Tool handlers

func (s *Server) handleGetTrend(ctx context.Context, req *mcp.CallToolRequest, input getTrendInput) (*mcp.CallToolResult, any, error) {
	switch input.Table {
	case "economic":
		rows, err := s.repo.EconomicTrend()
		return nil, rows, err
	case "demographic":
		rows, err := s.repo.DemographicTrend()
		return nil, rows, err
	case "education":
		rows, err := s.repo.EducationTrend()
		return nil, rows, err
	case "health":
		rows, err := s.repo.HealthTrend()
		return nil, rows, err
	case "growth":
		rows, err := s.repo.GrowthTrend()
		return nil, rows, err
	default:
		return nil, nil, fmt.Errorf("unknown table: %s", input.Table)
	}
}

func (s *Server) handleMovingAverages(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	rows, err := s.repo.MovingAverages()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute moving averages: %w", err)
	}
	return nil, rows, nil
}

func (s *Server) handleYearOverYearChanges(ctx context.Context, req *mcp.CallToolRequest, input changesInput) (*mcp.CallToolResult, any, error) {
	if input.SignificantOnly {
		rows, err := s.repo.SignificantChanges()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to compute significant changes: %w", err)
		}
		return nil, rows, nil
	}

	rows, err := s.repo.YearOverYearChanges()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute year-over-year changes: %w", err)
	}
	return nil, rows, nil
}

func (s *Server) handleAboveAverageYears(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	rows, err := s.repo.AboveAverageGrowthYears()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute above-average years: %w", err)
	}
	return nil, rows, nil
}

func (s *Server) handleEducationPivot(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	rows, err := s.repo.EducationPivot()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute education pivot: %w", err)
	}
	return nil, rows, nil
}

func (s *Server) handleDatasetStatus(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, statusOutput, error) {
	counts, err := s.repo.RowCounts()
	if err != nil {
		return nil, statusOutput{}, fmt.Errorf("failed to count rows: %w", err)
	}

	out := statusOutput{Counts: make(map[string]int, len(counts))}
	total := 0
	for tbl, n := range counts {
		out.Counts[string(tbl)] = n
		total += n
	}

	years, err := s.repo.Years()
	if err != nil {
		return nil, statusOutput{}, fmt.Errorf("failed to list years: %w", err)
	}
	if len(years) > 0 {
		out.FirstYear = years[0]
		out.LastYear = years[len(years)-1]
	}

	if total == 0 {
		out.Message = "Dataset is empty. Load data with 'devstats seed' or 'devstats load'."
	} else {
		out.Message = fmt.Sprintf("%d fact rows across %d years", total, len(years))
	}
	return nil, out, nil
}
