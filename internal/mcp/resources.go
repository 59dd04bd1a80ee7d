// ABOUTME: MCP resource implementations for the indicators store.
// ABOUTME: Provides indicators://summary, indicators://overview, and indicators://education-health.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/devstats/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// indicators://summary - dataset coverage plus the latest joined year
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "indicators://summary",
		Name:        "Dataset Summary",
		Description: "Row counts, year coverage, and the most recent joined year",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// indicators://overview - the economic_overview view
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "indicators://overview",
		Name:        "Economic Overview",
		Description: "Economic indicators joined with population and life expectancy, per year",
		MIMEType:    "application/json",
	}, s.handleOverviewResource)

	// indicators://education-health - the education_health_summary view
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "indicators://education-health",
		Name:        "Education and Health Summary",
		Description: "Enrollment, literacy, infant mortality, and health spending per year",
		MIMEType:    "application/json",
	}, s.handleEducationHealthResource)
}

// Resource handlers

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	counts, err := s.repo.RowCounts()
	if err != nil {
		return nil, fmt.Errorf("failed to count rows: %w", err)
	}

	years, err := s.repo.Years()
	if err != nil {
		return nil, fmt.Errorf("failed to list years: %w", err)
	}

	overview, err := s.repo.EconomicOverview()
	if err != nil {
		return nil, fmt.Errorf("failed to read overview: %w", err)
	}

	result := map[string]interface{}{
		"counts": counts,
		"years":  years,
		"units":  models.IndicatorUnits,
	}
	if len(overview) > 0 {
		result["latest"] = overview[len(overview)-1]
	}

	return jsonResource("indicators://summary", result)
}

func (s *Server) handleOverviewResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	rows, err := s.repo.EconomicOverview()
	if err != nil {
		return nil, fmt.Errorf("failed to read overview: %w", err)
	}
	return jsonResource("indicators://overview", rows)
}

func (s *Server) handleEducationHealthResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	rows, err := s.repo.EducationHealthSummary()
	if err != nil {
		return nil, fmt.Errorf("failed to read education health summary: %w", err)
	}
	return jsonResource("indicators://education-health", rows)
}

// jsonResource marshals a value into a single JSON resource content.
func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
