// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/devstats/internal/models"
	"github.com/harperreed/devstats/internal/storage"
)

// setupTestDB creates a test database in a temp directory.
func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "devstats-mcp-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "devstats.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// seedTestData inserts three joined years into all four fact tables.
func seedTestData(t *testing.T, db *storage.DB) {
	t.Helper()

	for i, y := range []int{2000, 2001, 2002} {
		n := float64(i + 1)
		if err := db.UpsertEconomic(&models.Economic{Year: y, GDPGrowth: 5 + n}); err != nil {
			t.Fatalf("UpsertEconomic failed: %v", err)
		}
		if err := db.UpsertDemographic(&models.Demographic{Year: y, TotalPopulation: 8_000_000, UrbanPopulationPercent: 15 + n}); err != nil {
			t.Fatalf("UpsertDemographic failed: %v", err)
		}
		if err := db.UpsertEducation(&models.Education{Year: y, SecondaryEnrollmentRate: 20 + n}); err != nil {
			t.Fatalf("UpsertEducation failed: %v", err)
		}
		if err := db.UpsertHealth(&models.Health{Year: y, InfantMortalityRate: 100 - n}); err != nil {
			t.Fatalf("UpsertHealth failed: %v", err)
		}
	}
}

func TestNewServer(t *testing.T) {
	db := setupTestDB(t)

	server, err := NewServer(db)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	if server == nil {
		t.Fatal("Expected non-nil server")
	}
	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.repo == nil {
		t.Error("Expected non-nil repo")
	}
}

func TestHandleGetTrend(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	server, err := NewServer(db)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	for _, table := range []string{"economic", "demographic", "education", "health", "growth"} {
		t.Run(table, func(t *testing.T) {
			_, out, err := server.handleGetTrend(context.Background(), nil, getTrendInput{Table: table})
			if err != nil {
				t.Fatalf("handleGetTrend(%s) failed: %v", table, err)
			}
			if out == nil {
				t.Errorf("Expected rows for table %s", table)
			}
		})
	}
}

func TestHandleGetTrendUnknownTable(t *testing.T) {
	db := setupTestDB(t)
	server, err := NewServer(db)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	_, _, err = server.handleGetTrend(context.Background(), nil, getTrendInput{Table: "finance"})
	if err == nil {
		t.Error("Expected error for unknown table")
	}
}

func TestHandleMovingAverages(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	server, err := NewServer(db)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	_, out, err := server.handleMovingAverages(context.Background(), nil, emptyInput{})
	if err != nil {
		t.Fatalf("handleMovingAverages failed: %v", err)
	}
	rows, ok := out.([]*storage.MovingAverageRow)
	if !ok {
		t.Fatalf("Unexpected output type %T", out)
	}
	if len(rows) != 3 {
		t.Errorf("Expected 3 rows, got %d", len(rows))
	}
}

func TestHandleYearOverYearChanges(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	server, err := NewServer(db)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	_, out, err := server.handleYearOverYearChanges(context.Background(), nil, changesInput{})
	if err != nil {
		t.Fatalf("handleYearOverYearChanges failed: %v", err)
	}
	rows, ok := out.([]*storage.ChangeRow)
	if !ok {
		t.Fatalf("Unexpected output type %T", out)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].GDPGrowthChange != nil {
		t.Error("Expected nil delta for the first year")
	}

	// Deltas in the seed data never breach thresholds
	_, out, err = server.handleYearOverYearChanges(context.Background(), nil, changesInput{SignificantOnly: true})
	if err != nil {
		t.Fatalf("handleYearOverYearChanges significant failed: %v", err)
	}
	if rows := out.([]*storage.ChangeRow); len(rows) != 0 {
		t.Errorf("Expected no significant years, got %d", len(rows))
	}
}

func TestHandleDatasetStatus(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	server, err := NewServer(db)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	_, out, err := server.handleDatasetStatus(context.Background(), nil, emptyInput{})
	if err != nil {
		t.Fatalf("handleDatasetStatus failed: %v", err)
	}
	if out.Counts["economic"] != 3 {
		t.Errorf("Expected 3 economic rows, got %d", out.Counts["economic"])
	}
	if out.FirstYear != 2000 || out.LastYear != 2002 {
		t.Errorf("Expected year range 2000-2002, got %d-%d", out.FirstYear, out.LastYear)
	}
}

func TestHandleDatasetStatusEmpty(t *testing.T) {
	db := setupTestDB(t)

	server, err := NewServer(db)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	_, out, err := server.handleDatasetStatus(context.Background(), nil, emptyInput{})
	if err != nil {
		t.Fatalf("handleDatasetStatus failed: %v", err)
	}
	if !strings.Contains(out.Message, "empty") {
		t.Errorf("Expected empty-dataset message, got %q", out.Message)
	}
}

func TestResourceHandlers(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	server, err := NewServer(db)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	t.Run("summary", func(t *testing.T) {
		res, err := server.handleSummaryResource(context.Background(), nil)
		if err != nil {
			t.Fatalf("handleSummaryResource failed: %v", err)
		}
		if len(res.Contents) != 1 || res.Contents[0].URI != "indicators://summary" {
			t.Errorf("Unexpected resource contents: %+v", res.Contents)
		}
		for indicator, unit := range models.IndicatorUnits {
			if !strings.Contains(res.Contents[0].Text, indicator) || !strings.Contains(res.Contents[0].Text, unit) {
				t.Errorf("Expected summary JSON to list %s (%s)", indicator, unit)
			}
		}
	})

	t.Run("overview", func(t *testing.T) {
		res, err := server.handleOverviewResource(context.Background(), nil)
		if err != nil {
			t.Fatalf("handleOverviewResource failed: %v", err)
		}
		if !strings.Contains(res.Contents[0].Text, "gdp_growth") {
			t.Error("Expected overview JSON to contain gdp_growth")
		}
	})

	t.Run("education-health", func(t *testing.T) {
		res, err := server.handleEducationHealthResource(context.Background(), nil)
		if err != nil {
			t.Fatalf("handleEducationHealthResource failed: %v", err)
		}
		if !strings.Contains(res.Contents[0].Text, "infant_mortality_rate") {
			t.Error("Expected summary JSON to contain infant_mortality_rate")
		}
	})
}
