// ABOUTME: Shared test fixtures and fact-table write tests.
// ABOUTME: Uses temp-dir SQLite databases, one per test.
package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/devstats/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "devstats-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "devstats.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// seedYears inserts one deterministic row per year into all four fact
// tables. Values are simple functions of the year so tests can compute
// expectations directly.
func seedYears(t *testing.T, db *DB, years ...int) {
	t.Helper()

	for i, y := range years {
		n := float64(i + 1)
		if err := db.UpsertEconomic(&models.Economic{
			Year: y, GDPGrowth: n, GDPPerCapita: 500 + 10*n, InflationRate: 5 + n/10,
		}); err != nil {
			t.Fatalf("UpsertEconomic(%d) failed: %v", y, err)
		}
		if err := db.UpsertDemographic(&models.Demographic{
			Year: y, TotalPopulation: 8_000_000 + int64(y)*1000, UrbanPopulationPercent: 15 + n, LifeExpectancy: 50 + n,
		}); err != nil {
			t.Fatalf("UpsertDemographic(%d) failed: %v", y, err)
		}
		if err := db.UpsertEducation(&models.Education{
			Year: y, PrimaryEnrollmentRate: 90 + n/10, SecondaryEnrollmentRate: 20 + n, LiteracyRate: 60 + n,
		}); err != nil {
			t.Fatalf("UpsertEducation(%d) failed: %v", y, err)
		}
		if err := db.UpsertHealth(&models.Health{
			Year: y, InfantMortalityRate: 100 - 2*n, HealthExpenditurePercentGDP: 6 + n/10, HospitalBedsPer1000: 1.5,
		}); err != nil {
			t.Fatalf("UpsertHealth(%d) failed: %v", y, err)
		}
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestUpsertReplacesExistingYear(t *testing.T) {
	db := setupTestDB(t)

	if err := db.UpsertEconomic(&models.Economic{Year: 2010, GDPGrowth: 7.2}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if err := db.UpsertEconomic(&models.Economic{Year: 2010, GDPGrowth: 8.1}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	rows, err := db.EconomicTrend()
	if err != nil {
		t.Fatalf("EconomicTrend failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row after duplicate-year upsert, got %d", len(rows))
	}
	if !almostEqual(rows[0].GDPGrowth, 8.1) {
		t.Errorf("Expected upsert to replace value, got %v", rows[0].GDPGrowth)
	}
}

func TestReplaceAll(t *testing.T) {
	db := setupTestDB(t)
	seedYears(t, db, 2000, 2001, 2002)

	ds := &Dataset{
		Economic:    []*models.Economic{{Year: 2020, GDPGrowth: 3.3}},
		Demographic: []*models.Demographic{{Year: 2020, TotalPopulation: 13_000_000}},
		Education:   []*models.Education{{Year: 2020, LiteracyRate: 78}},
		Health:      []*models.Health{{Year: 2020, InfantMortalityRate: 30}},
	}
	if err := db.ReplaceAll(ds); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	counts, err := db.RowCounts()
	if err != nil {
		t.Fatalf("RowCounts failed: %v", err)
	}
	for _, tbl := range models.AllTables {
		if counts[tbl] != 1 {
			t.Errorf("Expected 1 row in %s after replace, got %d", tbl, counts[tbl])
		}
	}

	years, err := db.Years()
	if err != nil {
		t.Fatalf("Years failed: %v", err)
	}
	if len(years) != 1 || years[0] != 2020 {
		t.Errorf("Expected years [2020], got %v", years)
	}
}

func TestYearsUnionAcrossTables(t *testing.T) {
	db := setupTestDB(t)

	// 2005 only in economic, 2006 only in health
	if err := db.UpsertEconomic(&models.Economic{Year: 2005}); err != nil {
		t.Fatalf("UpsertEconomic failed: %v", err)
	}
	if err := db.UpsertHealth(&models.Health{Year: 2006}); err != nil {
		t.Fatalf("UpsertHealth failed: %v", err)
	}

	years, err := db.Years()
	if err != nil {
		t.Fatalf("Years failed: %v", err)
	}
	if len(years) != 2 || years[0] != 2005 || years[1] != 2006 {
		t.Errorf("Expected years [2005 2006], got %v", years)
	}
}

func TestOpenCreatesParentDir(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "devstats-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "nested", "dir", "devstats.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open with nested path failed: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("Database file not created: %v", err)
	}
}
