// ABOUTME: Tests for trend queries.
// ABOUTME: Verifies row counts, ascending year order, and inner-join drops.
package storage

import (
	"testing"

	"github.com/harperreed/devstats/internal/models"
)

func TestTrendQueriesReturnAllRowsAscending(t *testing.T) {
	db := setupTestDB(t)
	years := []int{2000, 2001, 2002, 2003, 2004}
	seedYears(t, db, years...)

	t.Run("economic", func(t *testing.T) {
		rows, err := db.EconomicTrend()
		if err != nil {
			t.Fatalf("EconomicTrend failed: %v", err)
		}
		if len(rows) != len(years) {
			t.Fatalf("Expected %d rows, got %d", len(years), len(rows))
		}
		for i, r := range rows {
			if r.Year != years[i] {
				t.Errorf("Row %d: expected year %d, got %d", i, years[i], r.Year)
			}
		}
	})

	t.Run("demographic", func(t *testing.T) {
		rows, err := db.DemographicTrend()
		if err != nil {
			t.Fatalf("DemographicTrend failed: %v", err)
		}
		if len(rows) != len(years) {
			t.Fatalf("Expected %d rows, got %d", len(years), len(rows))
		}
		for i := 1; i < len(rows); i++ {
			if rows[i].Year <= rows[i-1].Year {
				t.Errorf("Years not strictly ascending at index %d: %d then %d", i, rows[i-1].Year, rows[i].Year)
			}
		}
	})

	t.Run("education", func(t *testing.T) {
		rows, err := db.EducationTrend()
		if err != nil {
			t.Fatalf("EducationTrend failed: %v", err)
		}
		if len(rows) != len(years) {
			t.Fatalf("Expected %d rows, got %d", len(years), len(rows))
		}
	})

	t.Run("health", func(t *testing.T) {
		rows, err := db.HealthTrend()
		if err != nil {
			t.Fatalf("HealthTrend failed: %v", err)
		}
		if len(rows) != len(years) {
			t.Fatalf("Expected %d rows, got %d", len(years), len(rows))
		}
	})
}

func TestGrowthTrendDropsUnmatchedYears(t *testing.T) {
	db := setupTestDB(t)
	seedYears(t, db, 2000, 2001)

	// 2002 exists only in the economic table
	if err := db.UpsertEconomic(&models.Economic{Year: 2002, GDPGrowth: 9.9}); err != nil {
		t.Fatalf("UpsertEconomic failed: %v", err)
	}

	rows, err := db.GrowthTrend()
	if err != nil {
		t.Fatalf("GrowthTrend failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 joined rows (2002 dropped), got %d", len(rows))
	}
	for _, r := range rows {
		if r.Year == 2002 {
			t.Error("Year 2002 should have been dropped by the inner join")
		}
	}
}

func TestGrowthTrendJoinsColumns(t *testing.T) {
	db := setupTestDB(t)
	seedYears(t, db, 2010)

	rows, err := db.GrowthTrend()
	if err != nil {
		t.Fatalf("GrowthTrend failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}

	r := rows[0]
	if r.Year != 2010 {
		t.Errorf("Expected year 2010, got %d", r.Year)
	}
	if !almostEqual(r.GDPGrowth, 1) {
		t.Errorf("Unexpected gdp_growth: %v", r.GDPGrowth)
	}
	if r.TotalPopulation != 8_000_000+2010*1000 {
		t.Errorf("Unexpected total_population: %v", r.TotalPopulation)
	}
	if !almostEqual(r.LifeExpectancy, 51) {
		t.Errorf("Unexpected life_expectancy: %v", r.LifeExpectancy)
	}
}
