// ABOUTME: Tests for indicator models and table metadata.
// ABOUTME: Verifies table name validation and unit coverage.
package models

import "testing"

func TestIsValidTable(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"economic", "economic", true},
		{"demographic", "demographic", true},
		{"education", "education", true},
		{"health", "health", true},
		{"unknown", "finance", false},
		{"empty", "", false},
		{"sql table name", "economic_indicators", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTable(tt.input); got != tt.want {
				t.Errorf("IsValidTable(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAllTablesOrder(t *testing.T) {
	if len(AllTables) != 4 {
		t.Fatalf("Expected 4 fact tables, got %d", len(AllTables))
	}
	if AllTables[0] != TableEconomic || AllTables[3] != TableHealth {
		t.Errorf("Unexpected table order: %v", AllTables)
	}
}

func TestIndicatorUnitsCoverAllColumns(t *testing.T) {
	columns := []string{
		"gdp_growth", "gdp_per_capita", "inflation_rate",
		"total_population", "urban_population_percent", "life_expectancy",
		"primary_enrollment_rate", "secondary_enrollment_rate", "literacy_rate",
		"infant_mortality_rate", "health_expenditure_percent_gdp", "hospital_beds_per_1000",
	}

	for _, col := range columns {
		if _, ok := IndicatorUnits[col]; !ok {
			t.Errorf("No unit defined for indicator column %q", col)
		}
	}
}
