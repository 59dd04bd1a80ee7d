// ABOUTME: Fact row models for Rwanda development indicators.
// ABOUTME: One struct per fact table, keyed by year, plus table/indicator metadata.
package models

// Table identifies one of the four fact tables.
type Table string

const (
	TableEconomic    Table = "economic"
	TableDemographic Table = "demographic"
	TableEducation   Table = "education"
	TableHealth      Table = "health"
)

// AllTables lists the fact tables in canonical order.
var AllTables = []Table{TableEconomic, TableDemographic, TableEducation, TableHealth}

// IsValidTable checks if a string names a fact table.
func IsValidTable(s string) bool {
	for _, tbl := range AllTables {
		if string(tbl) == s {
			return true
		}
	}
	return false
}

// Reference series span for the bundled dataset. Loads are not
// restricted to this range; it documents the curated data only.
const (
	FirstYear = 2000
	LastYear  = 2023
)

// IndicatorUnits maps indicator column names to display units.
var IndicatorUnits = map[string]string{
	"gdp_growth":                     "%",
	"gdp_per_capita":                 "USD",
	"inflation_rate":                 "%",
	"total_population":               "people",
	"urban_population_percent":       "%",
	"life_expectancy":                "years",
	"primary_enrollment_rate":        "%",
	"secondary_enrollment_rate":      "%",
	"literacy_rate":                  "%",
	"infant_mortality_rate":          "per 1000 births",
	"health_expenditure_percent_gdp": "%",
	"hospital_beds_per_1000":         "per 1000 people",
}

// Economic holds one year of economic indicators.
type Economic struct {
	Year          int     `json:"year" yaml:"year"`
	GDPGrowth     float64 `json:"gdp_growth" yaml:"gdp_growth"`
	GDPPerCapita  float64 `json:"gdp_per_capita" yaml:"gdp_per_capita"`
	InflationRate float64 `json:"inflation_rate" yaml:"inflation_rate"`
}

// Demographic holds one year of demographic indicators.
type Demographic struct {
	Year                   int     `json:"year" yaml:"year"`
	TotalPopulation        int64   `json:"total_population" yaml:"total_population"`
	UrbanPopulationPercent float64 `json:"urban_population_percent" yaml:"urban_population_percent"`
	LifeExpectancy         float64 `json:"life_expectancy" yaml:"life_expectancy"`
}

// Education holds one year of education indicators.
type Education struct {
	Year                    int     `json:"year" yaml:"year"`
	PrimaryEnrollmentRate   float64 `json:"primary_enrollment_rate" yaml:"primary_enrollment_rate"`
	SecondaryEnrollmentRate float64 `json:"secondary_enrollment_rate" yaml:"secondary_enrollment_rate"`
	LiteracyRate            float64 `json:"literacy_rate" yaml:"literacy_rate"`
}

// Health holds one year of health indicators.
type Health struct {
	Year                        int     `json:"year" yaml:"year"`
	InfantMortalityRate         float64 `json:"infant_mortality_rate" yaml:"infant_mortality_rate"`
	HealthExpenditurePercentGDP float64 `json:"health_expenditure_percent_gdp" yaml:"health_expenditure_percent_gdp"`
	HospitalBedsPer1000         float64 `json:"hospital_beds_per_1000" yaml:"hospital_beds_per_1000"`
}
