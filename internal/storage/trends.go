// ABOUTME: Trend queries over the fact tables.
// ABOUTME: Straight projections ordered ascending by year, one per table plus one join.
package storage

import (
	"fmt"

	"github.com/harperreed/devstats/internal/models"
)

// EconomicTrend returns all economic rows ordered ascending by year.
func (d *DB) EconomicTrend() ([]*models.Economic, error) {
	query := `
		SELECT year, gdp_growth, gdp_per_capita, inflation_rate
		FROM economic_indicators
		ORDER BY year
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("economic trend: %w", err)
	}
	defer rows.Close()

	var out []*models.Economic
	for rows.Next() {
		var e models.Economic
		if err := rows.Scan(&e.Year, &e.GDPGrowth, &e.GDPPerCapita, &e.InflationRate); err != nil {
			return nil, fmt.Errorf("scan economic row: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// DemographicTrend returns all demographic rows ordered ascending by year.
func (d *DB) DemographicTrend() ([]*models.Demographic, error) {
	query := `
		SELECT year, total_population, urban_population_percent, life_expectancy
		FROM demographic_indicators
		ORDER BY year
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("demographic trend: %w", err)
	}
	defer rows.Close()

	var out []*models.Demographic
	for rows.Next() {
		var m models.Demographic
		if err := rows.Scan(&m.Year, &m.TotalPopulation, &m.UrbanPopulationPercent, &m.LifeExpectancy); err != nil {
			return nil, fmt.Errorf("scan demographic row: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// EducationTrend returns all education rows ordered ascending by year.
func (d *DB) EducationTrend() ([]*models.Education, error) {
	query := `
		SELECT year, primary_enrollment_rate, secondary_enrollment_rate, literacy_rate
		FROM education_indicators
		ORDER BY year
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("education trend: %w", err)
	}
	defer rows.Close()

	var out []*models.Education
	for rows.Next() {
		var m models.Education
		if err := rows.Scan(&m.Year, &m.PrimaryEnrollmentRate, &m.SecondaryEnrollmentRate, &m.LiteracyRate); err != nil {
			return nil, fmt.Errorf("scan education row: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// HealthTrend returns all health rows ordered ascending by year.
func (d *DB) HealthTrend() ([]*models.Health, error) {
	query := `
		SELECT year, infant_mortality_rate, health_expenditure_percent_gdp, hospital_beds_per_1000
		FROM health_indicators
		ORDER BY year
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("health trend: %w", err)
	}
	defer rows.Close()

	var out []*models.Health
	for rows.Next() {
		var m models.Health
		if err := rows.Scan(&m.Year, &m.InfantMortalityRate, &m.HealthExpenditurePercentGDP, &m.HospitalBedsPer1000); err != nil {
			return nil, fmt.Errorf("scan health row: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// GrowthTrendRow pairs economic growth with population context for one year.
type GrowthTrendRow struct {
	Year            int     `json:"year"`
	GDPGrowth       float64 `json:"gdp_growth"`
	GDPPerCapita    float64 `json:"gdp_per_capita"`
	TotalPopulation int64   `json:"total_population"`
	LifeExpectancy  float64 `json:"life_expectancy"`
}

// GrowthTrend joins economic and demographic indicators per year,
// ordered ascending. Years absent from either table are dropped
// (inner join).
func (d *DB) GrowthTrend() ([]*GrowthTrendRow, error) {
	query := `
		SELECT e.year, e.gdp_growth, e.gdp_per_capita, d.total_population, d.life_expectancy
		FROM economic_indicators e
		JOIN demographic_indicators d ON d.year = e.year
		ORDER BY e.year
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("growth trend: %w", err)
	}
	defer rows.Close()

	var out []*GrowthTrendRow
	for rows.Next() {
		var r GrowthTrendRow
		if err := rows.Scan(&r.Year, &r.GDPGrowth, &r.GDPPerCapita, &r.TotalPopulation, &r.LifeExpectancy); err != nil {
			return nil, fmt.Errorf("scan growth trend row: %w", err)
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}
