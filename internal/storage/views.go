// ABOUTME: Read accessors for the three reporting views.
// ABOUTME: Views are re-evaluated on each query, never cached.
package storage

import "fmt"

// EconomicOverviewRow is one row of the economic_overview view.
type EconomicOverviewRow struct {
	Year            int     `json:"year"`
	GDPGrowth       float64 `json:"gdp_growth"`
	GDPPerCapita    float64 `json:"gdp_per_capita"`
	InflationRate   float64 `json:"inflation_rate"`
	TotalPopulation int64   `json:"total_population"`
	LifeExpectancy  float64 `json:"life_expectancy"`
}

// EconomicOverview queries the economic_overview view, ordered by year.
func (d *DB) EconomicOverview() ([]*EconomicOverviewRow, error) {
	query := `
		SELECT year, gdp_growth, gdp_per_capita, inflation_rate, total_population, life_expectancy
		FROM economic_overview
		ORDER BY year
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("economic overview: %w", err)
	}
	defer rows.Close()

	var out []*EconomicOverviewRow
	for rows.Next() {
		var r EconomicOverviewRow
		if err := rows.Scan(&r.Year, &r.GDPGrowth, &r.GDPPerCapita, &r.InflationRate, &r.TotalPopulation, &r.LifeExpectancy); err != nil {
			return nil, fmt.Errorf("scan economic overview row: %w", err)
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}

// EducationHealthRow is one row of the education_health_summary view.
type EducationHealthRow struct {
	Year                        int     `json:"year"`
	PrimaryEnrollmentRate       float64 `json:"primary_enrollment_rate"`
	SecondaryEnrollmentRate     float64 `json:"secondary_enrollment_rate"`
	LiteracyRate                float64 `json:"literacy_rate"`
	InfantMortalityRate         float64 `json:"infant_mortality_rate"`
	HealthExpenditurePercentGDP float64 `json:"health_expenditure_percent_gdp"`
}

// EducationHealthSummary queries the education_health_summary view,
// ordered by year.
func (d *DB) EducationHealthSummary() ([]*EducationHealthRow, error) {
	query := `
		SELECT year, primary_enrollment_rate, secondary_enrollment_rate, literacy_rate,
		       infant_mortality_rate, health_expenditure_percent_gdp
		FROM education_health_summary
		ORDER BY year
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("education health summary: %w", err)
	}
	defer rows.Close()

	var out []*EducationHealthRow
	for rows.Next() {
		var r EducationHealthRow
		if err := rows.Scan(&r.Year, &r.PrimaryEnrollmentRate, &r.SecondaryEnrollmentRate, &r.LiteracyRate,
			&r.InfantMortalityRate, &r.HealthExpenditurePercentGDP); err != nil {
			return nil, fmt.Errorf("scan education health row: %w", err)
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}

// PopulationTrendRow is one row of the population_trends view.
type PopulationTrendRow struct {
	Year                   int     `json:"year"`
	TotalPopulation        int64   `json:"total_population"`
	UrbanPopulationPercent float64 `json:"urban_population_percent"`
}

// PopulationTrends queries the population_trends view, ordered by year.
func (d *DB) PopulationTrends() ([]*PopulationTrendRow, error) {
	query := `
		SELECT year, total_population, urban_population_percent
		FROM population_trends
		ORDER BY year
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("population trends: %w", err)
	}
	defer rows.Close()

	var out []*PopulationTrendRow
	for rows.Next() {
		var r PopulationTrendRow
		if err := rows.Scan(&r.Year, &r.TotalPopulation, &r.UrbanPopulationPercent); err != nil {
			return nil, fmt.Errorf("scan population trend row: %w", err)
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}
