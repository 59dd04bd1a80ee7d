// ABOUTME: Fact table write operations for SQLite storage.
// ABOUTME: Year-keyed upserts and bulk dataset replacement.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/devstats/internal/models"
)

// Dataset bundles the full contents of the four fact tables.
type Dataset struct {
	Economic    []*models.Economic    `json:"economic" yaml:"economic"`
	Demographic []*models.Demographic `json:"demographic" yaml:"demographic"`
	Education   []*models.Education   `json:"education" yaml:"education"`
	Health      []*models.Health      `json:"health" yaml:"health"`
}

// UpsertEconomic inserts or replaces one year of economic indicators.
func (d *DB) UpsertEconomic(e *models.Economic) error {
	query := `
		INSERT INTO economic_indicators (year, gdp_growth, gdp_per_capita, inflation_rate)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(year) DO UPDATE SET
			gdp_growth = excluded.gdp_growth,
			gdp_per_capita = excluded.gdp_per_capita,
			inflation_rate = excluded.inflation_rate
	`
	if _, err := d.db.Exec(query, e.Year, e.GDPGrowth, e.GDPPerCapita, e.InflationRate); err != nil {
		return fmt.Errorf("upsert economic year %d: %w", e.Year, err)
	}
	return nil
}

// UpsertDemographic inserts or replaces one year of demographic indicators.
func (d *DB) UpsertDemographic(m *models.Demographic) error {
	query := `
		INSERT INTO demographic_indicators (year, total_population, urban_population_percent, life_expectancy)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(year) DO UPDATE SET
			total_population = excluded.total_population,
			urban_population_percent = excluded.urban_population_percent,
			life_expectancy = excluded.life_expectancy
	`
	if _, err := d.db.Exec(query, m.Year, m.TotalPopulation, m.UrbanPopulationPercent, m.LifeExpectancy); err != nil {
		return fmt.Errorf("upsert demographic year %d: %w", m.Year, err)
	}
	return nil
}

// UpsertEducation inserts or replaces one year of education indicators.
func (d *DB) UpsertEducation(m *models.Education) error {
	query := `
		INSERT INTO education_indicators (year, primary_enrollment_rate, secondary_enrollment_rate, literacy_rate)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(year) DO UPDATE SET
			primary_enrollment_rate = excluded.primary_enrollment_rate,
			secondary_enrollment_rate = excluded.secondary_enrollment_rate,
			literacy_rate = excluded.literacy_rate
	`
	if _, err := d.db.Exec(query, m.Year, m.PrimaryEnrollmentRate, m.SecondaryEnrollmentRate, m.LiteracyRate); err != nil {
		return fmt.Errorf("upsert education year %d: %w", m.Year, err)
	}
	return nil
}

// UpsertHealth inserts or replaces one year of health indicators.
func (d *DB) UpsertHealth(m *models.Health) error {
	query := `
		INSERT INTO health_indicators (year, infant_mortality_rate, health_expenditure_percent_gdp, hospital_beds_per_1000)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(year) DO UPDATE SET
			infant_mortality_rate = excluded.infant_mortality_rate,
			health_expenditure_percent_gdp = excluded.health_expenditure_percent_gdp,
			hospital_beds_per_1000 = excluded.hospital_beds_per_1000
	`
	if _, err := d.db.Exec(query, m.Year, m.InfantMortalityRate, m.HealthExpenditurePercentGDP, m.HospitalBedsPer1000); err != nil {
		return fmt.Errorf("upsert health year %d: %w", m.Year, err)
	}
	return nil
}

// ReplaceAll clears the four fact tables and loads the given dataset
// in a single transaction.
func (d *DB) ReplaceAll(ds *Dataset) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	tables := []string{
		"economic_indicators", "demographic_indicators",
		"education_indicators", "health_indicators",
	}
	for _, tbl := range tables {
		if _, err := tx.Exec("DELETE FROM " + tbl); err != nil {
			return fmt.Errorf("clear %s: %w", tbl, err)
		}
	}

	for _, e := range ds.Economic {
		_, err := tx.Exec(
			"INSERT INTO economic_indicators (year, gdp_growth, gdp_per_capita, inflation_rate) VALUES (?, ?, ?, ?)",
			e.Year, e.GDPGrowth, e.GDPPerCapita, e.InflationRate)
		if err != nil {
			return fmt.Errorf("insert economic year %d: %w", e.Year, err)
		}
	}
	for _, m := range ds.Demographic {
		_, err := tx.Exec(
			"INSERT INTO demographic_indicators (year, total_population, urban_population_percent, life_expectancy) VALUES (?, ?, ?, ?)",
			m.Year, m.TotalPopulation, m.UrbanPopulationPercent, m.LifeExpectancy)
		if err != nil {
			return fmt.Errorf("insert demographic year %d: %w", m.Year, err)
		}
	}
	for _, m := range ds.Education {
		_, err := tx.Exec(
			"INSERT INTO education_indicators (year, primary_enrollment_rate, secondary_enrollment_rate, literacy_rate) VALUES (?, ?, ?, ?)",
			m.Year, m.PrimaryEnrollmentRate, m.SecondaryEnrollmentRate, m.LiteracyRate)
		if err != nil {
			return fmt.Errorf("insert education year %d: %w", m.Year, err)
		}
	}
	for _, m := range ds.Health {
		_, err := tx.Exec(
			"INSERT INTO health_indicators (year, infant_mortality_rate, health_expenditure_percent_gdp, hospital_beds_per_1000) VALUES (?, ?, ?, ?)",
			m.Year, m.InfantMortalityRate, m.HealthExpenditurePercentGDP, m.HospitalBedsPer1000)
		if err != nil {
			return fmt.Errorf("insert health year %d: %w", m.Year, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

// RowCounts returns the number of rows in each fact table.
func (d *DB) RowCounts() (map[models.Table]int, error) {
	counts := make(map[models.Table]int, len(models.AllTables))
	for tbl, sqlName := range map[models.Table]string{
		models.TableEconomic:    "economic_indicators",
		models.TableDemographic: "demographic_indicators",
		models.TableEducation:   "education_indicators",
		models.TableHealth:      "health_indicators",
	} {
		var n int
		if err := d.db.QueryRow("SELECT COUNT(*) FROM " + sqlName).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", sqlName, err)
		}
		counts[tbl] = n
	}
	return counts, nil
}

// Years returns the distinct years present across all four fact
// tables, ascending. Years missing from some tables still appear.
func (d *DB) Years() ([]int, error) {
	query := `
		SELECT year FROM economic_indicators
		UNION SELECT year FROM demographic_indicators
		UNION SELECT year FROM education_indicators
		UNION SELECT year FROM health_indicators
		ORDER BY year
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("scan year: %w", err)
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

// nullToPtr converts a nullable SQL float into a *float64.
func nullToPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
