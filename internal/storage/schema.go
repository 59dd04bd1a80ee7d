// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines the four fact tables and three reporting views.
package storage

// initSchema creates or updates the database schema.
//
// Each fact table holds one row per year. The year column is a primary
// key, so duplicate years within a table fail the load. Referential
// integrity across tables is NOT enforced: a year missing from one
// table is silently dropped by the inner joins in the query catalog.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS economic_indicators (
		year INTEGER PRIMARY KEY,
		gdp_growth REAL,
		gdp_per_capita REAL,
		inflation_rate REAL
	);

	CREATE TABLE IF NOT EXISTS demographic_indicators (
		year INTEGER PRIMARY KEY,
		total_population INTEGER,
		urban_population_percent REAL,
		life_expectancy REAL
	);

	CREATE TABLE IF NOT EXISTS education_indicators (
		year INTEGER PRIMARY KEY,
		primary_enrollment_rate REAL,
		secondary_enrollment_rate REAL,
		literacy_rate REAL
	);

	CREATE TABLE IF NOT EXISTS health_indicators (
		year INTEGER PRIMARY KEY,
		infant_mortality_rate REAL,
		health_expenditure_percent_gdp REAL,
		hospital_beds_per_1000 REAL
	);

	CREATE VIEW IF NOT EXISTS economic_overview AS
	SELECT
		e.year,
		e.gdp_growth,
		e.gdp_per_capita,
		e.inflation_rate,
		d.total_population,
		d.life_expectancy
	FROM economic_indicators e
	JOIN demographic_indicators d ON d.year = e.year;

	CREATE VIEW IF NOT EXISTS education_health_summary AS
	SELECT
		ed.year,
		ed.primary_enrollment_rate,
		ed.secondary_enrollment_rate,
		ed.literacy_rate,
		h.infant_mortality_rate,
		h.health_expenditure_percent_gdp
	FROM education_indicators ed
	JOIN health_indicators h ON h.year = ed.year;

	CREATE VIEW IF NOT EXISTS population_trends AS
	SELECT
		year,
		total_population,
		urban_population_percent
	FROM demographic_indicators;
	`

	_, err := d.db.Exec(schema)
	return err
}
