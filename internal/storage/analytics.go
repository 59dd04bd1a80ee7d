// ABOUTME: Analytic query catalog: moving averages, year-over-year deltas,
// ABOUTME: above-average filtering, and pivot via conditional aggregation.
package storage

import (
	"database/sql"
	"fmt"
)

// Year-over-year change thresholds. A year is significant when any
// single absolute delta breaches its threshold.
const (
	GDPGrowthChangeThreshold       = 2.0
	UrbanPopulationChangeThreshold = 1.0
	EnrollmentChangeThreshold      = 5.0
	MortalityChangeThreshold       = 5.0
)

// MovingAverageRow holds centered 5-year moving averages for one year.
type MovingAverageRow struct {
	Year              int     `json:"year"`
	GDPGrowthMA       float64 `json:"gdp_growth_ma"`
	LifeExpectancyMA  float64 `json:"life_expectancy_ma"`
	LiteracyRateMA    float64 `json:"literacy_rate_ma"`
	InfantMortalityMA float64 `json:"infant_mortality_ma"`
}

// MovingAverages computes a centered 5-year moving average (current
// year ± 2) of four headline indicators over the 4-way join of the
// fact tables. At the series boundary the window shrinks to whatever
// rows exist, so the first and last years average fewer than 5 values
// rather than being dropped or padded with nulls.
func (d *DB) MovingAverages() ([]*MovingAverageRow, error) {
	query := `
		SELECT
			e.year,
			AVG(e.gdp_growth) OVER w AS gdp_growth_ma,
			AVG(dm.life_expectancy) OVER w AS life_expectancy_ma,
			AVG(ed.literacy_rate) OVER w AS literacy_rate_ma,
			AVG(h.infant_mortality_rate) OVER w AS infant_mortality_ma
		FROM economic_indicators e
		JOIN demographic_indicators dm ON dm.year = e.year
		JOIN education_indicators ed ON ed.year = e.year
		JOIN health_indicators h ON h.year = e.year
		WINDOW w AS (ORDER BY e.year ROWS BETWEEN 2 PRECEDING AND 2 FOLLOWING)
		ORDER BY e.year
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("moving averages: %w", err)
	}
	defer rows.Close()

	var out []*MovingAverageRow
	for rows.Next() {
		var r MovingAverageRow
		if err := rows.Scan(&r.Year, &r.GDPGrowthMA, &r.LifeExpectancyMA, &r.LiteracyRateMA, &r.InfantMortalityMA); err != nil {
			return nil, fmt.Errorf("scan moving average row: %w", err)
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}

// ChangeRow holds year-over-year deltas for one year. Pointers are nil
// when the delta is undefined (the first year has no predecessor).
type ChangeRow struct {
	Year                      int      `json:"year"`
	GDPGrowthChange           *float64 `json:"gdp_growth_change"`
	UrbanPopulationChange     *float64 `json:"urban_population_change"`
	SecondaryEnrollmentChange *float64 `json:"secondary_enrollment_change"`
	InfantMortalityChange     *float64 `json:"infant_mortality_change"`
}

const changesCTE = `
	SELECT
		e.year,
		e.gdp_growth - LAG(e.gdp_growth) OVER w AS gdp_growth_change,
		dm.urban_population_percent - LAG(dm.urban_population_percent) OVER w AS urban_population_change,
		ed.secondary_enrollment_rate - LAG(ed.secondary_enrollment_rate) OVER w AS secondary_enrollment_change,
		h.infant_mortality_rate - LAG(h.infant_mortality_rate) OVER w AS infant_mortality_change
	FROM economic_indicators e
	JOIN demographic_indicators dm ON dm.year = e.year
	JOIN education_indicators ed ON ed.year = e.year
	JOIN health_indicators h ON h.year = e.year
	WINDOW w AS (ORDER BY e.year)
`

// YearOverYearChanges returns, for every year in the 4-way join, the
// difference from the prior year for four indicators. The first year's
// deltas are nil: there is no predecessor, and the missing value is
// propagated rather than coerced to zero.
func (d *DB) YearOverYearChanges() ([]*ChangeRow, error) {
	query := `
		WITH changes AS (` + changesCTE + `)
		SELECT year, gdp_growth_change, urban_population_change,
		       secondary_enrollment_change, infant_mortality_change
		FROM changes
		ORDER BY year
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("year-over-year changes: %w", err)
	}
	defer rows.Close()
	return scanChangeRows(rows)
}

// SignificantChanges filters YearOverYearChanges down to years where
// at least one absolute delta breaches its threshold. NULL deltas
// never qualify, so the first year is excluded unless another
// indicator's delta exists and breaches (it cannot: all four share the
// same first year).
func (d *DB) SignificantChanges() ([]*ChangeRow, error) {
	query := `
		WITH changes AS (` + changesCTE + `)
		SELECT year, gdp_growth_change, urban_population_change,
		       secondary_enrollment_change, infant_mortality_change
		FROM changes
		WHERE ABS(gdp_growth_change) > ?
		   OR ABS(urban_population_change) > ?
		   OR ABS(secondary_enrollment_change) > ?
		   OR ABS(infant_mortality_change) > ?
		ORDER BY year
	`
	rows, err := d.db.Query(query,
		GDPGrowthChangeThreshold,
		UrbanPopulationChangeThreshold,
		EnrollmentChangeThreshold,
		MortalityChangeThreshold,
	)
	if err != nil {
		return nil, fmt.Errorf("significant changes: %w", err)
	}
	defer rows.Close()
	return scanChangeRows(rows)
}

func scanChangeRows(rows *sql.Rows) ([]*ChangeRow, error) {
	var out []*ChangeRow
	for rows.Next() {
		var r ChangeRow
		var gdp, urban, enroll, mortality sql.NullFloat64
		if err := rows.Scan(&r.Year, &gdp, &urban, &enroll, &mortality); err != nil {
			return nil, fmt.Errorf("scan change row: %w", err)
		}
		r.GDPGrowthChange = nullToPtr(gdp)
		r.UrbanPopulationChange = nullToPtr(urban)
		r.SecondaryEnrollmentChange = nullToPtr(enroll)
		r.InfantMortalityChange = nullToPtr(mortality)
		out = append(out, &r)
	}
	return out, rows.Err()
}

// AboveAverageRow is one year whose GDP growth beat the series mean.
type AboveAverageRow struct {
	Year       int     `json:"year"`
	GDPGrowth  float64 `json:"gdp_growth"`
	MeanGrowth float64 `json:"mean_growth"`
}

// AboveAverageGrowthYears returns years whose gdp_growth strictly
// exceeds the mean gdp_growth over the whole table. The mean is
// computed once, not as a running average; years exactly at the mean
// are excluded.
func (d *DB) AboveAverageGrowthYears() ([]*AboveAverageRow, error) {
	query := `
		WITH overall AS (
			SELECT AVG(gdp_growth) AS mean_growth FROM economic_indicators
		)
		SELECT e.year, e.gdp_growth, o.mean_growth
		FROM economic_indicators e, overall o
		WHERE e.gdp_growth > o.mean_growth
		ORDER BY e.year
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("above-average growth: %w", err)
	}
	defer rows.Close()

	var out []*AboveAverageRow
	for rows.Next() {
		var r AboveAverageRow
		if err := rows.Scan(&r.Year, &r.GDPGrowth, &r.MeanGrowth); err != nil {
			return nil, fmt.Errorf("scan above-average row: %w", err)
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}

// EducationPivotRow is one year of education indicators reassembled
// from the long (year, indicator, value) form.
type EducationPivotRow struct {
	Year                int     `json:"year"`
	PrimaryEnrollment   float64 `json:"primary_enrollment"`
	SecondaryEnrollment float64 `json:"secondary_enrollment"`
	LiteracyRate        float64 `json:"literacy_rate"`
}

// EducationPivot unpivots the education columns into (year, indicator,
// value) rows and re-aggregates them back to wide form with
// MAX(CASE ...) per indicator. The round trip is a lossless identity
// transform; the intermediate long form is kept rather than collapsed
// into a direct projection.
func (d *DB) EducationPivot() ([]*EducationPivotRow, error) {
	query := `
		WITH unpivoted AS (
			SELECT year, 'primary_enrollment' AS indicator, primary_enrollment_rate AS value
			FROM education_indicators
			UNION ALL
			SELECT year, 'secondary_enrollment', secondary_enrollment_rate
			FROM education_indicators
			UNION ALL
			SELECT year, 'literacy_rate', literacy_rate
			FROM education_indicators
		)
		SELECT
			year,
			MAX(CASE WHEN indicator = 'primary_enrollment' THEN value END) AS primary_enrollment,
			MAX(CASE WHEN indicator = 'secondary_enrollment' THEN value END) AS secondary_enrollment,
			MAX(CASE WHEN indicator = 'literacy_rate' THEN value END) AS literacy_rate
		FROM unpivoted
		GROUP BY year
		ORDER BY year
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("education pivot: %w", err)
	}
	defer rows.Close()

	var out []*EducationPivotRow
	for rows.Next() {
		var r EducationPivotRow
		if err := rows.Scan(&r.Year, &r.PrimaryEnrollment, &r.SecondaryEnrollment, &r.LiteracyRate); err != nil {
			return nil, fmt.Errorf("scan pivot row: %w", err)
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}
