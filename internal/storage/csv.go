// ABOUTME: CSV loader for the fact tables.
// ABOUTME: Maps header names to columns, parses values, upserts by year.
package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harperreed/devstats/internal/models"
)

// LoadCSV reads CSV rows for one fact table and upserts them by year.
// The first record must be a header naming the table's columns (order
// is free, extra columns are ignored). Returns the number of rows
// loaded.
func (d *DB) LoadCSV(table models.Table, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read CSV header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := idx["year"]; !ok {
		return 0, fmt.Errorf("CSV header has no year column")
	}

	loaded := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return loaded, fmt.Errorf("read CSV row: %w", err)
		}

		year, err := fieldInt(rec, idx, "year")
		if err != nil {
			return loaded, err
		}

		switch table {
		case models.TableEconomic:
			growth, err := fieldFloat(rec, idx, "gdp_growth")
			if err != nil {
				return loaded, err
			}
			perCapita, err := fieldFloat(rec, idx, "gdp_per_capita")
			if err != nil {
				return loaded, err
			}
			inflation, err := fieldFloat(rec, idx, "inflation_rate")
			if err != nil {
				return loaded, err
			}
			row := &models.Economic{Year: year, GDPGrowth: growth, GDPPerCapita: perCapita, InflationRate: inflation}
			if err := d.UpsertEconomic(row); err != nil {
				return loaded, err
			}
		case models.TableDemographic:
			pop, err := fieldInt64(rec, idx, "total_population")
			if err != nil {
				return loaded, err
			}
			urban, err := fieldFloat(rec, idx, "urban_population_percent")
			if err != nil {
				return loaded, err
			}
			lifeExp, err := fieldFloat(rec, idx, "life_expectancy")
			if err != nil {
				return loaded, err
			}
			row := &models.Demographic{Year: year, TotalPopulation: pop, UrbanPopulationPercent: urban, LifeExpectancy: lifeExp}
			if err := d.UpsertDemographic(row); err != nil {
				return loaded, err
			}
		case models.TableEducation:
			primary, err := fieldFloat(rec, idx, "primary_enrollment_rate")
			if err != nil {
				return loaded, err
			}
			secondary, err := fieldFloat(rec, idx, "secondary_enrollment_rate")
			if err != nil {
				return loaded, err
			}
			literacy, err := fieldFloat(rec, idx, "literacy_rate")
			if err != nil {
				return loaded, err
			}
			row := &models.Education{Year: year, PrimaryEnrollmentRate: primary, SecondaryEnrollmentRate: secondary, LiteracyRate: literacy}
			if err := d.UpsertEducation(row); err != nil {
				return loaded, err
			}
		case models.TableHealth:
			mortality, err := fieldFloat(rec, idx, "infant_mortality_rate")
			if err != nil {
				return loaded, err
			}
			spending, err := fieldFloat(rec, idx, "health_expenditure_percent_gdp")
			if err != nil {
				return loaded, err
			}
			beds, err := fieldFloat(rec, idx, "hospital_beds_per_1000")
			if err != nil {
				return loaded, err
			}
			row := &models.Health{Year: year, InfantMortalityRate: mortality, HealthExpenditurePercentGDP: spending, HospitalBedsPer1000: beds}
			if err := d.UpsertHealth(row); err != nil {
				return loaded, err
			}
		default:
			return loaded, fmt.Errorf("unknown table: %s", table)
		}
		loaded++
	}

	return loaded, nil
}

func fieldInt(rec []string, idx map[string]int, name string) (int, error) {
	i, ok := idx[name]
	if !ok || i >= len(rec) {
		return 0, fmt.Errorf("missing column %s", name)
	}
	v, err := strconv.Atoi(strings.TrimSpace(rec[i]))
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", name, rec[i], err)
	}
	return v, nil
}

func fieldInt64(rec []string, idx map[string]int, name string) (int64, error) {
	i, ok := idx[name]
	if !ok || i >= len(rec) {
		return 0, fmt.Errorf("missing column %s", name)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(rec[i]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", name, rec[i], err)
	}
	return v, nil
}

func fieldFloat(rec []string, idx map[string]int, name string) (float64, error) {
	i, ok := idx[name]
	if !ok || i >= len(rec) {
		return 0, fmt.Errorf("missing column %s", name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", name, rec[i], err)
	}
	return v, nil
}
