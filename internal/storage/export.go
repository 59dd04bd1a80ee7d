// ABOUTME: Export and import functionality for indicator datasets.
// ABOUTME: Supports JSON, YAML, and CSV export formats.
package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for indicator data.
type ExportData struct {
	SnapshotID uuid.UUID `json:"snapshot_id" yaml:"snapshot_id"`
	ExportedAt time.Time `json:"exported_at" yaml:"exported_at"`
	Tool       string    `json:"tool" yaml:"tool"`
	Dataset    Dataset   `json:"dataset" yaml:"dataset"`
}

// GetAllData retrieves all fact rows for export.
func (d *DB) GetAllData() (*ExportData, error) {
	economic, err := d.EconomicTrend()
	if err != nil {
		return nil, fmt.Errorf("export economic: %w", err)
	}
	demographic, err := d.DemographicTrend()
	if err != nil {
		return nil, fmt.Errorf("export demographic: %w", err)
	}
	education, err := d.EducationTrend()
	if err != nil {
		return nil, fmt.Errorf("export education: %w", err)
	}
	health, err := d.HealthTrend()
	if err != nil {
		return nil, fmt.Errorf("export health: %w", err)
	}

	return &ExportData{
		SnapshotID: uuid.New(),
		ExportedAt: time.Now(),
		Tool:       "devstats",
		Dataset: Dataset{
			Economic:    economic,
			Demographic: demographic,
			Education:   education,
			Health:      health,
		},
	}, nil
}

// ImportData replaces the fact tables with the dataset of an export file.
func (d *DB) ImportData(data *ExportData) error {
	if err := d.ReplaceAll(&data.Dataset); err != nil {
		return fmt.Errorf("import snapshot %s: %w", data.SnapshotID, err)
	}
	return nil
}

// ExportJSON exports all data as indented JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return out, nil
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal YAML: %w", err)
	}
	return out, nil
}

// ExportCSV exports one fact table as CSV with a header row, rows
// ordered ascending by year. The table argument uses short names
// (economic, demographic, education, health).
func (d *DB) ExportCSV(table string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	ff := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	switch table {
	case "economic":
		if err := w.Write([]string{"year", "gdp_growth", "gdp_per_capita", "inflation_rate"}); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
		rows, err := d.EconomicTrend()
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			rec := []string{strconv.Itoa(r.Year), ff(r.GDPGrowth), ff(r.GDPPerCapita), ff(r.InflationRate)}
			if err := w.Write(rec); err != nil {
				return nil, fmt.Errorf("write row: %w", err)
			}
		}
	case "demographic":
		if err := w.Write([]string{"year", "total_population", "urban_population_percent", "life_expectancy"}); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
		rows, err := d.DemographicTrend()
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			rec := []string{strconv.Itoa(r.Year), strconv.FormatInt(r.TotalPopulation, 10), ff(r.UrbanPopulationPercent), ff(r.LifeExpectancy)}
			if err := w.Write(rec); err != nil {
				return nil, fmt.Errorf("write row: %w", err)
			}
		}
	case "education":
		if err := w.Write([]string{"year", "primary_enrollment_rate", "secondary_enrollment_rate", "literacy_rate"}); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
		rows, err := d.EducationTrend()
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			rec := []string{strconv.Itoa(r.Year), ff(r.PrimaryEnrollmentRate), ff(r.SecondaryEnrollmentRate), ff(r.LiteracyRate)}
			if err := w.Write(rec); err != nil {
				return nil, fmt.Errorf("write row: %w", err)
			}
		}
	case "health":
		if err := w.Write([]string{"year", "infant_mortality_rate", "health_expenditure_percent_gdp", "hospital_beds_per_1000"}); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
		rows, err := d.HealthTrend()
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			rec := []string{strconv.Itoa(r.Year), ff(r.InfantMortalityRate), ff(r.HealthExpenditurePercentGDP), ff(r.HospitalBedsPer1000)}
			if err := w.Write(rec); err != nil {
				return nil, fmt.Errorf("write row: %w", err)
			}
		}
	default:
		return nil, fmt.Errorf("unknown table: %s", table)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseExport parses a JSON export file produced by ExportJSON.
func ParseExport(data []byte) (*ExportData, error) {
	var out ExportData
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	return &out, nil
}
