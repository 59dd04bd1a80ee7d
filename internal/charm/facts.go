// ABOUTME: Dataset push/pull over Charm KV.
// ABOUTME: One key per fact row, year-keyed under a table prefix.
package charm

import (
	"fmt"
	"sort"

	"github.com/harperreed/devstats/internal/models"
	"github.com/harperreed/devstats/internal/storage"
)

// yearKey builds the KV key for one fact row, e.g. "economic:2014".
func yearKey(prefix string, year int) string {
	return fmt.Sprintf("%s%04d", prefix, year)
}

// Push uploads the full dataset to the KV store, replacing previously
// pushed rows table by table.
func (c *Client) Push(ds *storage.Dataset) error {
	if err := c.deleteByPrefix(EconomicPrefix); err != nil {
		return fmt.Errorf("clear economic rows: %w", err)
	}
	for _, row := range ds.Economic {
		data, err := marshalJSON(row)
		if err != nil {
			return fmt.Errorf("marshal economic year %d: %w", row.Year, err)
		}
		if err := c.set(yearKey(EconomicPrefix, row.Year), data); err != nil {
			return fmt.Errorf("push economic year %d: %w", row.Year, err)
		}
	}

	if err := c.deleteByPrefix(DemographicPrefix); err != nil {
		return fmt.Errorf("clear demographic rows: %w", err)
	}
	for _, row := range ds.Demographic {
		data, err := marshalJSON(row)
		if err != nil {
			return fmt.Errorf("marshal demographic year %d: %w", row.Year, err)
		}
		if err := c.set(yearKey(DemographicPrefix, row.Year), data); err != nil {
			return fmt.Errorf("push demographic year %d: %w", row.Year, err)
		}
	}

	if err := c.deleteByPrefix(EducationPrefix); err != nil {
		return fmt.Errorf("clear education rows: %w", err)
	}
	for _, row := range ds.Education {
		data, err := marshalJSON(row)
		if err != nil {
			return fmt.Errorf("marshal education year %d: %w", row.Year, err)
		}
		if err := c.set(yearKey(EducationPrefix, row.Year), data); err != nil {
			return fmt.Errorf("push education year %d: %w", row.Year, err)
		}
	}

	if err := c.deleteByPrefix(HealthPrefix); err != nil {
		return fmt.Errorf("clear health rows: %w", err)
	}
	for _, row := range ds.Health {
		data, err := marshalJSON(row)
		if err != nil {
			return fmt.Errorf("marshal health year %d: %w", row.Year, err)
		}
		if err := c.set(yearKey(HealthPrefix, row.Year), data); err != nil {
			return fmt.Errorf("push health year %d: %w", row.Year, err)
		}
	}

	return c.Sync()
}

// Pull downloads the dataset from the KV store. Rows come back sorted
// ascending by year; tables with no pushed rows come back empty.
func (c *Client) Pull() (*storage.Dataset, error) {
	if err := c.Sync(); err != nil {
		return nil, fmt.Errorf("sync before pull: %w", err)
	}

	ds := &storage.Dataset{}

	economicData, err := c.listByPrefix(EconomicPrefix)
	if err != nil {
		return nil, fmt.Errorf("pull economic rows: %w", err)
	}
	for _, data := range economicData {
		row, err := unmarshalJSON[models.Economic](data)
		if err != nil {
			continue // Skip invalid entries
		}
		ds.Economic = append(ds.Economic, row)
	}
	sort.Slice(ds.Economic, func(i, j int) bool { return ds.Economic[i].Year < ds.Economic[j].Year })

	demographicData, err := c.listByPrefix(DemographicPrefix)
	if err != nil {
		return nil, fmt.Errorf("pull demographic rows: %w", err)
	}
	for _, data := range demographicData {
		row, err := unmarshalJSON[models.Demographic](data)
		if err != nil {
			continue
		}
		ds.Demographic = append(ds.Demographic, row)
	}
	sort.Slice(ds.Demographic, func(i, j int) bool { return ds.Demographic[i].Year < ds.Demographic[j].Year })

	educationData, err := c.listByPrefix(EducationPrefix)
	if err != nil {
		return nil, fmt.Errorf("pull education rows: %w", err)
	}
	for _, data := range educationData {
		row, err := unmarshalJSON[models.Education](data)
		if err != nil {
			continue
		}
		ds.Education = append(ds.Education, row)
	}
	sort.Slice(ds.Education, func(i, j int) bool { return ds.Education[i].Year < ds.Education[j].Year })

	healthData, err := c.listByPrefix(HealthPrefix)
	if err != nil {
		return nil, fmt.Errorf("pull health rows: %w", err)
	}
	for _, data := range healthData {
		row, err := unmarshalJSON[models.Health](data)
		if err != nil {
			continue
		}
		ds.Health = append(ds.Health, row)
	}
	sort.Slice(ds.Health, func(i, j int) bool { return ds.Health[i].Year < ds.Health[j].Year })

	return ds, nil
}
