// ABOUTME: Embedded reference dataset for Rwanda, 2000-2023.
// ABOUTME: One CSV per fact table, loaded via the storage CSV loader.
package dataset

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/harperreed/devstats/internal/models"
	"github.com/harperreed/devstats/internal/storage"
)

//go:embed economic.csv
var economicCSV []byte

//go:embed demographic.csv
var demographicCSV []byte

//go:embed education.csv
var educationCSV []byte

//go:embed health.csv
var healthCSV []byte

// Seed loads the bundled reference dataset into all four fact tables,
// replacing any year that already exists. Returns rows loaded per table.
func Seed(db *storage.DB) (map[models.Table]int, error) {
	files := map[models.Table][]byte{
		models.TableEconomic:    economicCSV,
		models.TableDemographic: demographicCSV,
		models.TableEducation:   educationCSV,
		models.TableHealth:      healthCSV,
	}

	loaded := make(map[models.Table]int, len(files))
	for _, tbl := range models.AllTables {
		n, err := db.LoadCSV(tbl, bytes.NewReader(files[tbl]))
		if err != nil {
			return loaded, fmt.Errorf("seed %s: %w", tbl, err)
		}
		loaded[tbl] = n
	}
	return loaded, nil
}
