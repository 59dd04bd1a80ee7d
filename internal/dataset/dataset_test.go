// ABOUTME: Tests for the embedded reference dataset.
// ABOUTME: Verifies the full 2000-2023 series loads into every table.
package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/devstats/internal/models"
	"github.com/harperreed/devstats/internal/storage"
)

func TestSeedLoadsFullSeries(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "devstats-seed-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	db, err := storage.Open(filepath.Join(tmpDir, "devstats.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	loaded, err := Seed(db)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	wantRows := models.LastYear - models.FirstYear + 1
	for _, tbl := range models.AllTables {
		if loaded[tbl] != wantRows {
			t.Errorf("Table %s: expected %d rows, got %d", tbl, wantRows, loaded[tbl])
		}
	}

	years, err := db.Years()
	if err != nil {
		t.Fatalf("Years failed: %v", err)
	}
	if len(years) != wantRows {
		t.Fatalf("Expected %d distinct years, got %d", wantRows, len(years))
	}
	if years[0] != models.FirstYear || years[len(years)-1] != models.LastYear {
		t.Errorf("Expected series %d-%d, got %d-%d", models.FirstYear, models.LastYear, years[0], years[len(years)-1])
	}

	// Every year present in every table: the 4-way join keeps all rows
	mas, err := db.MovingAverages()
	if err != nil {
		t.Fatalf("MovingAverages failed: %v", err)
	}
	if len(mas) != wantRows {
		t.Errorf("Expected %d joined rows, got %d", wantRows, len(mas))
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "devstats-seed-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	db, err := storage.Open(filepath.Join(tmpDir, "devstats.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := Seed(db); err != nil {
		t.Fatalf("First seed failed: %v", err)
	}
	if _, err := Seed(db); err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}

	counts, err := db.RowCounts()
	if err != nil {
		t.Fatalf("RowCounts failed: %v", err)
	}
	wantRows := models.LastYear - models.FirstYear + 1
	for tbl, n := range counts {
		if n != wantRows {
			t.Errorf("Table %s: expected %d rows after reseed, got %d", tbl, wantRows, n)
		}
	}
}
