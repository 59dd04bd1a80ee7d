// ABOUTME: Repository interface for the indicators store.
// ABOUTME: Defines the fact-table write surface and the fixed query catalog.
package storage

import "github.com/harperreed/devstats/internal/models"

// Repository defines the storage contract for indicator data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Fact table writes
	UpsertEconomic(e *models.Economic) error
	UpsertDemographic(m *models.Demographic) error
	UpsertEducation(m *models.Education) error
	UpsertHealth(m *models.Health) error
	ReplaceAll(ds *Dataset) error

	// Trend queries
	EconomicTrend() ([]*models.Economic, error)
	DemographicTrend() ([]*models.Demographic, error)
	EducationTrend() ([]*models.Education, error)
	HealthTrend() ([]*models.Health, error)
	GrowthTrend() ([]*GrowthTrendRow, error)

	// Analytic queries
	MovingAverages() ([]*MovingAverageRow, error)
	YearOverYearChanges() ([]*ChangeRow, error)
	SignificantChanges() ([]*ChangeRow, error)
	AboveAverageGrowthYears() ([]*AboveAverageRow, error)
	EducationPivot() ([]*EducationPivotRow, error)

	// Views
	EconomicOverview() ([]*EconomicOverviewRow, error)
	EducationHealthSummary() ([]*EducationHealthRow, error)
	PopulationTrends() ([]*PopulationTrendRow, error)

	// Introspection
	RowCounts() (map[models.Table]int, error)
	Years() ([]int, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
