// ABOUTME: CLI commands for the analytic query catalog.
// ABOUTME: Moving averages, year-over-year deltas, above-average filter, pivot.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/devstats/internal/storage"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:     "analyze",
	Aliases: []string{"an"},
	Short:   "Run analytic queries over the dataset",
}

var maCmd = &cobra.Command{
	Use:     "ma",
	Aliases: []string{"moving-average"},
	Short:   "Centered 5-year moving averages",
	Long: `Compute centered 5-year moving averages (current year ± 2) of GDP
growth, life expectancy, literacy, and infant mortality over the 4-way
join of the fact tables.

Boundary years use a partial window: the first and last two years
average fewer than 5 values instead of being dropped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := db.MovingAverages()
		if err != nil {
			return fmt.Errorf("failed to compute moving averages: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No joined data. All four tables need rows for the same years.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s  %12s  %10s  %10s  %18s\n", faint.Sprint("year"), "gdp_growth", "life_exp", "literacy", "infant_mortality")
		for _, r := range rows {
			fmt.Printf("%s  %11.2f%%  %10.2f  %9.2f%%  %18.2f\n",
				faint.Sprint(r.Year), r.GDPGrowthMA, r.LifeExpectancyMA, r.LiteracyRateMA, r.InfantMortalityMA)
		}
		return nil
	},
}

var changesSignificant bool

var changesCmd = &cobra.Command{
	Use:   "changes",
	Short: "Year-over-year indicator deltas",
	Long: `Compute the difference between each year's value and the prior
year's value for GDP growth, urban population share, secondary
enrollment, and infant mortality.

The first year has no predecessor; its deltas print as "-".

With --significant, only years where at least one absolute delta
breaches its threshold are shown (gdp_growth > 2, urban > 1,
enrollment > 5, mortality > 5). Any single breach qualifies the year.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var rows []*storage.ChangeRow
		var err error
		if changesSignificant {
			rows, err = db.SignificantChanges()
		} else {
			rows, err = db.YearOverYearChanges()
		}
		if err != nil {
			return fmt.Errorf("failed to compute changes: %w", err)
		}
		if len(rows) == 0 {
			if changesSignificant {
				fmt.Println("No years with significant changes.")
			} else {
				fmt.Println("No joined data. All four tables need rows for the same years.")
			}
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s  %12s  %8s  %12s  %18s\n", faint.Sprint("year"), "gdp_growth", "urban", "enrollment", "infant_mortality")
		for _, r := range rows {
			fmt.Printf("%s  %12s  %8s  %12s  %18s\n",
				faint.Sprint(r.Year),
				fmtDelta(r.GDPGrowthChange),
				fmtDelta(r.UrbanPopulationChange),
				fmtDelta(r.SecondaryEnrollmentChange),
				fmtDelta(r.InfantMortalityChange))
		}
		return nil
	},
}

var aboveAverageCmd = &cobra.Command{
	Use:   "above-average",
	Short: "Years whose GDP growth beat the series mean",
	Long: `Compute the mean GDP growth across all loaded years, then list the
years strictly above it. Years exactly at the mean are excluded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := db.AboveAverageGrowthYears()
		if err != nil {
			return fmt.Errorf("failed to compute above-average years: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No years above the mean.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s  %12s  %12s\n", faint.Sprint("year"), "gdp_growth", "series_mean")
		for _, r := range rows {
			fmt.Printf("%s  %11.1f%%  %11.2f%%\n", faint.Sprint(r.Year), r.GDPGrowth, r.MeanGrowth)
		}
		return nil
	},
}

var pivotCmd = &cobra.Command{
	Use:   "pivot",
	Short: "Education indicators via unpivot/pivot round trip",
	Long: `Reshape the education table into (year, indicator, value) rows and
re-aggregate it back to wide form with MAX(CASE ...) per indicator.
The output matches the education trend exactly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := db.EducationPivot()
		if err != nil {
			return fmt.Errorf("failed to compute pivot: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No education data loaded.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s  %9s  %11s  %9s\n", faint.Sprint("year"), "primary", "secondary", "literacy")
		for _, r := range rows {
			fmt.Printf("%s  %8.1f%%  %10.1f%%  %8.1f%%\n", faint.Sprint(r.Year), r.PrimaryEnrollment, r.SecondaryEnrollment, r.LiteracyRate)
		}
		return nil
	},
}

// fmtDelta renders a nullable delta, "-" when undefined.
func fmtDelta(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%+.2f", *v)
}

func init() {
	changesCmd.Flags().BoolVarP(&changesSignificant, "significant", "s", false, "only years breaching a change threshold")
	analyzeCmd.AddCommand(maCmd)
	analyzeCmd.AddCommand(changesCmd)
	analyzeCmd.AddCommand(aboveAverageCmd)
	analyzeCmd.AddCommand(pivotCmd)
	rootCmd.AddCommand(analyzeCmd)
}
