// ABOUTME: CLI command for trend queries.
// ABOUTME: Prints one fact table (or the growth join) ordered by year.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var trendCmd = &cobra.Command{
	Use:     "trend <table>",
	Aliases: []string{"t"},
	Short:   "Show indicator trends by year",
	Long: `Show all rows of one fact table, ordered ascending by year.

TABLES:

  economic     gdp_growth, gdp_per_capita, inflation_rate
  demographic  total_population, urban_population_percent, life_expectancy
  education    primary/secondary enrollment, literacy_rate
  health       infant_mortality_rate, health expenditure, hospital beds
  growth       economic joined with population and life expectancy

Years missing from either side of the growth join are dropped.

EXAMPLES:

  devstats trend economic
  devstats trend health
  devstats trend growth`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"economic", "demographic", "education", "health", "growth"},
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)

		switch args[0] {
		case "economic":
			rows, err := db.EconomicTrend()
			if err != nil {
				return fmt.Errorf("failed to query trend: %w", err)
			}
			if len(rows) == 0 {
				fmt.Println("No data loaded. Run 'devstats seed' to load the reference dataset.")
				return nil
			}
			fmt.Printf("%s  %12s  %14s  %10s\n", faint.Sprint("year"), "gdp_growth", "gdp_per_capita", "inflation")
			for _, r := range rows {
				fmt.Printf("%s  %11.1f%%  %14.1f  %9.1f%%\n", faint.Sprint(r.Year), r.GDPGrowth, r.GDPPerCapita, r.InflationRate)
			}
		case "demographic":
			rows, err := db.DemographicTrend()
			if err != nil {
				return fmt.Errorf("failed to query trend: %w", err)
			}
			if len(rows) == 0 {
				fmt.Println("No data loaded. Run 'devstats seed' to load the reference dataset.")
				return nil
			}
			fmt.Printf("%s  %12s  %8s  %10s\n", faint.Sprint("year"), "population", "urban", "life_exp")
			for _, r := range rows {
				fmt.Printf("%s  %12d  %7.1f%%  %10.1f\n", faint.Sprint(r.Year), r.TotalPopulation, r.UrbanPopulationPercent, r.LifeExpectancy)
			}
		case "education":
			rows, err := db.EducationTrend()
			if err != nil {
				return fmt.Errorf("failed to query trend: %w", err)
			}
			if len(rows) == 0 {
				fmt.Println("No data loaded. Run 'devstats seed' to load the reference dataset.")
				return nil
			}
			fmt.Printf("%s  %9s  %11s  %9s\n", faint.Sprint("year"), "primary", "secondary", "literacy")
			for _, r := range rows {
				fmt.Printf("%s  %8.1f%%  %10.1f%%  %8.1f%%\n", faint.Sprint(r.Year), r.PrimaryEnrollmentRate, r.SecondaryEnrollmentRate, r.LiteracyRate)
			}
		case "health":
			rows, err := db.HealthTrend()
			if err != nil {
				return fmt.Errorf("failed to query trend: %w", err)
			}
			if len(rows) == 0 {
				fmt.Println("No data loaded. Run 'devstats seed' to load the reference dataset.")
				return nil
			}
			fmt.Printf("%s  %16s  %12s  %10s\n", faint.Sprint("year"), "infant_mortality", "health_exp", "beds/1000")
			for _, r := range rows {
				fmt.Printf("%s  %16.1f  %11.1f%%  %10.2f\n", faint.Sprint(r.Year), r.InfantMortalityRate, r.HealthExpenditurePercentGDP, r.HospitalBedsPer1000)
			}
		case "growth":
			rows, err := db.GrowthTrend()
			if err != nil {
				return fmt.Errorf("failed to query trend: %w", err)
			}
			if len(rows) == 0 {
				fmt.Println("No joined data. Both economic and demographic tables need rows.")
				return nil
			}
			fmt.Printf("%s  %12s  %14s  %12s  %10s\n", faint.Sprint("year"), "gdp_growth", "gdp_per_capita", "population", "life_exp")
			for _, r := range rows {
				fmt.Printf("%s  %11.1f%%  %14.1f  %12d  %10.1f\n", faint.Sprint(r.Year), r.GDPGrowth, r.GDPPerCapita, r.TotalPopulation, r.LifeExpectancy)
			}
		default:
			return fmt.Errorf("unknown table: %s", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trendCmd)
}
