// ABOUTME: CLI command for querying the reporting views.
// ABOUTME: Views are re-evaluated on each query, like the ad hoc joins.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view <name>",
	Short: "Query a reporting view",
	Long: `Query one of the three reporting views. Views wrap fixed joins and
always reflect the current table contents; nothing is cached.

VIEWS:

  economic_overview         economic indicators + population, life expectancy
  education_health_summary  enrollment, literacy + mortality, health spending
  population_trends         total and urban population per year

EXAMPLES:

  devstats view economic_overview
  devstats view population_trends`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"economic_overview", "education_health_summary", "population_trends"},
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)

		switch args[0] {
		case "economic_overview":
			rows, err := db.EconomicOverview()
			if err != nil {
				return fmt.Errorf("failed to query view: %w", err)
			}
			fmt.Printf("%s  %12s  %14s  %10s  %12s  %10s\n",
				faint.Sprint("year"), "gdp_growth", "gdp_per_capita", "inflation", "population", "life_exp")
			for _, r := range rows {
				fmt.Printf("%s  %11.1f%%  %14.1f  %9.1f%%  %12d  %10.1f\n",
					faint.Sprint(r.Year), r.GDPGrowth, r.GDPPerCapita, r.InflationRate, r.TotalPopulation, r.LifeExpectancy)
			}
		case "education_health_summary":
			rows, err := db.EducationHealthSummary()
			if err != nil {
				return fmt.Errorf("failed to query view: %w", err)
			}
			fmt.Printf("%s  %9s  %11s  %9s  %16s  %11s\n",
				faint.Sprint("year"), "primary", "secondary", "literacy", "infant_mortality", "health_exp")
			for _, r := range rows {
				fmt.Printf("%s  %8.1f%%  %10.1f%%  %8.1f%%  %16.1f  %10.1f%%\n",
					faint.Sprint(r.Year), r.PrimaryEnrollmentRate, r.SecondaryEnrollmentRate, r.LiteracyRate,
					r.InfantMortalityRate, r.HealthExpenditurePercentGDP)
			}
		case "population_trends":
			rows, err := db.PopulationTrends()
			if err != nil {
				return fmt.Errorf("failed to query view: %w", err)
			}
			fmt.Printf("%s  %12s  %8s\n", faint.Sprint("year"), "population", "urban")
			for _, r := range rows {
				fmt.Printf("%s  %12d  %7.1f%%\n", faint.Sprint(r.Year), r.TotalPopulation, r.UrbanPopulationPercent)
			}
		default:
			return fmt.Errorf("unknown view: %s", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
