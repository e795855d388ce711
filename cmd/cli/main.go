package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"surveycharts/adapters/plotting"
	"surveycharts/adapters/tabular"
	"surveycharts/app"
	"surveycharts/domain/charts"
	"surveycharts/internal"
	"surveycharts/internal/config"
	"surveycharts/internal/errors"
	"surveycharts/internal/profiling"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "surveycharts-cli",
		Short: "Survey charts CLI for rendering and inspecting the NSDUH extract",
	}

	rootCmd.AddCommand(
		newRenderCmd(),
		newInspectCmd(),
		newCatalogCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRenderCmd() *cobra.Command {
	var dataFile string
	var outputDir string
	var chartName string
	var logLevel string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render survey bar charts to JPEG files",
		Long: `Render bar charts from a survey extract.

By default every chart in the catalog is rendered in order. Use --chart to
render a single one by name (see the catalog command for the list).

Example: surveycharts-cli render --data data/NSDUH_2022_selected_columns_validated.csv --out charts --chart age3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), dataFile, outputDir, chartName, logLevel)
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "", "Survey file path (default: DATA_DIR/DATA_FILE)")
	cmd.Flags().StringVar(&outputDir, "out", "", "Output directory (default: OUTPUT_DIR)")
	cmd.Flags().StringVar(&chartName, "chart", "", "Render a single chart by name (default: all)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: error|warn|info|debug")

	return cmd
}

func newInspectCmd() *cobra.Command {
	var dataFile string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Profile the survey variables without rendering",
		Long: `Load the survey table and print a numeric profile per column.

Example: surveycharts-cli inspect --data data/NSDUH_2022_selected_columns_validated.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), dataFile)
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "", "Survey file path (default: DATA_DIR/DATA_FILE)")

	return cmd
}

func newCatalogCmd() *cobra.Command {
	var namesOnly bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the chart catalog as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(namesOnly)
		},
	}

	cmd.Flags().BoolVar(&namesOnly, "names", false, "Print chart names only")

	return cmd
}

func runRender(ctx context.Context, dataFile, outputDir, chartName, logLevel string) error {
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if dataFile == "" {
		dataFile = appConfig.Data.InputPath()
	}
	if outputDir != "" {
		appConfig.Charts.OutputDir = outputDir
	}

	specs := charts.DefaultSpecs()
	if chartName != "" {
		spec, ok := charts.SpecByName(chartName)
		if !ok {
			return errors.InvalidInput(fmt.Sprintf("unknown chart %q, run the catalog command for the list", chartName))
		}
		specs = []charts.Spec{spec}
	}

	logger := internal.NewLogger(internal.ParseLogLevel(logLevel))
	reader := tabular.NewDataReader(dataFile)
	renderer := plotting.NewBarChartRenderer(appConfig.Charts)
	service := app.NewReportService(reader, renderer, specs, logger)

	result, err := service.Run(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	fmt.Printf("\n=== RENDER RESULTS ===\n")
	fmt.Printf("Run ID: %s\n", result.RunID)
	fmt.Printf("Survey rows: %d\n", result.Rows)
	fmt.Printf("Charts written: %d\n", len(result.Artifacts))
	fmt.Printf("Runtime: %d ms\n", result.RuntimeMs)
	for i, artifact := range result.Artifacts {
		fmt.Printf("%d. %s (%s): %s [%d ms]\n", i+1, artifact.Name, artifact.Column, artifact.OutputPath, artifact.DurationMs)
	}

	return nil
}

func runInspect(ctx context.Context, dataFile string) error {
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if dataFile == "" {
		dataFile = appConfig.Data.InputPath()
	}

	reader := tabular.NewDataReader(dataFile)
	table, err := reader.ReadTable(ctx)
	if err != nil {
		return fmt.Errorf("failed to load survey data: %w", err)
	}

	profiler := profiling.NewTableProfiler()
	profiles := profiler.ProfileTable(table)

	fmt.Printf("\n=== SURVEY PROFILE ===\n")
	fmt.Printf("Rows: %d\n", table.NumRows())
	fmt.Printf("Columns: %d\n", table.NumColumns())

	fmt.Printf("\n=== VARIABLES ===\n")
	for i, profile := range profiles {
		fmt.Printf("%d. %s\n", i+1, profile.Name)
		fmt.Printf("   Observed: %d | Missing: %d | Unique: %d\n",
			profile.Observed, profile.Missing, profile.Unique)
		if profile.Observed > 0 {
			fmt.Printf("   Mean: %.3f | Median: %.3f | StdDev: %.3f\n",
				profile.Mean, profile.Median, profile.StdDev)
			fmt.Printf("   Range: [%.1f, %.1f] | Q25: %.1f | Q75: %.1f | Entropy: %.3f\n",
				profile.Min, profile.Max, profile.Q25, profile.Q75, profile.Entropy)
		}
	}

	return nil
}

func runCatalog(namesOnly bool) error {
	specs := charts.DefaultSpecs()

	if namesOnly {
		for _, spec := range specs {
			fmt.Println(spec.Name)
		}
		return nil
	}

	jsonData, err := json.MarshalIndent(specs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	fmt.Println(string(jsonData))

	return nil
}
