package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"surveycharts/adapters/plotting"
	"surveycharts/adapters/tabular"
	"surveycharts/app"
	"surveycharts/domain/charts"
	"surveycharts/domain/survey"
	"surveycharts/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	reader := tabular.NewDataReader(appConfig.Data.InputPath())
	renderer := plotting.NewBarChartRenderer(appConfig.Charts)
	service := app.NewReportService(reader, renderer, charts.DefaultSpecs(), nil)

	result, err := service.Run(context.Background())
	if err != nil {
		reportFailure(appConfig, err)
		return
	}

	fmt.Printf("✓ Report run %s complete: %d charts from %d survey rows in %dms\n",
		result.RunID, len(result.Artifacts), result.Rows, result.RuntimeMs)
	for _, artifact := range result.Artifacts {
		fmt.Printf("✓ Successfully saved plot to: %s\n", artifact.OutputPath)
	}
}

// reportFailure prints the human-readable failure report on standard output.
// A missing input file gets remediation hints; every other failure gets its
// message. The process terminates normally in both cases.
func reportFailure(appConfig *config.Config, err error) {
	if survey.IsDataNotFound(err) {
		fmt.Printf("✗ Error: %v\n", err)
		fmt.Println("Please verify:")
		fmt.Printf("1. The file exists at %s\n", appConfig.Data.Dir)
		fmt.Println("2. The tool is running from the correct directory")
		if wd, wdErr := os.Getwd(); wdErr == nil {
			fmt.Printf("Current working directory: %s\n", wd)
		}
		if exe, exeErr := os.Executable(); exeErr == nil {
			fmt.Printf("Executable directory: %s\n", filepath.Dir(exe))
		}
		return
	}
	fmt.Printf("✗ Unexpected error: %v\n", err)
}
