// Command cli analyzes a local CSV or XLSX file without a database: the file
// is ingested into an in-memory store and the summary report is printed as
// JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"datalens/adapters/ingest"
	"datalens/adapters/stats/engine"
	"datalens/app"
	"datalens/internal/testkit"
)

var compact bool

var rootCmd = &cobra.Command{
	Use:   "datalens",
	Short: "Descriptive statistics for tabular data",
	Long:  "Datalens computes per-column summaries, histograms, and frequency counts over tabular data files.",
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a local CSV or XLSX file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(args[0])
	},
}

func init() {
	analyzeCmd.Flags().BoolVarP(&compact, "compact", "c", false, "print compact JSON instead of indented")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	log := slog.New(slog.DiscardHandler)
	repo := testkit.NewMemoryRecordRepository()

	uploads := app.NewUploadService(ingest.NewDataReader(log), repo, log)
	analysis := app.NewAnalysisService(repo, engine.NewSummarizer(), log)

	ctx := context.Background()
	if _, err := uploads.Ingest(ctx, path, f); err != nil {
		return err
	}

	report, err := analysis.Analyze(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(report)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
