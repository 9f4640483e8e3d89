package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Analyze resume text files and rank job roles",
	Long:  "Analyze one or more plain-text resume files: extract a structured profile from each and rank the role catalog by suitability. Results are printed as JSON.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeConfigFile string
	analyzeDataDir    string
	analyzeTopN       int
	analyzeWorkers    int
	analyzePretty     bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigFile, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVarP(&analyzeDataDir, "data", "d", "", "Directory holding the reference tables (default $RESUME_ANALYZER_DATA or ./data)")
	analyzeCmd.Flags().IntVar(&analyzeTopN, "top", 0, "Number of role predictions to report per resume (0 = all)")
	analyzeCmd.Flags().IntVar(&analyzeWorkers, "workers", 4, "Parallel workers for batch analysis")
	analyzeCmd.Flags().BoolVar(&analyzePretty, "pretty", false, "Indent JSON output")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print human-readable summaries to stderr")

	rootCmd.AddCommand(analyzeCmd)
}

// Report is the per-resume analysis result printed by the analyze command.
type Report struct {
	ID          string                 `json:"id"`
	File        string                 `json:"file"`
	Profile     *types.Profile         `json:"profile"`
	Predictions []types.RolePrediction `json:"predictions"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.DataDir)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d skills, %d roles from %s", len(cat.Skills), len(cat.Roles), cfg.DataDir)

	parser := parsing.NewParser(cat)
	scorer := scoring.NewScorer(cat.Roles)

	reports := make([]*Report, len(args))

	// Each parse-and-score call is a pure function of its text plus the
	// immutable catalog, so files can be analyzed in parallel.
	g := new(errgroup.Group)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i, file := range args {
		i, file := i, file
		g.Go(func() error {
			text, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read resume file %s: %w", file, err)
			}

			profile := parser.Parse(string(text))
			predictions := scorer.Rank(profile)
			if cfg.TopN > 0 && len(predictions) > cfg.TopN {
				predictions = predictions[:cfg.TopN]
			}

			reports[i] = &Report{
				ID:          uuid.NewString(),
				File:        file,
				Profile:     profile,
				Predictions: predictions,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stderr)
		for _, report := range reports {
			printer.PrintProfile(report.Profile)
			printer.PrintPredictions(report.Predictions)
		}
	}

	var out any = reports
	if len(reports) == 1 {
		out = reports[0]
	}
	return printJSON(out, cfg.Pretty)
}

// resolveConfig merges the config file (if any) with command-line flags.
// Flags that were explicitly set win over file values.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if analyzeConfigFile != "" {
		loaded, err := config.LoadConfig(analyzeConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = analyzeDataDir
	}
	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("RESUME_ANALYZER_DATA")
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	if cmd.Flags().Changed("top") || cfg.TopN == 0 {
		cfg.TopN = analyzeTopN
	}
	if cmd.Flags().Changed("workers") || cfg.Workers == 0 {
		cfg.Workers = analyzeWorkers
	}
	if cmd.Flags().Changed("pretty") {
		cfg.Pretty = analyzePretty
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printJSON(v any, pretty bool) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
