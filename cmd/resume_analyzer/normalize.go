package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/parsing"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [skills...]",
	Short: "Resolve raw skill names to canonical form",
	Long:  "Resolve each given skill name to its canonical form using the synonym map and heuristic rules, printing one 'raw -> canonical' line per input.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNormalize,
}

var normalizeDataDir string

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeDataDir, "data", "d", "", "Directory holding the reference tables (default $RESUME_ANALYZER_DATA or ./data)")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(_ *cobra.Command, args []string) error {
	dataDir := normalizeDataDir
	if dataDir == "" {
		dataDir = os.Getenv("RESUME_ANALYZER_DATA")
	}
	if dataDir == "" {
		dataDir = "data"
	}

	synonyms, err := catalog.LoadSynonyms(filepath.Join(dataDir, catalog.SynonymsFile))
	if err != nil {
		return err
	}

	normalizer := parsing.NewNormalizer(synonyms)
	for _, raw := range args {
		fmt.Printf("%-30s -> %s\n", raw, normalizer.Normalize(raw))
	}
	return nil
}
