package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/catalog"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the job role catalog",
	Long:  "List every job role in the catalog with its required skill levels, as JSON.",
	RunE:  runRoles,
}

var rolesDataDir string

func init() {
	rolesCmd.Flags().StringVarP(&rolesDataDir, "data", "d", "", "Directory holding the reference tables (default $RESUME_ANALYZER_DATA or ./data)")

	rootCmd.AddCommand(rolesCmd)
}

func runRoles(_ *cobra.Command, _ []string) error {
	dataDir := rolesDataDir
	if dataDir == "" {
		dataDir = os.Getenv("RESUME_ANALYZER_DATA")
	}
	if dataDir == "" {
		dataDir = "data"
	}

	roles, err := catalog.LoadRoles(filepath.Join(dataDir, catalog.RolesFile))
	if err != nil {
		return err
	}
	return printJSON(roles, true)
}
