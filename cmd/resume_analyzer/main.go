// Package main provides the resume analyzer CLI: parse resume text into a
// structured profile and rank job roles against it.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume analysis and role recommendation",
	Long:  "Resume Analyzer extracts skills, experience, and education from raw resume text and scores the resulting profile against a catalog of job role skill requirements.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
