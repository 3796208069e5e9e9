// Package main provides the resume_docx CLI: build .docx resumes from JSON or YAML
// records, preview and validate them, and serve the HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "resume_docx",
	Short:         "Resume document generator",
	Long:          "resume_docx turns structured resume records into styled Word (.docx) documents, from the command line or over HTTP.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
