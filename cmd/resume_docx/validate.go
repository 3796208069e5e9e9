package main

import (
	"fmt"

	"github.com/jonathan/resume-docx/internal/observability"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <resume.json|resume.yaml>...",
	Short: "Check resume records without writing documents",
	Long:  "Runs the schema check, decoding and required-field validation for each input and reports every failure.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	printer := observability.NewPrinter(cmd.OutOrStdout())

	failed := 0
	for _, input := range args {
		err := validateFile(input)
		printer.PrintValidation(input, err)
		if err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d resumes are invalid", failed, len(args))
	}
	return nil
}

func validateFile(input string) error {
	_, err := buildDocument(input)
	return err
}
