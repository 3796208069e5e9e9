package main

import (
	"fmt"

	"github.com/jonathan/resume-docx/internal/observability"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <resume.json|resume.yaml>",
	Short: "Print the document block tree to the terminal",
	Long:  "Builds the document model for one resume and prints each block with its paragraph style or list, without writing a .docx file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

var previewWidth int

func init() {
	previewCmd.Flags().IntVarP(&previewWidth, "width", "w", 100, "Line width used to right-align tabbed text")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	doc, err := buildDocument(args[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), observability.RenderPreview(doc, previewWidth))
	return err
}
