package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-docx/internal/docmodel"
	"github.com/jonathan/resume-docx/internal/observability"
	"github.com/jonathan/resume-docx/internal/packer"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var buildCmd = &cobra.Command{
	Use:   "build <resume.json|resume.yaml>...",
	Short: "Build .docx documents from resume records",
	Long: `Builds one .docx document per input file. Inputs may be JSON or YAML.

With a single input, --out may name the output file; otherwise it names the
output directory and each document is named after its input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBuild,
}

var (
	buildOut         string
	buildConcurrency int
	buildVerbose     bool
	buildConfigFile  string
)

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "Output file (single input) or directory (default: output_dir or current directory)")
	buildCmd.Flags().IntVarP(&buildConcurrency, "concurrency", "j", 0, "Maximum parallel builds (default: config concurrency)")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print a build summary for each document")
	buildCmd.Flags().StringVarP(&buildConfigFile, "config", "c", "", "Path to JSON config file")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(buildConfigFile)
	if err != nil {
		return err
	}
	if buildConcurrency > 0 {
		cfg.Concurrency = buildConcurrency
	}
	verbose := buildVerbose || cfg.Verbose

	targets, err := resolveOutputs(args, buildOut, cfg.OutputDir)
	if err != nil {
		return err
	}

	results, docs := buildAll(args, targets, cfg.Concurrency)

	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)
	if verbose && len(results) > 1 {
		printer.PrintBatchSummary(results)
	}

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Source, r.Err))
			continue
		}
		_, _ = fmt.Fprintf(out, "Wrote %s\n", r.Output)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d builds failed: %w", len(errs), len(results), errors.Join(errs...))
	}

	if verbose {
		for i, doc := range docs {
			printer.PrintBuildSummary(args[i], doc)
		}
	}
	return nil
}

// resolveOutputs maps every input to its output path. A single input with an
// --out ending in .docx is written to exactly that path.
func resolveOutputs(inputs []string, out, defaultDir string) ([]string, error) {
	if len(inputs) == 1 && strings.EqualFold(filepath.Ext(out), ".docx") {
		return []string{out}, nil
	}

	dir := out
	if dir == "" {
		dir = defaultDir
	}
	if dir == "" {
		dir = "."
	}

	targets := make([]string, len(inputs))
	seen := make(map[string]string, len(inputs))
	for i, input := range inputs {
		target := filepath.Join(dir, outputName(input))
		if prev, ok := seen[target]; ok {
			return nil, fmt.Errorf("inputs %s and %s would both write %s", prev, input, target)
		}
		seen[target] = input
		targets[i] = target
	}
	return targets, nil
}

// buildAll builds every input concurrently, at most limit at a time. Failures are
// reported per input and do not stop the other builds.
func buildAll(inputs, targets []string, limit int) ([]observability.BuildResult, []*docmodel.Document) {
	results := make([]observability.BuildResult, len(inputs))
	docs := make([]*docmodel.Document, len(inputs))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := range inputs {
		g.Go(func() error {
			results[i] = observability.BuildResult{Source: inputs[i], Output: targets[i]}
			docs[i], results[i].Err = buildFile(inputs[i], targets[i])
			return nil
		})
	}
	_ = g.Wait()

	return results, docs
}

func buildDocument(input string) (*docmodel.Document, error) {
	resume, err := loadResume(input)
	if err != nil {
		return nil, err
	}
	return docmodel.Build(resume)
}

// buildFile builds input and writes the package to target through a temporary
// file, so a failed build never leaves a partial document behind.
func buildFile(input, target string) (*docmodel.Document, error) {
	doc, err := buildDocument(input)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".resume-*.docx")
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := writeDocument(tmp, doc); err != nil {
		_ = tmp.Close()
		return nil, err
	}
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("failed to set output file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close output file: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return nil, fmt.Errorf("failed to write output file: %w", err)
	}
	return doc, nil
}

func writeDocument(w io.Writer, doc *docmodel.Document) error {
	if err := packer.Write(w, doc); err != nil {
		return fmt.Errorf("failed to pack document: %w", err)
	}
	return nil
}
