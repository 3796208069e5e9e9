// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-docx/internal/docmodel"
	"github.com/jonathan/resume-docx/internal/styles"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// pad right-pads s with spaces to n runes.
func pad(s string, n int) string {
	if count := utf8.RuneCountInString(s); count < n {
		return s + strings.Repeat(" ", n-count)
	}
	return s
}

// PrintBuildSummary outputs block counts for a built document.
func (p *Printer) PrintBuildSummary(source string, doc *docmodel.Document) {
	if doc == nil {
		return
	}

	byStyle := make(map[string]int)
	var bullets, blanks int
	var headings []string
	for _, b := range doc.Blocks {
		switch block := b.(type) {
		case docmodel.ListItemBlock:
			bullets++
		case docmodel.TextBlock:
			if docmodel.IsBlank(block) {
				blanks++
				continue
			}
			byStyle[block.Style]++
			if block.Style == styles.Heading2 {
				headings = append(headings, docmodel.Text(block))
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:   %s\n", source))
	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Title))
	sb.WriteString(fmt.Sprintf("Blocks:   %d (%d blank, %d bullets)\n", len(doc.Blocks), blanks, bullets))
	sb.WriteString("\n")

	sb.WriteString("Paragraphs by style:\n")
	for _, s := range doc.Styles {
		if n := byStyle[s.ID]; n > 0 {
			sb.WriteString(fmt.Sprintf("  • %-10s %d\n", s.ID, n))
		}
	}

	if len(headings) > 0 {
		sb.WriteString("\nSections:\n")
		count := min(len(headings), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", headings[i]))
		}
		if len(headings) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(headings)-maxItemsToShow))
		}
	}

	p.printBox("BUILD SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs the outcome of validating one resume file.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(source string, err error) {
	if err == nil {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate("✅ VALID: "+source, boxWidth-4), boxWidth-4))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source: %s\n\n", source))
	for _, line := range strings.Split(strings.TrimSpace(err.Error()), "\n") {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", strings.TrimSpace(line)))
	}

	p.printBox("INVALID RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// BuildResult is the outcome of building one input in a batch.
type BuildResult struct {
	Source string
	Output string
	Err    error
}

// PrintBatchSummary outputs per-input outcomes of a batch build.
func (p *Printer) PrintBatchSummary(results []BuildResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			sb.WriteString(fmt.Sprintf("✗ %s\n", r.Source))
			continue
		}
		sb.WriteString(fmt.Sprintf("✓ %s → %s\n", r.Source, r.Output))
	}
	sb.WriteString(fmt.Sprintf("\n%d built, %d failed", len(results)-failed, failed))

	p.printBox("BATCH BUILD", sb.String())
}
