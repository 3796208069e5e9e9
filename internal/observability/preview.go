package observability

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/resume-docx/internal/docmodel"
	"github.com/jonathan/resume-docx/internal/styles"
)

var (
	heading1Style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})
	heading2Style = lipgloss.NewStyle().Bold(true)
	styleTagStyle = lipgloss.NewStyle().Faint(true)
)

// RenderPreview renders a document's block tree for a terminal: one line per
// block, tagged with its style or list, with run formatting applied. Tab runs
// are rendered as a gap padded to width.
func RenderPreview(doc *docmodel.Document, width int) string {
	if doc == nil {
		return ""
	}

	tagWidth := tagColumnWidth(doc)
	var sb strings.Builder
	for _, block := range doc.Blocks {
		var tag, prefix string
		switch b := block.(type) {
		case docmodel.TextBlock:
			tag = b.Style
		case docmodel.ListItemBlock:
			tag = b.List
			prefix = "  • "
		}

		if docmodel.IsBlank(block) {
			sb.WriteString("\n")
			continue
		}

		line := prefix + renderRuns(block.Content(), width-tagWidth-1-lipgloss.Width(prefix))
		switch tag {
		case styles.Heading1:
			line = heading1Style.Render(line)
		case styles.Heading2:
			line = heading2Style.Render(line)
		}

		sb.WriteString(styleTagStyle.Render(pad(tag, tagWidth)))
		sb.WriteString(" ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// tagColumnWidth fits the longest style or list name the document declares.
func tagColumnWidth(doc *docmodel.Document) int {
	w := 0
	for _, s := range doc.Styles {
		w = max(w, lipgloss.Width(s.ID))
	}
	for _, l := range doc.ListDefinitions {
		w = max(w, lipgloss.Width(l.Reference))
	}
	return w
}

// renderRuns styles each run and right-aligns the text after a tab run.
func renderRuns(runs []docmodel.Run, width int) string {
	var left, right strings.Builder
	target := &left
	for _, r := range runs {
		if r.Tab {
			target = &right
			continue
		}
		target.WriteString(runStyle(r).Render(r.Text))
	}

	if right.Len() == 0 {
		return left.String()
	}
	gap := max(width-lipgloss.Width(left.String())-lipgloss.Width(right.String()), 2)
	return left.String() + strings.Repeat(" ", gap) + right.String()
}

func runStyle(r docmodel.Run) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(r.Bold).Italic(r.Italic)
	if r.Color != "" {
		s = s.Foreground(lipgloss.Color("#" + r.Color))
	}
	return s
}
