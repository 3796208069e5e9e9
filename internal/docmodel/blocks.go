// Package docmodel builds the abstract, format-independent block tree of a resume document.
package docmodel

import (
	"encoding/json"

	"github.com/jonathan/resume-docx/internal/styles"
)

// BlockKind identifies the variant of a Block.
type BlockKind string

// Block kinds.
const (
	KindText     BlockKind = "text"
	KindListItem BlockKind = "list_item"
)

// Run is the smallest styled unit of text. Zero values inherit from the paragraph style.
type Run struct {
	Text   string `json:"text,omitempty"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
	Color  string `json:"color,omitempty"`
	Size   int    `json:"size,omitempty"`
	Tab    bool   `json:"tab,omitempty"`
}

// Block is either a TextBlock or a ListItemBlock.
type Block interface {
	Kind() BlockKind
	Content() []Run
}

// TextBlock is a paragraph in a named paragraph style.
type TextBlock struct {
	Style string
	Runs  []Run
}

// Kind implements Block.
func (TextBlock) Kind() BlockKind { return KindText }

// Content implements Block.
func (b TextBlock) Content() []Run { return b.Runs }

// MarshalJSON tags the block with its kind.
func (b TextBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  BlockKind `json:"kind"`
		Style string    `json:"style"`
		Runs  []Run     `json:"runs"`
	}{KindText, b.Style, nonNil(b.Runs)})
}

// ListItemBlock is one bulleted list entry referencing a list definition.
type ListItemBlock struct {
	List string
	Runs []Run
}

// Kind implements Block.
func (ListItemBlock) Kind() BlockKind { return KindListItem }

// Content implements Block.
func (b ListItemBlock) Content() []Run { return b.Runs }

// MarshalJSON tags the block with its kind.
func (b ListItemBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind BlockKind `json:"kind"`
		List string    `json:"list"`
		Runs []Run     `json:"runs"`
	}{KindListItem, b.List, nonNil(b.Runs)})
}

// Document is the output of one build: page setup, the style and list
// definitions referenced by name, and the ordered block sequence.
type Document struct {
	Title           string                  `json:"title"`
	Page            styles.Page             `json:"page"`
	DefaultFont     string                  `json:"default_font"`
	DefaultSize     int                     `json:"default_size"`
	DefaultColor    string                  `json:"default_color"`
	Styles          []styles.ParagraphStyle `json:"styles"`
	ListDefinitions []styles.ListDefinition `json:"list_definitions"`
	Blocks          []Block                 `json:"blocks"`
}

// Text returns the concatenated text of a block, rendering tab runs as '\t'.
func Text(b Block) string {
	var out []byte
	for _, r := range b.Content() {
		if r.Tab {
			out = append(out, '\t')
			continue
		}
		out = append(out, r.Text...)
	}
	return string(out)
}

// IsBlank reports whether b is an empty separator paragraph.
func IsBlank(b Block) bool {
	return b.Kind() == KindText && len(b.Content()) == 0
}

func nonNil(runs []Run) []Run {
	if runs == nil {
		return []Run{}
	}
	return runs
}
