// Package styles holds the fixed visual style sheet used to build resume documents.
package styles

// Paragraph style names referenced by document blocks.
const (
	Normal   = "Normal"
	Heading1 = "Heading1"
	Heading2 = "Heading2"
	Employer = "Employer"
	JobRole  = "JobRole"
)

// BulletListRef is the reference name of the single bullet list definition.
const BulletListRef = "resume-bullets"

// Page geometry in twips (1/1440 inch).
type Page struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Margin Margins `json:"margin"`
}

// Margins holds page margins in twips.
type Margins struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

// Fonts holds the font families.
type Fonts struct {
	Primary  string
	Fallback string
}

// Sizes holds the type scale in half-points.
type Sizes struct {
	Name          int
	SectionHeader int
	Body          int
	Small         int
}

// Colors holds hex RGB colors without a leading '#'.
type Colors struct {
	Black      string
	DarkGray   string
	AccentLink string
}

// Spacing holds paragraph spacing constants in twips.
type Spacing struct {
	AfterParagraph int
	AfterSection   int
	SectionGap     int
	LineSpacing    int
}

// Bullets holds bullet indentation in twips.
type Bullets struct {
	LeftIndent    int
	HangingIndent int
}

// ParagraphStyle is a named paragraph style definition. Sizes are half-points,
// spacing and tab positions are twips.
type ParagraphStyle struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	BasedOn  string `json:"based_on,omitempty"`
	Next     string `json:"next,omitempty"`
	Font     string `json:"font"`
	Size     int    `json:"size"`
	Bold     bool   `json:"bold,omitempty"`
	Italic   bool   `json:"italic,omitempty"`
	Color    string `json:"color,omitempty"`
	After    int    `json:"after"`
	Line     int    `json:"line"`
	RightTab int    `json:"right_tab,omitempty"` // 0 means no tab stop
}

// ListDefinition is a single-level bulleted list definition.
type ListDefinition struct {
	Reference string `json:"reference"`
	Glyph     string `json:"glyph"`
	Alignment string `json:"alignment"`
	Font      string `json:"font"`
	Left      int    `json:"left"`
	Hanging   int    `json:"hanging"`
}

// Registry is the complete style sheet. It is never mutated after construction.
type Registry struct {
	Page             Page
	Fonts            Fonts
	Sizes            Sizes
	Colors           Colors
	Spacing          Spacing
	Bullets          Bullets
	RightTabPosition int

	paragraphs map[string]ParagraphStyle
	order      []string
	bullet     ListDefinition
}

var defaultRegistry = newDefault()

// Default returns the process-wide resume style sheet.
func Default() *Registry {
	return defaultRegistry
}

func newDefault() *Registry {
	r := &Registry{
		Page: Page{
			Width:  12240,
			Height: 15840,
			Margin: Margins{Top: 720, Bottom: 720, Left: 720, Right: 720},
		},
		Fonts:            Fonts{Primary: "Calibri", Fallback: "Arial"},
		Sizes:            Sizes{Name: 40, SectionHeader: 28, Body: 21, Small: 20},
		Colors:           Colors{Black: "000000", DarkGray: "666666", AccentLink: "0563C1"},
		Spacing:          Spacing{AfterParagraph: 80, AfterSection: 0, SectionGap: 160, LineSpacing: 240},
		Bullets:          Bullets{LeftIndent: 288, HangingIndent: 288},
		RightTabPosition: 10800,
	}

	normal := ParagraphStyle{
		ID:    Normal,
		Name:  "Normal",
		Font:  r.Fonts.Primary,
		Size:  r.Sizes.Body,
		Color: r.Colors.Black,
		After: r.Spacing.AfterParagraph,
		Line:  r.Spacing.LineSpacing,
	}

	heading1 := normal
	heading1.ID, heading1.Name = Heading1, "Heading 1"
	heading1.BasedOn, heading1.Next = Normal, Normal
	heading1.Size = r.Sizes.Name
	heading1.Bold = true

	heading2 := normal
	heading2.ID, heading2.Name = Heading2, "Heading 2"
	heading2.BasedOn, heading2.Next = Normal, Normal
	heading2.Size = r.Sizes.SectionHeader
	heading2.Bold = true

	// Employer lines sit directly above the job role line.
	employer := normal
	employer.ID, employer.Name = Employer, "Employer"
	employer.BasedOn = Normal
	employer.Bold = true
	employer.After = 0
	employer.RightTab = r.RightTabPosition

	jobRole := normal
	jobRole.ID, jobRole.Name = JobRole, "Job Role"
	jobRole.BasedOn = Normal
	jobRole.Italic = true
	jobRole.RightTab = r.RightTabPosition

	r.order = []string{Normal, Heading1, Heading2, Employer, JobRole}
	r.paragraphs = map[string]ParagraphStyle{
		Normal:   normal,
		Heading1: heading1,
		Heading2: heading2,
		Employer: employer,
		JobRole:  jobRole,
	}

	r.bullet = ListDefinition{
		Reference: BulletListRef,
		Glyph:     "•",
		Alignment: "left",
		Font:      r.Fonts.Primary,
		Left:      r.Bullets.LeftIndent,
		Hanging:   r.Bullets.HangingIndent,
	}

	return r
}

// Paragraph returns the named paragraph style. Unknown names resolve to Normal.
func (r *Registry) Paragraph(name string) ParagraphStyle {
	if s, ok := r.paragraphs[name]; ok {
		return s
	}
	return r.paragraphs[Normal]
}

// HasParagraph reports whether name is a declared paragraph style.
func (r *Registry) HasParagraph(name string) bool {
	_, ok := r.paragraphs[name]
	return ok
}

// ParagraphStyles returns all paragraph styles in declaration order.
func (r *Registry) ParagraphStyles() []ParagraphStyle {
	out := make([]ParagraphStyle, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.paragraphs[name])
	}
	return out
}

// BulletList returns the bullet list definition.
func (r *Registry) BulletList() ListDefinition {
	return r.bullet
}
