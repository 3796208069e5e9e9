package docmodel

import (
	"errors"
	"strings"

	"github.com/jonathan/resume-docx/internal/styles"
	"github.com/jonathan/resume-docx/internal/types"
)

// DefaultSummaryHeading is used when the summary has no heading of its own.
const DefaultSummaryHeading = "PROFESSIONAL SUMMARY"

const (
	contactSeparator = " | "
	skillSeparator   = ", "
)

// Builder turns resume records into documents using a fixed style registry.
// A Builder holds no per-build state and may be shared between goroutines.
type Builder struct {
	styles *styles.Registry
}

// NewBuilder returns a Builder over reg. A nil reg uses styles.Default().
func NewBuilder(reg *styles.Registry) *Builder {
	if reg == nil {
		reg = styles.Default()
	}
	return &Builder{styles: reg}
}

// Build renders r with the default style registry.
func Build(r *types.Resume) (*Document, error) {
	return NewBuilder(nil).Build(r)
}

// Build validates r and emits its blocks in a single top-to-bottom pass.
// r is not modified.
func (b *Builder) Build(r *types.Resume) (*Document, error) {
	if err := r.Validate(); err != nil {
		var fe *types.FieldError
		if errors.As(err, &fe) {
			return nil, &InvalidResumeData{Path: fe.Path, Message: fe.Message, Cause: err}
		}
		return nil, &InvalidResumeData{Path: "(root)", Message: err.Error(), Cause: err}
	}

	e := &emitter{reg: b.styles}

	e.text(styles.Heading1, Run{Text: r.Name, Bold: true, Size: b.styles.Sizes.Name})
	e.text(styles.Normal, Run{Text: strings.Join(r.Contact.Items, contactSeparator)})

	if r.Summary != nil {
		heading := r.Summary.Heading
		if heading == "" {
			heading = DefaultSummaryHeading
		}
		e.blank()
		e.text(styles.Heading2, Run{Text: heading})
		e.text(styles.Normal, Run{Text: r.Summary.Text})
	}

	for _, s := range r.Sections {
		e.blank()
		e.section(s)
	}

	return &Document{
		Title:           r.Name,
		Page:            b.styles.Page,
		DefaultFont:     b.styles.Fonts.Primary,
		DefaultSize:     b.styles.Sizes.Body,
		DefaultColor:    b.styles.Colors.Black,
		Styles:          b.styles.ParagraphStyles(),
		ListDefinitions: []styles.ListDefinition{b.styles.BulletList()},
		Blocks:          e.blocks,
	}, nil
}

// emitter accumulates the blocks of one build.
type emitter struct {
	reg    *styles.Registry
	blocks []Block
}

func (e *emitter) text(style string, runs ...Run) {
	e.blocks = append(e.blocks, TextBlock{Style: style, Runs: runs})
}

func (e *emitter) blank() {
	e.blocks = append(e.blocks, TextBlock{Style: styles.Normal})
}

func (e *emitter) bullet(runs ...Run) {
	e.blocks = append(e.blocks, ListItemBlock{List: styles.BulletListRef, Runs: runs})
}

func (e *emitter) bullets(items []string) {
	for _, item := range items {
		e.bullet(Run{Text: item})
	}
}

// splitLine emits left text with right text pushed to the style's right tab
// stop. Without right text there is no tab run.
func (e *emitter) splitLine(style, left, right string) {
	runs := []Run{{Text: left}}
	if right != "" {
		runs = append(runs, Run{Tab: true}, Run{Text: right})
	}
	e.text(style, runs...)
}

func (e *emitter) section(s types.Section) {
	e.text(styles.Heading2, Run{Text: s.Heading})

	switch c := s.Content.(type) {
	case types.SkillsContent:
		e.skills(c)
	case types.ExperienceContent:
		e.experience(c)
	case types.EducationContent:
		e.education(c)
	case types.CertificationsContent:
		e.certifications(c)
	case types.ProjectsContent:
		e.projects(c)
	default:
		// Unknown or empty content: heading only.
	}
}

func (e *emitter) skills(groups types.SkillsContent) {
	for _, g := range groups {
		runs := []Run{{Text: g.Label + ": ", Bold: true}}
		if len(g.Items) > 0 {
			runs = append(runs, Run{Text: strings.Join(g.Items, skillSeparator)})
		}
		e.text(styles.Normal, runs...)
	}
}

func (e *emitter) experience(entries types.ExperienceContent) {
	for _, exp := range entries {
		e.splitLine(styles.Employer, exp.Company, exp.Dates)
		e.splitLine(styles.JobRole, exp.Title, exp.Location)
		e.bullets(exp.Bullets)
	}
}

func (e *emitter) education(entries types.EducationContent) {
	for _, edu := range entries {
		e.splitLine(styles.Employer, edu.Institution, edu.Location)
		e.splitLine(styles.JobRole, edu.Degree, edu.Dates)
		e.bullets(edu.Details)
	}
}

func (e *emitter) certifications(certs types.CertificationsContent) {
	for _, cert := range certs {
		runs := []Run{{Text: cert.Name, Bold: true}}
		if cert.Issuer != "" {
			runs = append(runs, Run{Text: " – " + cert.Issuer})
		}
		if cert.Date != "" {
			runs = append(runs, Run{Text: " (" + cert.Date + ")"})
		}
		e.bullet(runs...)
	}
}

func (e *emitter) projects(projects types.ProjectsContent) {
	for _, p := range projects {
		left := p.Name
		if p.Technologies != "" {
			left += " | " + p.Technologies
		}
		e.splitLine(styles.Employer, left, p.Dates)

		if p.Link != "" {
			e.text(styles.Normal, Run{Text: p.Link, Color: e.reg.Colors.AccentLink})
		}
		e.bullets(p.Bullets)
	}
}
