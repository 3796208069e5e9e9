// Package packer serializes a document block tree into a WordprocessingML (.docx) package.
package packer

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-docx/internal/docmodel"
	"github.com/jonathan/resume-docx/internal/styles"
	"golang.org/x/text/unicode/norm"
)

// ContentType is the MIME type of a .docx file.
const ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DefaultFilename is the download name used for generated documents.
const DefaultFilename = "resume.docx"

// Fixed zip timestamp so identical documents pack to identical bytes.
var epoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Page header/footer distance and gutter in twips.
const (
	headerDistance = 708
	footerDistance = 708
)

// PackError reports a failure writing one part of the package.
type PackError struct {
	Part    string
	Message string
	Cause   error
}

func (e *PackError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pack error: %s: %s: %v", e.Part, e.Message, e.Cause)
	}
	return fmt.Sprintf("pack error: %s: %s", e.Part, e.Message)
}

func (e *PackError) Unwrap() error {
	return e.Cause
}

// Bytes packs doc and returns the .docx bytes.
func Bytes(doc *docmodel.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write packs doc into a .docx package written to w. Styles and the list
// definition are resolved by name; a block referencing an undeclared name
// is an error.
func Write(w io.Writer, doc *docmodel.Document) error {
	if doc == nil {
		return &PackError{Part: "word/document.xml", Message: "document is nil"}
	}

	numIDs := make(map[string]int, len(doc.ListDefinitions))
	for i, list := range doc.ListDefinitions {
		numIDs[list.Reference] = i + 1
	}
	declared := make(map[string]bool, len(doc.Styles))
	for _, s := range doc.Styles {
		declared[s.ID] = true
	}

	body, err := buildDocument(doc, declared, numIDs)
	if err != nil {
		return err
	}

	parts := []struct {
		name string
		data func() ([]byte, error)
	}{
		{"[Content_Types].xml", raw(contentTypesXML)},
		{"_rels/.rels", raw(packageRelsXML)},
		{"docProps/core.xml", marshalPart(corePropsXML{XmlnsCP: nsCP, XmlnsDC: nsDC, Title: sanitize(doc.Title), Creator: sanitize(doc.Title)})},
		{"word/_rels/document.xml.rels", raw(documentRelsXML)},
		{"word/document.xml", marshalPart(body)},
		{"word/styles.xml", marshalPart(buildStyles(doc))},
		{"word/numbering.xml", marshalPart(buildNumbering(doc))},
	}

	zw := zip.NewWriter(w)
	for _, part := range parts {
		data, err := part.data()
		if err != nil {
			return &PackError{Part: part.name, Message: "failed to marshal XML", Cause: err}
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: part.name, Method: zip.Deflate, Modified: epoch})
		if err != nil {
			return &PackError{Part: part.name, Message: "failed to create zip entry", Cause: err}
		}
		if _, err := fw.Write(data); err != nil {
			return &PackError{Part: part.name, Message: "failed to write zip entry", Cause: err}
		}
	}
	if err := zw.Close(); err != nil {
		return &PackError{Part: "(zip)", Message: "failed to finalize package", Cause: err}
	}
	return nil
}

func raw(s string) func() ([]byte, error) {
	return func() ([]byte, error) { return []byte(s), nil }
}

func marshalPart(v any) func() ([]byte, error) {
	return func() ([]byte, error) {
		data, err := xml.Marshal(v)
		if err != nil {
			return nil, err
		}
		return append([]byte(xml.Header), data...), nil
	}
}

func buildDocument(doc *docmodel.Document, declared map[string]bool, numIDs map[string]int) (documentXML, error) {
	paragraphs := make([]paragraphXML, 0, len(doc.Blocks))
	for i, block := range doc.Blocks {
		var props *paragraphPropsXML
		switch b := block.(type) {
		case docmodel.TextBlock:
			if !declared[b.Style] {
				return documentXML{}, &PackError{Part: "word/document.xml", Message: fmt.Sprintf("block %d references undeclared style %q", i, b.Style)}
			}
			// Normal is the default paragraph style and needs no reference.
			if b.Style != styles.Normal {
				props = &paragraphPropsXML{Style: &valXML{Val: b.Style}}
			}
		case docmodel.ListItemBlock:
			numID, ok := numIDs[b.List]
			if !ok {
				return documentXML{}, &PackError{Part: "word/document.xml", Message: fmt.Sprintf("block %d references undeclared list %q", i, b.List)}
			}
			props = &paragraphPropsXML{NumPr: &numPrXML{ILvl: valXML{Val: "0"}, NumID: valXML{Val: strconv.Itoa(numID)}}}
		default:
			return documentXML{}, &PackError{Part: "word/document.xml", Message: fmt.Sprintf("block %d has unsupported type %T", i, block)}
		}

		runs := make([]runXML, 0, len(block.Content()))
		for _, r := range block.Content() {
			runs = append(runs, buildRun(r))
		}
		paragraphs = append(paragraphs, paragraphXML{Props: props, Runs: runs})
	}

	m := doc.Page.Margin
	return documentXML{
		XmlnsW: nsW,
		XmlnsR: nsR,
		Body: bodyXML{
			Paragraphs: paragraphs,
			SectPr: sectPrXML{
				PageSize: pageSizeXML{W: doc.Page.Width, H: doc.Page.Height},
				PageMargin: pageMarginXML{
					Top: m.Top, Right: m.Right, Bottom: m.Bottom, Left: m.Left,
					Header: headerDistance, Footer: footerDistance,
				},
			},
		},
	}, nil
}

func buildRun(r docmodel.Run) runXML {
	if r.Tab {
		return runXML{Tab: &onOff{}}
	}

	var props runPropsXML
	set := false
	if r.Bold {
		props.Bold, set = &onOff{}, true
	}
	if r.Italic {
		props.Ital, set = &onOff{}, true
	}
	if r.Color != "" {
		props.Color, set = &valXML{Val: r.Color}, true
	}
	if r.Size > 0 {
		size := strconv.Itoa(r.Size)
		props.Size, props.SizeC, set = &valXML{Val: size}, &valXML{Val: size}, true
	}

	out := runXML{Text: &textXML{Space: "preserve", Value: sanitize(r.Text)}}
	if set {
		out.Props = &props
	}
	return out
}

func buildStyles(doc *docmodel.Document) stylesXML {
	size := strconv.Itoa(doc.DefaultSize)
	out := stylesXML{
		XmlnsW: nsW,
		DocDefaults: docDefaultsXML{
			RunDefault: runDefaultXML{Props: runPropsXML{
				Fonts: fonts(doc.DefaultFont),
				Color: &valXML{Val: doc.DefaultColor},
				Size:  &valXML{Val: size},
				SizeC: &valXML{Val: size},
			}},
		},
	}

	for _, s := range doc.Styles {
		if s.ID == styles.Normal {
			out.DocDefaults.ParagraphDefault.Props.Spacing = &spacingXML{After: s.After, Line: s.Line, LineRule: "auto"}
		}
		out.Styles = append(out.Styles, buildStyle(s))
	}
	return out
}

func buildStyle(s styles.ParagraphStyle) styleXML {
	out := styleXML{
		Type:    "paragraph",
		StyleID: s.ID,
		Name:    valXML{Val: s.Name},
		QFormat: &onOff{},
		PPr:     &paragraphPropsXML{Spacing: &spacingXML{After: s.After, Line: s.Line, LineRule: "auto"}},
	}
	if s.ID == styles.Normal {
		out.Default = "1"
	}
	if s.BasedOn != "" {
		out.BasedOn = &valXML{Val: s.BasedOn}
	}
	if s.Next != "" {
		out.Next = &valXML{Val: s.Next}
	}
	if s.RightTab > 0 {
		out.PPr.Tabs = &tabsXML{Tabs: []tabStopXML{{Val: "right", Pos: s.RightTab}}}
	}

	size := strconv.Itoa(s.Size)
	rpr := &runPropsXML{Fonts: fonts(s.Font), Size: &valXML{Val: size}, SizeC: &valXML{Val: size}}
	if s.Bold {
		rpr.Bold = &onOff{}
	}
	if s.Italic {
		rpr.Ital = &onOff{}
	}
	if s.Color != "" {
		rpr.Color = &valXML{Val: s.Color}
	}
	out.RPr = rpr
	return out
}

func buildNumbering(doc *docmodel.Document) numberingXML {
	out := numberingXML{XmlnsW: nsW}
	for i, list := range doc.ListDefinitions {
		out.AbstractNums = append(out.AbstractNums, abstractNumXML{
			ID:        i,
			MultiType: valXML{Val: "singleLevel"},
			Levels: []levelXML{{
				ILvl:    0,
				Start:   valXML{Val: "1"},
				NumFmt:  valXML{Val: "bullet"},
				LvlText: valXML{Val: list.Glyph},
				LvlJc:   valXML{Val: list.Alignment},
				PPr:     paragraphPropsXML{Indent: &indentXML{Left: list.Left, Hanging: list.Hanging}},
				RPr:     runPropsXML{Fonts: fonts(list.Font)},
			}},
		})
		out.Nums = append(out.Nums, numXML{NumID: i + 1, AbstractNumID: valXML{Val: strconv.Itoa(i)}})
	}
	return out
}

func fonts(name string) *fontsXML {
	if name == "" {
		return nil
	}
	return &fontsXML{ASCII: name, HAnsi: name, CS: name}
}

// sanitize normalizes text to NFC and drops characters XML 1.0 cannot carry.
func sanitize(s string) string {
	s = norm.NFC.String(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case r < 0x20, r == 0xFFFE, r == 0xFFFF:
			return -1
		case r >= 0xD800 && r <= 0xDFFF:
			return -1
		}
		return r
	}, s)
}
