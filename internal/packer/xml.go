package packer

import "encoding/xml"

// XML namespaces used in DOCX files
const (
	nsW  = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsCP = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDC = "http://purl.org/dc/elements/1.1/"
)

// onOff is an empty toggle element such as <w:b/>.
type onOff struct{}

// valXML is an element carrying a single w:val attribute.
type valXML struct {
	Val string `xml:"w:val,attr"`
}

// documentXML is word/document.xml.
type documentXML struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	XmlnsR  string   `xml:"xmlns:r,attr"`
	Body    bodyXML  `xml:"w:body"`
}

type bodyXML struct {
	Paragraphs []paragraphXML `xml:"w:p"`
	SectPr     sectPrXML      `xml:"w:sectPr"`
}

type paragraphXML struct {
	Props *paragraphPropsXML `xml:"w:pPr,omitempty"`
	Runs  []runXML           `xml:"w:r"`
}

// paragraphPropsXML keeps the element order required by the schema.
type paragraphPropsXML struct {
	Style   *valXML     `xml:"w:pStyle,omitempty"`
	NumPr   *numPrXML   `xml:"w:numPr,omitempty"`
	Tabs    *tabsXML    `xml:"w:tabs,omitempty"`
	Spacing *spacingXML `xml:"w:spacing,omitempty"`
	Indent  *indentXML  `xml:"w:ind,omitempty"`
	Jc      *valXML     `xml:"w:jc,omitempty"`
}

type numPrXML struct {
	ILvl  valXML `xml:"w:ilvl"`
	NumID valXML `xml:"w:numId"`
}

type tabsXML struct {
	Tabs []tabStopXML `xml:"w:tab"`
}

type tabStopXML struct {
	Val string `xml:"w:val,attr"`
	Pos int    `xml:"w:pos,attr"`
}

type spacingXML struct {
	After    int    `xml:"w:after,attr"`
	Line     int    `xml:"w:line,attr,omitempty"`
	LineRule string `xml:"w:lineRule,attr,omitempty"`
}

type indentXML struct {
	Left    int `xml:"w:left,attr"`
	Hanging int `xml:"w:hanging,attr"`
}

type runXML struct {
	Props *runPropsXML `xml:"w:rPr,omitempty"`
	Tab   *onOff       `xml:"w:tab,omitempty"`
	Text  *textXML     `xml:"w:t,omitempty"`
}

type runPropsXML struct {
	Fonts *fontsXML `xml:"w:rFonts,omitempty"`
	Bold  *onOff    `xml:"w:b,omitempty"`
	Ital  *onOff    `xml:"w:i,omitempty"`
	Color *valXML   `xml:"w:color,omitempty"`
	Size  *valXML   `xml:"w:sz,omitempty"`
	SizeC *valXML   `xml:"w:szCs,omitempty"`
}

type fontsXML struct {
	ASCII string `xml:"w:ascii,attr"`
	HAnsi string `xml:"w:hAnsi,attr"`
	CS    string `xml:"w:cs,attr"`
}

type textXML struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

type sectPrXML struct {
	PageSize   pageSizeXML   `xml:"w:pgSz"`
	PageMargin pageMarginXML `xml:"w:pgMar"`
}

type pageSizeXML struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type pageMarginXML struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

// stylesXML is word/styles.xml.
type stylesXML struct {
	XMLName     xml.Name       `xml:"w:styles"`
	XmlnsW      string         `xml:"xmlns:w,attr"`
	DocDefaults docDefaultsXML `xml:"w:docDefaults"`
	Styles      []styleXML     `xml:"w:style"`
}

type docDefaultsXML struct {
	RunDefault       runDefaultXML       `xml:"w:rPrDefault"`
	ParagraphDefault paragraphDefaultXML `xml:"w:pPrDefault"`
}

type runDefaultXML struct {
	Props runPropsXML `xml:"w:rPr"`
}

type paragraphDefaultXML struct {
	Props paragraphPropsXML `xml:"w:pPr"`
}

type styleXML struct {
	Type    string             `xml:"w:type,attr"`
	StyleID string             `xml:"w:styleId,attr"`
	Default string             `xml:"w:default,attr,omitempty"`
	Name    valXML             `xml:"w:name"`
	BasedOn *valXML            `xml:"w:basedOn,omitempty"`
	Next    *valXML            `xml:"w:next,omitempty"`
	QFormat *onOff             `xml:"w:qFormat,omitempty"`
	PPr     *paragraphPropsXML `xml:"w:pPr,omitempty"`
	RPr     *runPropsXML       `xml:"w:rPr,omitempty"`
}

// numberingXML is word/numbering.xml.
type numberingXML struct {
	XMLName      xml.Name         `xml:"w:numbering"`
	XmlnsW       string           `xml:"xmlns:w,attr"`
	AbstractNums []abstractNumXML `xml:"w:abstractNum"`
	Nums         []numXML         `xml:"w:num"`
}

type abstractNumXML struct {
	ID        int        `xml:"w:abstractNumId,attr"`
	MultiType valXML     `xml:"w:multiLevelType"`
	Levels    []levelXML `xml:"w:lvl"`
}

type levelXML struct {
	ILvl    int               `xml:"w:ilvl,attr"`
	Start   valXML            `xml:"w:start"`
	NumFmt  valXML            `xml:"w:numFmt"`
	LvlText valXML            `xml:"w:lvlText"`
	LvlJc   valXML            `xml:"w:lvlJc"`
	PPr     paragraphPropsXML `xml:"w:pPr"`
	RPr     runPropsXML       `xml:"w:rPr"`
}

type numXML struct {
	NumID         int    `xml:"w:numId,attr"`
	AbstractNumID valXML `xml:"w:abstractNumId"`
}

// corePropsXML is docProps/core.xml.
type corePropsXML struct {
	XMLName xml.Name `xml:"cp:coreProperties"`
	XmlnsCP string   `xml:"xmlns:cp,attr"`
	XmlnsDC string   `xml:"xmlns:dc,attr"`
	Title   string   `xml:"dc:title,omitempty"`
	Creator string   `xml:"dc:creator,omitempty"`
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`</Relationships>`
