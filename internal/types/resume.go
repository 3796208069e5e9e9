// Package types provides the resume record consumed by the document builder.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SectionType tags the shape of a section's content.
type SectionType string

// Known section types. Anything else decodes to UnknownContent.
const (
	SectionSkills         SectionType = "skills"
	SectionExperience     SectionType = "experience"
	SectionEducation      SectionType = "education"
	SectionCertifications SectionType = "certifications"
	SectionProjects       SectionType = "projects"
)

// Resume is the structured resume record. It is treated as immutable while a document is built.
type Resume struct {
	Name     string    `json:"name" validate:"required"`
	Contact  Contact   `json:"contact"`
	Summary  *Summary  `json:"summary,omitempty"`
	Sections []Section `json:"sections"`
}

// Contact holds the contact line items in display order.
type Contact struct {
	Items []string `json:"items" validate:"required,min=1"`
}

// UnmarshalJSON accepts either {"items": [...]} or a bare array of strings.
func (c *Contact) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &c.Items)
	}
	var wire struct {
		Items []string `json:"items"`
	}
	if err := json.Unmarshal(trimmed, &wire); err != nil {
		return err
	}
	c.Items = wire.Items
	return nil
}

// Summary is the optional professional summary block.
type Summary struct {
	Heading string `json:"heading,omitempty"`
	Text    string `json:"text" validate:"required"`
}

// Section is one titled resume section. Content is one of SkillsContent,
// ExperienceContent, EducationContent, CertificationsContent, ProjectsContent
// or UnknownContent.
type Section struct {
	Heading string
	Type    SectionType
	Content SectionContent
}

// SectionContent is the closed set of section payloads.
type SectionContent interface {
	sectionType() SectionType
}

// SkillGroup is a labelled list of skills.
type SkillGroup struct {
	Label string   `json:"label" validate:"required"`
	Items []string `json:"items" validate:"required"`
}

// Experience is one employment entry.
type Experience struct {
	Company  string   `json:"company" validate:"required"`
	Title    string   `json:"title" validate:"required"`
	Dates    string   `json:"dates,omitempty"`
	Location string   `json:"location,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`
}

// Education is one education entry.
type Education struct {
	Institution string   `json:"institution" validate:"required"`
	Degree      string   `json:"degree" validate:"required"`
	Dates       string   `json:"dates,omitempty"`
	Location    string   `json:"location,omitempty"`
	Details     []string `json:"details,omitempty"`
}

// Certification is one certification entry.
type Certification struct {
	Name   string `json:"name" validate:"required"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// Project is one project entry.
type Project struct {
	Name         string   `json:"name" validate:"required"`
	Technologies string   `json:"technologies,omitempty"`
	Dates        string   `json:"dates,omitempty"`
	Link         string   `json:"link,omitempty"`
	Bullets      []string `json:"bullets,omitempty"`
}

// SkillsContent is the payload of a skills section.
type SkillsContent []SkillGroup

// ExperienceContent is the payload of an experience section.
type ExperienceContent []Experience

// EducationContent is the payload of an education section.
type EducationContent []Education

// CertificationsContent is the payload of a certifications section.
type CertificationsContent []Certification

// ProjectsContent is the payload of a projects section.
type ProjectsContent []Project

// UnknownContent keeps the raw payload of a section whose type is not recognised.
type UnknownContent struct {
	Type SectionType
	Raw  json.RawMessage
}

func (SkillsContent) sectionType() SectionType         { return SectionSkills }
func (ExperienceContent) sectionType() SectionType     { return SectionExperience }
func (EducationContent) sectionType() SectionType      { return SectionEducation }
func (CertificationsContent) sectionType() SectionType { return SectionCertifications }
func (ProjectsContent) sectionType() SectionType       { return SectionProjects }
func (u UnknownContent) sectionType() SectionType      { return u.Type }

type sectionWire struct {
	Heading string          `json:"heading"`
	Type    SectionType     `json:"type"`
	Content json.RawMessage `json:"content,omitempty"`
}

// UnmarshalJSON decodes content according to the section type.
func (s *Section) UnmarshalJSON(data []byte) error {
	var wire sectionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	s.Heading = wire.Heading
	s.Type = wire.Type

	content, err := decodeContent(wire.Type, wire.Content)
	if err != nil {
		return fmt.Errorf("section %q: %w", wire.Heading, err)
	}
	s.Content = content
	return nil
}

// MarshalJSON writes the section back in its wire shape.
func (s Section) MarshalJSON() ([]byte, error) {
	wire := sectionWire{Heading: s.Heading, Type: s.Type}
	switch c := s.Content.(type) {
	case nil:
	case UnknownContent:
		wire.Content = c.Raw
	default:
		raw, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		wire.Content = raw
	}
	return json.Marshal(wire)
}

func decodeContent(t SectionType, raw json.RawMessage) (SectionContent, error) {
	switch t {
	case SectionSkills:
		return decodeEntries[SkillsContent](raw)
	case SectionExperience:
		return decodeEntries[ExperienceContent](raw)
	case SectionEducation:
		return decodeEntries[EducationContent](raw)
	case SectionCertifications:
		return decodeEntries[CertificationsContent](raw)
	case SectionProjects:
		return decodeEntries[ProjectsContent](raw)
	default:
		return UnknownContent{Type: t, Raw: raw}, nil
	}
}

// decodeEntries decodes a list payload. Missing or null content is an empty list.
func decodeEntries[C SectionContent](raw json.RawMessage) (SectionContent, error) {
	var c C
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return c, nil
	}
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return nil, err
	}
	return c, nil
}
