package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResume_AllSectionTypes(t *testing.T) {
	data := []byte(`{
		"name": "Jane Doe",
		"contact": {"items": ["jane@x.com", "555-1234"]},
		"summary": {"text": "Builds things."},
		"sections": [
			{"heading": "SKILLS", "type": "skills", "content": [{"label": "Languages", "items": ["Go", "Rust"]}]},
			{"heading": "EXPERIENCE", "type": "experience", "content": [{"company": "Acme", "title": "Engineer", "dates": "2020", "bullets": ["a", "b"]}]},
			{"heading": "EDUCATION", "type": "education", "content": [{"institution": "MIT", "degree": "BS"}]},
			{"heading": "CERTS", "type": "certifications", "content": [{"name": "AWS SA", "date": "2023"}]},
			{"heading": "PROJECTS", "type": "projects", "content": [{"name": "tool", "link": "https://x"}]},
			{"heading": "HOBBIES", "type": "hobbies", "content": ["chess"]}
		]
	}`)

	r, err := DecodeResume(data)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", r.Name)
	assert.Equal(t, []string{"jane@x.com", "555-1234"}, r.Contact.Items)
	require.NotNil(t, r.Summary)
	assert.Equal(t, "", r.Summary.Heading)
	require.Len(t, r.Sections, 6)

	assert.Equal(t, SkillsContent{{Label: "Languages", Items: []string{"Go", "Rust"}}}, r.Sections[0].Content)
	assert.IsType(t, ExperienceContent{}, r.Sections[1].Content)
	assert.IsType(t, EducationContent{}, r.Sections[2].Content)
	assert.Equal(t, CertificationsContent{{Name: "AWS SA", Date: "2023"}}, r.Sections[3].Content)
	assert.IsType(t, ProjectsContent{}, r.Sections[4].Content)

	unknown, ok := r.Sections[5].Content.(UnknownContent)
	require.True(t, ok)
	assert.Equal(t, SectionType("hobbies"), unknown.Type)
	assert.JSONEq(t, `["chess"]`, string(unknown.Raw))
}

func TestDecodeResume_ContactBareArray(t *testing.T) {
	r, err := DecodeResume([]byte(`{"name": "Jane", "contact": ["a", "b"], "sections": []}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, r.Contact.Items)
}

func TestDecodeResume_NullContent(t *testing.T) {
	r, err := DecodeResume([]byte(`{"name": "Jane", "contact": ["a"], "sections": [{"heading": "SKILLS", "type": "skills"}]}`))
	require.NoError(t, err)
	require.Len(t, r.Sections, 1)
	content, ok := r.Sections[0].Content.(SkillsContent)
	require.True(t, ok)
	assert.Empty(t, content)
}

func TestDecodeResume_SchemaMismatch(t *testing.T) {
	_, err := DecodeResume([]byte(`{"name": ["not", "a", "string"], "contact": ["a"]}`))
	require.Error(t, err)
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestDecodeResume_Malformed(t *testing.T) {
	_, err := DecodeResume([]byte(`{`))
	require.Error(t, err)
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestSection_MarshalRoundTrip(t *testing.T) {
	in := Section{
		Heading: "CERTS",
		Type:    SectionCertifications,
		Content: CertificationsContent{{Name: "CKA", Issuer: "CNCF"}},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"heading":"CERTS","type":"certifications","content":[{"name":"CKA","issuer":"CNCF"}]}`, string(data))

	var out Section
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestValidate(t *testing.T) {
	valid := func() *Resume {
		return &Resume{
			Name:    "Jane",
			Contact: Contact{Items: []string{"jane@x.com"}},
		}
	}

	tests := []struct {
		name     string
		mutate   func(r *Resume)
		wantPath string
	}{
		{name: "valid", mutate: func(*Resume) {}},
		{name: "missing name", mutate: func(r *Resume) { r.Name = "" }, wantPath: "name"},
		{name: "missing contact", mutate: func(r *Resume) { r.Contact.Items = nil }, wantPath: "contact.items"},
		{name: "empty contact", mutate: func(r *Resume) { r.Contact.Items = []string{} }, wantPath: "contact.items"},
		{name: "summary without text", mutate: func(r *Resume) { r.Summary = &Summary{Heading: "ABOUT"} }, wantPath: "summary.text"},
		{
			name: "skills group without label",
			mutate: func(r *Resume) {
				r.Sections = []Section{{Heading: "S", Type: SectionSkills, Content: SkillsContent{{Items: []string{"Go"}}}}}
			},
			wantPath: "sections[0].content[0].label",
		},
		{
			name: "second experience entry without title",
			mutate: func(r *Resume) {
				r.Sections = []Section{
					{Heading: "S", Type: SectionSkills, Content: SkillsContent{}},
					{Heading: "E", Type: SectionExperience, Content: ExperienceContent{
						{Company: "A", Title: "B"},
						{Company: "C"},
					}},
				}
			},
			wantPath: "sections[1].content[1].title",
		},
		{
			name: "certification without name",
			mutate: func(r *Resume) {
				r.Sections = []Section{{Heading: "C", Type: SectionCertifications, Content: CertificationsContent{{Issuer: "X"}}}}
			},
			wantPath: "sections[0].content[0].name",
		},
		{
			name: "unknown section is not validated",
			mutate: func(r *Resume) {
				r.Sections = []Section{{Heading: "H", Type: "hobbies", Content: UnknownContent{Type: "hobbies"}}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.mutate(r)
			err := r.Validate()
			if tt.wantPath == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.wantPath, fe.Path)
		})
	}
}

func TestValidate_NilResume(t *testing.T) {
	var r *Resume
	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(root)")
}
