package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const testResumeJSON = `{
	"name": "Jane Doe",
	"contact": ["jane@x.com", "555-1234"],
	"sections": [
		{"heading": "SKILLS", "type": "skills", "content": [{"label": "Languages", "items": ["Go", "Rust"]}]},
		{"heading": "EXPERIENCE", "type": "experience", "content": [{"company": "Acme", "title": "Engineer", "dates": "2020", "bullets": ["Shipped"]}]}
	]
}`

const testResumeYAML = `name: Jane Doe
contact:
  - jane@x.com
  - 555-1234
sections:
  - heading: SKILLS
    type: skills
    content:
      - label: Languages
        items: [Go, Rust]
  - heading: EXPERIENCE
    type: experience
    content:
      - company: Acme
        title: Engineer
        dates: "2020"
        bullets: [Shipped]
`

// writeInput writes content to name inside dir and returns its path.
func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// execute runs the root command with args and fresh flag values, returning its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("BUILD_CONCURRENCY", "")

	buildOut, buildConcurrency, buildVerbose, buildConfigFile = "", 0, false, ""
	previewWidth = 100
	tokenClientID = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}
