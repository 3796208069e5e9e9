// Package schemas holds the JSON Schema documents describing accepted inputs.
package schemas

import _ "embed"

// Resume is the JSON Schema for a resume record.
//
//go:embed resume.schema.json
var Resume string
