package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestResumeSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile("resume.schema.json")
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	assert.NoError(t, json.Unmarshal(data, &v), "schema file should be valid JSON")
}

func TestResumeSchema_ValidJSONSchema(t *testing.T) {
	_, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(Resume))
	assert.NoError(t, err, "schema should compile")
}

func TestResumeSchema_EmbeddedMatchesFile(t *testing.T) {
	data, err := os.ReadFile("resume.schema.json")
	require.NoError(t, err)
	assert.Equal(t, string(data), Resume)
}
