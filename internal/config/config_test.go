package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 8081,
		"max_upload_bytes": 2048,
		"output_filename": "cv.docx",
		"concurrency": 2,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
	assert.Equal(t, "cv.docx", cfg.OutputFilename)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_UPLOAD_BYTES", "4096")
	t.Setenv("OUTPUT_FILENAME", "out.docx")
	t.Setenv("REQUIRE_AUTH", "true")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("BUILD_CONCURRENCY", "not-a-number")

	cfg := FromEnv()
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, int64(4096), cfg.MaxUploadBytes)
	assert.Equal(t, "out.docx", cfg.OutputFilename)
	assert.True(t, cfg.RequireAuth)
	assert.Equal(t, 0, cfg.Concurrency)
}

func TestValidate(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty is valid", cfg: Config{}},
		{name: "port out of range", cfg: Config{Port: 70000}, wantErr: "'port'"},
		{name: "negative upload limit", cfg: Config{MaxUploadBytes: -1}, wantErr: "max_upload_bytes"},
		{name: "negative concurrency", cfg: Config{Concurrency: -2}, wantErr: "concurrency"},
		{name: "filename with path", cfg: Config{OutputFilename: "../x.docx"}, wantErr: "bare file name"},
		{name: "output dir is a file", cfg: Config{OutputDir: file}, wantErr: "not a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	fileCfg := Config{Port: 8081, Verbose: true}
	envCfg := Config{Port: 9000, OutputFilename: "cv.docx", RequireAuth: true}

	merged := fileCfg.MergeWithDefaults(envCfg)

	assert.Equal(t, 8081, merged.Port, "explicit value wins over defaults")
	assert.Equal(t, "cv.docx", merged.OutputFilename)
	assert.True(t, merged.RequireAuth)
	assert.True(t, merged.Verbose)
	assert.Equal(t, int64(DefaultMaxUploadBytes), merged.MaxUploadBytes)
	assert.Equal(t, DefaultConcurrency, merged.Concurrency)
}

func TestMergeWithDefaults_PackageDefaults(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, DefaultPort, merged.Port)
	assert.Equal(t, DefaultOutputFilename, merged.OutputFilename)
}
