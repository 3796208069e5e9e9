package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-docx/internal/config"
	"github.com/jonathan/resume-docx/internal/types"
	"gopkg.in/yaml.v3"
)

// readResumeJSON reads a resume file and returns it as JSON. YAML files
// (.yaml, .yml) are converted so both go through the same schema check.
func readResumeJSON(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("failed to parse resume YAML: %w", err)
		}
		stringifyScalars(&root)

		var doc any
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse resume YAML: %w", err)
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to convert resume YAML to JSON: %w", err)
		}
		return out, nil
	default:
		return data, nil
	}
}

// stringifyScalars retags plain numeric and boolean scalars as strings so
// unquoted values such as `date: 2023` keep their written text. Every leaf
// of a resume record is a string.
func stringifyScalars(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode {
		switch n.Tag {
		case "!!int", "!!float", "!!bool":
			n.Tag = "!!str"
		}
		return
	}
	for _, child := range n.Content {
		stringifyScalars(child)
	}
}

// loadResume reads and decodes a resume file.
func loadResume(path string) (*types.Resume, error) {
	data, err := readResumeJSON(path)
	if err != nil {
		return nil, err
	}
	return types.DecodeResume(data)
}

// loadConfig merges an optional config file over the environment and package defaults.
func loadConfig(path string) (config.Config, error) {
	fileCfg := &config.Config{}
	if path != "" {
		var err error
		if fileCfg, err = config.LoadConfig(path); err != nil {
			return config.Config{}, err
		}
	}

	merged := fileCfg.MergeWithDefaults(config.FromEnv())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// outputName maps an input path to its .docx file name.
func outputName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".docx"
}
