package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"schemaforge/parser"
	"schemaforge/schema"
)

// loadModel reads a model from disk. Files ending in .sql go through the
// parser, anything else is unmarshaled as model JSON.
func loadModel(path string) (*schema.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if strings.HasSuffix(strings.ToLower(path), ".sql") {
		return parser.Parse(string(data)), nil
	}

	var m schema.Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse model %s: %w", path, err)
	}
	return &m, nil
}

// writeOutput writes content to path, or to stdout when path is empty.
func writeOutput(path, content string) error {
	if path == "" {
		fmt.Print(content)
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintln(os.Stderr, "Wrote", path)
	return nil
}

func marshalModel(m *schema.Model) (string, error) {
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode model: %w", err)
	}
	return string(out) + "\n", nil
}
