// Package output handles exporting generated plans to structured formats.
package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Format represents output format types.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// PlanExport is the serializable record of one plan generation.
type PlanExport struct {
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Provider    string    `json:"provider" yaml:"provider"`
	Model       string    `json:"model" yaml:"model"`
	Ingredients string    `json:"ingredients" yaml:"ingredients"`
	MaxCalories int       `json:"max_calories" yaml:"max_calories"`
	Kind        string    `json:"kind" yaml:"kind"`
	Titles      []string  `json:"titles" yaml:"titles"`
	Raw         string    `json:"raw" yaml:"raw"`
}

// Write serializes the export in the requested format.
func Write(w io.Writer, format Format, export PlanExport) error {
	bw := bufio.NewWriter(w)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(bw)
		enc.SetIndent("", "  ")
		if err := enc.Encode(export); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(bw)
		enc.SetIndent(2)
		if err := enc.Encode(export); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("close yaml encoder: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	return bw.Flush()
}
