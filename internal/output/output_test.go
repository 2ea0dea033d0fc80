package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func sampleExport() PlanExport {
	return PlanExport{
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Provider:    "openai",
		Model:       "gpt-4o-mini",
		Ingredients: "eggs, spinach",
		MaxCalories: 1800,
		Kind:        "fragment",
		Titles:      []string{"Broccoli Scramble", "Grilled Chicken", "Baked Fish"},
		Raw:         `<section id="meal-plan">plan</section>`,
	}
}

func TestWrite_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Write(buf, FormatJSON, sampleExport()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got PlanExport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Model != "gpt-4o-mini" || len(got.Titles) != 3 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestWrite_YAML(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Write(buf, FormatYAML, sampleExport()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got PlanExport
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if got.Provider != "openai" || got.MaxCalories != 1800 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Write(buf, Format("toml"), sampleExport())
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("expected error containing 'unsupported', got %v", err)
	}
}
