package planner

import (
	"strings"
	"testing"
)

func TestBuildPlanPrompt_CoreScenario(t *testing.T) {
	prompt := BuildPlanPrompt(PlanRequest{
		Ingredients:      "eggs, spinach",
		MaxCalories:      1800,
		ExactIngredients: true,
		Temperature:      1.0,
	})

	if !strings.Contains(prompt, "eggs, spinach") {
		t.Error("prompt should embed the ingredient list")
	}
	if !strings.Contains(prompt, "1800") {
		t.Error("prompt should embed the calorie ceiling")
	}
	if !strings.Contains(prompt, exactIngredientsClause) {
		t.Error("exact mode should restrict to provided ingredients plus salt/pepper/spices")
	}
	if strings.Contains(prompt, pantryStaplesClause) {
		t.Error("exact mode should not allow pantry staples")
	}
}

func TestBuildPlanPrompt_PantryStaples(t *testing.T) {
	prompt := BuildPlanPrompt(PlanRequest{
		Ingredients: "rice, beans",
		MaxCalories: 2000,
	})

	if !strings.Contains(prompt, pantryStaplesClause) {
		t.Error("default mode should allow pantry staples")
	}
	if strings.Contains(prompt, exactIngredientsClause) {
		t.Error("default mode should not restrict ingredients")
	}
}

func TestBuildPlanPrompt_ExtraStyle(t *testing.T) {
	with := BuildPlanPrompt(PlanRequest{Ingredients: "fish", MaxCalories: 2000, Extra: "spicy, South Indian"})
	without := BuildPlanPrompt(PlanRequest{Ingredients: "fish", MaxCalories: 2000})

	if !strings.Contains(with, "8. If possible the meals should be: spicy, South Indian") {
		t.Error("extra style should appear as instruction 8")
	}
	if strings.Contains(without, "8. If possible") {
		t.Error("instruction 8 should be absent without an extra style")
	}
}

func TestBuildPlanPrompt_OutputShape(t *testing.T) {
	prompt := BuildPlanPrompt(PlanRequest{Ingredients: "eggs", MaxCalories: 2000})

	for _, want := range []string{
		`<section data-meal="Breakfast">`,
		`<section data-meal="Lunch">`,
		`<section data-meal="Dinner">`,
		`<p id="titles" hidden>`,
		"The last line of your answer",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt should contain %q", want)
		}
	}
}

func TestComposeImagePrompt(t *testing.T) {
	tests := []struct {
		name  string
		title string
		extra string
		want  string
	}{
		{"with_hint", "Grilled Fish", "white background", "Grilled Fish, hd quality, white background"},
		{"empty_hint", "Grilled Fish", "", "Grilled Fish, hd quality"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComposeImagePrompt(tt.title, tt.extra); got != tt.want {
				t.Errorf("ComposeImagePrompt(%q, %q) = %q, want %q", tt.title, tt.extra, got, tt.want)
			}
		})
	}
}
