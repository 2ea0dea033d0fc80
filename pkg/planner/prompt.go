package planner

import (
	"fmt"
	"strings"
)

// systemRole frames the model as a cook before the plan instruction arrives.
const systemRole = "You are a skilled cook and dietitian with expertise of a chef."

const exactIngredientsClause = "Use ONLY the provided ingredients with salt, pepper, and spices."
const pantryStaplesClause = "Feel free to incorporate other common pantry staples."

// planShape is the output contract embedded in every generation prompt: one
// section per meal carrying a data-meal attribute, plus a trailing hidden
// titles line the title parser depends on.
const planShape = `<section id="meal-plan">
  <h1>Daily Meal Plan</h1>

  <section data-meal="Breakfast">
    <h2>Breakfast: {TITLE}</h2>
    <p>Total Calories: …, Servings: …</p>
    <p>Prep Time: …, Cook Time: …, Total Time: …</p>
    <ol>…Multiple detailed steps…</ol>
  </section>

  <section data-meal="Lunch">…same format…</section>
  <section data-meal="Dinner">…same format…</section>

  <p id="titles" hidden>{TITLE_BREAKFAST}, {TITLE_LUNCH}, {TITLE_DINNER}</p>
</section>`

// BuildPlanPrompt assembles the single generation instruction for a meal
// plan. The model controls nothing but this prompt; adherence to the
// requested shape is not guaranteed and downstream parsing tolerates that.
func BuildPlanPrompt(req PlanRequest) string {
	ingredientClause := pantryStaplesClause
	if req.ExactIngredients {
		ingredientClause = exactIngredientsClause
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a healthy daily meal plan for breakfast, lunch, and dinner based on the following ingredients: ```%s```\n", req.Ingredients)
	sb.WriteString("Return a SINGLE **HTML fragment** (no <!doctype>, <html>, <head>, or <body>, and **do not** wrap in triple backticks).\n")
	sb.WriteString("Structure it exactly as:\n\n")
	sb.WriteString(planShape)
	sb.WriteString("\n\nFollow the instructions below carefully.\n\n")
	sb.WriteString("### Instructions:\n")
	fmt.Fprintf(&sb, "1. %s\n", ingredientClause)
	sb.WriteString("2. Specify the exact amount of each ingredient.\n")
	fmt.Fprintf(&sb, "3. Ensure that the total daily calorie intake is below %d.\n", req.MaxCalories)
	sb.WriteString("4. For each meal, explain each recipe, step by step, in clear and simple sentences. Use bullet points or numbers to organize the steps.\n")
	sb.WriteString("5. For each meal, specify the total number of calories and the number of servings.\n")
	sb.WriteString("6. For each meal, provide a concise and descriptive title that summarizes the main ingredients and flavors. The title should not be generic.\n")
	sb.WriteString("7. For each recipe, indicate the prep, cook and total time.\n")
	if req.Extra != "" {
		fmt.Fprintf(&sb, "8. If possible the meals should be: %s\n", req.Extra)
	}
	sb.WriteString("\nBefore answering, make sure that you have followed the instructions listed above (points 1 to 7 or 8).\n")
	sb.WriteString("The last line of your answer should be a string that contains ONLY the titles of the recipes and nothing more with a comma in between.\n")
	sb.WriteString("Example of the last line of your answer:\n")
	sb.WriteString("'\\nBroccoli and Egg Scramble, Grilled Chicken and Vegetable, Baked fish and Cabbage Slaw'.\n")

	return sb.String()
}
