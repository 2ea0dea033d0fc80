package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/plateful/plateful/internal/logger"
	"github.com/plateful/plateful/internal/output"
	"github.com/plateful/plateful/pkg/mealhtml"
	"github.com/plateful/plateful/pkg/planner"
	"github.com/plateful/plateful/pkg/render"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a daily meal plan from an ingredient list",
	Long: `Generate a breakfast/lunch/dinner plan from a comma-separated
ingredient list.

The raw model output is printed to stdout (or written to --output).
With --format json or yaml, a structured export including the detected
recipe titles is written instead.

Examples:
  plateful plan -i "eggs, spinach, rice"
  plateful plan -i "fish, cabbage" --kcal 1500 --exact --extra spicy
  plateful plan -i "lentils, rice" -o plan.html
  plateful plan -i "lentils, rice" --format json -o plan.json`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	flags := planCmd.Flags()
	flags.StringP("ingredients", "i", "", "comma-separated ingredient list (required)")
	flags.Int("kcal", 2000, "maximum daily calories (800-5000)")
	flags.Bool("exact", false, "use only the provided ingredients (plus salt, pepper, spices)")
	flags.Float64("temperature", 1.0, "sampling temperature (0.0-2.0)")
	flags.String("extra", "", "optional style hint (e.g., spicy, South Indian, high-protein)")
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "raw", "output format: raw, json, yaml")

	_ = planCmd.MarkFlagRequired("ingredients")
}

func runPlan(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gen, err := resolveProvider()
	if err != nil {
		logError("%v", err)
		return err
	}

	ingredients, _ := cmd.Flags().GetString("ingredients")
	kcal, _ := cmd.Flags().GetInt("kcal")
	exact, _ := cmd.Flags().GetBool("exact")
	temperature, _ := cmd.Flags().GetFloat64("temperature")
	extra, _ := cmd.Flags().GetString("extra")

	req := planner.PlanRequest{
		Ingredients:      ingredients,
		MaxCalories:      kcal,
		ExactIngredients: exact,
		Temperature:      temperature,
		Extra:            extra,
	}

	logInfo("Generating meal plan with %s (%s)...", gen.Name(), gen.Model())
	p := planner.New(gen)
	raw, err := p.GeneratePlan(ctx, req)
	if err != nil {
		logError("%v", err)
		return err
	}

	titles := mealhtml.ParseTitles(raw)
	if len(titles) > 0 {
		logInfo("Detected recipes: %s", strings.Join(titles, ", "))
	}

	out := os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "raw", "":
		if _, err := fmt.Fprintln(out, raw); err != nil {
			return err
		}
	case "json", "yaml":
		export := output.PlanExport{
			GeneratedAt: time.Now().UTC(),
			Provider:    gen.Name(),
			Model:       gen.Model(),
			Ingredients: ingredients,
			MaxCalories: kcal,
			Kind:        render.Classify(raw).String(),
			Titles:      titles,
			Raw:         raw,
		}
		if err := output.Write(out, output.Format(format), export); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format: %s (use raw, json or yaml)", format)
	}

	return nil
}
