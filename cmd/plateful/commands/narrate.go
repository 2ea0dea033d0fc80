package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/plateful/plateful/internal/logger"
	"github.com/plateful/plateful/pkg/mealhtml"
	"github.com/plateful/plateful/pkg/planner"
)

var narrateCmd = &cobra.Command{
	Use:   "narrate",
	Short: "Synthesize narration for one meal of a saved plan",
	Long: `Extract the named meal section from a previously generated plan,
flatten it to readable text and synthesize spoken audio for it.

A plan without a recognizable section for the chosen meal is not an
error; the command reports that nothing was found and writes no audio.

Examples:
  plateful narrate --meal Lunch --plan plan.html
  plateful narrate --meal Dinner --plan plan.html --voice nova -d audio/`,
	RunE: runNarrate,
}

func init() {
	rootCmd.AddCommand(narrateCmd)

	flags := narrateCmd.Flags()
	flags.String("meal", "", "meal to narrate: Breakfast, Lunch or Dinner (required)")
	flags.String("plan", "", "path to a saved plan file (required)")
	flags.String("voice", planner.DefaultVoice, "voice identifier")
	flags.StringP("dir", "d", ".", "directory to write the audio into")

	_ = narrateCmd.MarkFlagRequired("meal")
	_ = narrateCmd.MarkFlagRequired("plan")
}

func runNarrate(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	meal, _ := cmd.Flags().GetString("meal")
	switch meal {
	case "Breakfast", "Lunch", "Dinner":
	default:
		return fmt.Errorf("unknown meal: %s (use Breakfast, Lunch or Dinner)", meal)
	}

	planPath, _ := cmd.Flags().GetString("plan")
	raw, err := os.ReadFile(planPath)
	if err != nil {
		logError("read plan: %v", err)
		return err
	}

	text := mealhtml.ToText(mealhtml.ExtractMealSection(string(raw), meal))
	if text == "" {
		logInfo("No %s section found in %s; nothing to narrate.", meal, planPath)
		return nil
	}

	gen, err := resolveProvider()
	if err != nil {
		logError("%v", err)
		return err
	}

	voice, _ := cmd.Flags().GetString("voice")
	dir, _ := cmd.Flags().GetString("dir")

	logInfo("Synthesizing narration for %s...", meal)
	p := planner.New(gen)
	audio, err := p.Narrate(ctx, text, voice)
	if err != nil {
		logError("%v", err)
		return err
	}

	path := filepath.Join(dir, meal+planner.AudioFileExtension)
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		logError("write audio: %v", err)
		return err
	}

	logInfo("Wrote %s (%d bytes)", path, len(audio))
	return nil
}
