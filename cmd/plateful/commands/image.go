package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/plateful/plateful/internal/logger"
	"github.com/plateful/plateful/pkg/planner"
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Generate an illustration for a recipe title",
	Long: `Generate one square illustration for a recipe title and save it as
a PNG named after the title.

Image synthesis requires an OpenAI API key regardless of the configured
text provider.

Examples:
  plateful image -t "Grilled Chicken Salad"
  plateful image -t "Baked Fish" --style "white background" -d images/`,
	RunE: runImage,
}

func init() {
	rootCmd.AddCommand(imageCmd)

	flags := imageCmd.Flags()
	flags.StringP("title", "t", "", "recipe title to illustrate (required)")
	flags.String("style", "white background", "style or background hint appended to the image prompt")
	flags.StringP("dir", "d", ".", "directory to write the image into")

	_ = imageCmd.MarkFlagRequired("title")
}

func runImage(cmd *cobra.Command, args []string) error {
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

	title, _ := cmd.Flags().GetString("title")
	style, _ := cmd.Flags().GetString("style")
	dir, _ := cmd.Flags().GetString("dir")

	logInfo("Generating image for %q...", title)
	p := planner.New(gen)
	img, err := p.GenerateImage(ctx, title, style)
	if err != nil {
		logError("%v", err)
		return err
	}

	path := filepath.Join(dir, img.Filename)
	if err := os.WriteFile(path, img.Bytes, 0o644); err != nil {
		logError("write image: %v", err)
		return err
	}

	logInfo("Wrote %s (%d bytes)", path, len(img.Bytes))
	return nil
}
