package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/plateful/plateful/internal/logger"
	"github.com/plateful/plateful/internal/server"
	"github.com/plateful/plateful/pkg/planner"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the browser shell",
	Long: `Serve the interactive browser shell: a form for generation
settings, rendered plans, per-recipe image generation, narration and a
session image gallery.

Example:
  plateful serve --listen :8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.String("listen", ":8080", "listen address")
	flags.Int("frame-height", 1200, "preferred pixel height for full-document plan frames")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	gen, err := resolveProvider()
	if err != nil {
		logError("%v", err)
		return err
	}

	listen, _ := cmd.Flags().GetString("listen")
	frameHeight, _ := cmd.Flags().GetInt("frame-height")

	srv := server.New(server.Config{
		ListenAddr:  listen,
		FrameHeight: frameHeight,
	}, planner.New(gen))

	logger.Info("plateful shell listening", "addr", listen, "provider", gen.Name(), "model", gen.Model())
	return srv.ListenAndServe()
}
