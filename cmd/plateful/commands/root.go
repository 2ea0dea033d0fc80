// Package commands implements the CLI commands for plateful.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/plateful/plateful/internal/version"
	"github.com/plateful/plateful/pkg/provider"
)

var rootCmd = &cobra.Command{
	Use:     "plateful",
	Short:   "AI-assisted daily meal plans from an ingredient list",
	Version: version.String(),
	Long: `Plateful turns a comma-separated ingredient list into a structured
daily meal plan (breakfast, lunch, dinner), with optional per-recipe
illustrations and spoken narration.

Text generation, image synthesis and speech synthesis are all delegated
to third-party APIs; plateful only builds prompts and parses output.

Examples:
  # Generate a plan
  plateful plan -i "eggs, spinach, rice" --kcal 1800 --exact

  # Generate an illustration for one recipe
  plateful image -t "Grilled Chicken Salad" --style "white background"

  # Narrate the lunch section of a saved plan
  plateful narrate --meal Lunch --plan plan.html

  # Run the browser shell
  plateful serve --listen :8080`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.plateful.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")
	rootCmd.PersistentFlags().StringP("provider", "p", "", "text provider: openai, anthropic (auto-detects from env vars)")
	rootCmd.PersistentFlags().StringP("model", "m", "", "model name (provider-specific)")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "API key (or use env var)")
	rootCmd.PersistentFlags().String("base-url", "", "custom API base URL")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("provider", rootCmd.PersistentFlags().Lookup("provider"))
	_ = viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	_ = viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".plateful")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("PLATEFUL")
	viper.AutomaticEnv()

	// Also check common API key env vars
	_ = viper.BindEnv("api_key", "OPENAI_API_KEY", "ANTHROPIC_API_KEY")

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// resolveProvider builds the configured text generator. A missing API key is
// fatal here, before any interaction happens.
func resolveProvider() (provider.TextGenerator, error) {
	name := viper.GetString("provider")
	apiKey := viper.GetString("api_key")

	if name == "" {
		detected, detectedKey := provider.Detect()
		if detected == "" {
			return nil, fmt.Errorf("no API key configured: set OPENAI_API_KEY or ANTHROPIC_API_KEY")
		}
		name = detected
		if apiKey == "" {
			apiKey = detectedKey
		}
	}

	cfg := provider.DefaultConfig()
	cfg.APIKey = apiKey
	cfg.BaseURL = viper.GetString("base_url")
	cfg.Model = viper.GetString("model")

	return provider.New(name, cfg)
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
