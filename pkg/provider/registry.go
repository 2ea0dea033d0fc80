package provider

import (
	"fmt"
	"os"
)

// Factory creates providers from config.
type Factory func(cfg Config) (TextGenerator, error)

// DefaultModels maps provider names to their default models.
var DefaultModels = map[string]string{
	"openai":    "gpt-4o-mini",
	"anthropic": "claude-3-5-haiku-latest",
}

var registry = map[string]Factory{}

func init() {
	RegisterProvider("openai", func(cfg Config) (TextGenerator, error) {
		return NewOpenAIProvider(cfg)
	})
	RegisterProvider("anthropic", func(cfg Config) (TextGenerator, error) {
		return NewAnthropicProvider(cfg)
	})
}

// New creates a provider by name.
func New(name string, cfg Config) (TextGenerator, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s (use openai or anthropic)", name)
	}
	return factory(cfg)
}

// RegisterProvider adds a custom provider factory.
func RegisterProvider(name string, factory Factory) {
	registry[name] = factory
}

// AvailableProviders returns the list of registered providers.
func AvailableProviders() []string {
	providers := make([]string, 0, len(registry))
	for name := range registry {
		providers = append(providers, name)
	}
	return providers
}

// Detect picks a provider based on available API keys. OpenAI wins when both
// are set because it also covers image and speech synthesis.
func Detect() (name string, apiKey string) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return "openai", key
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return "anthropic", key
	}
	return "", ""
}
