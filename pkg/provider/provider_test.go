package provider

import (
	"errors"
	"testing"
)

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New("mystery", Config{APIKey: "key"})
	if err == nil {
		t.Fatal("New() with unknown provider should error")
	}
}

func TestNew_MissingAPIKey(t *testing.T) {
	for _, name := range []string{"openai", "anthropic"} {
		t.Run(name, func(t *testing.T) {
			_, err := New(name, Config{})
			if !errors.Is(err, ErrMissingAPIKey) {
				t.Errorf("New(%q) error = %v, want ErrMissingAPIKey", name, err)
			}
		})
	}
}

func TestNew_DefaultModel(t *testing.T) {
	for name, wantDefault := range map[string]string{
		"openai":    "gpt-4o-mini",
		"anthropic": "claude-3-5-haiku-latest",
	} {
		t.Run(name, func(t *testing.T) {
			g, err := New(name, Config{APIKey: "test-key"})
			if err != nil {
				t.Fatalf("New(%q) error = %v", name, err)
			}
			if g.Model() != wantDefault {
				t.Errorf("Model() = %q, want %q", g.Model(), wantDefault)
			}
			if g.Name() != name {
				t.Errorf("Name() = %q, want %q", g.Name(), name)
			}
		})
	}
}

func TestCapabilityAssertions(t *testing.T) {
	oa, err := NewOpenAIProvider(Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider() error = %v", err)
	}
	if _, ok := AsImageGenerator(oa); !ok {
		t.Error("OpenAI provider should support image generation")
	}
	if _, ok := AsSpeechSynthesizer(oa); !ok {
		t.Error("OpenAI provider should support speech synthesis")
	}

	an, err := NewAnthropicProvider(Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewAnthropicProvider() error = %v", err)
	}
	if _, ok := AsImageGenerator(an); ok {
		t.Error("Anthropic provider should not claim image generation")
	}
	if _, ok := AsSpeechSynthesizer(an); ok {
		t.Error("Anthropic provider should not claim speech synthesis")
	}
}

func TestDefaultModels_CoverRegistry(t *testing.T) {
	for _, name := range AvailableProviders() {
		if DefaultModels[name] == "" {
			t.Errorf("no default model registered for provider %q", name)
		}
	}
}
