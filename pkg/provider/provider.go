// Package provider wraps the third-party generation APIs behind small
// interfaces. Text generation is available from multiple backends; image and
// speech synthesis are OpenAI-only.
package provider

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrMissingAPIKey indicates a provider was constructed without a credential.
// This is a configuration error: callers should fail before any interaction.
var ErrMissingAPIKey = errors.New("missing API key")

// Role represents the role of a message sender.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a chat message.
type Message struct {
	Role    Role
	Content string
}

// TextRequest represents a completion request to the text model.
type TextRequest struct {
	Messages    []Message
	MaxTokens   int
	Temperature float64

	// Model overrides the provider's configured model for this request.
	Model string
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// TextResponse represents the result of a text generation call.
type TextResponse struct {
	Content      string
	FinishReason string
	Model        string // Actual model used
	Usage        Usage
	Duration     time.Duration
}

// TextGenerator is the interface all text backends implement.
type TextGenerator interface {
	// GenerateText sends a completion request and returns the response.
	GenerateText(ctx context.Context, req TextRequest) (*TextResponse, error)

	// Name returns the provider identifier (e.g., "openai", "anthropic").
	Name() string

	// Model returns the configured model name.
	Model() string
}

// ImageRequest describes one image generation call. The response is a URL to
// the generated raster image; fetching it is the caller's concern.
type ImageRequest struct {
	Prompt  string
	Model   string
	Size    string
	Quality string
	Style   string
}

// ImageGenerator is implemented by backends that can render images.
type ImageGenerator interface {
	// GenerateImage requests one image and returns the URL it was staged at.
	GenerateImage(ctx context.Context, req ImageRequest) (string, error)
}

// SpeechRequest describes one speech synthesis call.
type SpeechRequest struct {
	Input  string
	Voice  string
	Model  string
	Format string
}

// SpeechSynthesizer is implemented by backends that can speak text.
type SpeechSynthesizer interface {
	// Synthesize requests audio for the input text and returns the response
	// body stream. The caller owns the stream and must close it.
	Synthesize(ctx context.Context, req SpeechRequest) (io.ReadCloser, error)
}

// Config holds common configuration for providers.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	MaxRetries int
	Timeout    time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxRetries: 0,
		Timeout:    120 * time.Second,
	}
}

// AsImageGenerator returns the generator as an ImageGenerator if the backend
// supports image synthesis.
func AsImageGenerator(g TextGenerator) (ImageGenerator, bool) {
	ig, ok := g.(ImageGenerator)
	return ig, ok
}

// AsSpeechSynthesizer returns the generator as a SpeechSynthesizer if the
// backend supports speech synthesis.
func AsSpeechSynthesizer(g TextGenerator) (SpeechSynthesizer, bool) {
	ss, ok := g.(SpeechSynthesizer)
	return ss, ok
}
