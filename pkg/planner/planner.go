// Package planner orchestrates meal-plan generation: it assembles the
// generation prompt, submits it to a text provider and hands back the raw
// output verbatim, and builds per-recipe illustrations and narration on top
// of that output. The planner itself is stateless; every call maps to exactly
// one outbound API call with no retry and no fallback content.
package planner

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/plateful/plateful/internal/logger"
	"github.com/plateful/plateful/pkg/fetcher"
	"github.com/plateful/plateful/pkg/provider"
)

// PlanRequest carries the user inputs for one plan generation. Range tags are
// boundary validation mirroring the input form, not API-level hard limits.
type PlanRequest struct {
	Ingredients      string  `validate:"required"`
	MaxCalories      int     `validate:"gte=800,lte=5000"`
	ExactIngredients bool
	Temperature      float64 `validate:"gte=0,lte=2"`
	Extra            string

	// Model selects the text model for this plan; empty means the
	// provider's configured default.
	Model string
}

// Fixed image generation parameters, matching the provider's square preset.
const (
	DefaultImageModel   = "dall-e-3"
	DefaultImageSize    = "1024x1024"
	DefaultImageQuality = "standard"
	DefaultImageStyle   = "natural"
)

// Fixed speech synthesis parameters.
const (
	DefaultSpeechModel = "tts-1"
	DefaultVoice       = "alloy"
	DefaultAudioFormat = "mp3"
	AudioFileExtension = ".mp3"
	ImageFileExtension = ".png"
)

// Planner drives plan, image and narration generation against the configured
// providers.
type Planner struct {
	text     provider.TextGenerator
	images   provider.ImageGenerator
	speech   provider.SpeechSynthesizer
	fetcher  *fetcher.ImageFetcher
	validate *validator.Validate
}

// Option configures a Planner.
type Option func(*Planner)

// WithImageGenerator overrides the image backend. By default the planner uses
// the text generator if it also implements image generation.
func WithImageGenerator(ig provider.ImageGenerator) Option {
	return func(p *Planner) {
		p.images = ig
	}
}

// WithSpeechSynthesizer overrides the speech backend.
func WithSpeechSynthesizer(ss provider.SpeechSynthesizer) Option {
	return func(p *Planner) {
		p.speech = ss
	}
}

// WithImageFetcher overrides the HTTP fetcher used to download generated
// images.
func WithImageFetcher(f *fetcher.ImageFetcher) Option {
	return func(p *Planner) {
		p.fetcher = f
	}
}

// New creates a Planner on top of a text generator. If the generator also
// supports image or speech synthesis those capabilities are picked up
// automatically; otherwise the corresponding operations fail until an
// explicit backend is supplied.
func New(text provider.TextGenerator, opts ...Option) *Planner {
	p := &Planner{
		text:     text,
		fetcher:  fetcher.New(fetcher.DefaultConfig()),
		validate: validator.New(),
	}
	if ig, ok := provider.AsImageGenerator(text); ok {
		p.images = ig
	}
	if ss, ok := provider.AsSpeechSynthesizer(text); ok {
		p.speech = ss
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GeneratePlan validates the request, submits the assembled prompt and
// returns the model output verbatim. Transport and API errors propagate
// unchanged; the caller decides how to surface them.
func (p *Planner) GeneratePlan(ctx context.Context, req PlanRequest) (string, error) {
	if err := p.validate.Struct(req); err != nil {
		return "", fmt.Errorf("invalid plan request: %w", err)
	}

	resp, err := p.text.GenerateText(ctx, provider.TextRequest{
		Messages: []provider.Message{
			{Role: provider.RoleSystem, Content: systemRole},
			{Role: provider.RoleUser, Content: BuildPlanPrompt(req)},
		},
		Temperature: req.Temperature,
		Model:       req.Model,
	})
	if err != nil {
		return "", fmt.Errorf("meal plan generation failed: %w", err)
	}

	logger.Debug("meal plan generated",
		"provider", p.text.Name(),
		"model", resp.Model,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
		"duration", resp.Duration)

	return resp.Content, nil
}
