package provider

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIProvider implements TextGenerator, ImageGenerator and
// SpeechSynthesizer against the OpenAI API.
type OpenAIProvider struct {
	client openai.Client
	model  string
	cfg    Config
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg Config) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: %w", ErrMissingAPIKey)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(cfg.MaxRetries))
	}

	model := cfg.Model
	if model == "" {
		model = string(openai.ChatModelGPT4oMini)
	}

	return &OpenAIProvider{
		client: openai.NewClient(opts...),
		model:  model,
		cfg:    cfg,
	}, nil
}

// GenerateText sends a completion request to OpenAI.
func (p *OpenAIProvider) GenerateText(ctx context.Context, req TextRequest) (*TextResponse, error) {
	start := time.Now()

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Content))
		case RoleUser:
			messages = append(messages, openai.UserMessage(msg.Content))
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		}
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	model := p.model
	if req.Model != "" {
		model = req.Model
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(model),
		Messages:    messages,
		MaxTokens:   openai.Int(int64(maxTokens)),
		Temperature: openai.Float(req.Temperature),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return &TextResponse{
		Content:      resp.Choices[0].Message.Content,
		FinishReason: string(resp.Choices[0].FinishReason),
		Model:        resp.Model,
		Usage: Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
		Duration: time.Since(start),
	}, nil
}

// GenerateImage requests one image and returns the URL the API staged it at.
func (p *OpenAIProvider) GenerateImage(ctx context.Context, req ImageRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = string(openai.ImageModelDallE3)
	}

	params := openai.ImageGenerateParams{
		Model:  openai.ImageModel(model),
		Prompt: req.Prompt,
		N:      openai.Int(1),
	}
	if req.Size != "" {
		params.Size = openai.ImageGenerateParamsSize(req.Size)
	}
	if req.Quality != "" {
		params.Quality = openai.ImageGenerateParamsQuality(req.Quality)
	}
	if req.Style != "" {
		params.Style = openai.ImageGenerateParamsStyle(req.Style)
	}

	resp, err := p.client.Images.Generate(ctx, params)
	if err != nil {
		return "", fmt.Errorf("OpenAI image API error: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("no image URL in response")
	}
	return resp.Data[0].URL, nil
}

// Synthesize requests spoken audio for the input text. The returned stream is
// the raw response body; the caller must close it.
func (p *OpenAIProvider) Synthesize(ctx context.Context, req SpeechRequest) (io.ReadCloser, error) {
	model := req.Model
	if model == "" {
		model = string(openai.SpeechModelTTS1)
	}
	voice := req.Voice
	if voice == "" {
		voice = string(openai.AudioSpeechNewParamsVoiceAlloy)
	}
	format := req.Format
	if format == "" {
		format = string(openai.AudioSpeechNewParamsResponseFormatMP3)
	}

	resp, err := p.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(model),
		Voice:          openai.AudioSpeechNewParamsVoice(voice),
		Input:          req.Input,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormat(format),
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI speech API error: %w", err)
	}
	return resp.Body, nil
}

// Name returns the provider identifier.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Model returns the configured model name.
func (p *OpenAIProvider) Model() string {
	return p.model
}

// Ensure OpenAIProvider implements all generation interfaces.
var (
	_ TextGenerator     = (*OpenAIProvider)(nil)
	_ ImageGenerator    = (*OpenAIProvider)(nil)
	_ SpeechSynthesizer = (*OpenAIProvider)(nil)
)
