package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/plateful/plateful/internal/logger"
	"github.com/plateful/plateful/pkg/provider"
	"github.com/plateful/plateful/pkg/textutil"
)

// Image is a generated recipe illustration: opaque PNG bytes plus a suggested
// download filename derived from the title.
type Image struct {
	Title    string
	Filename string
	Bytes    []byte
}

// ComposeImagePrompt joins a recipe title, a fixed quality qualifier and an
// optional style hint into one image prompt, trimming stray separators left
// by an empty hint.
func ComposeImagePrompt(title, extra string) string {
	prompt := fmt.Sprintf("%s, hd quality, %s", title, extra)
	return strings.Trim(strings.TrimSpace(prompt), ",")
}

// GenerateImage requests one square illustration for the recipe title,
// downloads the staged result and returns the bytes. Generation and fetch
// errors both propagate as hard failures with no retry.
func (p *Planner) GenerateImage(ctx context.Context, title, extra string) (*Image, error) {
	if p.images == nil {
		return nil, fmt.Errorf("image generation requires an image-capable provider (openai)")
	}

	prompt := ComposeImagePrompt(title, extra)
	logger.Debug("generating image", "title", title, "prompt", prompt)

	url, err := p.images.GenerateImage(ctx, provider.ImageRequest{
		Prompt:  prompt,
		Model:   DefaultImageModel,
		Size:    DefaultImageSize,
		Quality: DefaultImageQuality,
		Style:   DefaultImageStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	data, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("image download failed: %w", err)
	}

	normalized := textutil.Normalize(title)
	return &Image{
		Title:    normalized,
		Filename: textutil.SafeFilename(title, ImageFileExtension),
		Bytes:    data,
	}, nil
}
