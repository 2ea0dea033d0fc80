package planner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/plateful/plateful/internal/logger"
	"github.com/plateful/plateful/pkg/provider"
)

// Narrate synthesizes spoken audio for the given recipe text and returns the
// complete payload. The synthesis response streams to a transient local file
// before being read back; the file is removed unconditionally once the bytes
// are captured, and removal failures are swallowed. Synthesis and transport
// errors propagate as hard failures.
func (p *Planner) Narrate(ctx context.Context, text, voice string) ([]byte, error) {
	if p.speech == nil {
		return nil, fmt.Errorf("narration requires a speech-capable provider (openai)")
	}
	if voice == "" {
		voice = DefaultVoice
	}

	stream, err := p.speech.Synthesize(ctx, provider.SpeechRequest{
		Input:  text,
		Voice:  voice,
		Model:  DefaultSpeechModel,
		Format: DefaultAudioFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	defer stream.Close()

	tmp, err := os.CreateTemp("", "plateful-narration-*"+AudioFileExtension)
	if err != nil {
		return nil, fmt.Errorf("create temp audio file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			logger.Debug("temp audio cleanup failed", "path", tmpPath, "error", rmErr)
		}
	}()

	if _, err := io.Copy(tmp, stream); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("stream audio to temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close temp audio file: %w", err)
	}

	audio, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read back audio: %w", err)
	}

	logger.Debug("narration synthesized", "voice", voice, "bytes", len(audio))
	return audio, nil
}
