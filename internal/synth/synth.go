// Package synth wraps the generative API that produces narration audio and
// game illustrations for assets missing from the content store.
package synth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"playbox/internal/config"
	"playbox/internal/logging"
)

// Service produces asset payloads. The generation runner depends on this
// interface so batches can run against a fake in tests.
type Service interface {
	// SynthesizeSpeech renders a narration clip for the given display text.
	SynthesizeSpeech(ctx context.Context, text, lang string) ([]byte, error)
	// GenerateImage renders an illustration. A non-nil reference image is
	// included in the request to keep the new art on-style with it.
	GenerateImage(ctx context.Context, prompt string, reference []byte) ([]byte, error)
}

const defaultTimeout = 60 * time.Second

// Client is the production Service backed by Google's generative API.
type Client struct {
	client      *genai.Client
	imageModel  string
	speechModel string
	voice       string
	timeout     time.Duration
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a synthesis client from config. The API key is required;
// model and voice fields fall back to the configured defaults.
func NewClient(ctx context.Context, cfg config.Synth, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("synth api key required")
	}

	inner, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create synth client: %w", err)
	}

	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	client := &Client{
		client:      inner,
		imageModel:  cfg.ImageModel,
		speechModel: cfg.SpeechModel,
		voice:       cfg.Voice,
		timeout:     timeout,
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	client.logger = logging.NewComponentLogger(client.logger, "synth")
	return client, nil
}

// SynthesizeSpeech renders text to a narration clip with the configured
// voice. The language rides along in the prompt; the speech models pick the
// accent from the text itself.
func (c *Client) SynthesizeSpeech(ctx context.Context, text, lang string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromText(speechPrompt(text, lang), genai.RoleUser),
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.speechModel, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: c.voice},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("synthesize %q: %w", text, err)
	}

	data := firstInlineData(resp)
	if len(data) == 0 {
		return nil, fmt.Errorf("synthesize %q: response carried no audio", text)
	}
	return data, nil
}

// GenerateImage renders an illustration from a prompt. Without a reference
// image the dedicated image model handles the request; with one, the request
// goes through the multimodal path so the reference can steer the style.
func (c *Client) GenerateImage(ctx context.Context, prompt string, reference []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if len(reference) == 0 {
		resp, err := c.client.Models.GenerateImages(ctx, c.imageModel, prompt, &genai.GenerateImagesConfig{
			NumberOfImages: 1,
		})
		if err != nil {
			return nil, fmt.Errorf("generate image: %w", err)
		}
		if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
			return nil, errors.New("generate image: response carried no image")
		}
		return resp.GeneratedImages[0].Image.ImageBytes, nil
	}

	parts := []*genai.Part{
		genai.NewPartFromText(prompt + " Match the art style of the attached reference image."),
		genai.NewPartFromBytes(reference, "image/png"),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := c.client.Models.GenerateContent(ctx, c.imageModel, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	})
	if err != nil {
		return nil, fmt.Errorf("generate styled image: %w", err)
	}
	data := firstInlineData(resp)
	if len(data) == 0 {
		return nil, errors.New("generate styled image: response carried no image")
	}
	return data, nil
}

func speechPrompt(text, lang string) string {
	switch lang {
	case "es":
		return "Di con voz alegre para un juego infantil: " + text
	default:
		return "Say cheerfully for a children's game: " + text
	}
}

func firstInlineData(resp *genai.GenerateContentResponse) []byte {
	if resp == nil {
		return nil
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}
