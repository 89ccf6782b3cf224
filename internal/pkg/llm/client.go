package llm

import (
	"context"
	log "log/slog"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/hectoorperezz/goviral-backend/internal/api/config"
	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"golang.org/x/sync/semaphore"
)

// Generator is what the article pipeline depends on.
type Generator interface {
	Complete(ctx context.Context, systemPrompt string, userPrompt string, temp float64) (string, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Client wraps the chat model and the image endpoint of the provider.
// Instances are injected rather than held as package state.
type Client struct {
	model      llms.Model
	http       *resty.Client
	textModel  string
	imageModel string
	textSem    *semaphore.Weighted
	imageSem   *semaphore.Weighted
}

func NewClient(cfg config.LLMConfig) (*Client, error) {
	model, err := openai.New(
		openai.WithModel(cfg.TextModel),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize llm model")
	}

	http := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(120 * time.Second).
		SetAuthToken(cfg.ApiKey)

	return &Client{
		model:      model,
		http:       http,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		textSem:    semaphore.NewWeighted(5),
		imageSem:   semaphore.NewWeighted(2),
	}, nil
}

// Complete runs a single system+user chat turn and returns the text.
func (s *Client) Complete(ctx context.Context, systemPrompt string, userPrompt string, temp float64) (string, error) {
	if err := s.textSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer s.textSem.Release(1)

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	resp, err := s.model.GenerateContent(ctx, messages,
		llms.WithModel(s.textModel),
		llms.WithTemperature(temp),
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm returned no choices")
	}
	return resp.Choices[0].Content, nil
}

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// GenerateImage returns the hosted URL of a generated featured image.
func (s *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if err := s.imageSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer s.imageSem.Release(1)

	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(imageRequest{Model: s.imageModel, Prompt: prompt, N: 1, Size: "1792x1024"}).
		Post("/images/generations")
	if err != nil {
		return "", errors.Wrap(err, "image generation request failed")
	}
	if resp.IsError() {
		return "", errors.Errorf("image generation returned %s", resp.Status())
	}

	var decoded imageResponse
	if err = json.Unmarshal(resp.Body(), &decoded); err != nil {
		return "", errors.Wrap(err, "failed to decode image response")
	}
	if len(decoded.Data) == 0 || decoded.Data[0].URL == "" {
		return "", errors.New("image response contained no url")
	}
	return decoded.Data[0].URL, nil
}

// ReadPrompt loads a prompt template from disk, empty on failure.
func ReadPrompt(file string) string {
	data, err := os.ReadFile(file)
	if err != nil {
		log.Error("failed to read prompt file", "file", file, "err", err)
		return ""
	}
	return string(data)
}
