package geminiclient

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	geminidomain "github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini/domain"
	"github.com/vfg2006/stockwise-api/internal/config"
	"google.golang.org/genai"
)

const defaultTimeout = 20 * time.Second

type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	AnalyzeImage(ctx context.Context, req geminidomain.ImageRequest) (string, error)
}

type GeminiClient struct {
	client      *genai.Client
	textModel   string
	visionModel string
	timeout     time.Duration
}

// NewClient cria o cliente do Gemini. Sem chave de API devolve ErrNotConfigured.
func NewClient(ctx context.Context, cfg config.Gemini) (Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, geminidomain.ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &GeminiClient{
		client:      client,
		textModel:   cfg.TextModel,
		visionModel: cfg.VisionModel,
		timeout:     timeout,
	}, nil
}

func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.textModel, genai.Text(prompt), nil)
	if err != nil {
		return "", geminidomain.Wrap(err)
	}

	logrus.WithFields(logrus.Fields{
		"model":       c.textModel,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("gemini: texto gerado")

	return textOf(resp)
}

func (c *GeminiClient) AnalyzeImage(ctx context.Context, req geminidomain.ImageRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	parts := []*genai.Part{
		genai.NewPartFromText(req.Prompt),
		genai.NewPartFromBytes(req.Image, req.MimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.visionModel, contents, nil)
	if err != nil {
		return "", geminidomain.Wrap(err)
	}

	logrus.WithFields(logrus.Fields{
		"model":       c.visionModel,
		"bytes":       len(req.Image),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("gemini: imagem analisada")

	return textOf(resp)
}

func textOf(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", geminidomain.Wrap(geminidomain.ErrEmptyResponse)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", geminidomain.Wrap(geminidomain.ErrEmptyResponse)
	}

	return text, nil
}
