package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/toeic-practice-api/config"
	"github.com/lshigami/toeic-practice-api/internal/apperror"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/fx"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TextGenerator sends a single prompt to one model and returns the text answer.
type TextGenerator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
	Close() error
}

// Client tries each configured model in order, moving on only when the
// provider reports a server side failure.
type Client struct {
	gen    TextGenerator
	models []string
}

func NewClient(gen TextGenerator, models []string) *Client {
	return &Client{gen: gen, models: models}
}

func NewClientFromConfig(gen TextGenerator, cfg *config.Config) *Client {
	return NewClient(gen, cfg.AI.Models)
}

// NewTextGenerator builds the provider selected by AI_PROVIDER and closes it on shutdown.
func NewTextGenerator(lc fx.Lifecycle, cfg *config.Config) (TextGenerator, error) {
	if cfg.AI.APIKey == "" {
		log.Warn().Str("provider", cfg.AI.Provider).Msg("AI API key is not set. AI features will be unavailable.")
		return disabledGenerator{}, nil
	}

	var (
		gen TextGenerator
		err error
	)
	switch cfg.AI.Provider {
	case "", "gemini":
		gen, err = NewGeminiGenerator(context.Background(), cfg.AI.APIKey)
	case "openai":
		gen = NewOpenAIGenerator(cfg.AI.BaseURL, cfg.AI.APIKey)
	default:
		return nil, fmt.Errorf("unsupported AI provider %q", cfg.AI.Provider)
	}
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return gen.Close()
		},
	})
	return gen, nil
}

func (c *Client) Models() []string { return c.models }

// GenerateText returns the first successful answer and the model that produced it.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, string, error) {
	if len(c.models) == 0 {
		return "", "", apperror.Upstream("no AI model configured", nil)
	}

	var lastErr error
	for _, model := range c.models {
		text, err := c.gen.Generate(ctx, model, prompt)
		if err == nil {
			return text, model, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return "", model, apperror.Upstream("AI request cancelled", ctx.Err())
		}
		if !IsServerError(err) {
			log.Error().Err(err).Str("model", model).Msg("GenerateText: request rejected by AI provider")
			return "", model, apperror.Wrap(apperror.KindInternal, "AI request failed", err)
		}
		log.Warn().Err(err).Str("model", model).Msg("GenerateText: model unavailable, trying next model")
	}
	return "", "", apperror.Upstream("all AI models are unavailable", lastErr)
}

// IsServerError reports whether err is a 5xx or overload failure from any provider.
func IsServerError(err error) bool {
	if err == nil {
		return false
	}
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr.Kind == apperror.KindUpstreamUnavailable
	}
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return gErr.Code >= 500
	}
	var oaErr *openai.APIError
	if errors.As(err, &oaErr) {
		return oaErr.HTTPStatusCode >= 500
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode >= 500
	}
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Unavailable, codes.Internal, codes.DeadlineExceeded:
			return true
		}
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "overloaded") || strings.Contains(msg, "503")
}

type disabledGenerator struct{}

func (disabledGenerator) Generate(context.Context, string, string) (string, error) {
	return "", apperror.Upstream("AI service is not configured", nil)
}

func (disabledGenerator) Close() error { return nil }
