package openai

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

// Service wraps the OpenAI client. A Service built without an API key is
// still constructable so the process can start; Configured reports whether
// chat completions can actually be issued.
type Service struct {
	client *openai.Client
}

// NewService creates an OpenAI service for the given API key
func NewService(key string) *Service {
	log.Info().Msg("Initialising OpenAI service")

	if key == "" {
		log.Warn().Msg("OpenAI service not configured - API key missing")
		return &Service{}
	}

	return &Service{client: openai.NewClient(key)}
}

// NewServiceWithBaseURL creates an OpenAI service pointed at an alternative
// API endpoint. Used by tests to stand in a fake upstream.
func NewServiceWithBaseURL(key, baseURL string) *Service {
	cfg := openai.DefaultConfig(key)
	cfg.BaseURL = baseURL
	return &Service{client: openai.NewClientWithConfig(cfg)}
}

// Configured reports whether an API key was supplied
func (s *Service) Configured() bool {
	return s.client != nil
}

// CreateChatCompletion issues a chat completion request against the upstream
// API. Failures are classified into two variants: *UpstreamError when the
// API returned a structured error body, *TransportError for everything else
// (network failures, malformed responses). Callers branch on the variant.
func (s *Service) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return openai.ChatCompletionResponse{}, &UpstreamError{Message: apiErr.Message}
		}
		return openai.ChatCompletionResponse{}, &TransportError{Err: err}
	}
	return resp, nil
}
