package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	openaiinfra "github.com/feidom-up/ai-feidom-graphl-worker/internal/infrastructure/openai"
	"github.com/feidom-up/ai-feidom-graphl-worker/internal/services/chat/models"
)

// ErrAPIKeyMissing is returned when a chat is attempted without a
// configured upstream credential. No upstream call is made in that case.
var ErrAPIKeyMissing = errors.New("OpenAI API key is not configured")

type Implementation struct {
	openaiService *openaiinfra.Service
}

// NewService creates a chat service backed by the given OpenAI service
func NewService(openaiService *openaiinfra.Service) Service {
	return &Implementation{openaiService: openaiService}
}

func (s *Implementation) ProcessChat(ctx context.Context, messages []models.ChatMessage, params models.ChatParams) (*models.ChatResponse, error) {
	log.Debug().Int("message_count", len(messages)).Str("model", params.Model).Msg("Processing chat request")

	if len(messages) == 0 {
		return nil, fmt.Errorf("messages cannot be empty")
	}

	if !s.openaiService.Configured() {
		log.Warn().Msg("Chat request rejected - no API key configured")
		return nil, ErrAPIKeyMissing
	}

	resp, err := s.openaiService.CreateChatCompletion(ctx, buildCompletionRequest(messages, params))
	if err != nil {
		var upstreamErr *openaiinfra.UpstreamError
		if errors.As(err, &upstreamErr) {
			log.Error().Str("upstream_error", upstreamErr.Message).Msg("Upstream API reported an error")
			return nil, fmt.Errorf("OpenAI API Error: %s", upstreamErr.Message)
		}
		log.Error().Err(err).Msg("Upstream call failed")
		return nil, fmt.Errorf("Failed to call OpenAI API: %s", err.Error())
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("Failed to call OpenAI API: no response choices returned")
	}

	choice := resp.Choices[0].Message

	response := &models.ChatResponse{
		ID:      resp.ID,
		Object:  resp.Object,
		Created: resp.Created,
		Model:   resp.Model,
		Message: models.ChatMessage{
			Role:    choice.Role,
			Content: choice.Content,
		},
	}
	if usage := resp.Usage; usage.PromptTokens != 0 || usage.CompletionTokens != 0 || usage.TotalTokens != 0 {
		response.Usage = &models.Usage{
			PromptTokens:     usage.PromptTokens,
			CompletionTokens: usage.CompletionTokens,
			TotalTokens:      usage.TotalTokens,
		}
	}

	return response, nil
}

// buildCompletionRequest maps domain messages and parameters onto the
// upstream request shape. Model, messages, temperature and max_tokens are
// always carried; the three sampling parameters are carried only when they
// differ from their defaults.
func buildCompletionRequest(messages []models.ChatMessage, params models.ChatParams) openai.ChatCompletionRequest {
	openaiMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		openaiMessages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	req := openai.ChatCompletionRequest{
		Model:       params.Model,
		Messages:    openaiMessages,
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
	}

	if IncludeSamplingParam(params.TopP, models.DefaultTopP) {
		req.TopP = params.TopP
	}
	if IncludeSamplingParam(params.FrequencyPenalty, models.DefaultFrequencyPenalty) {
		req.FrequencyPenalty = params.FrequencyPenalty
	}
	if IncludeSamplingParam(params.PresencePenalty, models.DefaultPresencePenalty) {
		req.PresencePenalty = params.PresencePenalty
	}

	return req
}
