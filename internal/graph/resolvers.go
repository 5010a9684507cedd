package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/feidom-up/ai-feidom-graphl-worker/internal/services/chat"
	"github.com/feidom-up/ai-feidom-graphl-worker/internal/services/chat/models"
)

// HealthMessage is the fixed response of the health query
const HealthMessage = "GraphQL OpenAI proxy is running"

// Resolver implements the root query and mutation fields. The chat service
// is constructor-injected so tests can substitute a fake.
type Resolver struct {
	chatService chat.Service
}

// NewResolver creates a resolver bound to the given chat service
func NewResolver(chatService chat.Service) *Resolver {
	return &Resolver{chatService: chatService}
}

// Health resolves the health query. It never fails.
func (r *Resolver) Health(p graphql.ResolveParams) (interface{}, error) {
	return HealthMessage, nil
}

// Chat resolves the chat mutation: typed arguments in, reshaped upstream
// response out. Roles and sampling parameter ranges are passed through
// unvalidated; the upstream API is the authority on both.
func (r *Resolver) Chat(p graphql.ResolveParams) (interface{}, error) {
	messages := parseMessages(p.Args["messages"])

	params := models.DefaultChatParams()
	params.Model = stringArg(p.Args, "model", params.Model)
	params.Temperature = floatArg(p.Args, "temperature", params.Temperature)
	params.MaxTokens = intArg(p.Args, "max_tokens", params.MaxTokens)
	params.TopP = floatArg(p.Args, "top_p", params.TopP)
	params.FrequencyPenalty = floatArg(p.Args, "frequency_penalty", params.FrequencyPenalty)
	params.PresencePenalty = floatArg(p.Args, "presence_penalty", params.PresencePenalty)

	return r.chatService.ProcessChat(p.Context, messages, params)
}

func parseMessages(arg interface{}) []models.ChatMessage {
	list, ok := arg.([]interface{})
	if !ok {
		return nil
	}

	messages := make([]models.ChatMessage, 0, len(list))
	for _, item := range list {
		fields, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		msg := models.ChatMessage{}
		if role, ok := fields["role"].(string); ok {
			msg.Role = role
		}
		if content, ok := fields["content"].(string); ok {
			msg.Content = content
		}
		messages = append(messages, msg)
	}
	return messages
}

func stringArg(args map[string]interface{}, key, def string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return def
}

func intArg(args map[string]interface{}, key string, def int) int {
	if v, ok := args[key].(int); ok {
		return v
	}
	return def
}

func floatArg(args map[string]interface{}, key string, def float32) float32 {
	if v, ok := args[key].(float64); ok {
		return float32(v)
	}
	return def
}
