package chat

import (
	"context"

	"github.com/feidom-up/ai-feidom-graphl-worker/internal/services/chat/models"
)

// Service defines the interface for chat operations
type Service interface {
	// ProcessChat forwards a chat conversation to the upstream completion
	// API and returns the reshaped response
	ProcessChat(ctx context.Context, messages []models.ChatMessage, params models.ChatParams) (*models.ChatResponse, error)
}
