package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feidom-up/ai-feidom-graphl-worker/internal/services/chat/models"
)

func TestIncludeSamplingParam(t *testing.T) {
	tests := []struct {
		name  string
		value float32
		def   float32
		want  bool
	}{
		{"Default top_p omitted", 1.0, models.DefaultTopP, false},
		{"Non-default top_p included", 0.9, models.DefaultTopP, true},
		{"Default frequency penalty omitted", 0.0, models.DefaultFrequencyPenalty, false},
		{"Non-default frequency penalty included", 0.5, models.DefaultFrequencyPenalty, true},
		{"Default presence penalty omitted", 0.0, models.DefaultPresencePenalty, false},
		{"Negative presence penalty included", -0.4, models.DefaultPresencePenalty, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IncludeSamplingParam(tt.value, tt.def))
		})
	}
}

func TestDefaultChatParams(t *testing.T) {
	params := models.DefaultChatParams()

	assert.Equal(t, "gpt-3.5-turbo", params.Model)
	assert.Equal(t, float32(0.7), params.Temperature)
	assert.Equal(t, 1000, params.MaxTokens)
	assert.Equal(t, float32(1.0), params.TopP)
	assert.Equal(t, float32(0.0), params.FrequencyPenalty)
	assert.Equal(t, float32(0.0), params.PresencePenalty)
}
