package models

// Default request parameters applied when the caller leaves them unset.
// They match the documented defaults of the upstream chat completion API.
const (
	DefaultModel                    = "gpt-3.5-turbo"
	DefaultTemperature      float32 = 0.7
	DefaultMaxTokens                = 1000
	DefaultTopP             float32 = 1.0
	DefaultFrequencyPenalty float32 = 0.0
	DefaultPresencePenalty  float32 = 0.0
)

// ChatParams holds the tunable request parameters for a chat completion
type ChatParams struct {
	Model            string
	Temperature      float32
	MaxTokens        int
	TopP             float32
	FrequencyPenalty float32
	PresencePenalty  float32
}

// DefaultChatParams returns a ChatParams populated with every default
func DefaultChatParams() ChatParams {
	return ChatParams{
		Model:            DefaultModel,
		Temperature:      DefaultTemperature,
		MaxTokens:        DefaultMaxTokens,
		TopP:             DefaultTopP,
		FrequencyPenalty: DefaultFrequencyPenalty,
		PresencePenalty:  DefaultPresencePenalty,
	}
}

// ChatResponse is the reshaped result of a chat completion: the envelope
// fields of the upstream response plus the first choice's message. Usage is
// nil when the upstream omits token accounting.
type ChatResponse struct {
	ID      string      `json:"id"`
	Object  string      `json:"object"`
	Created int64       `json:"created"`
	Model   string      `json:"model"`
	Message ChatMessage `json:"message"`
	Usage   *Usage      `json:"usage"`
}

// Usage holds the token accounting of a completion
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
