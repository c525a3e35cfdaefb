package llm

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a prior conversation turn.
type Message struct {
	Role    Role
	Content string
}

type LLMRequest struct {
	SystemPrompt string
	History      []Message
	Prompt       string
	// MaxTokens of zero leaves the limit to the provider.
	MaxTokens int
	// Temperature is nil when the provider default should be used.
	Temperature *float64
}

type LLMResponse struct {
	Content    string
	StopReason string
	Model      string
}
