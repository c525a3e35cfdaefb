package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/chefmate/internal/llm"
	"github.com/rs/zerolog"
)

type Config struct {
	// Timeout bounds each provider call. Zero means no timeout.
	Timeout time.Duration
	// IncludeHistory forwards the client-supplied conversation history to the model.
	IncludeHistory bool
}

// ChatInput is a free-form question plus the turns the client already had.
type ChatInput struct {
	Message string
	History []map[string]any
}

// Assistant renders cooking prompts and delegates them to the completion client.
// It holds no request state and is shared by all requests.
type Assistant struct {
	llmClient llm.LLMClient
	prompts   *PromptSet
	config    Config
	logger    *zerolog.Logger
}

func NewAssistant(cfg Config, llmClient llm.LLMClient, prompts *PromptSet, logger *zerolog.Logger) *Assistant {
	return &Assistant{
		llmClient: llmClient,
		prompts:   prompts,
		config:    cfg,
		logger:    logger,
	}
}

func (a *Assistant) Chat(ctx context.Context, input ChatInput) Result {
	var history []llm.Message
	if a.config.IncludeHistory {
		history = toMessages(input.History)
	} else if len(input.History) > 0 {
		a.logger.Debug().
			Int("turns", len(input.History)).
			Msg("conversation history received but not forwarded")
	}

	return a.complete(ctx, OperationChat, input.Message, history)
}

func (a *Assistant) FindRecipes(ctx context.Context, query RecipeQuery) Result {
	prompt, err := a.prompts.RecipeSearch(query)
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to build recipe prompt")
		return Result{Operation: OperationRecipes, Err: err}
	}

	return a.complete(ctx, OperationRecipes, prompt, nil)
}

func (a *Assistant) SuggestSubstitutions(ctx context.Context, query SubstitutionQuery) Result {
	prompt, err := a.prompts.Substitution(query)
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to build substitution prompt")
		return Result{Operation: OperationSubstitution, Err: err}
	}

	return a.complete(ctx, OperationSubstitution, prompt, nil)
}

func (a *Assistant) complete(ctx context.Context, op Operation, prompt string, history []llm.Message) Result {
	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	modelConfig := a.prompts.modelConfig
	start := time.Now()

	resp, err := a.llmClient.InvokeModel(ctx, llm.LLMRequest{
		SystemPrompt: a.prompts.System(),
		History:      history,
		Prompt:       prompt,
		MaxTokens:    modelConfig.MaxTokens,
		Temperature:  modelConfig.Temperature,
	})
	duration := time.Since(start)

	if err == nil && (resp == nil || strings.TrimSpace(resp.Content) == "") {
		err = ErrEmptyCompletion
	} else if err != nil {
		err = fmt.Errorf("%w: %w", ErrCompletion, err)
	}

	completionsTotal.WithLabelValues(string(op), outcome(err)).Inc()
	completionDuration.WithLabelValues(string(op)).Observe(duration.Seconds())

	if err != nil {
		a.logger.Error().
			Err(err).
			Str("operation", string(op)).
			Dur("duration", duration).
			Msg("completion call failed")
		return Result{Operation: op, Err: err}
	}

	a.logger.Info().
		Str("operation", string(op)).
		Str("model", resp.Model).
		Str("stop_reason", resp.StopReason).
		Dur("duration", duration).
		Msg("completion finished")

	return Result{Operation: op, Text: resp.Content}
}

// toMessages keeps the history entries that carry a known role and string content.
func toMessages(history []map[string]any) []llm.Message {
	messages := make([]llm.Message, 0, len(history))
	for _, entry := range history {
		role, _ := entry["role"].(string)
		content, _ := entry["content"].(string)
		if content == "" {
			continue
		}

		switch llm.Role(role) {
		case llm.RoleUser, llm.RoleAssistant:
			messages = append(messages, llm.Message{Role: llm.Role(role), Content: content})
		}
	}
	return messages
}
