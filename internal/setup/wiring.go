package setup

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/povarna/generative-ai-agents/chefmate/internal/assistant"
	"github.com/povarna/generative-ai-agents/chefmate/internal/config"
	"github.com/povarna/generative-ai-agents/chefmate/internal/llm"
	"github.com/povarna/generative-ai-agents/chefmate/internal/llm/gpt"
	"github.com/rs/zerolog"
)

const (
	defaultModel   = "xiaomi/mimo-v2-flash:free"
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultPort    = "8000"
)

type Config struct {
	APIKey            string
	ModelID           string
	BaseURL           string
	Port              string
	LogLevel          string
	PromptsConfigPath string
	LLMTimeout        time.Duration
	IncludeHistory    bool
}

type Dependencies struct {
	Assistant *assistant.Assistant
	Logger    *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		APIKey:            getEnv("OPENROUTER_API_KEY", ""),
		ModelID:           getEnv("OPENROUTER_MODEL", defaultModel),
		BaseURL:           getEnv("OPENROUTER_BASE_URL", defaultBaseURL),
		Port:              getEnv("PORT", defaultPort),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		PromptsConfigPath: getEnv("PROMPTS_CONFIG_PATH", ""),
		LLMTimeout:        getEnvDuration("LLM_TIMEOUT", 0),
		IncludeHistory:    getEnvBool("CHAT_INCLUDE_HISTORY", false),
	}
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("OPENROUTER_API_KEY is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid PORT %q: %w", c.Port, err)
	}
	return nil
}

func Wire(cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	llmClient, err := gpt.NewClient(cfg.APIKey, cfg.BaseURL, cfg.ModelID)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	return WireWithClient(cfg, llmClient, logger)
}

// WireWithClient builds the dependencies around an existing completion client.
func WireWithClient(cfg *Config, llmClient llm.LLMClient, logger *zerolog.Logger) (*Dependencies, error) {
	promptCfg, err := config.LoadPromptConfig(cfg.PromptsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompts config: %w", err)
	}

	prompts, err := assistant.NewPromptSet(promptCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompts: %w", err)
	}

	chef := assistant.NewAssistant(assistant.Config{
		Timeout:        cfg.LLMTimeout,
		IncludeHistory: cfg.IncludeHistory,
	}, llmClient, prompts, logger)

	logger.Info().
		Str("model", cfg.ModelID).
		Str("base_url", cfg.BaseURL).
		Dur("llm_timeout", cfg.LLMTimeout).
		Bool("include_history", cfg.IncludeHistory).
		Msg("Assistant initialized")

	return &Dependencies{
		Assistant: chef,
		Logger:    logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value < 0 {
		return defaultValue
	}

	return value
}
