package config

// PromptConfig is the root of the prompts YAML document.
type PromptConfig struct {
	Prompts Prompts `yaml:"prompts"`
}

// Prompts holds the system instruction, the per-operation templates and the
// model parameters sent with every completion.
type Prompts struct {
	Model        ModelConfig `yaml:"model"`
	System       string      `yaml:"system"`
	RecipeSearch string      `yaml:"recipe_search"`
	Substitution string      `yaml:"substitution"`
}

type ModelConfig struct {
	MaxTokens   int      `yaml:"max_tokens"`
	Temperature *float64 `yaml:"temperature,omitempty"`
}
