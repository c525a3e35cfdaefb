package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"

	"go.yaml.in/yaml/v3"
)

//go:embed prompts.yaml
var defaultPrompts []byte

const maxTemperature = 2.0

// TemplateFuncs are the helpers available inside prompt templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"join": strings.Join,
	}
}

// LoadPromptConfig reads the prompt set from path. An empty path yields the
// built-in ChefMate prompts.
func LoadPromptConfig(path string) (*PromptConfig, error) {
	data := defaultPrompts
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		data = fileData
	}

	return ParsePromptConfig(data)
}

// DefaultPromptConfig returns the built-in prompts.
func DefaultPromptConfig() (*PromptConfig, error) {
	return ParsePromptConfig(defaultPrompts)
}

func ParsePromptConfig(data []byte) (*PromptConfig, error) {
	var cfg PromptConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *PromptConfig) {
	cfg.Prompts.System = strings.TrimSpace(cfg.Prompts.System)
	cfg.Prompts.RecipeSearch = strings.TrimSpace(cfg.Prompts.RecipeSearch)
	cfg.Prompts.Substitution = strings.TrimSpace(cfg.Prompts.Substitution)
}

func (c *PromptConfig) Validate() error {
	p := c.Prompts

	if p.System == "" {
		return errors.New("missing system prompt")
	}

	templates := []struct {
		name string
		text string
	}{
		{"recipe_search", p.RecipeSearch},
		{"substitution", p.Substitution},
	}
	for _, tmpl := range templates {
		if tmpl.text == "" {
			return fmt.Errorf("missing prompt for %s", tmpl.name)
		}
		if _, err := template.New(tmpl.name).Funcs(TemplateFuncs()).Parse(tmpl.text); err != nil {
			return fmt.Errorf("invalid prompt template %s: %w", tmpl.name, err)
		}
	}

	if p.Model.MaxTokens < 0 {
		return fmt.Errorf("negative max_tokens: %d", p.Model.MaxTokens)
	}

	if t := p.Model.Temperature; t != nil && (*t < 0 || *t > maxTemperature) {
		return fmt.Errorf("invalid temperature %f: must be within [0, %.1f]", *t, maxTemperature)
	}

	return nil
}
