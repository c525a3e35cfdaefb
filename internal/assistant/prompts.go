package assistant

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/povarna/generative-ai-agents/chefmate/internal/config"
)

// RecipeQuery is the template data for the recipe search prompt.
type RecipeQuery struct {
	Ingredients  []string
	Restrictions []string
}

// SubstitutionQuery is the template data for the substitution prompt.
type SubstitutionQuery struct {
	Ingredient string
	Context    string
}

// PromptSet holds the parsed templates and the model parameters from a PromptConfig.
type PromptSet struct {
	system       string
	recipeSearch *template.Template
	substitution *template.Template
	modelConfig  config.ModelConfig
}

func NewPromptSet(cfg *config.PromptConfig) (*PromptSet, error) {
	recipeSearch, err := template.New("recipe_search").Funcs(config.TemplateFuncs()).Parse(cfg.Prompts.RecipeSearch)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recipe_search template: %w", err)
	}

	substitution, err := template.New("substitution").Funcs(config.TemplateFuncs()).Parse(cfg.Prompts.Substitution)
	if err != nil {
		return nil, fmt.Errorf("failed to parse substitution template: %w", err)
	}

	return &PromptSet{
		system:       cfg.Prompts.System,
		recipeSearch: recipeSearch,
		substitution: substitution,
		modelConfig:  cfg.Prompts.Model,
	}, nil
}

func (p *PromptSet) System() string {
	return p.system
}

func (p *PromptSet) RecipeSearch(query RecipeQuery) (string, error) {
	return execute(p.recipeSearch, query)
}

func (p *PromptSet) Substitution(query SubstitutionQuery) (string, error) {
	return execute(p.substitution, query)
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: template %s: %v", ErrPrompt, tmpl.Name(), err)
	}
	return buf.String(), nil
}
