package models

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/chefmate/internal/middleware"
)

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message             *string          `json:"message" description:"Question for the cooking assistant"`
	ConversationHistory []map[string]any `json:"conversation_history,omitempty" description:"Prior conversation turns"`
}

type ChatResponse struct {
	Response string `json:"response" description:"Assistant answer"`
	Success  bool   `json:"success" description:"Always true when the request was handled"`
}

// RecipeSearchRequest is the body of POST /recipe-search.
type RecipeSearchRequest struct {
	Ingredients         []string `json:"ingredients" description:"Available ingredients"`
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty" description:"Dietary restriction labels such as vegan"`
}

type RecipeSearchResponse struct {
	Recipes string `json:"recipes" description:"Suggested recipes as formatted text"`
	Success bool   `json:"success" description:"Always true when the request was handled"`
}

// SubstitutionRequest is the body of POST /substitution.
type SubstitutionRequest struct {
	Ingredient *string `json:"ingredient" description:"Ingredient to replace"`
	Context    *string `json:"context,omitempty" description:"Where the ingredient is used, e.g. baking"`
}

type SubstitutionResponse struct {
	Substitutions string `json:"substitutions" description:"Suggested substitutes as formatted text"`
	Success       bool   `json:"success" description:"Always true when the request was handled"`
}

func (r *ChatRequest) Validate() error {
	if r.Message == nil {
		return fieldRequired("message")
	}
	return nil
}

func (r *RecipeSearchRequest) Validate() error {
	if r.Ingredients == nil {
		return fieldRequired("ingredients")
	}
	return nil
}

func (r *SubstitutionRequest) Validate() error {
	if r.Ingredient == nil {
		return fieldRequired("ingredient")
	}
	return nil
}

func (r *SubstitutionRequest) ContextText() string {
	if r.Context == nil {
		return ""
	}
	return *r.Context
}

func fieldRequired(field string) error {
	return fmt.Errorf("%s: %w", field, middleware.ErrFieldRequired)
}
