package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/chefmate/internal/assistant"
	"github.com/povarna/generative-ai-agents/chefmate/internal/models"
)

// ChatInput is the MCP tool input schema (matches HTTP API field names).
type ChatInput struct {
	Message             string           `json:"message" jsonschema:"question for the cooking assistant"`
	ConversationHistory []map[string]any `json:"conversation_history,omitempty" jsonschema:"prior conversation turns"`
}

// RecipeSearchInput is the MCP tool input schema for recipe suggestions.
type RecipeSearchInput struct {
	Ingredients         []string `json:"ingredients" jsonschema:"available ingredients"`
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty" jsonschema:"dietary restriction labels such as vegan"`
}

// SubstitutionInput is the MCP tool input schema for ingredient substitutions.
type SubstitutionInput struct {
	Ingredient string `json:"ingredient" jsonschema:"ingredient to replace"`
	Context    string `json:"context,omitempty" jsonschema:"where the ingredient is used, e.g. baking"`
}

// NewChatHandler returns a tool handler that uses the given assistant.
// Pass the returned function to mcp.AddTool.
func NewChatHandler(chef *assistant.Assistant) func(context.Context, *mcp.CallToolRequest, ChatInput) (*mcp.CallToolResult, models.ChatResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ChatInput) (*mcp.CallToolResult, models.ChatResponse, error) {
		result := chef.Chat(ctx, assistant.ChatInput{
			Message: input.Message,
			History: input.ConversationHistory,
		})

		text, err := resultText(result)
		if err != nil {
			return nil, models.ChatResponse{}, err
		}
		return nil, models.ChatResponse{Response: text, Success: true}, nil
	}
}

// NewRecipeSearchHandler returns a tool handler for recipe suggestions.
func NewRecipeSearchHandler(chef *assistant.Assistant) func(context.Context, *mcp.CallToolRequest, RecipeSearchInput) (*mcp.CallToolResult, models.RecipeSearchResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RecipeSearchInput) (*mcp.CallToolResult, models.RecipeSearchResponse, error) {
		result := chef.FindRecipes(ctx, assistant.RecipeQuery{
			Ingredients:  input.Ingredients,
			Restrictions: input.DietaryRestrictions,
		})

		text, err := resultText(result)
		if err != nil {
			return nil, models.RecipeSearchResponse{}, err
		}
		return nil, models.RecipeSearchResponse{Recipes: text, Success: true}, nil
	}
}

// NewSubstitutionHandler returns a tool handler for ingredient substitutions.
func NewSubstitutionHandler(chef *assistant.Assistant) func(context.Context, *mcp.CallToolRequest, SubstitutionInput) (*mcp.CallToolResult, models.SubstitutionResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SubstitutionInput) (*mcp.CallToolResult, models.SubstitutionResponse, error) {
		result := chef.SuggestSubstitutions(ctx, assistant.SubstitutionQuery{
			Ingredient: input.Ingredient,
			Context:    input.Context,
		})

		text, err := resultText(result)
		if err != nil {
			return nil, models.SubstitutionResponse{}, err
		}
		return nil, models.SubstitutionResponse{Substitutions: text, Success: true}, nil
	}
}

// resultText mirrors the HTTP mapping: provider failures answer with the
// fallback text, anything else becomes a tool error.
func resultText(result assistant.Result) (string, error) {
	if result.OK() || result.Degraded() {
		return result.Message(), nil
	}
	return "", result.Err
}
