package mcpadapter

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/chefmate/internal/assistant"
)

const (
	serverName    = "chefmate"
	serverVersion = "1.0.0"
)

// NewServer registers the assistant operations as MCP tools.
func NewServer(chef *assistant.Assistant) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    serverName,
			Version: serverVersion,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "chat",
		Description: "Ask the ChefMate cooking assistant a free-form cooking question",
	}, NewChatHandler(chef))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_recipes",
		Description: "Suggest three recipes from a list of available ingredients, optionally honoring dietary restrictions",
	}, NewRecipeSearchHandler(chef))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "suggest_substitutions",
		Description: "Suggest substitutes for an ingredient with ratios and recipe adjustments",
	}, NewSubstitutionHandler(chef))

	return server
}
