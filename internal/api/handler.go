package api

import (
	"net/http"
	"slices"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/chefmate/internal/assistant"
	"github.com/povarna/generative-ai-agents/chefmate/internal/middleware"
	"github.com/povarna/generative-ai-agents/chefmate/internal/models"
	"github.com/rs/zerolog"
)

type Handler struct {
	assistant *assistant.Assistant
	logger    *zerolog.Logger
}

func NewHandler(assistant *assistant.Assistant, logger *zerolog.Logger) *Handler {
	return &Handler{
		assistant: assistant,
		logger:    logger,
	}
}

// GET /
func (h *Handler) Root(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, RootResponse{
		Message:   welcomeMessage,
		Version:   apiVersion,
		Endpoints: slices.Clone(Endpoints),
	})
}

// GET /health
// Static: the assistant is built before the server starts listening and the
// provider is not probed.
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:     "healthy",
		AgentReady: true,
	})
}

// POST /chat
// Body: ChatRequest
// Returns: ChatResponse
func (h *Handler) Chat(req *restful.Request, resp *restful.Response) {
	var chatRequest models.ChatRequest
	if !h.readRequest(req, resp, &chatRequest, chatRequest.Validate) {
		return
	}

	h.logger.Info().
		Int("message_length", len(*chatRequest.Message)).
		Int("history_turns", len(chatRequest.ConversationHistory)).
		Msg("Process chat")

	result := h.assistant.Chat(req.Request.Context(), assistant.ChatInput{
		Message: *chatRequest.Message,
		History: chatRequest.ConversationHistory,
	})

	if text, ok := h.completionText(resp, result); ok {
		resp.WriteHeaderAndEntity(http.StatusOK, models.ChatResponse{Response: text, Success: true})
	}
}

// POST /recipe-search
// Body: RecipeSearchRequest
// Returns: RecipeSearchResponse
func (h *Handler) RecipeSearch(req *restful.Request, resp *restful.Response) {
	var searchRequest models.RecipeSearchRequest
	if !h.readRequest(req, resp, &searchRequest, searchRequest.Validate) {
		return
	}

	h.logger.Info().
		Strs("ingredients", searchRequest.Ingredients).
		Strs("dietary_restrictions", searchRequest.DietaryRestrictions).
		Msg("Process recipe search")

	result := h.assistant.FindRecipes(req.Request.Context(), assistant.RecipeQuery{
		Ingredients:  searchRequest.Ingredients,
		Restrictions: searchRequest.DietaryRestrictions,
	})

	if text, ok := h.completionText(resp, result); ok {
		resp.WriteHeaderAndEntity(http.StatusOK, models.RecipeSearchResponse{Recipes: text, Success: true})
	}
}

// POST /substitution
// Body: SubstitutionRequest
// Returns: SubstitutionResponse
func (h *Handler) Substitution(req *restful.Request, resp *restful.Response) {
	var substitutionRequest models.SubstitutionRequest
	if !h.readRequest(req, resp, &substitutionRequest, substitutionRequest.Validate) {
		return
	}

	h.logger.Info().
		Str("ingredient", *substitutionRequest.Ingredient).
		Str("context", substitutionRequest.ContextText()).
		Msg("Process substitution")

	result := h.assistant.SuggestSubstitutions(req.Request.Context(), assistant.SubstitutionQuery{
		Ingredient: *substitutionRequest.Ingredient,
		Context:    substitutionRequest.ContextText(),
	})

	if text, ok := h.completionText(resp, result); ok {
		resp.WriteHeaderAndEntity(http.StatusOK, models.SubstitutionResponse{Substitutions: text, Success: true})
	}
}

func (h *Handler) readRequest(req *restful.Request, resp *restful.Response, entity any, validate func() error) bool {
	if err := req.ReadEntity(entity); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusUnprocessableEntity)
		return false
	}

	if err := validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusUnprocessableEntity)
		return false
	}

	return true
}

// completionText maps an assistant result to the payload text. Provider
// failures keep the 200 contract with the fallback text in the payload; any
// other failure is answered with 500 and false is returned.
func (h *Handler) completionText(resp *restful.Response, result assistant.Result) (string, bool) {
	if result.OK() {
		return result.Text, true
	}

	if result.Degraded() {
		h.logger.Warn().
			Err(result.Err).
			Str("operation", string(result.Operation)).
			Msg("Answering with fallback message")
		return result.Message(), true
	}

	h.logger.Error().
		Err(result.Err).
		Str("operation", string(result.Operation)).
		Msg("Request failed")
	middleware.HandleError(resp, result.Err, http.StatusInternalServerError)
	return "", false
}
