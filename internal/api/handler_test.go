package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/chefmate/internal/api"
	"github.com/povarna/generative-ai-agents/chefmate/internal/assistant"
	"github.com/povarna/generative-ai-agents/chefmate/internal/config"
	"github.com/povarna/generative-ai-agents/chefmate/internal/llm"
	"github.com/povarna/generative-ai-agents/chefmate/internal/llm/mocks"
	"github.com/povarna/generative-ai-agents/chefmate/internal/middleware"
	"github.com/povarna/generative-ai-agents/chefmate/internal/models"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func setupTestAPI(t *testing.T, promptCfg *config.PromptConfig) (*restful.Container, *mocks.MockLLMClient) {
	t.Helper()
	logger := zerolog.Nop()

	if promptCfg == nil {
		var err error
		promptCfg, err = config.DefaultPromptConfig()
		if err != nil {
			t.Fatalf("Failed to load prompts: %v", err)
		}
	}
	prompts, err := assistant.NewPromptSet(promptCfg)
	if err != nil {
		t.Fatalf("Failed to build prompts: %v", err)
	}

	ctrl := gomock.NewController(t)
	llmClient := mocks.NewMockLLMClient(ctrl)

	chef := assistant.NewAssistant(assistant.Config{}, llmClient, prompts, &logger)
	handler := api.NewHandler(chef, &logger)

	container := restful.NewContainer()
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)
	api.RegisterOpenAPI(container)

	return container, llmClient
}

func doRequest(container *restful.Container, method string, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)
	return recorder
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(recorder.Body.Bytes(), &out); err != nil {
		t.Fatalf("Failed to parse response: %v (body: %s)", err, recorder.Body.String())
	}
	return out
}

// expectPrompt answers the next completion with content and returns the request it received.
func expectPrompt(client *mocks.MockLLMClient, content string) *llm.LLMRequest {
	captured := &llm.LLMRequest{}
	client.EXPECT().
		InvokeModel(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
			*captured = request
			return &llm.LLMResponse{Content: content, StopReason: "stop"}, nil
		})
	return captured
}

func TestAPI_Root(t *testing.T) {
	container, _ := setupTestAPI(t, nil)

	recorder := doRequest(container, http.MethodGet, "/", "")

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	response := decode[api.RootResponse](t, recorder)
	if response.Message != "Welcome to ChefMate API" {
		t.Errorf("Unexpected message '%s'", response.Message)
	}
	if response.Version != "1.0.0" {
		t.Errorf("Expected version 1.0.0, got '%s'", response.Version)
	}
	want := []string{"/chat", "/recipe-search", "/substitution", "/health"}
	if !slices.Equal(response.Endpoints, want) {
		t.Errorf("Expected endpoints %v, got %v", want, response.Endpoints)
	}
}

func TestAPI_Health(t *testing.T) {
	// No completion is expected: health never probes the provider.
	container, _ := setupTestAPI(t, nil)

	recorder := doRequest(container, http.MethodGet, "/health", "")

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	response := decode[api.HealthResponse](t, recorder)
	if response.Status != "healthy" || !response.AgentReady {
		t.Errorf("Expected healthy/agent_ready, got %+v", response)
	}
}

func TestAPI_Chat(t *testing.T) {
	container, client := setupTestAPI(t, nil)
	captured := expectPrompt(client, "Rest the steak for five minutes.")

	recorder := doRequest(container, http.MethodPost, "/chat",
		`{"message": "How long should steak rest?", "conversation_history": [{"role": "user", "content": "hi"}]}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", recorder.Code, recorder.Body.String())
	}

	response := decode[models.ChatResponse](t, recorder)
	if !response.Success || response.Response != "Rest the steak for five minutes." {
		t.Errorf("Unexpected response %+v", response)
	}
	if captured.Prompt != "How long should steak rest?" {
		t.Errorf("Expected message forwarded verbatim, got '%s'", captured.Prompt)
	}
	if len(captured.History) != 0 {
		t.Errorf("Expected history not forwarded, got %d turns", len(captured.History))
	}
}

func TestAPI_Chat_ProviderFailureStillSucceeds(t *testing.T) {
	container, client := setupTestAPI(t, nil)
	client.EXPECT().
		InvokeModel(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("provider unavailable"))

	recorder := doRequest(container, http.MethodPost, "/chat", `{"message": "hello"}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	response := decode[models.ChatResponse](t, recorder)
	if !response.Success {
		t.Error("Expected success=true on provider failure")
	}
	if !strings.HasPrefix(response.Response, "I encountered an error: ") ||
		!strings.Contains(response.Response, "provider unavailable") {
		t.Errorf("Expected fallback text with cause, got '%s'", response.Response)
	}
}

func TestAPI_RecipeSearch(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains []string
	}{
		{
			name:     "ingredients only",
			body:     `{"ingredients": ["egg", "flour"]}`,
			contains: []string{"egg, flour", "Please suggest 3 delicious recipes"},
		},
		{
			name:     "with vegan restriction",
			body:     `{"ingredients": ["egg", "flour"], "dietary_restrictions": ["vegan"]}`,
			contains: []string{"with vegan restrictions"},
		},
		{
			name:     "empty ingredient list is accepted",
			body:     `{"ingredients": []}`,
			contains: []string{"I have these ingredients: ."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, client := setupTestAPI(t, nil)
			captured := expectPrompt(client, "# Crepes")

			recorder := doRequest(container, http.MethodPost, "/recipe-search", tt.body)

			if recorder.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d. Body: %s", recorder.Code, recorder.Body.String())
			}

			response := decode[models.RecipeSearchResponse](t, recorder)
			if !response.Success || response.Recipes != "# Crepes" {
				t.Errorf("Unexpected response %+v", response)
			}
			for _, want := range tt.contains {
				if !strings.Contains(captured.Prompt, want) {
					t.Errorf("Expected prompt to contain %q, got:\n%s", want, captured.Prompt)
				}
			}
		})
	}
}

func TestAPI_Substitution(t *testing.T) {
	container, client := setupTestAPI(t, nil)
	captured := expectPrompt(client, "Try coconut oil 1:1.")

	recorder := doRequest(container, http.MethodPost, "/substitution", `{"ingredient": "butter", "context": "baking"}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", recorder.Code, recorder.Body.String())
	}

	response := decode[models.SubstitutionResponse](t, recorder)
	if !response.Success || response.Substitutions != "Try coconut oil 1:1." {
		t.Errorf("Unexpected response %+v", response)
	}
	if !strings.Contains(captured.Prompt, "substitutes for butter in baking") {
		t.Errorf("Expected prompt to contain 'substitutes for butter in baking', got:\n%s", captured.Prompt)
	}
}

func TestAPI_Substitution_ProviderFailure(t *testing.T) {
	container, client := setupTestAPI(t, nil)
	client.EXPECT().
		InvokeModel(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("rate limited"))

	recorder := doRequest(container, http.MethodPost, "/substitution", `{"ingredient": "egg"}`)

	response := decode[models.SubstitutionResponse](t, recorder)
	if recorder.Code != http.StatusOK || !response.Success {
		t.Fatalf("Expected 200 success, got %d %+v", recorder.Code, response)
	}
	if !strings.HasPrefix(response.Substitutions, "Error getting substitutions: ") {
		t.Errorf("Expected substitution fallback, got '%s'", response.Substitutions)
	}
}

func TestAPI_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantDetail string
	}{
		{"chat missing message", "/chat", `{}`, "message: field required"},
		{"chat null message", "/chat", `{"message": null}`, "message: field required"},
		{"chat wrong type", "/chat", `{"message": 42}`, ""},
		{"chat malformed json", "/chat", `{"message": `, ""},
		{"recipes missing ingredients", "/recipe-search", `{"dietary_restrictions": ["vegan"]}`, "ingredients: field required"},
		{"recipes wrong type", "/recipe-search", `{"ingredients": "egg"}`, ""},
		{"substitution missing ingredient", "/substitution", `{"context": "baking"}`, "ingredient: field required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The mock has no expectations, so any completion call fails the test.
			container, _ := setupTestAPI(t, nil)

			recorder := doRequest(container, http.MethodPost, tt.path, tt.body)

			if recorder.Code != http.StatusUnprocessableEntity {
				t.Fatalf("Expected status 422, got %d. Body: %s", recorder.Code, recorder.Body.String())
			}

			response := decode[middleware.ErrorResponse](t, recorder)
			if response.Detail == "" {
				t.Error("Expected non-empty detail")
			}
			if tt.wantDetail != "" && response.Detail != tt.wantDetail {
				t.Errorf("Expected detail '%s', got '%s'", tt.wantDetail, response.Detail)
			}
		})
	}
}

func TestAPI_PromptFailureReturns500(t *testing.T) {
	container, _ := setupTestAPI(t, &config.PromptConfig{
		Prompts: config.Prompts{
			System:       "You are ChefMate",
			RecipeSearch: "{{.Pantry}}",
			Substitution: "{{.Ingredient}}",
		},
	})

	recorder := doRequest(container, http.MethodPost, "/recipe-search", `{"ingredients": ["egg"]}`)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d. Body: %s", recorder.Code, recorder.Body.String())
	}

	response := decode[middleware.ErrorResponse](t, recorder)
	if !strings.Contains(response.Detail, "prompt rendering failed") {
		t.Errorf("Expected prompt failure detail, got '%s'", response.Detail)
	}
}

func TestAPI_OpenAPIDocument(t *testing.T) {
	container, _ := setupTestAPI(t, nil)

	recorder := doRequest(container, http.MethodGet, api.OpenAPIPath, "")

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	document := decode[map[string]any](t, recorder)
	paths, ok := document["paths"].(map[string]any)
	if !ok {
		t.Fatalf("Expected paths in OpenAPI document, got %v", document)
	}
	for _, path := range []string{"/chat", "/recipe-search", "/substitution", "/health"} {
		if _, found := paths[path]; !found {
			t.Errorf("Expected path %s in OpenAPI document", path)
		}
	}
}
