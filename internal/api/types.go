package api

const (
	apiVersion     = "1.0.0"
	welcomeMessage = "Welcome to ChefMate API"
)

// Endpoints is the capability listing returned by GET /.
var Endpoints = []string{"/chat", "/recipe-search", "/substitution", "/health"}

type RootResponse struct {
	Message   string   `json:"message" description:"Welcome message"`
	Version   string   `json:"version" description:"API version"`
	Endpoints []string `json:"endpoints" description:"Available endpoints"`
}

type HealthResponse struct {
	Status     string `json:"status" description:"Service status"`
	AgentReady bool   `json:"agent_ready" description:"Whether the assistant was constructed"`
}
