package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/povarna/generative-ai-agents/chefmate/internal/middleware"
	"github.com/povarna/generative-ai-agents/chefmate/internal/models"
)

const OpenAPIPath = "/openapi.json"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON).
		Filter(middleware.Metrics)

	ws.
		Route(ws.GET("/").
			To(handler.Root).
			Doc("Capability listing").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(RootResponse{}).
			Returns(200, "OK", RootResponse{}))

	ws.
		Route(ws.GET("/health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/chat").
			To(handler.Chat).
			Doc("Chat with the cooking assistant").
			Metadata(restfulspec.KeyOpenAPITags, []string{"assistant"}).
			Reads(models.ChatRequest{}).
			Writes(models.ChatResponse{}).
			Returns(200, "OK", models.ChatResponse{}).
			Returns(422, "Unprocessable Entity", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/recipe-search").
			To(handler.RecipeSearch).
			Doc("Suggest recipes from available ingredients").
			Metadata(restfulspec.KeyOpenAPITags, []string{"assistant"}).
			Reads(models.RecipeSearchRequest{}).
			Writes(models.RecipeSearchResponse{}).
			Returns(200, "OK", models.RecipeSearchResponse{}).
			Returns(422, "Unprocessable Entity", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/substitution").
			To(handler.Substitution).
			Doc("Suggest ingredient substitutions").
			Metadata(restfulspec.KeyOpenAPITags, []string{"assistant"}).
			Reads(models.SubstitutionRequest{}).
			Writes(models.SubstitutionResponse{}).
			Returns(200, "OK", models.SubstitutionResponse{}).
			Returns(422, "Unprocessable Entity", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}

// RegisterOpenAPI serves the OpenAPI document for every web service
// already registered on the container.
func RegisterOpenAPI(container *restful.Container) {
	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       OpenAPIPath,
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}

	container.Add(restfulspec.NewOpenAPIService(config))
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "ChefMate API",
			Description: "AI cooking assistant backed by an OpenAI compatible model",
			Version:     apiVersion,
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "assistant", Description: "Cooking assistant operations"}},
	}
}
