package routes

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"

	"github.com/janisto/huma-hello/internal/http/greeting"
)

const (
	// Title is the OpenAPI document title.
	Title = "Hello World API"
	// DocsPath serves the interactive API reference.
	DocsPath = "/docs"
)

// Config returns the huma configuration shared by the server and its tests.
func Config(version string) huma.Config {
	cfg := huma.DefaultConfig(Title, version)
	cfg.DocsPath = DocsPath
	// The default create hooks inject a "$schema" link into every response
	// body; the greeting payload must stay exactly {"message": ...}.
	cfg.CreateHooks = nil
	return cfg
}

// NewAPI mounts a huma API on router and advertises CBOR alongside JSON
// for every operation added afterwards.
func NewAPI(router chi.Router, version string) huma.API {
	api := humachi.New(router, Config(version))
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, addCBORContent)
	return api
}

func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}

// Register wires all HTTP routes into the provided API.
func Register(api huma.API) {
	greeting.Register(api)
}
