package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	applog "github.com/janisto/huma-hello/internal/platform/logging"
	appmiddleware "github.com/janisto/huma-hello/internal/platform/middleware"
)

func newTestRouter() (chi.Router, huma.API) {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		applog.Middleware(),
		chimiddleware.Recoverer,
	)
	api := NewAPI(router, "test")
	Register(api)
	return router, api
}

func TestRegisterRoutesRoot(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "routes-root")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if _, ok := body["$schema"]; ok {
		t.Fatalf("expected no $schema field, got %v", body)
	}
	if len(body) != 1 || body["message"] != "Hello World" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestOpenAPIAdvertisesCBOR(t *testing.T) {
	_, api := newTestRouter()

	op := api.OpenAPI().Paths["/"].Get
	resp200 := op.Responses["200"]
	if resp200 == nil {
		t.Fatal("expected 200 response")
	}
	if _, ok := resp200.Content["application/json"]; !ok {
		t.Fatal("expected application/json in 200 response content")
	}
	if _, ok := resp200.Content["application/cbor"]; !ok {
		t.Fatal("expected application/cbor in 200 response content")
	}
	if op.RequestBody != nil {
		t.Fatal("expected no request body for GET /")
	}
}

func TestConfig(t *testing.T) {
	cfg := Config("1.2.3")

	if cfg.Info.Title != Title || cfg.Info.Version != "1.2.3" {
		t.Fatalf("unexpected info: %+v", cfg.Info)
	}
	if cfg.DocsPath != DocsPath {
		t.Fatalf("expected docs path %q, got %q", DocsPath, cfg.DocsPath)
	}
	if len(cfg.CreateHooks) != 0 {
		t.Fatalf("expected no create hooks, got %d", len(cfg.CreateHooks))
	}
}

func TestOpenAPIDocumentServed(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var doc struct {
		Info struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &doc); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if doc.Info.Title != Title || doc.Info.Version != "test" {
		t.Fatalf("unexpected info: %+v", doc.Info)
	}
}
