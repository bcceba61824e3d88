package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tictacnext/tictacnext/internal/model/game"
)

func TestHello(t *testing.T) {
	router := NewRouter(game.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/hello", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Hello, world!" {
		t.Fatalf("unexpected payload: %v", body)
	}
}

func TestRoutesMountedUnderBasePath(t *testing.T) {
	router := NewRouter(game.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/game-session", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	router := NewRouter(game.NewMemoryStore())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/game-session", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", resp.Code)
	}
	if resp.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("expected wildcard CORS origin header")
	}
}
