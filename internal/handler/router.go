package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tictacnext/tictacnext/internal/handler/gamesession"
	middlewarePkg "github.com/tictacnext/tictacnext/internal/middleware"
	"github.com/tictacnext/tictacnext/internal/model/game"
	"github.com/tictacnext/tictacnext/pkg/utils"
)

// NewRouter wires the REST API routes to the session store.
func NewRouter(store game.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	sessionHandler := gamesession.New(store)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/hello", handleHello)
		sessionHandler.RegisterRoutes(api)
	})

	return r
}

// handleHello is the liveness check.
func handleHello(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Hello, world!"})
}
