package webui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tictacnext/tictacnext/internal/service/play"
)

// NewRouter wires the web client routes to the play service and the API
// gateway.
func NewRouter(playSvc *play.Service, gateway Gateway) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	New(playSvc, gateway).RegisterRoutes(r)

	return r
}
