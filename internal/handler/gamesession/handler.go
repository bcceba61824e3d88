package gamesession

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tictacnext/tictacnext/internal/model/game"
	"github.com/tictacnext/tictacnext/pkg/utils"
)

// Handler serves the game-session CRUD surface.
type Handler struct {
	store game.Store
}

// New creates a game-session handler backed by the given store.
func New(store game.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes registers the game-session routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/game-session", h.handleList)
	r.Post("/game-session", h.handleCreate)
	r.Get("/game-session/{id}", h.handleGet)
	r.Delete("/game-session/{id}", h.handleDelete)
}

// handleList returns every stored session.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.FindAll(r.Context())
	if err != nil {
		log.Printf("[api] list game sessions: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch game sessions")
		return
	}
	if sessions == nil {
		sessions = []game.StoredSession{}
	}
	utils.RespondJSON(w, http.StatusOK, sessions)
}

// handleCreate validates and stores a completed session, returning its new
// identifier.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var session game.Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if issues := session.Validate(); len(issues) > 0 {
		utils.RespondErrorDetails(w, http.StatusBadRequest, "Invalid input", issues)
		return
	}

	id, err := h.store.Create(r.Context(), session)
	if err != nil {
		log.Printf("[api] create game session: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create game session")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// handleGet returns one session by identifier. Malformed identifiers are
// indistinguishable from absent ones.
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	session, err := h.store.FindByID(r.Context(), id)
	if errors.Is(err, game.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Game session not found")
		return
	}
	if err != nil {
		log.Printf("[api] fetch game session %s: %v", id, err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch game session")
		return
	}
	utils.RespondJSON(w, http.StatusOK, session)
}

// handleDelete removes one session by identifier.
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.store.DeleteByID(r.Context(), id)
	if err != nil {
		log.Printf("[api] delete game session %s: %v", id, err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete game session")
		return
	}
	if !deleted {
		utils.RespondError(w, http.StatusNotFound, "Game session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
