package webui

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tictacnext/tictacnext/internal/model/game"
	"github.com/tictacnext/tictacnext/internal/service/play"
)

// Gateway is the slice of the API client the UI needs.
type Gateway interface {
	CreateSession(ctx context.Context, session game.Session) (string, error)
	ListSessions(ctx context.Context) ([]game.StoredSession, error)
	GetSession(ctx context.Context, id string) (game.StoredSession, error)
	DeleteSession(ctx context.Context, id string) error
}

// Handler serves the server-rendered game client: name entry, live play,
// the session list, and the replay viewer.
type Handler struct {
	play    *play.Service
	gateway Gateway
}

// New creates the web UI handler.
func New(playSvc *play.Service, gateway Gateway) *Handler {
	return &Handler{play: playSvc, gateway: gateway}
}

// RegisterRoutes registers every page and action route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleHome)
	r.Get("/session/new", h.handleNameEntry)
	r.Post("/session", h.handleStartSession)
	r.Get("/play/{id}", h.handlePlay)
	r.Post("/play/{id}/move/{cell}", h.handleMove)
	r.Post("/play/{id}/again", h.handlePlayAgain)
	r.Post("/play/{id}/end", h.handleEndSession)
	r.Get("/replay/{id}", h.handleReplay)
	r.Get("/ws/replay/{id}", h.handleReplayStream)
	r.Post("/sessions/{id}/delete", h.handleDeleteSession)
}

type homeData struct {
	Sessions []game.StoredSession
	Error    string
}

// handleHome lists past sessions with replay and delete actions.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	data := homeData{Error: r.URL.Query().Get("error")}

	sessions, err := h.gateway.ListSessions(r.Context())
	if err != nil {
		data.Error = err.Error()
	} else {
		data.Sessions = sessions
	}
	h.render(w, homeTmpl, data)
}

type nameEntryData struct {
	Error string
}

// handleNameEntry shows the player name form.
func (h *Handler) handleNameEntry(w http.ResponseWriter, r *http.Request) {
	h.render(w, nameEntryTmpl, nameEntryData{Error: r.URL.Query().Get("error")})
}

// handleStartSession starts a live session once both names are present.
func (h *Handler) handleStartSession(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/session/new", http.StatusSeeOther)
		return
	}

	session, err := h.play.Start(r.FormValue("player1Name"), r.FormValue("player2Name"))
	if errors.Is(err, play.ErrNamesRequired) {
		http.Redirect(w, r, "/session/new?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	if err != nil {
		http.Redirect(w, r, "/session/new?error="+url.QueryEscape("could not start session"), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/play/"+session.ID, http.StatusSeeOther)
}

type playData struct {
	Session *play.Session
	Board   game.Board
	Outcome play.Outcome
	Error   string
}

// handlePlay renders the board and session score.
func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	session, ok := h.play.Get(chi.URLParam(r, "id"))
	if !ok {
		http.Redirect(w, r, "/session/new", http.StatusSeeOther)
		return
	}
	h.renderPlay(w, session, r.URL.Query().Get("error"))
}

// handleMove places a marker. Rejected clicks fall through to an unchanged
// re-render.
func (h *Handler) handleMove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	cell, err := strconv.Atoi(chi.URLParam(r, "cell"))
	if err != nil {
		cell = -1
	}

	if _, err := h.play.Place(id, cell); errors.Is(err, play.ErrSessionNotFound) {
		http.Redirect(w, r, "/session/new", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/play/"+id, http.StatusSeeOther)
}

// handlePlayAgain starts the next round.
func (h *Handler) handlePlayAgain(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.play.PlayAgain(id); errors.Is(err, play.ErrSessionNotFound) {
		http.Redirect(w, r, "/session/new", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/play/"+id, http.StatusSeeOther)
}

// handleEndSession persists the session through the gateway. On failure the
// live session stays where it was and the failure is shown on the play page;
// nothing retries automatically.
func (h *Handler) handleEndSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	snapshot, err := h.play.End(id)
	if errors.Is(err, play.ErrSessionNotFound) {
		http.Redirect(w, r, "/session/new", http.StatusSeeOther)
		return
	}
	if err != nil {
		http.Redirect(w, r, "/play/"+id+"?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	if _, err := h.gateway.CreateSession(r.Context(), snapshot); err != nil {
		log.Printf("[web] save session %s: %v", id, err)
		http.Redirect(w, r, "/play/"+id+"?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	h.play.Finish(id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type replayData struct {
	Session game.StoredSession
	Error   string
}

// handleReplay renders a stored session move by move.
func (h *Handler) handleReplay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	session, err := h.gateway.GetSession(r.Context(), id)
	if err != nil {
		h.render(w, replayTmpl, replayData{Error: err.Error()})
		return
	}
	h.render(w, replayTmpl, replayData{Session: session})
}

// handleDeleteSession removes a stored session from the home list.
func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.gateway.DeleteSession(r.Context(), id); err != nil {
		http.Redirect(w, r, "/?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) renderPlay(w http.ResponseWriter, session *play.Session, errMsg string) {
	h.render(w, playTmpl, playData{
		Session: session,
		Board:   session.Board(),
		Outcome: session.Outcome(),
		Error:   errMsg,
	})
}
