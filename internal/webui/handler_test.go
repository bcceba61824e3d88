package webui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/tictacnext/tictacnext/internal/model/game"
	"github.com/tictacnext/tictacnext/internal/service/play"
)

// stubGateway fakes the API client; Fail switches every call to an error to
// exercise the failure paths.
type stubGateway struct {
	store *game.MemoryStore
	Fail  bool
}

var errGateway = errors.New("Network error")

func (g *stubGateway) CreateSession(ctx context.Context, session game.Session) (string, error) {
	if g.Fail {
		return "", errGateway
	}
	return g.store.Create(ctx, session)
}

func (g *stubGateway) ListSessions(ctx context.Context) ([]game.StoredSession, error) {
	if g.Fail {
		return nil, errGateway
	}
	return g.store.FindAll(ctx)
}

func (g *stubGateway) GetSession(ctx context.Context, id string) (game.StoredSession, error) {
	if g.Fail {
		return game.StoredSession{}, errGateway
	}
	return g.store.FindByID(ctx, id)
}

func (g *stubGateway) DeleteSession(ctx context.Context, id string) error {
	if g.Fail {
		return errGateway
	}
	deleted, err := g.store.DeleteByID(ctx, id)
	if err != nil || !deleted {
		return errors.New("Game session not found")
	}
	return nil
}

func setup() (http.Handler, *play.Service, *stubGateway) {
	playSvc := play.NewService()
	gateway := &stubGateway{store: game.NewMemoryStore()}
	return NewRouter(playSvc, gateway), playSvc, gateway
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
	return resp
}

func TestHomeListsSessions(t *testing.T) {
	r, _, gateway := setup()

	session := game.Session{
		Player1Name:      "Alice",
		Player2Name:      "Bob",
		GameHistory:      []game.Board{{}},
		MoveDescriptions: []string{"Game Start"},
	}
	if _, err := gateway.store.Create(context.Background(), session); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	resp := get(r, "/")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Alice (X)") {
		t.Fatal("expected the session card for Alice")
	}
}

func TestHomeShowsGatewayFailure(t *testing.T) {
	r, _, gateway := setup()
	gateway.Fail = true

	resp := get(r, "/")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Network error") {
		t.Fatal("expected the gateway error banner")
	}
}

func TestStartSessionRequiresNames(t *testing.T) {
	r, playSvc, _ := setup()

	resp := postForm(r, "/session", url.Values{"player1Name": {"Alice"}})
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", resp.Code)
	}
	if !strings.HasPrefix(resp.Header().Get("Location"), "/session/new?error=") {
		t.Fatalf("expected redirect back to name entry, got %q", resp.Header().Get("Location"))
	}

	resp = postForm(r, "/session", url.Values{"player1Name": {"Alice"}, "player2Name": {"Bob"}})
	location := resp.Header().Get("Location")
	if !strings.HasPrefix(location, "/play/") {
		t.Fatalf("expected redirect to play page, got %q", location)
	}
	if _, ok := playSvc.Get(strings.TrimPrefix(location, "/play/")); !ok {
		t.Fatal("expected a live session")
	}
}

func TestPlayPageRendersBoard(t *testing.T) {
	r, playSvc, _ := setup()
	session, _ := playSvc.Start("Alice", "Bob")

	resp := get(r, "/play/"+session.ID)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Next player: Alice (X)") {
		t.Fatal("expected the next-player status line")
	}
}

func TestMoveRedirectsBackToPlay(t *testing.T) {
	r, playSvc, _ := setup()
	session, _ := playSvc.Start("Alice", "Bob")

	resp := postForm(r, "/play/"+session.ID+"/move/4", nil)
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", resp.Code)
	}
	if session.Board()[4] != game.MarkerX {
		t.Fatal("expected X at cell 4")
	}

	// A second click on the same cell is a silent no-op.
	postForm(r, "/play/"+session.ID+"/move/4", nil)
	if len(session.History) != 2 {
		t.Fatalf("expected history length 2, got %d", len(session.History))
	}
}

func TestEndSessionPersistsAndRedirectsHome(t *testing.T) {
	r, playSvc, gateway := setup()
	session, _ := playSvc.Start("Alice", "Bob")
	for _, cell := range []int{0, 3, 1, 4, 2} {
		playSvc.Place(session.ID, cell)
	}

	resp := postForm(r, "/play/"+session.ID+"/end", nil)
	if resp.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect home, got %q", resp.Header().Get("Location"))
	}

	stored, err := gateway.store.FindAll(context.Background())
	if err != nil || len(stored) != 1 {
		t.Fatalf("expected one stored session, got %d (%v)", len(stored), err)
	}
	if stored[0].Player1Wins != 1 {
		t.Fatalf("expected Alice's win persisted, got %+v", stored[0])
	}
	if _, ok := playSvc.Get(session.ID); ok {
		t.Fatal("expected the live session to be finished")
	}
}

func TestEndSessionFailureKeepsLiveSession(t *testing.T) {
	r, playSvc, gateway := setup()
	gateway.Fail = true
	session, _ := playSvc.Start("Alice", "Bob")
	for _, cell := range []int{0, 3, 1, 4, 2} {
		playSvc.Place(session.ID, cell)
	}

	resp := postForm(r, "/play/"+session.ID+"/end", nil)
	if !strings.HasPrefix(resp.Header().Get("Location"), "/play/"+session.ID+"?error=") {
		t.Fatalf("expected redirect back with error, got %q", resp.Header().Get("Location"))
	}

	live, ok := playSvc.Get(session.ID)
	if !ok {
		t.Fatal("expected the live session to survive the failed save")
	}
	if live.Phase != play.PhaseRoundOver {
		t.Fatalf("expected RoundOver, got %s", live.Phase)
	}
}

func TestReplayRendersMoves(t *testing.T) {
	r, _, gateway := setup()

	session := game.Session{
		Player1Name:      "Alice",
		Player2Name:      "Bob",
		GameHistory:      []game.Board{{}, {game.MarkerX}},
		MoveDescriptions: []string{"Game Start", "Alice (X) picked (0, 0)"},
	}
	id, _ := gateway.store.Create(context.Background(), session)

	resp := get(r, "/replay/"+id)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Alice (X) picked (0, 0)") {
		t.Fatal("expected the move description")
	}
}

func TestReplayMissingSession(t *testing.T) {
	r, _, _ := setup()

	resp := get(r, "/replay/not-a-valid-id")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Error:") {
		t.Fatal("expected the error banner")
	}
}

func TestDeleteSessionFromHome(t *testing.T) {
	r, _, gateway := setup()

	id, _ := gateway.store.Create(context.Background(), game.Session{
		Player1Name:      "Alice",
		Player2Name:      "Bob",
		GameHistory:      []game.Board{{}},
		MoveDescriptions: []string{"Game Start"},
	})

	resp := postForm(r, "/sessions/"+id+"/delete", nil)
	if resp.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect home, got %q", resp.Header().Get("Location"))
	}

	if _, err := gateway.store.FindByID(context.Background(), id); !errors.Is(err, game.ErrNotFound) {
		t.Fatal("expected the session to be deleted")
	}
}
