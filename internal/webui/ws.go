package webui

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/tictacnext/tictacnext/internal/model/game"
)

// replayFrameInterval paces the animated playback.
const replayFrameInterval = 800 * time.Millisecond

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// replayFrame is one step of an animated replay. RoundStart marks the
// reset-to-empty snapshots that open each round; stored sessions carry no
// explicit round boundary, so empty boards are the only marker.
type replayFrame struct {
	Move        int        `json:"move"`
	Board       game.Board `json:"board"`
	Description string     `json:"description"`
	RoundStart  bool       `json:"roundStart"`
}

// handleReplayStream pushes a stored session's board states over a websocket
// at a fixed cadence, one frame per move.
func (h *Handler) handleReplayStream(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	session, err := h.gateway.GetSession(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[web] upgrade replay stream %s: %v", id, err)
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(replayFrameInterval)
	defer ticker.Stop()

	for i, board := range session.GameHistory {
		frame := replayFrame{
			Move:        i,
			Board:       board,
			Description: describeMove(session.MoveDescriptions, i),
			RoundStart:  board == (game.Board{}),
		}
		if err := conn.WriteJSON(frame); err != nil {
			return
		}
		if i < len(session.GameHistory)-1 {
			select {
			case <-ticker.C:
			case <-r.Context().Done():
				return
			}
		}
	}

	deadline := time.Now().Add(time.Second)
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replay complete"), deadline)
}

func describeMove(descriptions []string, i int) string {
	if i < 0 || i >= len(descriptions) {
		return ""
	}
	return descriptions[i]
}
