package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/isaacjstriker/blockfall/games/blockfall"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all connections for now. In production, you'd want to restrict this.
		return true
	},
}

// inputMessage is what the client sends: {"type":"input","key":"left"}.
type inputMessage struct {
	Type string `json:"type"`
	Key  string `json:"key"`
}

type stateMessage struct {
	Type  string              `json:"type"`
	State *blockfall.Snapshot `json:"state"`
}

type gameOverMessage struct {
	Type  string `json:"type"`
	Score int    `json:"score"`
	Lines int    `json:"lines"`
	Level int    `json:"level"`
	Saved bool   `json:"saved"`
}

// handlePlay upgrades to a WebSocket and runs one game session on it. A
// valid ?token= ties finished games to the player's account.
func (s *APIServer) handlePlay(w http.ResponseWriter, r *http.Request) {
	var player *UserInfo
	if token := r.URL.Query().Get("token"); token != "" {
		info, err := s.validateJWT(token)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, apiError{Error: "invalid token"})
			return
		}
		player = info
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WARN] Failed to upgrade connection: %v", err)
		return
	}
	defer conn.Close()

	opts := []blockfall.Option{blockfall.WithRules(s.rules)}
	if s.config.Debug {
		opts = append(opts, blockfall.WithLogger(log.Default()))
	}
	s.gameLoop(conn, blockfall.NewSession(opts...), player)
}

// readInputs forwards client commands until the connection closes.
func readInputs(conn *websocket.Conn, commands chan<- blockfall.Command, done <-chan struct{}) {
	defer close(commands)
	for {
		var msg inputMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Type != "input" {
			continue
		}
		cmd, err := blockfall.ParseCommand(msg.Key)
		if err != nil {
			log.Printf("[DEBUG] %v", err)
			continue
		}
		select {
		case commands <- cmd:
		case <-done:
			return
		}
	}
}

// gameLoop owns the session: commands and ticks are applied from this
// goroutine only, and a snapshot is pushed after each frame.
func (s *APIServer) gameLoop(conn *websocket.Conn, session *blockfall.Session, player *UserInfo) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	commands := make(chan blockfall.Command)
	done := make(chan struct{})
	defer close(done)
	go readInputs(conn, commands, done)

	last := time.Now()
	if err := s.sendState(conn, session); err != nil {
		return
	}

	for {
		before := session.State()

		select {
		case cmd, ok := <-commands:
			if !ok {
				return
			}
			session.Apply(cmd)
		case now := <-ticker.C:
			session.Tick(now.Sub(last))
			last = now
			if err := s.sendState(conn, session); err != nil {
				return
			}
		}

		if before == blockfall.Active && session.State() == blockfall.GameOver {
			if err := s.finishGame(conn, session, player); err != nil {
				return
			}
		}
	}
}

func (s *APIServer) sendState(conn *websocket.Conn, session *blockfall.Session) error {
	snap := session.Snapshot()
	return conn.WriteJSON(stateMessage{Type: "state", State: &snap})
}

// finishGame saves the result for a logged-in player and tells the client.
func (s *APIServer) finishGame(conn *websocket.Conn, session *blockfall.Session, player *UserInfo) error {
	stats := session.Stats()
	msg := gameOverMessage{Type: "gameOver", Score: stats.Score, Lines: stats.Lines, Level: stats.Level}

	if player != nil {
		meta := map[string]interface{}{"lines": stats.Lines, "level": stats.Level}
		if err := s.db.SaveGameScore(player.UserID, blockfall.GameName, stats.Score, meta); err != nil {
			log.Printf("[WARN] could not save score for %s: %v", player.Username, err)
		} else {
			msg.Saved = true
		}
	}

	if err := conn.WriteJSON(msg); err != nil {
		return err
	}
	return s.sendState(conn, session)
}
