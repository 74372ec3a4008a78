package api

import (
	"log"
	"net/http"
	"time"

	"github.com/isaacjstriker/blockfall/games/blockfall"
	"github.com/isaacjstriker/blockfall/internal/config"
	"github.com/isaacjstriker/blockfall/internal/database"
)

// APIServer serves accounts, scores and remote game sessions.
type APIServer struct {
	listenAddr string
	db         *database.DB
	config     *config.Config
	rules      blockfall.Rules
	tick       time.Duration
}

// NewAPIServer creates a new APIServer instance
func NewAPIServer(listenAddr string, db *database.DB, cfg *config.Config, rules blockfall.Rules) *APIServer {
	tick := cfg.TickPeriod
	if tick <= 0 {
		tick = 50 * time.Millisecond
	}
	return &APIServer{
		listenAddr: listenAddr,
		db:         db,
		config:     cfg,
		rules:      rules,
		tick:       tick,
	}
}

// Handler returns the routed handler without starting a listener.
func (s *APIServer) Handler() http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("POST /api/register", s.handleRegister)
	router.HandleFunc("POST /api/login", s.handleLogin)
	router.HandleFunc("GET /api/leaderboard", s.handleGetLeaderboard)
	router.HandleFunc("GET /api/me/stats", requireAuth(s, s.handleGetMyStats))
	router.HandleFunc("POST /api/scores", requireAuth(s, s.handleSubmitScore))

	router.HandleFunc("/ws/play", s.handlePlay)

	return router
}

// Start runs the HTTP server until it fails.
func (s *APIServer) Start() error {
	log.Printf("[INFO] API server listening on %s", s.listenAddr)
	return http.ListenAndServe(s.listenAddr, s.Handler())
}
