package api

import (
	"net/http"
	"strconv"

	"github.com/isaacjstriker/blockfall/games/blockfall"
)

const (
	defaultLeaderboardLimit = 15
	maxLeaderboardLimit     = 100
)

// handleGetLeaderboard returns the top players by best score
func (s *APIServer) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	limit = min(limit, maxLeaderboardLimit)

	entries, err := s.db.GetLeaderboard(blockfall.GameName, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to fetch leaderboard"})
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
