package api

import (
	"log"
	"net/http"

	"github.com/isaacjstriker/blockfall/games/blockfall"
)

type ScoreSubmission struct {
	Score    int                    `json:"score"`
	Metadata map[string]interface{} `json:"metadata"`
}

// handleSubmitScore stores a finished game's score for the caller
func (s *APIServer) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, apiError{Error: "user not found in context"})
		return
	}

	var submission ScoreSubmission
	if err := readJSON(r, &submission); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid request body"})
		return
	}
	if submission.Score < 0 {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "score must be non-negative"})
		return
	}

	if err := s.db.SaveGameScore(user.UserID, blockfall.GameName, submission.Score, submission.Metadata); err != nil {
		log.Printf("[WARN] %v", err)
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to save score"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Score saved successfully",
	})
}

// handleGetMyStats returns the caller's personal best and averages
func (s *APIServer) handleGetMyStats(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, apiError{Error: "user not found in context"})
		return
	}

	stats, err := s.db.GetUserStats(user.UserID, blockfall.GameName)
	if err != nil {
		log.Printf("[WARN] %v", err)
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to fetch stats"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
