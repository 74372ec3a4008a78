package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/isaacjstriker/blockfall/internal/auth"
	"github.com/isaacjstriker/blockfall/internal/database"
)

// RegisterUserRequest defines the shape of the registration request
type RegisterUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func isValidationError(err error) bool {
	return errors.Is(err, auth.ErrInvalidUsername) ||
		errors.Is(err, auth.ErrInvalidEmail) ||
		errors.Is(err, auth.ErrInvalidPassword)
}

// handleRegister handles new user registration
func (s *APIServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid request body"})
		return
	}

	user, err := auth.Register(s.db, req.Username, req.Email, req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, user)
	case isValidationError(err):
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
	case database.IsDuplicate(err):
		writeJSON(w, http.StatusConflict, apiError{Error: "username or email already exists"})
	default:
		log.Printf("[WARN] Error creating user: %v", err)
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to create user"})
	}
}
