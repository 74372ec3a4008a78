package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/isaacjstriker/blockfall/internal/auth"
)

const tokenLifetime = 7 * 24 * time.Hour

// LoginRequest defines the shape of the login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse defines the shape of the successful login response
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// UserInfo is the identity carried by a validated token.
type UserInfo struct {
	UserID   int
	Username string
}

type claims struct {
	UserID   int    `json:"userID"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// handleLogin checks credentials and issues a JWT
func (s *APIServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid request body"})
		return
	}

	user, err := auth.Authenticate(s.db, req.Username, req.Password)
	if errors.Is(err, auth.ErrBadCredentials) {
		permissionDenied(w)
		return
	}
	if err != nil {
		log.Printf("[WARN] login lookup failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "login failed"})
		return
	}

	if err := s.db.TouchLogin(user.ID); err != nil {
		log.Printf("[WARN] %v", err)
	}

	token, err := createJWT(user.ID, user.Username, s.config.JWTSecret, time.Now())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to create token"})
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token, Username: user.Username})
}

// createJWT signs an HS256 token for the user valid for a week from now.
func createJWT(userID int, username, secret string, now time.Time) (string, error) {
	c := claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

// validateJWT verifies signature, algorithm and expiry.
func (s *APIServer) validateJWT(tokenString string) (*UserInfo, error) {
	var c claims
	_, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if c.UserID <= 0 {
		return nil, fmt.Errorf("invalid token: missing user")
	}
	return &UserInfo{UserID: c.UserID, Username: c.Username}, nil
}
