package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver for local play
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type DB struct {
	conn   *sql.DB
	dbType string // "postgres" or "sqlite3"
}

type User struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

// LeaderboardEntry represents a single entry in the leaderboard
type LeaderboardEntry struct {
	Username    string    `json:"username"`
	GameType    string    `json:"game_type"`
	BestScore   int       `json:"best_score"`
	AvgScore    float64   `json:"avg_score"`
	GamesPlayed int       `json:"games_played"`
	LastPlayed  time.Time `json:"last_played"`
}

// driverFor picks the SQL driver and DSN for a database URL. Postgres URLs
// are passed through; sqlite3:// URLs, file: URIs and :memory: open SQLite.
func driverFor(dbURL string) (driver, dsn string, err error) {
	switch {
	case strings.HasPrefix(dbURL, "postgres://"), strings.HasPrefix(dbURL, "postgresql://"):
		return "postgres", dbURL, nil
	case strings.HasPrefix(dbURL, "sqlite3://"):
		return "sqlite3", strings.TrimPrefix(dbURL, "sqlite3://"), nil
	case strings.HasPrefix(dbURL, "file:"), dbURL == ":memory:":
		return "sqlite3", dbURL, nil
	}
	return "", "", fmt.Errorf("unsupported database type for URL")
}

// Connect opens and pings the database named by dbURL.
func Connect(dbURL string) (*DB, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	driverName, dsn, err := driverFor(dbURL)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if driverName == "sqlite3" {
		// an in-memory database lives only as long as its one connection
		conn.SetMaxOpenConns(1)
	}

	if err = conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{conn: conn, dbType: driverName}, nil
}

// Type returns the driver name in use.
func (db *DB) Type() string {
	return db.dbType
}

// rebind rewrites ? placeholders as $1, $2, ... for PostgreSQL.
func (db *DB) rebind(query string) string {
	if db.dbType != "postgres" {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteString("$" + strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// CreateTables creates the necessary database tables
func (db *DB) CreateTables() error {
	var queries []string

	if db.dbType == "postgres" {
		queries = []string{
			`CREATE TABLE IF NOT EXISTS users (
				id SERIAL PRIMARY KEY,
				username VARCHAR(50) UNIQUE NOT NULL,
				email VARCHAR(100) UNIQUE NOT NULL,
				password_hash VARCHAR(255) NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				last_login TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS game_scores (
				id SERIAL PRIMARY KEY,
				user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
				game_type VARCHAR(50) NOT NULL,
				score INTEGER NOT NULL,
				metadata JSONB,
				played_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE INDEX IF NOT EXISTS idx_game_scores_user_game ON game_scores(user_id, game_type)`,
			`CREATE INDEX IF NOT EXISTS idx_game_scores_type_score ON game_scores(game_type, score DESC)`,
		}
	} else {
		queries = []string{
			`CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT UNIQUE NOT NULL,
				email TEXT UNIQUE NOT NULL,
				password_hash TEXT NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				last_login DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS game_scores (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER,
				game_type TEXT NOT NULL,
				score INTEGER NOT NULL,
				metadata TEXT,
				played_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users (id)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_game_scores_type_score ON game_scores(game_type, score DESC)`,
		}
	}

	for _, query := range queries {
		if _, err := db.conn.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// Ping checks that the connection is still usable.
func (db *DB) Ping() error {
	return db.conn.Ping()
}

// Version reports the server version string.
func (db *DB) Version() (string, error) {
	query := "SELECT version()"
	if db.dbType == "sqlite3" {
		query = "SELECT sqlite_version()"
	}
	var v string
	if err := db.conn.QueryRow(query).Scan(&v); err != nil {
		return "", fmt.Errorf("failed to query version: %w", err)
	}
	return v, nil
}

// CreateUser creates a new user in the database
func (db *DB) CreateUser(username, email, passwordHash string) (*User, error) {
	var id int64
	if db.dbType == "postgres" {
		err := db.conn.QueryRow(
			db.rebind(`INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?) RETURNING id`),
			username, email, passwordHash,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	} else {
		result, err := db.conn.Exec(
			`INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`,
			username, email, passwordHash,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		if id, err = result.LastInsertId(); err != nil {
			return nil, fmt.Errorf("failed to get user ID: %w", err)
		}
	}

	return &User{
		ID:        int(id),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now(),
	}, nil
}

// IsDuplicate reports whether err is a unique constraint violation.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// GetUserByUsername retrieves a user and their password hash.
func (db *DB) GetUserByUsername(username string) (*User, string, error) {
	query := db.rebind(`
		SELECT id, username, email, password_hash, created_at, last_login
		FROM users WHERE username = ?
	`)

	var user User
	var passwordHash string
	var createdAt, lastLogin interface{}
	err := db.conn.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.Email, &passwordHash, &createdAt, &lastLogin,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}

	if t, ok := parseTimestamp(createdAt); ok {
		user.CreatedAt = t
	}
	if t, ok := parseTimestamp(lastLogin); ok {
		user.LastLogin = &t
	}
	return &user, passwordHash, nil
}

// TouchLogin records a successful login.
func (db *DB) TouchLogin(userID int) error {
	_, err := db.conn.Exec(db.rebind(`UPDATE users SET last_login = ? WHERE id = ?`), time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// SaveGameScore saves the final score of a finished game.
func (db *DB) SaveGameScore(userID int, gameType string, score int, metadata map[string]interface{}) error {
	query := db.rebind(`
		INSERT INTO game_scores (user_id, game_type, score, metadata, played_at)
		VALUES (?, ?, ?, ?, ?)
	`)

	var metadataValue interface{}
	if metadata != nil {
		metadataJSON, err := json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}
		metadataValue = string(metadataJSON)
		if db.dbType == "postgres" {
			metadataValue = metadataJSON // JSONB
		}
	}

	if _, err := db.conn.Exec(query, userID, gameType, score, metadataValue, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save game score: %w", err)
	}
	return nil
}

// GetLeaderboard returns the best score per user for a game, highest first.
func (db *DB) GetLeaderboard(gameType string, limit int) ([]LeaderboardEntry, error) {
	avg := "AVG(gs.score)"
	if db.dbType == "sqlite3" {
		avg = "AVG(CAST(gs.score AS REAL))"
	}
	query := db.rebind(`
		SELECT
			u.username,
			MAX(gs.score) as best_score,
			` + avg + ` as avg_score,
			COUNT(gs.id) as games_played,
			MAX(gs.played_at) as last_played
		FROM users u
		JOIN game_scores gs ON u.id = gs.user_id
		WHERE gs.game_type = ?
		GROUP BY u.id, u.username
		ORDER BY best_score DESC
		LIMIT ?
	`)

	rows, err := db.conn.Query(query, gameType, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	defer rows.Close()

	entries := []LeaderboardEntry{}
	for rows.Next() {
		var entry LeaderboardEntry
		var lastPlayed interface{}
		if err := rows.Scan(&entry.Username, &entry.BestScore, &entry.AvgScore, &entry.GamesPlayed, &lastPlayed); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entry.LastPlayed, _ = parseTimestamp(lastPlayed)
		entry.GameType = gameType
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}
	return entries, nil
}

// GetUserStats summarizes one user's results for a game. A user with no
// games gets zero counts.
func (db *DB) GetUserStats(userID int, gameType string) (*LeaderboardEntry, error) {
	avg := "AVG(gs.score)"
	if db.dbType == "sqlite3" {
		avg = "AVG(CAST(gs.score AS REAL))"
	}
	query := db.rebind(`
		SELECT
			u.username,
			COALESCE(MAX(gs.score), 0) as best_score,
			COALESCE(` + avg + `, 0) as avg_score,
			COUNT(gs.id) as games_played,
			MAX(gs.played_at) as last_played
		FROM users u
		LEFT JOIN game_scores gs ON u.id = gs.user_id AND gs.game_type = ?
		WHERE u.id = ?
		GROUP BY u.id, u.username
	`)

	entry := LeaderboardEntry{GameType: gameType}
	var lastPlayed interface{}
	err := db.conn.QueryRow(query, gameType, userID).Scan(
		&entry.Username, &entry.BestScore, &entry.AvgScore, &entry.GamesPlayed, &lastPlayed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	entry.LastPlayed, _ = parseTimestamp(lastPlayed)
	return &entry, nil
}

var timestampFormats = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	time.RFC3339Nano,
}

// parseTimestamp handles the shapes drivers return for time columns:
// time.Time from pq and typed sqlite columns, text from sqlite aggregates.
func parseTimestamp(v interface{}) (time.Time, bool) {
	var s string
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		s = t
	case []byte:
		s = string(t)
	default:
		return time.Time{}, false
	}
	for _, format := range timestampFormats {
		if parsed, err := time.Parse(format, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}
