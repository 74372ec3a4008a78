package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/isaacjstriker/blockfall/games/blockfall"
	"github.com/isaacjstriker/blockfall/internal/api"
	"github.com/isaacjstriker/blockfall/internal/auth"
	"github.com/isaacjstriker/blockfall/internal/config"
	"github.com/isaacjstriker/blockfall/internal/database"
	"github.com/isaacjstriker/blockfall/ui"
)

const usage = "Usage: blockfall [menu|play|serve|leaderboard|dbcheck]"

func main() {
	cmd := "menu"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if errors.Is(err, config.ErrSecretGenerated) {
		fmt.Println("[SETUP]", err)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	rules, err := blockfall.LoadRules(cfg.RulesFile)
	if err != nil {
		log.Printf("[WARN] %v. Using default rules.", err)
	}

	switch cmd {
	case "menu":
		runMenu(cfg, rules)
	case "play":
		db := openDB(cfg)
		defer closeDB(db)
		sessions := auth.NewSessionManager(cfg.SessionFile)
		play(db, sessions, rules)
	case "serve":
		db := openDB(cfg)
		if db == nil {
			log.Fatal("serve requires a database")
		}
		defer db.Close()
		server := api.NewAPIServer(cfg.Addr(), db, cfg, rules)
		if err := server.Start(); err != nil {
			log.Fatalf("could not start server: %v", err)
		}
	case "leaderboard":
		db := openDB(cfg)
		defer closeDB(db)
		printLeaderboard(db)
	case "dbcheck":
		dbCheck(cfg)
	default:
		fmt.Println("Unknown command:", cmd)
		fmt.Println(usage)
		os.Exit(2)
	}
}

// openDB connects and migrates. Failure is logged and yields nil so the
// game stays playable without a score store.
func openDB(cfg *config.Config) *database.DB {
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Printf("[WARN] database unavailable, scores will not be saved: %v", err)
		return nil
	}
	if err := db.CreateTables(); err != nil {
		log.Printf("[WARN] %v", err)
		db.Close()
		return nil
	}
	if cfg.Debug {
		log.Printf("[DEBUG] connected to %s database", db.Type())
	}
	return db
}

func closeDB(db *database.DB) {
	if db != nil {
		db.Close()
	}
}

func runMenu(cfg *config.Config, rules blockfall.Rules) {
	db := openDB(cfg)
	defer closeDB(db)
	sessions := auth.NewSessionManager(cfg.SessionFile)

	for {
		items := []ui.MenuItem{
			{Label: "Play", Value: "play"},
			{Label: "Leaderboard", Value: "leaderboard"},
		}
		if db != nil {
			items = append(items, ui.MenuItem{Label: "Account", Value: "account"})
		}
		items = append(items, ui.MenuItem{Label: "Quit", Value: "exit"})

		switch ui.NewMenu(cfg.AppName, items).Show() {
		case "play":
			play(db, sessions, rules)
			fmt.Println("\nPress Enter to continue...")
			fmt.Scanln()
		case "leaderboard":
			printLeaderboard(db)
			fmt.Println("\nPress Enter to continue...")
			fmt.Scanln()
		case "account":
			auth.NewCLIAuth(db, sessions).ShowAuthMenu()
		default:
			return
		}
	}
}

func play(db *database.DB, sessions *auth.SessionManager, rules blockfall.Rules) {
	var saver blockfall.ScoreSaver
	if db != nil {
		saver = db
	}
	blockfall.Play(rules, saver, sessions.UserID())
}

func printLeaderboard(db *database.DB) {
	if db == nil {
		fmt.Println("Leaderboard unavailable: no database connection")
		return
	}
	entries, err := db.GetLeaderboard(blockfall.GameName, 10)
	if err != nil {
		fmt.Printf("Failed to load leaderboard: %v\n", err)
		return
	}
	fmt.Println("\nTOP SCORES")
	fmt.Println("==========")
	if len(entries) == 0 {
		fmt.Println("No scores yet.")
	}
	for i, e := range entries {
		fmt.Printf("%2d. %-20s %8d  (%d games)\n", i+1, e.Username, e.BestScore, e.GamesPlayed)
	}
}

func dbCheck(cfg *config.Config) {
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		fmt.Printf("Failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	version, err := db.Version()
	if err != nil {
		fmt.Printf("Failed to query database: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Connected to %s database, version %s\n", db.Type(), version)
}
