package blockfall

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/eiannone/keyboard"
	"golang.org/x/term"

	"github.com/isaacjstriker/blockfall/internal/types"
)

const GameName = "blockfall"

// frameRate is how often the terminal client ticks and redraws.
const frameRate = 16 * time.Millisecond

// ScoreSaver stores the final score of a finished game.
type ScoreSaver interface {
	SaveGameScore(userID int, gameType string, score int, metadata map[string]interface{}) error
}

// KeyCommand maps a terminal key press to a command. quit is set for the
// keys that leave the game.
func KeyCommand(char rune, key keyboard.Key) (cmd Command, quit bool) {
	switch {
	case char == 'q' || char == 'Q' || key == keyboard.KeyEsc:
		return 0, true
	case key == keyboard.KeyArrowLeft || char == 'a' || char == 'A':
		return MoveLeft, false
	case key == keyboard.KeyArrowRight || char == 'd' || char == 'D':
		return MoveRight, false
	case key == keyboard.KeyArrowDown || char == 's' || char == 'S':
		return SoftDropStep, false
	case key == keyboard.KeyArrowUp || key == keyboard.KeySpace || char == 'w' || char == 'W':
		return HardDrop, false
	case char == 'x' || char == 'X':
		return RotateCW, false
	case char == 'z' || char == 'Z':
		return RotateCCW, false
	case char == 'r' || char == 'R':
		return Restart, false
	}
	return 0, false
}

// inputHandler forwards key presses as commands until a quit key arrives.
func inputHandler(commands chan<- Command) {
	defer close(commands)
	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		cmd, quit := KeyCommand(char, key)
		if quit {
			return
		}
		if cmd != 0 {
			commands <- cmd
		}
	}
}

func supportsColor() bool {
	t := os.Getenv("TERM")
	return t != "" && t != "dumb" && term.IsTerminal(int(os.Stdout.Fd()))
}

// Play runs an interactive game in the terminal until the player quits.
// The best finished game is saved for userID when saver is non-nil and
// userID is positive.
func Play(rules Rules, saver ScoreSaver, userID int) *types.GameResult {
	if err := keyboard.Open(); err != nil {
		fmt.Printf("Failed to initialize keyboard: %v\n", err)
		return &types.GameResult{GameName: GameName, Score: -1}
	}
	defer keyboard.Close()

	commands := make(chan Command)
	go inputHandler(commands)

	session := NewSession(WithRules(rules))
	color := supportsColor()
	start := time.Now()
	last := start
	var best Stats

	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

loop:
	for {
		select {
		case cmd, ok := <-commands:
			if !ok {
				break loop
			}
			if cmd == Restart && session.State() == GameOver && session.Stats().Score > best.Score {
				best = session.Stats()
			}
			session.Apply(cmd)
		case now := <-ticker.C:
			session.Tick(now.Sub(last))
			last = now
		}
		fmt.Print("\033[2J\033[H")
		fmt.Print(Render(session.Snapshot(), color))
		fmt.Println("\nControls: ←/→ move, ↓ soft drop, ↑/Space hard drop, Z/X rotate, R restart, Q quit")
	}

	if s := session.Stats(); s.Score >= best.Score {
		best = s
	}
	result := &types.GameResult{
		GameName: GameName,
		Score:    best.Score,
		Lines:    best.Lines,
		Level:    best.Level,
		Duration: time.Since(start).Seconds(),
	}

	fmt.Print("\033[2J\033[H")
	fmt.Println("GAME OVER!")
	fmt.Printf("Final Score: %d | Lines: %d | Level: %d\n", result.Score, result.Lines, result.Level)

	if saver != nil && userID > 0 && result.Score > 0 {
		if err := saver.SaveGameScore(userID, GameName, result.Score, result.ScoreMetadata()); err != nil {
			log.Printf("[WARN] could not save score: %v", err)
		} else {
			fmt.Println("Score saved to your profile!")
		}
	}
	return result
}
