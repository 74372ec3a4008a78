package types

// GameResult is the outcome of one finished game.
type GameResult struct {
	GameName string                 `json:"game_name"`
	Score    int                    `json:"score"`
	Lines    int                    `json:"lines"`
	Level    int                    `json:"level"`
	Duration float64                `json:"duration"`
	Metadata map[string]interface{} `json:"metadata"`
}

// ScoreMetadata is the extra data stored alongside a score.
func (r *GameResult) ScoreMetadata() map[string]interface{} {
	meta := map[string]interface{}{
		"lines":     r.Lines,
		"level":     r.Level,
		"game_time": r.Duration,
	}
	for k, v := range r.Metadata {
		meta[k] = v
	}
	return meta
}
