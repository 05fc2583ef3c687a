package entity

import "time"

// Series - the archived outcome of a finished series of rounds.
type Series struct {
	GameID       string    `json:"game_id"`
	Champion     string    `json:"champion"`
	RunnerUp     string    `json:"runner_up"`
	ChampionWins int       `json:"champion_wins"`
	RunnerUpWins int       `json:"runner_up_wins"`
	Rounds       int       `json:"rounds"`
	Type         string    `json:"type"`
	FinishedAt   time.Time `json:"finished_at"`
}
