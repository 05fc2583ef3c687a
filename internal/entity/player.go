package entity

const (
	HumanKind = "human"
	BotKind   = "bot"
)

type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Mark   string `json:"mark,omitempty"`
	GameID string `json:"game_id,omitempty"`
	Wins   int    `json:"wins"`
}

func (that *Player) IsBot() bool {
	return that.Kind == BotKind
}
