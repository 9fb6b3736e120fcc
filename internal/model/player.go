package model

// PlayerID uniquely identifies a connection's player for its lifetime
type PlayerID string

// Player is a roster member of a room
type Player struct {
	ID   PlayerID `json:"id"`
	Name string   `json:"name"`
	// Score is cumulative for the current game; monotonically
	// non-decreasing until a return-to-lobby reset.
	Score        int  `json:"score"`
	IsHost       bool `json:"isHost"`
	HasGuessed   bool `json:"hasGuessed"`
	ReadyForNext bool `json:"readyForNext"`
}
