package model

import "time"

// RoomCode is the short human-readable identifier for joining rooms
type RoomCode string

// Phase represents the current phase of a room's game
type Phase string

const (
	PhaseLobby    Phase = "lobby"    // Waiting for players, settings mutable
	PhaseViewing  Phase = "viewing"  // Players viewing the unknown place
	PhaseGuessing Phase = "guessing" // Guesses accepted
	PhaseResults  Phase = "results"  // Round results shown, waiting for ready
	PhaseFinal    Phase = "final"    // Game over, leaderboard shown
)

// Settings holds the host-configurable game parameters.
// Durations are in seconds, matching the wire contract.
type Settings struct {
	Rounds    int `json:"rounds"`
	ViewTime  int `json:"viewTime"`
	GuessTime int `json:"guessTime"`
}

// DefaultSettings returns the default room settings
func DefaultSettings() Settings {
	return Settings{
		Rounds:    5,
		ViewTime:  30,
		GuessTime: 30,
	}
}

// ViewDuration returns the viewing phase duration
func (s Settings) ViewDuration() time.Duration {
	return time.Duration(s.ViewTime) * time.Second
}

// GuessDuration returns the guessing phase duration
func (s Settings) GuessDuration() time.Duration {
	return time.Duration(s.GuessTime) * time.Second
}

// Guess is a player's single submission for the active round.
// Immutable after creation.
type Guess struct {
	PlayerID PlayerID `json:"playerId"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Year     *int     `json:"year,omitempty"`
	// Computed at submit time
	Distance       float64 `json:"distance"`
	Points         int     `json:"points"`
	DistancePoints int     `json:"distancePoints"`
	YearPoints     int     `json:"yearPoints"`
}

// RoundResult is one roster member's line in the per-round result set.
// Guess-related fields are nil for players who never guessed.
type RoundResult struct {
	ID          PlayerID     `json:"id"`
	Name        string       `json:"name"`
	Score       int          `json:"score"`
	RoundPoints int          `json:"roundPoints"`
	Distance    *float64     `json:"distance"`
	Guess       *Coordinates `json:"guess"`
}

// FinalResult is one player's line on the end-of-game leaderboard
type FinalResult struct {
	ID    PlayerID `json:"id"`
	Name  string   `json:"name"`
	Score int      `json:"score"`
}

// GameSummary is a lightweight record of a completed game
type GameSummary struct {
	RoomCode    RoomCode      `json:"roomCode"`
	Rounds      int           `json:"rounds"`
	Standings   []FinalResult `json:"standings"`
	CompletedAt time.Time     `json:"completedAt"`
}
