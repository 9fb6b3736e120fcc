package model

// EventType identifies the type of an inbound or outbound event
type EventType string

// Inbound intents
const (
	IntentCreateRoom     EventType = "createRoom"
	IntentJoinRoom       EventType = "joinRoom"
	IntentUpdateSettings EventType = "updateSettings"
	IntentStartGame      EventType = "startGame"
	IntentSubmitGuess    EventType = "submitGuess"
	IntentReportYear     EventType = "reportYear"
	IntentReadyForNext   EventType = "readyForNext"
	IntentReturnToLobby  EventType = "returnToLobby"
)

// Outbound events
const (
	EventRoomCreated     EventType = "roomCreated"
	EventRoomJoined      EventType = "roomJoined"
	EventJoinError       EventType = "joinError"
	EventPlayerJoined    EventType = "playerJoined"
	EventPlayerLeft      EventType = "playerLeft"
	EventSettingsUpdated EventType = "settingsUpdated"
	EventRoundStart      EventType = "roundStart"
	EventPhaseChange     EventType = "phaseChange"
	EventGuessReceived   EventType = "guessReceived"
	EventGuessUpdate     EventType = "guessUpdate"
	EventReadyUpdate     EventType = "readyUpdate"
	EventRoundResults    EventType = "roundResults"
	EventGameOver        EventType = "gameOver"
	EventReturnedToLobby EventType = "returnedToLobby"
)

// Event is the envelope for all outbound messages
type Event struct {
	Type EventType `json:"type"`
	Data any       `json:"data"`
}

// Inbound payloads

// CreateRoomPayload carries a createRoom intent
type CreateRoomPayload struct {
	PlayerName string          `json:"playerName"`
	Settings   *SettingsUpdate `json:"settings,omitempty"`
}

// JoinRoomPayload carries a joinRoom intent
type JoinRoomPayload struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

// SettingsUpdate is a partial settings change; nil fields are left unchanged
type SettingsUpdate struct {
	Rounds    *int `json:"rounds,omitempty"`
	ViewTime  *int `json:"viewTime,omitempty"`
	GuessTime *int `json:"guessTime,omitempty"`
}

// UpdateSettingsPayload carries an updateSettings intent
type UpdateSettingsPayload struct {
	Settings SettingsUpdate `json:"settings"`
}

// SubmitGuessPayload carries a submitGuess intent
type SubmitGuessPayload struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Year *int    `json:"year,omitempty"`
}

// ReportYearPayload carries a reportYear intent
type ReportYearPayload struct {
	Year int `json:"year"`
}

// Outbound payloads

// RoomCreatedPayload confirms room creation to the creating connection
type RoomCreatedPayload struct {
	RoomCode RoomCode `json:"roomCode"`
	Players  []Player `json:"players"`
	Settings Settings `json:"settings"`
	IsHost   bool     `json:"isHost"`
}

// RoomJoinedPayload confirms a successful join to the joining connection
type RoomJoinedPayload struct {
	RoomCode RoomCode `json:"roomCode"`
	Players  []Player `json:"players"`
	Settings Settings `json:"settings"`
	IsHost   bool     `json:"isHost"`
}

// JoinErrorPayload reports why a join was rejected
type JoinErrorPayload struct {
	Message string `json:"message"`
}

// PlayersPayload carries the roster snapshot for playerJoined / playerLeft
type PlayersPayload struct {
	Players []Player `json:"players"`
}

// SettingsUpdatedPayload broadcasts the new effective settings
type SettingsUpdatedPayload struct {
	Settings Settings `json:"settings"`
}

// RoundLocation is the location view sent at round start (no name)
type RoundLocation struct {
	Lat     float64  `json:"lat"`
	Lng     float64  `json:"lng"`
	Heading *float64 `json:"heading,omitempty"`
}

// RoundStartPayload announces a new round entering the viewing phase
type RoundStartPayload struct {
	Round       int           `json:"round"`
	TotalRounds int           `json:"totalRounds"`
	Location    RoundLocation `json:"location"`
	Phase       Phase         `json:"phase"`
	// TimerEnd is the phase deadline in Unix milliseconds
	TimerEnd int64 `json:"timerEnd"`
}

// PhaseChangePayload announces a phase transition within a round
type PhaseChangePayload struct {
	Phase    Phase `json:"phase"`
	TimerEnd int64 `json:"timerEnd"`
}

// GuessReceivedPayload acknowledges a guess to its sender
type GuessReceivedPayload struct {
	Distance       float64 `json:"distance"`
	Points         int     `json:"points"`
	DistancePoints int     `json:"distancePoints"`
	YearPoints     int     `json:"yearPoints"`
}

// GuessUpdatePayload broadcasts the aggregate guess count
type GuessUpdatePayload struct {
	GuessCount   int `json:"guessCount"`
	TotalPlayers int `json:"totalPlayers"`
}

// ReadyUpdatePayload broadcasts the aggregate ready count
type ReadyUpdatePayload struct {
	ReadyCount   int `json:"readyCount"`
	TotalPlayers int `json:"totalPlayers"`
}

// ResultLocation is the revealed ground truth sent with round results
type ResultLocation struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// RoundResultsPayload carries the full result set for a finished round
type RoundResultsPayload struct {
	Round       int            `json:"round"`
	TotalRounds int            `json:"totalRounds"`
	Location    ResultLocation `json:"location"`
	ActualYear  *int           `json:"actualYear,omitempty"`
	Results     []RoundResult  `json:"results"`
}

// GameOverPayload carries the final leaderboard, sorted by score descending
type GameOverPayload struct {
	Results []FinalResult `json:"results"`
}

// ReturnedToLobbyPayload broadcasts the reset lobby state
type ReturnedToLobbyPayload struct {
	Players  []Player `json:"players"`
	Settings Settings `json:"settings"`
}
