package game

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/mcoot/geofinder-go/internal/dependencies/clock"
	"github.com/mcoot/geofinder-go/internal/dependencies/scheduler"
	"github.com/mcoot/geofinder-go/internal/model"
	"github.com/mcoot/geofinder-go/internal/services/scoring"
)

// Settings bounds; out-of-range fields in an update are ignored
const (
	minRounds       = 1
	maxRounds       = 20
	minPhaseSeconds = 5
	maxPhaseSeconds = 300
)

// RoundSelector supplies the ordered location sequence for a game
type RoundSelector interface {
	SelectRounds(n int) ([]model.Location, error)
}

// GameRecorder receives the summary of every completed game
type GameRecorder interface {
	RecordGame(summary *model.GameSummary)
}

// delivery is one outbound event bound to a connection. Deliveries are
// collected under the room lock and sent only after it is released.
type delivery struct {
	conn  Conn
	event model.Event
}

// Room is one isolated game session: roster, settings, round sequence and
// the phase state machine. Every inbound event for a room, whether a
// client intent or a timer fire, serializes on its mutex; rooms share no
// mutable state
// with each other.
type Room struct {
	code model.RoomCode

	mu       sync.Mutex
	phase    model.Phase
	settings model.Settings
	roster   *Roster

	// Round state; round is 1-based and meaningful only between
	// startGame and final/returnToLobby
	round      int
	sequence   []model.Location
	current    *model.Location
	actualYear *int
	guesses    map[model.PlayerID]*model.Guess

	stopTimer scheduler.StopFunc

	selector  RoundSelector
	scorer    *scoring.Service
	clock     clock.Clock
	scheduler scheduler.Scheduler
	recorder  GameRecorder
	logger    *slog.Logger
	onEmpty   func(code model.RoomCode)
}

// Code returns the room's join code
func (r *Room) Code() model.RoomCode {
	return r.code
}

// Phase returns the room's current phase
func (r *Room) Phase() model.Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// Round returns the current 1-based round index (0 outside a game)
func (r *Room) Round() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.round
}

// Players returns a snapshot of the roster
func (r *Room) Players() []model.Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.roster.Players()
}

// Settings returns the room's current settings
func (r *Room) Settings() model.Settings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settings
}

// Join adds a player to the room. Allowed only in the lobby and below
// capacity; violations surface to the caller so the transport can report
// them to the joining connection.
func (r *Room) Join(id model.PlayerID, name string, conn Conn) error {
	r.mu.Lock()

	if r.phase != model.PhaseLobby {
		r.mu.Unlock()
		return model.ErrRoomNotJoinable
	}

	player := &model.Player{ID: id, Name: name}
	if err := r.roster.Add(player, conn); err != nil {
		r.mu.Unlock()
		return err
	}

	var out []delivery
	players := r.roster.Players()
	r.sendTo(&out, conn, model.EventRoomJoined, model.RoomJoinedPayload{
		RoomCode: r.code,
		Players:  players,
		Settings: r.settings,
		IsHost:   false,
	})
	r.broadcast(&out, model.EventPlayerJoined, model.PlayersPayload{Players: players})

	r.logger.Info("player joined",
		slog.String("player", string(id)),
		slog.String("name", name),
		slog.Int("players", r.roster.Len()))

	r.mu.Unlock()
	r.deliver(out)
	return nil
}

// UpdateSettings applies a partial settings change. Host-only and
// lobby-only; anything else is silently ignored.
func (r *Room) UpdateSettings(id model.PlayerID, patch model.SettingsUpdate) {
	r.mu.Lock()

	if r.phase != model.PhaseLobby || !r.isHost(id) {
		r.mu.Unlock()
		return
	}

	applySettings(&r.settings, patch)

	var out []delivery
	r.broadcast(&out, model.EventSettingsUpdated, model.SettingsUpdatedPayload{Settings: r.settings})

	r.mu.Unlock()
	r.deliver(out)
}

// StartGame begins round 1. Host-only, lobby-only, roster non-empty;
// anything else is silently ignored.
func (r *Room) StartGame(id model.PlayerID) {
	r.mu.Lock()

	if r.phase != model.PhaseLobby || !r.isHost(id) || r.roster.Len() == 0 {
		r.mu.Unlock()
		return
	}

	sequence, err := r.selector.SelectRounds(r.settings.Rounds)
	if err != nil {
		r.logger.Error("failed to select round locations", slog.Any("error", err))
		r.mu.Unlock()
		return
	}

	r.sequence = sequence
	r.round = 1

	var out []delivery
	r.enterViewing(&out)

	r.logger.Info("game started",
		slog.Int("rounds", r.settings.Rounds),
		slog.Int("players", r.roster.Len()))

	r.mu.Unlock()
	r.deliver(out)
}

// SubmitGuess records a player's guess for the active round. Accepted
// only in the guessing phase from a member who has not yet guessed;
// scored immediately and never re-scored. When the last roster member
// guesses, the phase advances early and the timer is cancelled.
func (r *Room) SubmitGuess(id model.PlayerID, lat, lng float64, year *int) {
	r.mu.Lock()

	member := r.roster.Get(id)
	if r.phase != model.PhaseGuessing || member == nil || member.Player.HasGuessed {
		r.mu.Unlock()
		return
	}

	guess := r.scorer.Score(id, lat, lng, year, *r.current, r.actualYear)
	r.guesses[id] = &guess
	member.Player.HasGuessed = true
	member.Player.Score += guess.Points

	var out []delivery
	r.sendTo(&out, member.Conn, model.EventGuessReceived, model.GuessReceivedPayload{
		Distance:       guess.Distance,
		Points:         guess.Points,
		DistancePoints: guess.DistancePoints,
		YearPoints:     guess.YearPoints,
	})
	r.broadcast(&out, model.EventGuessUpdate, model.GuessUpdatePayload{
		GuessCount:   r.guessCount(),
		TotalPlayers: r.roster.Len(),
	})

	if r.guessCount() >= r.roster.Len() {
		r.cancelTimer()
		r.enterResults(&out)
	}

	r.mu.Unlock()
	r.deliver(out)
}

// ReportYear sets the ground-truth imagery year for the current round.
// Host-only; only meaningful before guesses are scored, so it is
// accepted during viewing and guessing.
func (r *Room) ReportYear(id model.PlayerID, year int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != model.PhaseViewing && r.phase != model.PhaseGuessing {
		return
	}
	if !r.isHost(id) {
		return
	}
	r.actualYear = &year
}

// ReadyForNext signals that a player is done with the results screen.
// The room advances when every member has signalled, or immediately when
// the host signals; the host override clears all ready flags in the same
// critical section as the advance.
func (r *Room) ReadyForNext(id model.PlayerID) {
	r.mu.Lock()

	member := r.roster.Get(id)
	if r.phase != model.PhaseResults || member == nil {
		r.mu.Unlock()
		return
	}

	member.Player.ReadyForNext = true

	var out []delivery
	r.broadcast(&out, model.EventReadyUpdate, model.ReadyUpdatePayload{
		ReadyCount:   r.readyCount(),
		TotalPlayers: r.roster.Len(),
	})

	if member.Player.IsHost || r.allReady() {
		r.advanceRound(&out)
	}

	r.mu.Unlock()
	r.deliver(out)
}

// ReturnToLobby resets the room for a fresh game, preserving roster
// membership and settings. Host-only.
func (r *Room) ReturnToLobby(id model.PlayerID) {
	r.mu.Lock()

	if !r.isHost(id) {
		r.mu.Unlock()
		return
	}

	r.cancelTimer()
	r.phase = model.PhaseLobby
	r.round = 0
	r.sequence = nil
	r.current = nil
	r.actualYear = nil
	r.guesses = nil
	for _, m := range r.roster.Members() {
		m.Player.Score = 0
		m.Player.HasGuessed = false
		m.Player.ReadyForNext = false
	}

	var out []delivery
	r.broadcast(&out, model.EventReturnedToLobby, model.ReturnedToLobbyPayload{
		Players:  r.roster.Players(),
		Settings: r.settings,
	})

	r.logger.Info("returned to lobby")

	r.mu.Unlock()
	r.deliver(out)
}

// Leave removes a player. The last player leaving destroys the room; a
// departing host hands authority to the earliest-joined survivor. A
// departure can also complete the current phase (last outstanding guess
// or ready signal no longer required).
func (r *Room) Leave(id model.PlayerID) {
	r.mu.Lock()

	member := r.roster.Remove(id)
	if member == nil {
		r.mu.Unlock()
		return
	}

	if r.roster.Len() == 0 {
		r.cancelTimer()
		r.mu.Unlock()
		r.logger.Info("room empty, destroying", slog.String("player", string(id)))
		r.onEmpty(r.code)
		return
	}

	if member.Player.IsHost {
		newHost := r.roster.PromoteEarliest()
		r.logger.Info("host migrated",
			slog.String("from", string(id)),
			slog.String("to", string(newHost.Player.ID)))
	}

	var out []delivery
	r.broadcast(&out, model.EventPlayerLeft, model.PlayersPayload{Players: r.roster.Players()})

	// The departed player may have been the only one still being waited on
	switch r.phase {
	case model.PhaseGuessing:
		if r.guessCount() >= r.roster.Len() {
			r.cancelTimer()
			r.enterResults(&out)
		}
	case model.PhaseResults:
		if r.allReady() {
			r.advanceRound(&out)
		}
	}

	r.mu.Unlock()
	r.deliver(out)
}

// timerFired is the deadline event for the phase and round captured at
// arming time. A fire that raced with cancellation or arrived for an
// earlier phase/round is stale and ignored. Nothing here may panic past
// the room boundary.
func (r *Room) timerFired(phase model.Phase, round int) {
	defer func() {
		if err := recover(); err != nil {
			r.logger.Error("panic in timer handler",
				slog.Any("error", err),
				slog.String("phase", string(phase)),
				slog.Int("round", round))
		}
	}()

	r.mu.Lock()

	if r.phase != phase || r.round != round {
		r.logger.Debug("stale timer fire ignored",
			slog.String("armed_phase", string(phase)),
			slog.Int("armed_round", round),
			slog.String("phase", string(r.phase)),
			slog.Int("round", r.round))
		r.mu.Unlock()
		return
	}

	var out []delivery
	switch phase {
	case model.PhaseViewing:
		r.enterGuessing(&out)
	case model.PhaseGuessing:
		r.enterResults(&out)
	}

	r.mu.Unlock()
	r.deliver(out)
}

// State-entry helpers. All require the room lock.

func (r *Room) enterViewing(out *[]delivery) {
	r.phase = model.PhaseViewing
	r.current = &r.sequence[r.round-1]
	r.actualYear = r.current.Year
	r.guesses = make(map[model.PlayerID]*model.Guess)
	for _, m := range r.roster.Members() {
		m.Player.HasGuessed = false
	}

	deadline := r.armTimer(r.settings.ViewDuration())
	r.broadcast(out, model.EventRoundStart, model.RoundStartPayload{
		Round:       r.round,
		TotalRounds: r.settings.Rounds,
		Location: model.RoundLocation{
			Lat:     r.current.Lat,
			Lng:     r.current.Lng,
			Heading: r.current.Heading,
		},
		Phase:    model.PhaseViewing,
		TimerEnd: deadline,
	})
}

func (r *Room) enterGuessing(out *[]delivery) {
	r.phase = model.PhaseGuessing

	deadline := r.armTimer(r.settings.GuessDuration())
	r.broadcast(out, model.EventPhaseChange, model.PhaseChangePayload{
		Phase:    model.PhaseGuessing,
		TimerEnd: deadline,
	})
}

func (r *Room) enterResults(out *[]delivery) {
	r.phase = model.PhaseResults

	results := make([]model.RoundResult, 0, r.roster.Len())
	for _, m := range r.roster.Members() {
		result := model.RoundResult{
			ID:    m.Player.ID,
			Name:  m.Player.Name,
			Score: m.Player.Score,
		}
		if guess := r.guesses[m.Player.ID]; guess != nil {
			distance := guess.Distance
			result.RoundPoints = guess.Points
			result.Distance = &distance
			result.Guess = &model.Coordinates{Lat: guess.Lat, Lng: guess.Lng}
		}
		results = append(results, result)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RoundPoints > results[j].RoundPoints
	})

	r.broadcast(out, model.EventRoundResults, model.RoundResultsPayload{
		Round:       r.round,
		TotalRounds: r.settings.Rounds,
		Location: model.ResultLocation{
			Name: r.current.Name,
			Lat:  r.current.Lat,
			Lng:  r.current.Lng,
		},
		ActualYear: r.actualYear,
		Results:    results,
	})
}

// advanceRound moves from results to the next viewing phase, or to final
// after the last round. Ready flags clear as part of the same transition.
func (r *Room) advanceRound(out *[]delivery) {
	for _, m := range r.roster.Members() {
		m.Player.ReadyForNext = false
	}

	if r.round >= r.settings.Rounds {
		r.enterFinal(out)
		return
	}
	r.round++
	r.enterViewing(out)
}

func (r *Room) enterFinal(out *[]delivery) {
	r.phase = model.PhaseFinal

	standings := make([]model.FinalResult, 0, r.roster.Len())
	for _, m := range r.roster.Members() {
		standings = append(standings, model.FinalResult{
			ID:    m.Player.ID,
			Name:  m.Player.Name,
			Score: m.Player.Score,
		})
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})

	r.broadcast(out, model.EventGameOver, model.GameOverPayload{Results: standings})

	r.recorder.RecordGame(&model.GameSummary{
		RoomCode:    r.code,
		Rounds:      r.settings.Rounds,
		Standings:   standings,
		CompletedAt: r.clock.Now(),
	})

	r.logger.Info("game over", slog.Int("players", len(standings)))
}

// armTimer replaces any pending timer with a new deadline for the current
// phase and round, returning the deadline in Unix milliseconds
func (r *Room) armTimer(d time.Duration) int64 {
	r.cancelTimer()

	phase, round := r.phase, r.round
	r.stopTimer = r.scheduler.After(d, func() {
		r.timerFired(phase, round)
	})
	return r.clock.Now().Add(d).UnixMilli()
}

func (r *Room) cancelTimer() {
	if r.stopTimer != nil {
		r.stopTimer()
		r.stopTimer = nil
	}
}

func (r *Room) isHost(id model.PlayerID) bool {
	m := r.roster.Get(id)
	return m != nil && m.Player.IsHost
}

func (r *Room) guessCount() int {
	n := 0
	for _, m := range r.roster.Members() {
		if r.guesses[m.Player.ID] != nil {
			n++
		}
	}
	return n
}

func (r *Room) readyCount() int {
	n := 0
	for _, m := range r.roster.Members() {
		if m.Player.ReadyForNext {
			n++
		}
	}
	return n
}

func (r *Room) allReady() bool {
	return r.readyCount() == r.roster.Len()
}

// broadcast queues an event for every roster member
func (r *Room) broadcast(out *[]delivery, eventType model.EventType, data any) {
	ev := model.Event{Type: eventType, Data: data}
	for _, m := range r.roster.Members() {
		*out = append(*out, delivery{conn: m.Conn, event: ev})
	}
}

// sendTo queues an event for a single connection
func (r *Room) sendTo(out *[]delivery, conn Conn, eventType model.EventType, data any) {
	*out = append(*out, delivery{conn: conn, event: model.Event{Type: eventType, Data: data}})
}

// deliver sends queued events. Never called with the room lock held.
func (r *Room) deliver(out []delivery) {
	for _, d := range out {
		d.conn.Send(d.event)
	}
}

// applySettings merges valid fields of a partial update; out-of-range
// fields are ignored individually
func applySettings(s *model.Settings, patch model.SettingsUpdate) {
	if patch.Rounds != nil && *patch.Rounds >= minRounds && *patch.Rounds <= maxRounds {
		s.Rounds = *patch.Rounds
	}
	if patch.ViewTime != nil && *patch.ViewTime >= minPhaseSeconds && *patch.ViewTime <= maxPhaseSeconds {
		s.ViewTime = *patch.ViewTime
	}
	if patch.GuessTime != nil && *patch.GuessTime >= minPhaseSeconds && *patch.GuessTime <= maxPhaseSeconds {
		s.GuessTime = *patch.GuessTime
	}
}
