package game

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/mcoot/geofinder-go/internal/dependencies/clock"
	"github.com/mcoot/geofinder-go/internal/dependencies/random"
	"github.com/mcoot/geofinder-go/internal/dependencies/scheduler"
	"github.com/mcoot/geofinder-go/internal/model"
	"github.com/mcoot/geofinder-go/internal/services/scoring"
)

const (
	// CodeLength is the length of generated room codes
	CodeLength = 6
	// CodeAlphabet is the characters used in room codes (avoid confusing chars)
	CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Deps bundles the dependencies every room needs
type Deps struct {
	Selector  RoundSelector
	Scorer    *scoring.Service
	Recorder  GameRecorder
	Clock     clock.Clock
	Random    random.Random
	Scheduler scheduler.Scheduler
	Logger    *slog.Logger
}

// Registry is the process-wide directory of live rooms, keyed by room
// code. It is the only state shared across rooms; the map is guarded for
// concurrent create/find/remove while room mutations stay per-room.
type Registry struct {
	mu    sync.RWMutex
	rooms map[model.RoomCode]*Room

	deps   Deps
	logger *slog.Logger
}

// NewRegistry creates an empty room registry
func NewRegistry(deps Deps) *Registry {
	return &Registry{
		rooms:  make(map[model.RoomCode]*Room),
		deps:   deps,
		logger: deps.Logger.With(slog.String("component", "registry")),
	}
}

// CreateRoom builds a room with a fresh collision-checked code, installs
// the creator as host, and confirms creation to their connection.
func (reg *Registry) CreateRoom(id model.PlayerID, name string, conn Conn, patch *model.SettingsUpdate) *Room {
	settings := model.DefaultSettings()
	if patch != nil {
		applySettings(&settings, *patch)
	}

	host := &model.Player{ID: id, Name: name, IsHost: true}

	reg.mu.Lock()
	code := reg.generateCode()
	room := &Room{
		code:      code,
		phase:     model.PhaseLobby,
		settings:  settings,
		roster:    NewRoster(),
		selector:  reg.deps.Selector,
		scorer:    reg.deps.Scorer,
		recorder:  reg.deps.Recorder,
		clock:     reg.deps.Clock,
		scheduler: reg.deps.Scheduler,
		logger:    reg.deps.Logger.With(slog.String("room", string(code))),
		onEmpty:   reg.Remove,
	}
	_ = room.roster.Add(host, conn)
	reg.rooms[code] = room
	reg.mu.Unlock()

	conn.Send(model.Event{
		Type: model.EventRoomCreated,
		Data: model.RoomCreatedPayload{
			RoomCode: code,
			Players:  []model.Player{*host},
			Settings: settings,
			IsHost:   true,
		},
	})

	reg.logger.Info("room created",
		slog.String("room", string(code)),
		slog.String("host", string(id)))
	return room
}

// Find looks up a live room by code (case-insensitive)
func (reg *Registry) Find(code string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[model.RoomCode(strings.ToUpper(code))]
	return room, ok
}

// Remove drops a room from the directory
func (reg *Registry) Remove(code model.RoomCode) {
	reg.mu.Lock()
	_, ok := reg.rooms[code]
	delete(reg.rooms, code)
	reg.mu.Unlock()

	if ok {
		reg.logger.Info("room removed", slog.String("room", string(code)))
	}
}

// Count returns the number of live rooms
func (reg *Registry) Count() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

// generateCode produces a code not currently in use, regenerating on
// collision. Requires the registry write lock.
func (reg *Registry) generateCode() model.RoomCode {
	for {
		code := model.RoomCode(reg.deps.Random.String(CodeLength, CodeAlphabet))
		if _, exists := reg.rooms[code]; !exists {
			return code
		}
	}
}
