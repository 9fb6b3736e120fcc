package ws

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/mcoot/geofinder-go/internal/game"
	"github.com/mcoot/geofinder-go/internal/model"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The game is join-code gated, not origin gated
	CheckOrigin: func(r *http.Request) bool { return true },
}

// envelope is the wire shape of every inbound message
type envelope struct {
	Type model.EventType `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Handler accepts websocket connections and bridges them to the room
// registry. Each connection gets a Client and a read loop; all game
// mutation happens through registry and room methods.
type Handler struct {
	registry *game.Registry
	logger   *slog.Logger
}

// NewHandler creates a websocket handler over the given registry
func NewHandler(registry *game.Registry, logger *slog.Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger.With(slog.String("component", "ws")),
	}
}

// ServeHTTP upgrades the connection and runs it until the peer goes away
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	socket, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	playerID := model.PlayerID(uuid.NewString())
	client := newClient(playerID, socket, h.logger)

	sess := &session{
		handler: h,
		client:  client,
		logger:  client.logger,
	}

	go client.writePump()
	sess.readPump()
}

// session is one connection's game context: which room, if any, the
// player is currently in. Only the connection's read loop touches it.
type session struct {
	handler *Handler
	client  *Client
	room    *game.Room
	logger  *slog.Logger
}

// readPump reads inbound envelopes until the connection drops, then
// cleans the player out of their room
func (s *session) readPump() {
	socket := s.client.socket
	defer func() {
		s.client.close()
		socket.Close()
		if s.room != nil {
			s.room.Leave(s.client.playerID)
		}
	}()

	socket.SetReadLimit(maxMessageSize)
	socket.SetReadDeadline(time.Now().Add(pongWait))
	socket.SetPongHandler(func(string) error {
		socket.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("connection closed unexpectedly", slog.Any("error", err))
			}
			return
		}

		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			s.logger.Debug("malformed message", slog.Any("error", err))
			continue
		}
		s.dispatch(env)
	}
}

// dispatch routes one intent. A panic here must kill only this
// connection, never the server.
func (s *session) dispatch(env envelope) {
	defer func() {
		if err := recover(); err != nil {
			s.logger.Error("panic handling message",
				slog.Any("error", err),
				slog.String("type", string(env.Type)),
				slog.String("stack", string(debug.Stack())))
			s.client.close()
		}
	}()

	switch env.Type {
	case model.IntentCreateRoom:
		var payload model.CreateRoomPayload
		if !s.decode(env, &payload) {
			return
		}
		if s.room != nil {
			s.room.Leave(s.client.playerID)
		}
		s.room = s.handler.registry.CreateRoom(s.client.playerID, payload.PlayerName, s.client, payload.Settings)

	case model.IntentJoinRoom:
		var payload model.JoinRoomPayload
		if !s.decode(env, &payload) {
			return
		}
		s.joinRoom(payload)

	case model.IntentUpdateSettings:
		var payload model.UpdateSettingsPayload
		if !s.decode(env, &payload) || s.room == nil {
			return
		}
		s.room.UpdateSettings(s.client.playerID, payload.Settings)

	case model.IntentStartGame:
		if s.room != nil {
			s.room.StartGame(s.client.playerID)
		}

	case model.IntentSubmitGuess:
		var payload model.SubmitGuessPayload
		if !s.decode(env, &payload) || s.room == nil {
			return
		}
		s.room.SubmitGuess(s.client.playerID, payload.Lat, payload.Lng, payload.Year)

	case model.IntentReportYear:
		var payload model.ReportYearPayload
		if !s.decode(env, &payload) || s.room == nil {
			return
		}
		s.room.ReportYear(s.client.playerID, payload.Year)

	case model.IntentReadyForNext:
		if s.room != nil {
			s.room.ReadyForNext(s.client.playerID)
		}

	case model.IntentReturnToLobby:
		if s.room != nil {
			s.room.ReturnToLobby(s.client.playerID)
		}

	default:
		s.logger.Debug("unknown message type", slog.String("type", string(env.Type)))
	}
}

func (s *session) joinRoom(payload model.JoinRoomPayload) {
	room, ok := s.handler.registry.Find(payload.RoomCode)
	if !ok {
		s.joinError(model.ErrRoomNotFound)
		return
	}

	if s.room != nil {
		s.room.Leave(s.client.playerID)
		s.room = nil
	}

	if err := room.Join(s.client.playerID, payload.PlayerName, s.client); err != nil {
		s.joinError(err)
		return
	}
	s.room = room
}

// joinError reports a rejected join back to this connection only
func (s *session) joinError(err error) {
	msg := "could not join room"
	switch {
	case errors.Is(err, model.ErrRoomNotFound):
		msg = "room not found"
	case errors.Is(err, model.ErrRoomNotJoinable):
		msg = "game already in progress"
	case errors.Is(err, model.ErrRoomFull):
		msg = "room is full"
	}
	s.client.Send(model.Event{
		Type: model.EventJoinError,
		Data: model.JoinErrorPayload{Message: msg},
	})
}

func (s *session) decode(env envelope, v any) bool {
	if err := json.Unmarshal(env.Data, v); err != nil {
		s.logger.Debug("malformed payload",
			slog.String("type", string(env.Type)),
			slog.Any("error", err))
		return false
	}
	return true
}
