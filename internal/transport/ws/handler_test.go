package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/geofinder-go/internal/dependencies/clock"
	"github.com/mcoot/geofinder-go/internal/dependencies/random"
	"github.com/mcoot/geofinder-go/internal/dependencies/scheduler"
	"github.com/mcoot/geofinder-go/internal/game"
	"github.com/mcoot/geofinder-go/internal/model"
	"github.com/mcoot/geofinder-go/internal/services/geopool"
	"github.com/mcoot/geofinder-go/internal/services/history"
	"github.com/mcoot/geofinder-go/internal/services/scoring"
	"github.com/mcoot/geofinder-go/internal/storage/memory"
	"github.com/mcoot/geofinder-go/internal/testutil"
)

// wireEvent is the outbound envelope as seen on the wire
type wireEvent struct {
	Type model.EventType `json:"type"`
	Data json.RawMessage `json:"data"`
}

type HandlerSuite struct {
	suite.Suite
	server   *httptest.Server
	registry *game.Registry
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	logger := testutil.NopLogger()
	rnd := random.New()
	s.registry = game.NewRegistry(game.Deps{
		Selector:  geopool.New(rnd, logger),
		Scorer:    scoring.New(scoring.DefaultLinearCurve()),
		Recorder:  history.New(memory.New(), logger),
		Clock:     clock.New(),
		Random:    rnd,
		Scheduler: scheduler.New(),
		Logger:    logger,
	})
	s.server = httptest.NewServer(NewHandler(s.registry, logger))
}

func (s *HandlerSuite) TearDownTest() {
	s.server.Close()
}

func (s *HandlerSuite) dial() *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	return conn
}

func (s *HandlerSuite) send(conn *websocket.Conn, eventType model.EventType, data any) {
	payload, err := json.Marshal(data)
	s.Require().NoError(err)
	s.Require().NoError(conn.WriteJSON(wireEvent{Type: eventType, Data: payload}))
}

// expect reads events until one of the wanted type arrives, skipping
// interleaved broadcasts
func (s *HandlerSuite) expect(conn *websocket.Conn, eventType model.EventType) wireEvent {
	deadline := time.Now().Add(5 * time.Second)
	for {
		s.Require().NoError(conn.SetReadDeadline(deadline))
		var ev wireEvent
		s.Require().NoError(conn.ReadJSON(&ev), "waiting for %s", eventType)
		if ev.Type == eventType {
			return ev
		}
	}
}

func (s *HandlerSuite) createRoom(conn *websocket.Conn, name string) model.RoomCreatedPayload {
	s.send(conn, model.IntentCreateRoom, model.CreateRoomPayload{PlayerName: name})
	ev := s.expect(conn, model.EventRoomCreated)
	var payload model.RoomCreatedPayload
	s.Require().NoError(json.Unmarshal(ev.Data, &payload))
	return payload
}

func (s *HandlerSuite) TestCreateRoom() {
	conn := s.dial()
	defer conn.Close()

	created := s.createRoom(conn, "Alice")

	s.Len(string(created.RoomCode), game.CodeLength)
	s.True(created.IsHost)
	s.Require().Len(created.Players, 1)
	s.Equal("Alice", created.Players[0].Name)
	s.Equal(1, s.registry.Count())
}

func (s *HandlerSuite) TestJoinRoom() {
	host := s.dial()
	defer host.Close()
	created := s.createRoom(host, "Alice")

	joiner := s.dial()
	defer joiner.Close()
	s.send(joiner, model.IntentJoinRoom, model.JoinRoomPayload{
		RoomCode:   string(created.RoomCode),
		PlayerName: "Bob",
	})

	ev := s.expect(joiner, model.EventRoomJoined)
	var joined model.RoomJoinedPayload
	s.Require().NoError(json.Unmarshal(ev.Data, &joined))
	s.Equal(created.RoomCode, joined.RoomCode)
	s.False(joined.IsHost)
	s.Len(joined.Players, 2)

	broadcastEv := s.expect(host, model.EventPlayerJoined)
	var broadcast model.PlayersPayload
	s.Require().NoError(json.Unmarshal(broadcastEv.Data, &broadcast))
	s.Len(broadcast.Players, 2)
}

func (s *HandlerSuite) TestJoinUnknownRoom() {
	conn := s.dial()
	defer conn.Close()

	s.send(conn, model.IntentJoinRoom, model.JoinRoomPayload{
		RoomCode:   "NOSUCH",
		PlayerName: "Bob",
	})

	ev := s.expect(conn, model.EventJoinError)
	var payload model.JoinErrorPayload
	s.Require().NoError(json.Unmarshal(ev.Data, &payload))
	s.Equal("room not found", payload.Message)
}

func (s *HandlerSuite) TestStartGameBroadcastsRoundStart() {
	host := s.dial()
	defer host.Close()
	s.createRoom(host, "Alice")

	s.send(host, model.IntentStartGame, struct{}{})

	ev := s.expect(host, model.EventRoundStart)
	var payload model.RoundStartPayload
	s.Require().NoError(json.Unmarshal(ev.Data, &payload))
	s.Equal(1, payload.Round)
	s.Equal(model.PhaseViewing, payload.Phase)
	s.Greater(payload.TimerEnd, time.Now().UnixMilli())
}

func (s *HandlerSuite) TestMalformedMessageDoesNotKillConnection() {
	conn := s.dial()
	defer conn.Close()

	s.Require().NoError(conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	s.send(conn, model.EventType("bogusType"), struct{}{})

	created := s.createRoom(conn, "Alice")
	s.True(created.IsHost)
}

func (s *HandlerSuite) TestDisconnectLeavesRoom() {
	host := s.dial()
	defer host.Close()
	created := s.createRoom(host, "Alice")

	joiner := s.dial()
	s.send(joiner, model.IntentJoinRoom, model.JoinRoomPayload{
		RoomCode:   string(created.RoomCode),
		PlayerName: "Bob",
	})
	s.expect(joiner, model.EventRoomJoined)
	s.expect(host, model.EventPlayerJoined)

	joiner.Close()

	ev := s.expect(host, model.EventPlayerLeft)
	var payload model.PlayersPayload
	s.Require().NoError(json.Unmarshal(ev.Data, &payload))
	s.Require().Len(payload.Players, 1)
	s.Equal("Alice", payload.Players[0].Name)
}
