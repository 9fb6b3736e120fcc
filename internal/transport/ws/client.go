package ws

import (
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mcoot/geofinder-go/internal/model"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second
	// Send pings to the peer at this period; must be less than pongWait
	pingPeriod = (pongWait * 9) / 10
	// Maximum inbound message size in bytes
	maxMessageSize = 4096
	// Outbound buffer depth before a client is considered stalled
	sendBufferSize = 64
)

// Client is one connected player. It owns the websocket and pumps
// messages in both directions; Send never blocks the game, so a stalled
// reader gets disconnected rather than holding up its room.
type Client struct {
	playerID model.PlayerID
	socket   *websocket.Conn
	send     chan model.Event
	closed   chan struct{}
	logger   *slog.Logger
}

func newClient(playerID model.PlayerID, socket *websocket.Conn, logger *slog.Logger) *Client {
	return &Client{
		playerID: playerID,
		socket:   socket,
		send:     make(chan model.Event, sendBufferSize),
		closed:   make(chan struct{}),
		logger:   logger.With(slog.String("player", string(playerID))),
	}
}

// Send queues an event for delivery. If the client's buffer is full the
// event is dropped and the connection torn down; game state must never
// wait on a slow socket.
func (c *Client) Send(ev model.Event) {
	select {
	case c.send <- ev:
	case <-c.closed:
	default:
		c.logger.Warn("send buffer full, disconnecting client",
			slog.String("event", string(ev.Type)))
		c.close()
	}
}

// close makes writePump exit, which closes the socket and in turn makes
// readPump exit. Safe to call more than once.
func (c *Client) close() {
	select {
	case <-c.closed:
	default:
		close(c.closed)
	}
}

// writePump serializes queued events onto the socket and keeps the
// connection alive with periodic pings
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.socket.Close()
	}()

	for {
		select {
		case ev := <-c.send:
			c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.socket.WriteJSON(ev); err != nil {
				c.logger.Debug("write failed", slog.Any("error", err))
				return
			}
		case <-ticker.C:
			c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.socket.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.closed:
			c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			c.socket.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
