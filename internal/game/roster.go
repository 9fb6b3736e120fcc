package game

import "github.com/mcoot/geofinder-go/internal/model"

// MaxPlayers is the roster capacity of a room
const MaxPlayers = 20

// Conn is the abstract per-connection channel a room broadcasts through.
// Send must not block; the transport owns buffering and drop policy.
type Conn interface {
	Send(ev model.Event)
}

// Member pairs a player record with its connection
type Member struct {
	Player *model.Player
	Conn   Conn
}

// Roster is the per-room player list, kept in join order so host
// migration is deterministic (earliest joined). Not safe for concurrent
// use; the owning room's lock guards it.
type Roster struct {
	members []*Member
}

// NewRoster creates an empty roster
func NewRoster() *Roster {
	return &Roster{}
}

// Add appends a member, enforcing capacity
func (r *Roster) Add(player *model.Player, conn Conn) error {
	if len(r.members) >= MaxPlayers {
		return model.ErrRoomFull
	}
	r.members = append(r.members, &Member{Player: player, Conn: conn})
	return nil
}

// Remove deletes the member with the given ID and returns it, or nil if
// not present
func (r *Roster) Remove(id model.PlayerID) *Member {
	for i, m := range r.members {
		if m.Player.ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return m
		}
	}
	return nil
}

// Get returns the member with the given ID, or nil
func (r *Roster) Get(id model.PlayerID) *Member {
	for _, m := range r.members {
		if m.Player.ID == id {
			return m
		}
	}
	return nil
}

// Len returns the roster size
func (r *Roster) Len() int {
	return len(r.members)
}

// Members returns the members in join order
func (r *Roster) Members() []*Member {
	return r.members
}

// Players returns a value snapshot of all player records, in join order
func (r *Roster) Players() []model.Player {
	players := make([]model.Player, 0, len(r.members))
	for _, m := range r.members {
		players = append(players, *m.Player)
	}
	return players
}

// Host returns the member holding host authority, or nil for an empty
// roster
func (r *Roster) Host() *Member {
	for _, m := range r.members {
		if m.Player.IsHost {
			return m
		}
	}
	return nil
}

// PromoteEarliest grants host authority to the earliest-joined member
// and returns it. No-op on an empty roster.
func (r *Roster) PromoteEarliest() *Member {
	if len(r.members) == 0 {
		return nil
	}
	m := r.members[0]
	m.Player.IsHost = true
	return m
}
