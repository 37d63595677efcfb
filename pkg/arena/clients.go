package arena

import (
	"errors"

	"coinrush/pkg/arena/game"
	"coinrush/pkg/arena/geom"
	"coinrush/pkg/protocol"
	"coinrush/pkg/utils"

	"github.com/repeale/fp-go"
	opt "github.com/repeale/fp-go/option"
	"github.com/sasha-s/go-deadlock"
)

// ErrNotFound means an operation referenced a connection id with no record.
// Callers treat this as a stale message and drop the event; it is never fatal.
var ErrNotFound = errors.New("no such client")

// StateUpdate is a partial update of a player record. Only fields that are
// Some are merged.
type StateUpdate struct {
	Position opt.Option[geom.Vector]
	Facing   opt.Option[game.Facing]
	Moving   opt.Option[bool]
	Score    opt.Option[int32]
}

// ClientManager owns the canonical player records, keyed by connection id.
// All game-state mutation happens on the server's dispatch goroutine; the
// mutex exists because connections are added and looked up from transport
// goroutines.
type ClientManager struct {
	clients    map[uint32]*Client
	broadcasts *utils.Topic[[]protocol.Message]
	mutex      deadlock.RWMutex
}

func (cm *ClientManager) Add(cn uint32, outgoing Outgoing) *Client {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	c := NewClient(cn, outgoing)
	cm.clients[cn] = c
	return c
}

func (cm *ClientManager) GetClientByCN(cn uint32) *Client {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	return cm.clients[cn]
}

// Join puts a client into the game with the draft attributes it provided. A
// second join under the same connection id overwrites the previous draft;
// last join wins.
func (cm *ClientManager) Join(c *Client, name string, sprite int32, position geom.Vector) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	c.Name = name
	c.Sprite = sprite
	c.Position = position
	c.Joined = true
	cm.clients[c.CN] = c
}

// Update merges the Some fields of update into the record for cn. Records
// that are absent or not yet joined yield ErrNotFound.
func (cm *ClientManager) Update(cn uint32, update StateUpdate) (*Client, error) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	client, ok := cm.clients[cn]
	if !ok || !client.Joined {
		return nil, ErrNotFound
	}

	if opt.IsSome(update.Position) {
		client.Position = update.Position.Value
	}
	if opt.IsSome(update.Facing) {
		client.Facing = update.Facing.Value
	}
	if opt.IsSome(update.Moving) {
		client.Moving = update.Moving.Value
	}
	if opt.IsSome(update.Score) {
		client.Score = update.Score.Value
	}

	return client, nil
}

// Leave removes and returns the record for cn.
func (cm *ClientManager) Leave(cn uint32) (*Client, error) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	client, ok := cm.clients[cn]
	if !ok {
		return nil, ErrNotFound
	}

	delete(cm.clients, cn)
	return client, nil
}

// All returns a snapshot of every joined player.
func (cm *ClientManager) All() []*Client {
	cm.mutex.RLock()
	all := make([]*Client, 0, len(cm.clients))
	for _, c := range cm.clients {
		all = append(all, c)
	}
	cm.mutex.RUnlock()

	return fp.Filter(func(c *Client) bool { return c.Joined })(all)
}

// Opponents builds the wire roster a joining client should see: everyone who
// already joined, except the client itself.
func (cm *ClientManager) Opponents(client *Client) []protocol.PlayerState {
	others := fp.Filter(func(c *Client) bool { return c != client })(cm.All())
	return fp.Map(func(c *Client) protocol.PlayerState { return c.ToWire() })(others)
}

// Sends messages to all clients currently connected.
func (cm *ClientManager) Broadcast(messages ...protocol.Message) {
	cm.ForEach(func(c *Client) {
		c.Send(messages...)
	})
	cm.broadcasts.Publish(messages)
}

// Sends messages to all clients except from.
func (cm *ClientManager) Relay(from *Client, messages ...protocol.Message) {
	cm.ForEach(func(c *Client) {
		if c == from {
			return
		}
		c.Send(messages...)
	})
}

func (cm *ClientManager) ForEach(do func(c *Client)) {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	for _, c := range cm.clients {
		do(c)
	}
}

// Returns the number of connected clients, joined or not.
func (cm *ClientManager) NumberOfClientsConnected() int {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	return len(cm.clients)
}
