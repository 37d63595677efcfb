package arena

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"coinrush/pkg/config"
	"coinrush/pkg/protocol"
	"coinrush/pkg/utils"
)

// ServerPacket is one batch of messages crossing the transport boundary.
type ServerPacket struct {
	// Either the sender (if incoming) or the recipient (if outgoing)
	Session  uint32
	Messages []protocol.Message
}

type Incoming <-chan ServerPacket
type Outgoing chan<- ServerPacket

// Server is the authoritative coordinator for one arena. All inbound events
// are processed one at a time to completion on the Poll goroutine; state is
// mutated first and messages are emitted after, so the next event always
// observes fully-updated state.
type Server struct {
	utils.Session

	settings config.ServerSettings

	Clients *ClientManager

	// Every all-scope broadcast is also published here for observers.
	Broadcasts *utils.Topic[[]protocol.Message]

	spawner *CoinSpawner
	coin    *Coin

	incoming chan ServerPacket
	outgoing chan ServerPacket

	rng *rand.Rand
}

func New(ctx context.Context, conf *config.Config) *Server {
	broadcasts := utils.NewTopic[[]protocol.Message]()

	outgoing := make(chan ServerPacket)

	clients := &ClientManager{
		clients:    make(map[uint32]*Client),
		broadcasts: broadcasts,
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	spawner := NewCoinSpawner(conf.Server.Field, conf.Server.Coin, rng)

	s := &Server{
		Session:    utils.NewSession(ctx),
		settings:   conf.Server,
		Broadcasts: broadcasts,
		Clients:    clients,
		spawner:    spawner,
		coin:       spawner.Spawn(),
		incoming:   make(chan ServerPacket),
		outgoing:   outgoing,
		rng:        rng,
	}

	return s
}

// Poll dispatches inbound events strictly one at a time. It is the only
// goroutine that mutates game state.
func (s *Server) Poll(ctx context.Context) {
	for {
		select {
		case <-s.Ctx().Done():
			return
		case msg := <-s.incoming:
			client := s.Clients.GetClientByCN(msg.Session)
			if client == nil {
				// stale message racing a disconnect
				continue
			}

			for _, message := range msg.Messages {
				s.HandleMessage(client, message)
			}
		}
	}
}

func (s *Server) Incoming() chan<- ServerPacket {
	return s.incoming
}

func (s *Server) Outgoing() <-chan ServerPacket {
	return s.outgoing
}

// Coin returns the current coin snapshot.
func (s *Server) Coin() *Coin {
	return s.coin
}

// Connect registers a new connection in the Connecting state. The client is
// not visible to other players until it joins.
func (s *Server) Connect(sessionID uint32) (*Client, error) {
	existing := s.Clients.GetClientByCN(sessionID)
	if existing != nil {
		return nil, fmt.Errorf("client %d already connected", sessionID)
	}

	return s.Clients.Add(sessionID, s.outgoing), nil
}

func (s *Server) Broadcast(messages ...protocol.Message) {
	s.Clients.Broadcast(messages...)
}
