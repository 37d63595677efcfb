package arena

import (
	"coinrush/pkg/arena/game"
	"coinrush/pkg/arena/geom"
	"coinrush/pkg/protocol"

	opt "github.com/repeale/fp-go/option"
	"github.com/rs/zerolog/log"
)

// HandleMessage applies one inbound event. Events referencing state that no
// longer exists are dropped silently; the transport gives no ordering
// guarantee across the join/leave boundary.
func (s *Server) HandleMessage(client *Client, message protocol.Message) {
	switch msg := message.(type) {
	case protocol.JoinMessage:
		s.handleJoin(client, msg)
	case protocol.StateMessage:
		s.handleState(client, msg)
	case protocol.CollideMessage:
		s.handleCollide(client, msg)
	case protocol.DisconnectMessage:
		s.handleDisconnect(client)
	default:
		log.Debug().Str("client", client.String()).Msgf("received unrelated message %T", message)
	}
}

func (s *Server) handleJoin(client *Client, msg protocol.JoinMessage) {
	s.Clients.Join(client, msg.Name, msg.Sprite, geom.NewVector(msg.X, msg.Y))

	log.Info().Str("client", client.String()).Msg("player joined")

	// The joining client gets the full picture once; everyone else only
	// learns about the newcomer.
	client.Send(
		protocol.RosterMessage{
			Op:      protocol.RosterOp,
			Players: s.Clients.Opponents(client),
		},
		protocol.CoinMessage{
			Op:   protocol.CoinOp,
			Coin: s.coin.ToWire(),
		},
	)
	s.Clients.Relay(client, protocol.OpponentMessage{
		Op:     protocol.NewOpponentOp,
		Player: client.ToWire(),
	})
}

func (s *Server) handleState(client *Client, msg protocol.StateMessage) {
	update := StateUpdate{
		Position: opt.Some(geom.NewVector(msg.X, msg.Y)),
		Facing:   opt.None[game.Facing](),
		Moving:   opt.Some(msg.Moving),
		Score:    opt.None[int32](),
	}
	if facing, ok := game.ParseFacing(msg.Facing); ok {
		update.Facing = opt.Some(facing)
	}

	updated, err := s.Clients.Update(client.CN, update)
	if err != nil {
		log.Debug().Uint32("client", client.CN).Msg("dropping state for unjoined client")
		return
	}

	s.Clients.Relay(client, protocol.OpponentMessage{
		Op:     protocol.OpponentStateOp,
		Player: updated.ToWire(),
	})
}

func (s *Server) handleCollide(client *Client, msg protocol.CollideMessage) {
	coin := s.coin

	if !client.Joined {
		log.Debug().Uint32("client", client.CN).Msg("dropping claim from unjoined client")
		return
	}

	if msg.Token != coin.Token {
		// someone else got there first
		log.Debug().
			Str("client", client.String()).
			Str("token", msg.Token).
			Msg("dropping claim on a stale coin")
		return
	}

	updated, err := s.Clients.Update(client.CN, StateUpdate{
		Position: opt.None[geom.Vector](),
		Facing:   opt.None[game.Facing](),
		Moving:   opt.None[bool](),
		Score:    opt.Some(client.Score + coin.Value),
	})
	if err != nil {
		return
	}

	s.coin = s.spawner.Respawn(coin)

	log.Info().
		Str("client", client.String()).
		Int32("score", updated.Score).
		Msg("coin collected")

	client.Send(protocol.ScoredMessage{
		Op:    protocol.ScoredOp,
		Score: updated.Score,
	})
	s.Clients.Relay(client, protocol.OpponentMessage{
		Op:     protocol.OpponentStateOp,
		Player: updated.ToWire(),
	})
	s.Broadcast(protocol.CoinMessage{
		Op:   protocol.CoinOp,
		Coin: s.coin.ToWire(),
	})
}

func (s *Server) handleDisconnect(client *Client) {
	departed, err := s.Clients.Leave(client.CN)
	if err != nil {
		return
	}

	if !departed.Joined {
		// never entered the game; nobody needs to hear about it
		return
	}

	log.Info().Str("client", departed.String()).Msg("player left")

	s.Clients.Relay(departed, protocol.LeaveMessage{
		Op:     protocol.OpponentLeaveOp,
		Client: departed.CN,
	})
}
