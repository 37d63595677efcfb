package game

import (
	"coinrush/pkg/arena/geom"
	"coinrush/pkg/protocol"
)

// Player is the canonical record for one connected client. There is exactly
// one Player per connection; it is owned by the client manager and mutated
// only on the server's dispatch goroutine.
type Player struct {
	CN       uint32
	Name     string
	Sprite   int32
	Position geom.Vector
	Facing   Facing
	Moving   bool
	Score    int32
}

func NewPlayer(cn uint32) Player {
	return Player{
		CN:     cn,
		Facing: defaultFacing,
	}
}

func (p *Player) ToWire() protocol.PlayerState {
	return protocol.PlayerState{
		Client: p.CN,
		Name:   p.Name,
		Sprite: p.Sprite,
		X:      p.Position.X(),
		Y:      p.Position.Y(),
		Facing: string(p.Facing),
		Moving: p.Moving,
		Score:  p.Score,
	}
}
