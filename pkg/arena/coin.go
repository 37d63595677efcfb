package arena

import (
	"crypto/rand"
	"encoding/hex"
	mrand "math/rand"

	"coinrush/pkg/arena/geom"
	"coinrush/pkg/config"
	"coinrush/pkg/protocol"
)

// Coin is an immutable snapshot of the collectible. A respawn builds a whole
// new snapshot and the server swaps its pointer in one assignment, so no
// reader ever sees a coin with only some of its attributes replaced.
type Coin struct {
	Token    string
	Position geom.Vector
	Sprite   int32
	Value    int32
}

func (c *Coin) ToWire() protocol.CoinState {
	return protocol.CoinState{
		Token:  c.Token,
		X:      c.Position.X(),
		Y:      c.Position.Y(),
		Sprite: c.Sprite,
		Value:  c.Value,
	}
}

// CoinSpawner places coins on the field. Positions are sampled uniformly from
// the field minus the coin's footprint so the sprite always renders fully
// inside the playable area.
type CoinSpawner struct {
	field config.FieldSettings
	coin  config.CoinSettings
	rng   *mrand.Rand
}

func NewCoinSpawner(field config.FieldSettings, coin config.CoinSettings, rng *mrand.Rand) *CoinSpawner {
	return &CoinSpawner{
		field: field,
		coin:  coin,
		rng:   rng,
	}
}

func (s *CoinSpawner) randomPosition() geom.Vector {
	return geom.NewVector(
		s.rng.Float64()*(s.field.Width-s.coin.Footprint),
		s.rng.Float64()*(s.field.Height-s.coin.Footprint),
	)
}

func newToken() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

func (s *CoinSpawner) freshToken(previous string) string {
	for {
		token := newToken()
		if token != previous {
			return token
		}
	}
}

// Spawn creates the first coin with a random position and sprite variant.
func (s *CoinSpawner) Spawn() *Coin {
	return &Coin{
		Token:    s.freshToken(""),
		Position: s.randomPosition(),
		Sprite:   s.rng.Int31n(s.coin.Sprites),
		Value:    s.coin.Value,
	}
}

// Respawn replaces a collected coin. The new position is resampled until it
// differs from the old one so the move is always visible to players, and the
// sprite variant advances cyclically through the set.
func (s *CoinSpawner) Respawn(prev *Coin) *Coin {
	position := s.randomPosition()
	for position == prev.Position {
		position = s.randomPosition()
	}

	return &Coin{
		Token:    s.freshToken(prev.Token),
		Position: position,
		Sprite:   (prev.Sprite + 1) % s.coin.Sprites,
		Value:    s.coin.Value,
	}
}
