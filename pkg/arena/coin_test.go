package arena

import (
	"math/rand"
	"testing"

	"coinrush/pkg/config"

	"github.com/stretchr/testify/require"
)

func testSpawner(seed int64) *CoinSpawner {
	return NewCoinSpawner(
		config.FieldSettings{Width: 100, Height: 100},
		config.CoinSettings{Sprites: 4, Footprint: 10, Value: 10},
		rand.New(rand.NewSource(seed)),
	)
}

func TestSpawnBounds(t *testing.T) {
	spawner := testSpawner(1)

	for i := 0; i < 1000; i++ {
		coin := spawner.Spawn()
		require.True(t, coin.Position.Inside(90, 90), "coin footprint must fit the field")
		require.True(t, coin.Sprite >= 0 && coin.Sprite < 4)
		require.Equal(t, int32(10), coin.Value)
		require.NotEmpty(t, coin.Token)
	}
}

func TestRespawnMoves(t *testing.T) {
	spawner := testSpawner(2)

	coin := spawner.Spawn()
	for i := 0; i < 100; i++ {
		next := spawner.Respawn(coin)
		require.NotEqual(t, coin.Position, next.Position, "respawn must be visible")
		require.NotEqual(t, coin.Token, next.Token, "respawn must mint a fresh identity")
		coin = next
	}
}

func TestSpriteCycle(t *testing.T) {
	spawner := testSpawner(3)

	coin := spawner.Spawn()
	initial := coin.Sprite
	for n := int32(1); n <= 10; n++ {
		coin = spawner.Respawn(coin)
		require.Equal(t, (initial+n)%4, coin.Sprite)
	}
}
