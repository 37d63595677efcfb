package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFacing(t *testing.T) {
	for _, valid := range []string{"up", "down", "left", "right"} {
		facing, ok := ParseFacing(valid)
		assert.True(t, ok)
		assert.Equal(t, Facing(valid), facing)
	}

	for _, invalid := range []string{"", "UP", "north", "diagonal"} {
		_, ok := ParseFacing(invalid)
		assert.False(t, ok)
	}
}
