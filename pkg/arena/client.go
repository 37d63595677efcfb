package arena

import (
	"fmt"

	"coinrush/pkg/arena/game"
	"coinrush/pkg/protocol"
)

// Describes a connected client.
type Client struct {
	game.Player

	Joined bool // true if the player is actually in the game

	outgoing Outgoing
}

func NewClient(cn uint32, outgoing Outgoing) *Client {
	return &Client{
		Player:   game.NewPlayer(cn),
		outgoing: outgoing,
	}
}

func (c *Client) String() string {
	return fmt.Sprintf("%s (%d)", c.Name, c.CN)
}

func (c *Client) Send(messages ...protocol.Message) {
	c.outgoing <- ServerPacket{
		Session:  c.CN,
		Messages: messages,
	}
}
