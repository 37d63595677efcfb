package game

// Facing is the direction a player's avatar is pointing.
type Facing string

const (
	FacingUp    Facing = "up"
	FacingDown  Facing = "down"
	FacingLeft  Facing = "left"
	FacingRight Facing = "right"

	defaultFacing = FacingDown
)

// ParseFacing validates a facing string received from a client.
func ParseFacing(value string) (Facing, bool) {
	switch Facing(value) {
	case FacingUp, FacingDown, FacingLeft, FacingRight:
		return Facing(value), true
	default:
		return "", false
	}
}
