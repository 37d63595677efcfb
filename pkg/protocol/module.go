package protocol

// Op identifies a message on the wire. Every message carries its op as the
// first field so either side can route it before decoding the full struct.
type Op int

const (
	// Server -> client
	RosterOp Op = iota
	CoinOp
	NewOpponentOp
	OpponentStateOp
	ScoredOp
	OpponentLeaveOp
	// Client -> server
	JoinOp
	StateOp
	CollideOp
	DisconnectOp
)

// Message is implemented by every wire message.
type Message interface {
	MessageOp() Op
}

// PlayerState is the wire representation of a player.
type PlayerState struct {
	Client uint32
	Name   string
	Sprite int32
	X      float64
	Y      float64
	Facing string
	Moving bool
	Score  int32
}

// CoinState is the wire representation of the coin.
type CoinState struct {
	Token  string
	X      float64
	Y      float64
	Sprite int32
	Value  int32
}

// A client wants to enter the game.
type JoinMessage struct {
	Op     Op // JoinOp
	Name   string
	Sprite int32
	X      float64
	Y      float64
}

// A client reports its own movement.
type StateMessage struct {
	Op     Op // StateOp
	X      float64
	Y      float64
	Facing string
	Moving bool
}

// A client claims it touched the coin. Token is the identity of the coin the
// client saw; a stale token means someone else got there first.
type CollideMessage struct {
	Op    Op // CollideOp
	Token string
}

// The client is leaving. The ingress also synthesizes this when the socket
// closes without a goodbye.
type DisconnectMessage struct {
	Op Op // DisconnectOp
}

// The full set of already-joined players, sent once to a joining client.
type RosterMessage struct {
	Op      Op // RosterOp
	Players []PlayerState
}

// The coin's current state: sent to a joining client, and to everyone on a
// respawn.
type CoinMessage struct {
	Op   Op // CoinOp
	Coin CoinState
}

// Another player joined or changed state.
type OpponentMessage struct {
	Op     Op // NewOpponentOp or OpponentStateOp
	Player PlayerState
}

// The sender's new score after collecting the coin.
type ScoredMessage struct {
	Op    Op // ScoredOp
	Score int32
}

// Another player left.
type LeaveMessage struct {
	Op     Op // OpponentLeaveOp
	Client uint32
}

func (m JoinMessage) MessageOp() Op       { return JoinOp }
func (m StateMessage) MessageOp() Op      { return StateOp }
func (m CollideMessage) MessageOp() Op    { return CollideOp }
func (m DisconnectMessage) MessageOp() Op { return DisconnectOp }
func (m RosterMessage) MessageOp() Op     { return RosterOp }
func (m CoinMessage) MessageOp() Op       { return CoinOp }
func (m OpponentMessage) MessageOp() Op   { return m.Op }
func (m ScoredMessage) MessageOp() Op     { return ScoredOp }
func (m LeaveMessage) MessageOp() Op      { return OpponentLeaveOp }
