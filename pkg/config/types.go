package config

// FieldSettings is the size of the playable field in world units.
type FieldSettings struct {
	Width  float64
	Height float64
}

// CoinSettings describes the collectible: how many sprite variants the client
// has, the sprite's square footprint in world units, and the score awarded on
// collection.
type CoinSettings struct {
	Sprites   int32
	Footprint float64
	Value     int32
}

type WebSettings struct {
	Port int
}

type ServerIngress struct {
	Web WebSettings
}

type ServerSettings struct {
	Description string
	Field       FieldSettings
	Coin        CoinSettings
	Ingress     ServerIngress
}

type Config struct {
	Server ServerSettings
}
