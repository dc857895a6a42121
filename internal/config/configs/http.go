package configs

// HTTP configures the API server. Only the listen port is tunable; the
// server binds all interfaces.
type HTTP struct {
	// Port is the TCP port the server listens on.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
