package configs

import "time"

// HTTP configures the API server listener.
type HTTP struct {
	// Port is the TCP port the server binds to.
	Port uint16 `env:"PORT" envDefault:"5001"`
	// ShutdownTimeout bounds how long graceful shutdown waits for in-flight
	// requests before the server is closed forcefully.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
