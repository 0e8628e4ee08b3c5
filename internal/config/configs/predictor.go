package configs

import "time"

// Predictor configures the external prediction service: the command used to
// spawn it as a side process of this server, and the endpoint its HTTP API
// listens on.
type Predictor struct {
	// Command is the interpreter used to launch the model server.
	Command string `env:"COMMAND" envDefault:"python3"`
	// Script is the path to the model server entry point, passed to Command.
	Script string `env:"SCRIPT" envDefault:"ml_model/predict.py"`
	// Endpoint is the prediction URL of the running model server.
	Endpoint string `env:"ENDPOINT" envDefault:"http://localhost:5002/predict"`
	// Autostart spawns the model server on boot and stops it on shutdown.
	// Disable when the model server is managed externally.
	Autostart bool `env:"AUTOSTART" envDefault:"true"`
	// Timeout bounds a single prediction call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
