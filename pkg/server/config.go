package server

import (
	"net/http"
	"time"
)

// ServerConfig configures the demo server.
type ServerConfig struct {
	// Address is the listen address (default ":8080").
	Address string

	// ReadBufferSize is the WebSocket read buffer size in bytes.
	ReadBufferSize int

	// WriteBufferSize is the WebSocket write buffer size in bytes.
	WriteBufferSize int

	// CheckOrigin validates WebSocket upgrade origins. The default
	// accepts every origin; tighten this outside local demos.
	CheckOrigin func(r *http.Request) bool

	// ToggleLimit is the number of normal toggles the demo's limit
	// reducer allows before vetoing (default 4).
	ToggleLimit int

	// StepperMin and StepperMax bound the demo stepper's value.
	StepperMin int
	StepperMax int

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration

	// HTTP server timeouts.
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

// DefaultServerConfig returns the default configuration.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           ":8080",
		ReadBufferSize:    1024,
		WriteBufferSize:   1024,
		CheckOrigin:       func(*http.Request) bool { return true },
		ToggleLimit:       4,
		StepperMin:        0,
		StepperMax:        10,
		ShutdownTimeout:   10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// fillDefaults completes unset fields from the defaults.
func (c *ServerConfig) fillDefaults() {
	defaults := DefaultServerConfig()
	if c.Address == "" {
		c.Address = defaults.Address
	}
	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = defaults.ReadBufferSize
	}
	if c.WriteBufferSize == 0 {
		c.WriteBufferSize = defaults.WriteBufferSize
	}
	if c.CheckOrigin == nil {
		c.CheckOrigin = defaults.CheckOrigin
	}
	if c.ToggleLimit == 0 {
		c.ToggleLimit = defaults.ToggleLimit
	}
	if c.StepperMax == 0 {
		c.StepperMax = defaults.StepperMax
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = defaults.ReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = defaults.WriteTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = defaults.IdleTimeout
	}
}
