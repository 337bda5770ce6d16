package config

import (
	"strings"

	"github.com/donessie94/terminalChessAI/internal/chess"
	"github.com/donessie94/terminalChessAI/internal/errors"
)

// ServerConfig holds settings for the HTTP game server.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `json:"addr"`

	// EngineColour is the side the engine plays: "white", "black" or "none".
	EngineColour string `json:"engineColour"`
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:         ":8080",
		EngineColour: "black",
	}
}

// Engine returns the colour the engine plays and whether it plays at all.
func (s *ServerConfig) Engine() (chess.Colour, bool) {
	switch strings.ToLower(s.EngineColour) {
	case "white":
		return chess.White, true
	case "black":
		return chess.Black, true
	}
	return chess.White, false
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "empty listen address")
	}
	switch strings.ToLower(s.EngineColour) {
	case "white", "black", "none":
		return nil
	}
	return errors.Wrapf(errors.ErrInvalidConfig, "engine colour %q is not white, black or none",
		s.EngineColour)
}
