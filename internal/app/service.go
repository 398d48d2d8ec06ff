package app

import (
	"fmt"

	"github.com/shrimpsizemoose/kateder/internal/gateway"
	"github.com/shrimpsizemoose/kateder/internal/session"
)

// Service wires the pieces every binary needs: config, the credential
// store and the gateway in front of the backend.
type Service struct {
	Config  *Config
	Session session.Store
	Gateway *gateway.Gateway
	Guard   *session.Guard
}

// NewService loads config and builds the stack. onExpired is handed to
// the gateway and fires after a 401 has evicted the credential.
func NewService(configPath string, onExpired func()) (*Service, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := session.NewStore(config.Session.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to init session store: %w", err)
	}

	return &Service{
		Config:  config,
		Session: store,
		Gateway: gateway.New(config.API.BaseURL, store, onExpired),
		Guard:   session.NewGuard(store),
	}, nil
}

func (s *Service) Close() error {
	if err := s.Session.Close(); err != nil {
		return fmt.Errorf("errors while closing: session: %w", err)
	}
	return nil
}
