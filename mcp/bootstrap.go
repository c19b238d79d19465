package mcp

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/viant/n8n-mcp/gateway"
	"github.com/viant/n8n-mcp/mcp/config"
	"github.com/viant/n8n-mcp/mcp/tool"
	"github.com/viant/n8n-mcp/n8n/client"
	"github.com/viant/n8n-mcp/n8n/mock"
)

// init runs once all options have been applied.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	if err := s.config.Validate(); err != nil {
		return err
	}
	if err := s.initBackend(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	s.workflows = gateway.NewWorkflows(s.backend)
	s.executions = gateway.NewExecutions(s.backend)
	s.credentials = gateway.NewCredentials(s.backend)

	if err := s.initRegistry(); err != nil {
		return fmt.Errorf("register tools: %w", err)
	}
	s.logger.Info("service ready",
		zap.Bool("mock", s.config.N8N.MockMode),
		zap.String("n8n_url", s.config.N8N.URL),
		zap.Int("tools", s.registry.Len()),
	)
	return nil
}

// initDefaults applies fall-back values for dependencies that were not
// supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = config.New()
	}
	s.config.Init()
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.logger = s.logger.Named("mcp")
}

// initBackend selects the backend exactly once: the injected one, the mock
// store in mock mode, otherwise the live n8n client.
func (s *Service) initBackend() error {
	if s.backend != nil {
		return nil
	}
	if s.config.N8N.MockMode {
		s.backend = mock.New(mock.NewStore())
		s.logger.Warn("mock mode enabled: no request reaches n8n")
		return nil
	}
	live, err := client.New(client.Options{
		BaseURL:    s.config.N8N.URL,
		APIKey:     s.config.N8N.APIKey,
		Timeout:    time.Duration(s.config.N8N.TimeoutSec) * time.Second,
		MaxRetries: s.config.N8N.MaxRetries,
		RateLimit:  s.config.N8N.RateLimit,
		UserAgent:  Name + "/" + Version,
	}, client.WithLogger(s.logger))
	if err != nil {
		return err
	}
	s.backend = live
	s.close = live.Close
	return nil
}

// initRegistry registers every tool admitted by the allow-list.
func (s *Service) initRegistry() error {
	s.registry = tool.NewRegistry()
	for _, definition := range s.definitions() {
		if !s.config.AllowsTool(definition.Name) {
			continue
		}
		if err := s.registry.Register(definition); err != nil {
			return err
		}
	}
	if s.registry.Len() == 0 {
		return fmt.Errorf("no tool matches %v", s.config.Tools)
	}
	return nil
}
