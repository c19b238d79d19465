package mcp

import (
	"context"

	"go.uber.org/zap"

	"github.com/viant/n8n-mcp/gateway"
	"github.com/viant/n8n-mcp/mcp/config"
	"github.com/viant/n8n-mcp/mcp/tool"
	"github.com/viant/n8n-mcp/n8n"

	mcpschema "github.com/viant/mcp-protocol/schema"
)

const (
	// Name is the MCP server name.
	Name = "n8n-mcp"
	// Version is the MCP server version.
	Version = "0.1.0"
)

// Service bundles configuration, the selected backend, the resource gateways
// and the tool registry shared by every MCP connection.
type Service struct {
	config  *config.Config
	logger  *zap.Logger
	backend n8n.Backend
	// close releases backend resources when the service owns the backend.
	close func()

	workflows   *gateway.Workflows
	executions  *gateway.Executions
	credentials *gateway.Credentials

	registry *tool.Registry
}

// Config returns the effective configuration. Callers must treat it as
// read-only.
func (s *Service) Config() *config.Config { return s.config }

// Backend returns the backend selected at startup.
func (s *Service) Backend() n8n.Backend { return s.backend }

// Registry returns the tool registry.
func (s *Service) Registry() *tool.Registry { return s.registry }

// ToolNames returns sorted tool names.
func (s *Service) ToolNames() []string { return s.registry.Names() }

// Descriptor is the short form of a tool.
type Descriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToolDescriptors returns name and description of every tool in
// registration order.
func (s *Service) ToolDescriptors() []Descriptor {
	definitions := s.registry.Definitions()
	ret := make([]Descriptor, len(definitions))
	for i, definition := range definitions {
		ret[i] = Descriptor{Name: definition.Name, Description: definition.Description}
	}
	return ret
}

// ToolMetadata returns the MCP descriptor of a tool.
func (s *Service) ToolMetadata(name string) (*mcpschema.Tool, bool) {
	definition, ok := s.registry.Lookup(name)
	if !ok {
		return nil, false
	}
	metadata := definition.Metadata()
	return &metadata, true
}

// Close releases resources held by a backend the service created.
func (s *Service) Close() {
	if s.close != nil {
		s.close()
	}
}

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets the configuration. When omitted the defaults are used.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithBackend injects a backend, bypassing the live/mock selection.
func WithBackend(backend n8n.Backend) Option {
	return func(s *Service) {
		s.backend = backend
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New constructs a ready to use service. The bootstrap sequence lives in
// bootstrap.go.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// NewWithConfig is shorthand for New(ctx, WithConfig(cfg), opts...).
func NewWithConfig(ctx context.Context, cfg *config.Config, opts ...Option) (*Service, error) {
	return New(ctx, append([]Option{WithConfig(cfg)}, opts...)...)
}
