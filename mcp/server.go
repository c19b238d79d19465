package mcp

import (
	"context"

	"github.com/viant/jsonrpc/transport"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	serverproto "github.com/viant/mcp-protocol/server"
)

// NewHandler returns an MCP handler exposing the shared tool registry. Every
// connection reuses the registry built during bootstrap.
func (s *Service) NewHandler(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	impl := serverproto.NewDefaultHandler(notifier, l, cli)
	for _, tool := range s.Tools() {
		impl.RegisterTool(tool)
	}
	return impl, nil
}
