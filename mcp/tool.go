package mcp

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/viant/jsonrpc"
	"github.com/viant/n8n-mcp/internal/conv"
	mcpctx "github.com/viant/n8n-mcp/mcp/context"
	"github.com/viant/n8n-mcp/mcp/tool"

	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

// Tools returns an MCP tool entry for every registered tool.
func (s *Service) Tools() serverproto.Tools {
	var result = make(serverproto.Tools, 0, s.registry.Len())
	for _, definition := range s.registry.Definitions() {
		entry, err := s.LookupTool(definition.Name)
		if err != nil {
			continue
		}
		result = append(result, entry)
	}
	return result
}

// LookupTool returns the MCP tool entry for name.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	definition, ok := s.registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}
	toolEntry := &serverproto.ToolEntry{Metadata: definition.Metadata()}
	toolEntry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		response, err := s.ExecuteTool(ctx, request.Params.Name, request.Params.Arguments)
		if err != nil {
			return nil, jsonrpc.NewError(jsonrpc.MethodNotFound, err.Error(), nil)
		}
		res := &mcpschema.CallToolResult{}
		res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
			Type: "text",
			Text: response.Text(),
		})
		if !response.Success {
			res.IsError = conv.Pointer(true)
		}
		return res, nil
	}
	return toolEntry, nil
}

// ExecuteTool runs a tool and returns its response envelope. An error is
// returned only for an unknown tool; every other failure is reported in the
// envelope. Arguments are never logged.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}) (*tool.Response, error) {
	ctx, requestID := mcpctx.EnsureRequestID(ctx)
	logger := s.logger.With(zap.String("tool", name), zap.String("request_id", requestID))
	started := time.Now()

	response, err := s.registry.Call(ctx, name, args)
	elapsed := time.Since(started)
	if err != nil {
		logger.Warn("tool call rejected", zap.Error(err))
		return nil, err
	}
	if response.Success {
		logger.Info("tool call", zap.Duration("elapsed", elapsed), zap.Bool("success", true))
		return response, nil
	}
	logger.Info("tool call",
		zap.Duration("elapsed", elapsed),
		zap.Bool("success", false),
		zap.String("error_type", response.ErrorType),
	)
	return response, nil
}
