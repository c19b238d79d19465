package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/viant/mcp"
)

// ServeCmd launches the MCP server. stdio is the default transport; --http
// (or N8N_MCP_ENABLE_HTTP_TRANSPORT) switches to streamable HTTP on
// host:port.
type ServeCmd struct{}

func (c *ServeCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	cfg := svc.Config()

	mcpServer, err := mcp.NewServer(svc.NewHandler, cfg.Server)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !cfg.Transport.HTTP {
		logger.Info("serving MCP over stdio")
		return mcpServer.Stdio(ctx).ListenAndServe()
	}

	httpSrv := mcpServer.HTTP(ctx, cfg.Transport.Address())
	errs := make(chan error, 1)
	go func() {
		errs <- httpSrv.ListenAndServe()
	}()
	logger.Info("serving MCP over HTTP", zap.String("addr", httpSrv.Addr))

	select {
	case err = <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
