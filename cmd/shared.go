package cmd

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/viant/n8n-mcp/internal/logging"
	"github.com/viant/n8n-mcp/mcp"
	"github.com/viant/n8n-mcp/mcp/config"
)

var (
	options *Options

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
	logger  *zap.Logger
)

// setOptions remembers the parsed root options so that the service singleton
// can be created lazily by whichever sub-command is executed.
func setOptions(opts *Options) {
	options = opts
	svcOnce = sync.Once{}
	svcInst, svcErr, logger = nil, nil, nil
}

// resolveConfig assembles the configuration from the -f file, the
// environment and the root flags.
func resolveConfig(ctx context.Context) (*config.Config, error) {
	var (
		location  string
		overrides *config.Overrides
	)
	if options != nil {
		location = options.Config
		overrides = &options.Overrides
	}
	return config.Resolve(ctx, location, os.LookupEnv, overrides)
}

// serviceSingleton initialises an mcp.Service only once per CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		ctx := context.Background()
		cfg, err := resolveConfig(ctx)
		if err != nil {
			svcErr = err
			return
		}
		if logger, err = logging.New(cfg.Log.Level, cfg.Log.JSON); err != nil {
			svcErr = err
			return
		}
		logger.Debug("configuration", zap.Any("config", cfg.Redacted()))
		svcInst, svcErr = mcp.New(ctx, mcp.WithConfig(cfg), mcp.WithLogger(logger))
		if svcErr != nil {
			svcErr = fmt.Errorf("n8n-mcp: %w", svcErr)
		}
	})
	return svcInst, svcErr
}

func closeService() {
	if svcInst != nil {
		svcInst.Close()
	}
	if logger != nil {
		_ = logger.Sync()
	}
}
