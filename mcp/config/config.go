package config

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/viant/n8n-mcp/internal/logging"
	"github.com/viant/n8n-mcp/mcp/matcher"

	mcp "github.com/viant/mcp"
)

const (
	DefaultURL        = "http://localhost:5678"
	DefaultTimeoutSec = 30
	DefaultHost       = "127.0.0.1"
	DefaultPort       = 3044
	DefaultLogLevel   = "info"

	redacted = "[REDACTED]"
)

// N8N holds the upstream connection settings.
type N8N struct {
	URL        string  `yaml:"url,omitempty" json:"url,omitempty"`
	APIKey     string  `yaml:"apiKey,omitempty" json:"apiKey,omitempty"`
	MockMode   bool    `yaml:"mockMode,omitempty" json:"mockMode,omitempty"`
	TimeoutSec int     `yaml:"timeoutSec,omitempty" json:"timeoutSec,omitempty" validate:"min=1,max=300"`
	MaxRetries int     `yaml:"maxRetries,omitempty" json:"maxRetries,omitempty" validate:"min=0,max=10"`
	RateLimit  float64 `yaml:"rateLimit,omitempty" json:"rateLimit,omitempty" validate:"min=0"`
}

// Transport selects stdio or HTTP.
type Transport struct {
	HTTP bool   `yaml:"http,omitempty" json:"http,omitempty"`
	Host string `yaml:"host,omitempty" json:"host,omitempty"`
	Port int    `yaml:"port,omitempty" json:"port,omitempty" validate:"min=1024,max=65535"`
}

// Address returns host:port.
func (t *Transport) Address() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// Log configures the process logger.
type Log struct {
	Level string `yaml:"level,omitempty" json:"level,omitempty"`
	JSON  bool   `yaml:"json,omitempty" json:"json,omitempty"`
}

// Config is the complete server configuration.
type Config struct {
	N8N       N8N       `yaml:"n8n,omitempty" json:"n8n,omitempty"`
	Transport Transport `yaml:"transport,omitempty" json:"transport,omitempty"`
	Log       Log       `yaml:"log,omitempty" json:"log,omitempty"`
	// Tools is the allow-list of tool name patterns; see package matcher.
	Tools  []string           `yaml:"tools,omitempty" json:"tools,omitempty"`
	Server *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty" validate:"-"`
}

// New returns a configuration holding the defaults.
func New() *Config {
	ret := &Config{}
	ret.Init()
	return ret
}

// Init fills unset fields with defaults.
func (c *Config) Init() {
	if c.N8N.URL == "" {
		c.N8N.URL = DefaultURL
	}
	if c.N8N.TimeoutSec == 0 {
		c.N8N.TimeoutSec = DefaultTimeoutSec
	}
	if c.Transport.Host == "" {
		c.Transport.Host = DefaultHost
	}
	if c.Transport.Port == 0 {
		c.Transport.Port = DefaultPort
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if len(c.Tools) == 0 {
		c.Tools = []string{"*"}
	}
}

// Load reads a YAML or JSON document from any afs supported URL (local path,
// file://, s3://, gs://, mem://, ...) on top of the defaults.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	cfg.Init()
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks ranges, the n8n URL and, in live mode, the API key.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	u, err := url.Parse(c.N8N.URL)
	if err != nil {
		return fmt.Errorf("invalid n8n URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid n8n URL %q: scheme must be http or https", c.N8N.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid n8n URL %q: host is required", c.N8N.URL)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if !c.N8N.MockMode && c.N8N.APIKey == "" {
		return fmt.Errorf("N8N_MCP_API_KEY is required unless mock mode is enabled")
	}
	return nil
}

// AllowsTool reports whether the tool allow-list admits name.
func (c *Config) AllowsTool(name string) bool {
	return matcher.Any(c.Tools, name)
}

// Redacted returns a copy safe for printing.
func (c *Config) Redacted() *Config {
	ret := *c
	ret.Tools = append([]string(nil), c.Tools...)
	if ret.N8N.APIKey != "" {
		ret.N8N.APIKey = redacted
	}
	return &ret
}

// Resolve assembles a configuration: defaults, the optional file at URL, the
// environment (via lookup) and finally the flag overrides.
func Resolve(ctx context.Context, URL string, lookup LookupFunc, overrides *Overrides) (*Config, error) {
	cfg := New()
	if URL != "" {
		var err error
		if cfg, err = Load(ctx, URL); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	cfg.Apply(overrides)
	cfg.Init()
	return cfg, nil
}
