package config

import "github.com/viant/n8n-mcp/mcp/matcher"

// Overrides are the command line flags that take precedence over the file
// and the environment. Zero values leave the configuration untouched.
type Overrides struct {
	URL        string  `long:"n8n-url" description:"n8n base URL (N8N_MCP_N8N_URL)"`
	MockMode   bool    `long:"mock" description:"serve from the in-memory mock backend (N8N_MCP_MOCK_MODE)"`
	TimeoutSec int     `long:"timeout" description:"n8n request timeout in seconds (N8N_MCP_TIMEOUT)"`
	MaxRetries int     `long:"max-retries" description:"retries for read requests (N8N_MCP_MAX_RETRIES)"`
	RateLimit  float64 `long:"rate-limit" description:"max n8n requests per second, 0 disables (N8N_MCP_RATE_LIMIT)"`
	HTTP       bool    `long:"http" description:"serve MCP over HTTP instead of stdio (N8N_MCP_ENABLE_HTTP_TRANSPORT)"`
	Host       string  `long:"host" description:"HTTP bind host (N8N_MCP_HTTP_HOST)"`
	Port       int     `long:"port" description:"HTTP port (N8N_MCP_HTTP_PORT)"`
	LogLevel   string  `long:"log-level" description:"debug, info, warn or error (N8N_MCP_LOG_LEVEL)"`
	LogJSON    bool    `long:"log-json" description:"JSON log encoding (N8N_MCP_LOG_JSON)"`
	Tools      string  `long:"tools" description:"comma separated tool patterns, e.g. list_,get_workflow (N8N_MCP_TOOLS)"`
}

// Apply overlays the non-zero overrides.
func (c *Config) Apply(o *Overrides) {
	if o == nil {
		return
	}
	if o.URL != "" {
		c.N8N.URL = o.URL
	}
	if o.MockMode {
		c.N8N.MockMode = true
	}
	if o.TimeoutSec != 0 {
		c.N8N.TimeoutSec = o.TimeoutSec
	}
	if o.MaxRetries != 0 {
		c.N8N.MaxRetries = o.MaxRetries
	}
	if o.RateLimit != 0 {
		c.N8N.RateLimit = o.RateLimit
	}
	if o.HTTP {
		c.Transport.HTTP = true
	}
	if o.Host != "" {
		c.Transport.Host = o.Host
	}
	if o.Port != 0 {
		c.Transport.Port = o.Port
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.LogJSON {
		c.Log.JSON = true
	}
	if tools := matcher.Split(o.Tools); len(tools) > 0 {
		c.Tools = tools
	}
}
