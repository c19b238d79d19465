package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/viant/n8n-mcp/mcp/matcher"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "N8N_MCP_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays N8N_MCP_* variables. A nil lookup reads the process
// environment.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	env := func(name string) (string, bool) {
		value, ok := lookup(EnvPrefix + name)
		if !ok {
			return "", false
		}
		value = strings.TrimSpace(value)
		return value, value != ""
	}
	var err error
	if value, ok := env("N8N_URL"); ok {
		c.N8N.URL = value
	}
	if value, ok := env("API_KEY"); ok {
		c.N8N.APIKey = value
	}
	if value, ok := env("MOCK_MODE"); ok {
		if c.N8N.MockMode, err = parseBool("MOCK_MODE", value); err != nil {
			return err
		}
	}
	if value, ok := env("TIMEOUT"); ok {
		if c.N8N.TimeoutSec, err = parseInt("TIMEOUT", value); err != nil {
			return err
		}
	}
	if value, ok := env("MAX_RETRIES"); ok {
		if c.N8N.MaxRetries, err = parseInt("MAX_RETRIES", value); err != nil {
			return err
		}
	}
	if value, ok := env("RATE_LIMIT"); ok {
		if c.N8N.RateLimit, err = strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("invalid %sRATE_LIMIT %q: expected a number", EnvPrefix, value)
		}
	}
	if value, ok := env("ENABLE_HTTP_TRANSPORT"); ok {
		if c.Transport.HTTP, err = parseBool("ENABLE_HTTP_TRANSPORT", value); err != nil {
			return err
		}
	}
	if value, ok := env("HTTP_HOST"); ok {
		c.Transport.Host = value
	}
	if value, ok := env("HTTP_PORT"); ok {
		if c.Transport.Port, err = parseInt("HTTP_PORT", value); err != nil {
			return err
		}
	}
	if value, ok := env("LOG_LEVEL"); ok {
		c.Log.Level = value
	}
	if value, ok := env("LOG_JSON"); ok {
		if c.Log.JSON, err = parseBool("LOG_JSON", value); err != nil {
			return err
		}
	}
	if value, ok := env("TOOLS"); ok {
		c.Tools = matcher.Split(value)
	}
	return nil
}

func parseBool(name, value string) (bool, error) {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid %s%s %q: expected true or false", EnvPrefix, name, value)
}

func parseInt(name, value string) (int, error) {
	ret, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s %q: expected an integer", EnvPrefix, name, value)
	}
	return ret, nil
}
