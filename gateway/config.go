package gateway

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/numaan0/travel-genius/pkg/agent"
)

// Config is the gateway server configuration.
type Config struct {
	// Address to listen on (e.g. ":8080")
	ListenAddr string `toml:"listen"`

	// Base URL of the agent service
	AgentURL string `toml:"agent_url"`

	// Application name within the agent service
	AppName string `toml:"app_name"`

	// DBPath is the path to the SQLite history database file.
	// Empty means an in-memory history store.
	DBPath string `toml:"db"`
}

// DefaultConfig layers the ADK_SERVICE_URL environment variable over the
// built-in defaults.
func DefaultConfig() Config {
	return Config{
		ListenAddr: ":8080",
		AgentURL:   agent.BaseURLFromEnv(),
		AppName:    "agent",
	}
}

// LoadConfig reads a TOML config file on top of DefaultConfig. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	return cfg, nil
}
