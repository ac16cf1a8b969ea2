package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	req := require.New(t)

	cfg, err := LoadConfig("")
	req.NoError(err)
	req.Equal("tkeyring", cfg.Username)
	req.Equal("localhost:8080", cfg.HttpApiConfig.ListenAddr())
	req.NotEmpty(cfg.EngineURL)
}

func TestLoadConfigFile(t *testing.T) {
	req := require.New(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configPath, []byte(`
username: alice
http_api_config:
  host: 0.0.0.0
  port: 9090
  debug: true
engine_url: http://engine:9080
permissions:
  "https://app.example.com":
    - keyring_listAccounts
    - keyring_getAccountByAddress
`), 0o644)
	req.NoError(err)

	cfg, err := LoadConfig(configPath)
	req.NoError(err)
	req.Equal("alice", cfg.Username)
	req.Equal("0.0.0.0:9090", cfg.HttpApiConfig.ListenAddr())
	req.True(cfg.HttpApiConfig.Debug)
	req.Equal("http://engine:9080", cfg.EngineURL)
	req.Equal([]string{"keyring_listAccounts", "keyring_getAccountByAddress"},
		cfg.Permissions["https://app.example.com"])

	// Fields absent from the file keep their defaults.
	req.Equal("./tkeyring_state", cfg.StateDBDSN)
}

func TestLoadConfigMissingFile(t *testing.T) {
	req := require.New(t)

	_, err := LoadConfig("/nonexistent/config.yaml")
	req.Error(err)
}
