package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HttpApiConfig struct {
	Host  string `mapstructure:"host"`
	Port  int    `mapstructure:"port"`
	Debug bool   `mapstructure:"debug"`
}

func (c *HttpApiConfig) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type Config struct {
	Username string `mapstructure:"username"`

	HttpApiConfig *HttpApiConfig `mapstructure:"http_api_config"`

	// EngineURL is the address of the engine sidecar that runs the
	// multi-party computation.
	EngineURL string `mapstructure:"engine_url"`

	StateDBDSN   string `mapstructure:"state_dbdsn"`
	AuditLogPath string `mapstructure:"audit_log_path"`

	// Permissions maps caller origins to the method names they may
	// call on the request dispatcher.
	Permissions map[string][]string `mapstructure:"permissions"`
}

func DefaultConfig() *Config {
	return &Config{
		Username: "tkeyring",
		HttpApiConfig: &HttpApiConfig{
			Host: "localhost",
			Port: 8080,
		},
		EngineURL:    "http://localhost:9080",
		StateDBDSN:   "./tkeyring_state",
		AuditLogPath: "./tkeyring_audit.log",
		Permissions:  map[string][]string{},
	}
}

// LoadConfig reads the config file at path, falling back to defaults
// for anything it does not set.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
