package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "RKANBAN"

// applyEnv overlays RKANBAN_* variables on cfg
func applyEnv(cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	for _, key := range []string{"api_url", "api_timeout", "token", "log_level", "data_path", "commit_timeout"} {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if v.IsSet("api_url") {
		cfg.API.BaseURL = v.GetString("api_url")
	}
	if v.IsSet("api_timeout") {
		cfg.API.Timeout = v.GetDuration("api_timeout")
	}
	if v.IsSet("token") {
		cfg.API.Token = v.GetString("token")
	}
	if v.IsSet("log_level") {
		cfg.Log.Level = v.GetString("log_level")
	}
	if v.IsSet("data_path") {
		cfg.Storage.DataPath = v.GetString("data_path")
	}
	if v.IsSet("commit_timeout") {
		cfg.Sync.CommitTimeout = v.GetDuration("commit_timeout")
	}
	return nil
}
