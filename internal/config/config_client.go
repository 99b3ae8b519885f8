package config

import (
	"fmt"
	"time"
)

// ClientApp holds presentation and logging settings.
type ClientApp struct {
	// LogFile is the log file path; empty means next to the executable.
	LogFile string
	// NoticeTTL is the lifetime of a transient on-screen notice.
	NoticeTTL time.Duration
}

// ClientAdapter holds the remote API transport settings.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the rating API.
	HTTPAddress string
	// RequestTimeout bounds every single API call.
	RequestTimeout time.Duration
}

// ClientDB contains local database settings.
type ClientDB struct {
	// DSN is the sqlite file path of the token store.
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the validated configuration view used by the client.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client configuration from all sources.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile:   cfg.App.LogFile,
			NoticeTTL: cfg.App.NoticeTTL,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
	}
}
