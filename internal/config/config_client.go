package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the wishlist API server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used for the local session store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates the client configuration from
// environment variables, with sensible defaults for local use.
//
// Env:
//
//	GIFTLIST_SERVER_URL      base URL of the API server (default http://localhost:8080)
//	GIFTLIST_CLIENT_DB       SQLite session store path (default giftlist.db)
//	GIFTLIST_CLIENT_TIMEOUT  request timeout (default 15s)
func GetClientConfig() (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    getenv("GIFTLIST_SERVER_URL", "http://localhost:8080"),
			RequestTimeout: 15 * time.Second,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: getenv("GIFTLIST_CLIENT_DB", "giftlist.db"),
			},
		},
	}

	if raw := getenv("GIFTLIST_CLIENT_TIMEOUT", ""); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("error parsing client timeout: %w", err)
		}
		clientCfg.Adapter.RequestTimeout = timeout
	}

	return clientCfg, clientCfg.validate()
}
