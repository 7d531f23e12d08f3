package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Server(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg: StructuredConfig{
				App:     App{TokenSignKey: "secret"},
				Storage: Storage{DB: DB{DSN: "postgres://localhost/giftlist"}},
				Server:  Server{HTTPAddress: "localhost:8080"},
			},
			wantErr: nil,
		},
		{
			name: "missing DSN",
			cfg: StructuredConfig{
				App:    App{TokenSignKey: "secret"},
				Server: Server{HTTPAddress: "localhost:8080"},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "missing address",
			cfg: StructuredConfig{
				App:     App{TokenSignKey: "secret"},
				Storage: Storage{DB: DB{DSN: "postgres://localhost/giftlist"}},
			},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "missing sign key",
			cfg: StructuredConfig{
				Storage: Storage{DB: DB{DSN: "postgres://localhost/giftlist"}},
				Server:  Server{HTTPAddress: "localhost:8080"},
			},
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Client(t *testing.T) {
	valid := ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: 1},
		Storage: ClientStorage{DB: ClientDB{DSN: "giftlist.db"}},
	}
	require.NoError(t, valid.validate())

	inMemory := valid
	inMemory.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, inMemory.validate(), ErrInvalidStorageConfigs)

	noServer := valid
	noServer.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, noServer.validate(), ErrInvalidAdapterConfigs)
}

func TestNetAddress_Set(t *testing.T) {
	var a NetAddress

	require.NoError(t, a.Set("localhost:8080"))
	assert.Equal(t, "localhost:8080", a.String())

	require.Error(t, a.Set("no-port"))
	require.Error(t, a.Set("localhost:0"))
	require.Error(t, a.Set("not-an-ip:8080"))
}
