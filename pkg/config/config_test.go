package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-io/parley/pkg/types"
)

func validConfig() Config {
	cfg := Default()
	cfg.ServerID = "1"
	cfg.Role = types.RoleLeader
	cfg.ClientAddress = "127.0.0.1:5001"
	cfg.PeerAddress = "127.0.0.1:6001"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid leader",
			mutate: func(c *Config) {},
		},
		{
			name: "valid follower",
			mutate: func(c *Config) {
				c.Role = types.RoleFollower
				c.LeaderAddress = "127.0.0.1:6001"
			},
		},
		{
			name:    "missing id",
			mutate:  func(c *Config) { c.ServerID = "" },
			wantErr: "server id is required",
		},
		{
			name:    "non-numeric id",
			mutate:  func(c *Config) { c.ServerID = "one" },
			wantErr: "must be an integer",
		},
		{
			name:    "bad role",
			mutate:  func(c *Config) { c.Role = "observer" },
			wantErr: "role must be",
		},
		{
			name:    "follower without leader",
			mutate:  func(c *Config) { c.Role = types.RoleFollower },
			wantErr: "require a leader address",
		},
		{
			name:    "missing client address",
			mutate:  func(c *Config) { c.ClientAddress = "" },
			wantErr: "client address is required",
		},
		{
			name:    "missing peer address",
			mutate:  func(c *Config) { c.PeerAddress = "" },
			wantErr: "peer address is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDefaultTiming(t *testing.T) {
	tm := DefaultTiming()
	assert.Equal(t, 5*time.Second, tm.HeartbeatInterval)
	assert.Equal(t, 2, tm.HeartbeatTries)
	assert.Equal(t, 10*time.Second, tm.ElectionWait)
	assert.Equal(t, 2, tm.CheckLeaderTries)
	assert.Equal(t, 5*time.Second, tm.FanoutInitialDelay)
	assert.Equal(t, 2*time.Second, tm.FanoutIdleWait)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parley.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server_id: "3"
role: follower
client_address: 127.0.0.1:5003
peer_address: 127.0.0.1:6003
leader_address: 127.0.0.1:6001
log_level: debug
timing:
  heartbeat_interval: 250ms
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "3", cfg.ServerID)
	assert.Equal(t, types.RoleFollower, cfg.Role)
	assert.Equal(t, "debug", cfg.LogLevel)
	// overridden value
	assert.Equal(t, 250*time.Millisecond, cfg.Timing.HeartbeatInterval)
	// defaults survive the overlay
	assert.Equal(t, 2, cfg.Timing.HeartbeatTries)
	assert.Equal(t, "data", cfg.DataDir)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DataDir = "/var/lib/parley"
	assert.Equal(t, "/var/lib/parley/chat_1.db", cfg.DBPath())
}
