package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/parley-io/parley/pkg/types"
)

// Config holds the settings for one chat server
type Config struct {
	ServerID      string     `yaml:"server_id"`
	Role          types.Role `yaml:"role"`
	ClientAddress string     `yaml:"client_address"`
	PeerAddress   string     `yaml:"peer_address"`
	// LeaderAddress is the current leader's peer address; required for
	// followers, ignored for leaders.
	LeaderAddress  string `yaml:"leader_address"`
	DataDir        string `yaml:"data_dir"`
	MetricsAddress string `yaml:"metrics_address"`

	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`

	Timing Timing `yaml:"timing"`
}

// Timing groups the replication and failure-detection intervals.
// Defaults match the deployed protocol; tests shrink them.
type Timing struct {
	// HeartbeatInterval is the pause between heartbeat rounds.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`
	// HeartbeatTries is how many calls a round makes before declaring
	// the leader dead.
	HeartbeatTries int `yaml:"heartbeat_tries"`
	// PeerCallTimeout bounds every RPC to another cluster member.
	PeerCallTimeout time.Duration `yaml:"peer_call_timeout"`
	// ElectionWait is how long a non-minimum follower waits for the
	// presumed winner before checking on it.
	ElectionWait time.Duration `yaml:"election_wait"`
	// CheckLeaderTries is how many CheckLeader calls are made against
	// the presumed winner.
	CheckLeaderTries int `yaml:"check_leader_tries"`
	// FanoutInitialDelay is the grace period before the fan-out worker
	// starts draining the queue.
	FanoutInitialDelay time.Duration `yaml:"fanout_initial_delay"`
	// FanoutIdleWait is how long the fan-out worker waits on an empty
	// queue before rechecking.
	FanoutIdleWait time.Duration `yaml:"fanout_idle_wait"`
}

// duration accepts Go duration strings ("250ms") or nanosecond
// integers in YAML
type duration time.Duration

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("parsing duration %q: %w", s, err)
		}
		*d = duration(parsed)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("parsing duration: %w", err)
	}
	*d = duration(n)
	return nil
}

// UnmarshalYAML overlays only the keys present in the document, so
// absent intervals keep their defaults
func (t *Timing) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		HeartbeatInterval  *duration `yaml:"heartbeat_interval"`
		HeartbeatTries     *int      `yaml:"heartbeat_tries"`
		PeerCallTimeout    *duration `yaml:"peer_call_timeout"`
		ElectionWait       *duration `yaml:"election_wait"`
		CheckLeaderTries   *int      `yaml:"check_leader_tries"`
		FanoutInitialDelay *duration `yaml:"fanout_initial_delay"`
		FanoutIdleWait     *duration `yaml:"fanout_idle_wait"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.HeartbeatInterval != nil {
		t.HeartbeatInterval = time.Duration(*raw.HeartbeatInterval)
	}
	if raw.HeartbeatTries != nil {
		t.HeartbeatTries = *raw.HeartbeatTries
	}
	if raw.PeerCallTimeout != nil {
		t.PeerCallTimeout = time.Duration(*raw.PeerCallTimeout)
	}
	if raw.ElectionWait != nil {
		t.ElectionWait = time.Duration(*raw.ElectionWait)
	}
	if raw.CheckLeaderTries != nil {
		t.CheckLeaderTries = *raw.CheckLeaderTries
	}
	if raw.FanoutInitialDelay != nil {
		t.FanoutInitialDelay = time.Duration(*raw.FanoutInitialDelay)
	}
	if raw.FanoutIdleWait != nil {
		t.FanoutIdleWait = time.Duration(*raw.FanoutIdleWait)
	}
	return nil
}

// Default returns the production configuration
func Default() Config {
	return Config{
		DataDir:  "data",
		LogLevel: "info",
		Timing:   DefaultTiming(),
	}
}

// DefaultTiming returns the deployed protocol intervals
func DefaultTiming() Timing {
	return Timing{
		HeartbeatInterval:  5 * time.Second,
		HeartbeatTries:     2,
		PeerCallTimeout:    5 * time.Second,
		ElectionWait:       10 * time.Second,
		CheckLeaderTries:   2,
		FanoutInitialDelay: 5 * time.Second,
		FanoutIdleWait:     2 * time.Second,
	}
}

// Load reads a YAML config file over the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration can start a server
func (c *Config) Validate() error {
	if c.ServerID == "" {
		return fmt.Errorf("server id is required")
	}
	if _, err := strconv.Atoi(c.ServerID); err != nil {
		return fmt.Errorf("server id must be an integer: %q", c.ServerID)
	}
	switch c.Role {
	case types.RoleLeader:
	case types.RoleFollower:
		if c.LeaderAddress == "" {
			return fmt.Errorf("followers require a leader address")
		}
	default:
		return fmt.Errorf("role must be %q or %q", types.RoleLeader, types.RoleFollower)
	}
	if c.ClientAddress == "" {
		return fmt.Errorf("client address is required")
	}
	if c.PeerAddress == "" {
		return fmt.Errorf("peer address is required")
	}
	return nil
}

// DBPath returns the SQLite file path for this server
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, fmt.Sprintf("chat_%s.db", c.ServerID))
}
