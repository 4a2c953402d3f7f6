package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/parley-io/parley/pkg/client"
	"github.com/parley-io/parley/pkg/config"
	"github.com/parley-io/parley/pkg/follower"
	"github.com/parley-io/parley/pkg/leader"
	"github.com/parley-io/parley/pkg/log"
	"github.com/parley-io/parley/pkg/metrics"
	"github.com/parley-io/parley/pkg/storage"
	"github.com/parley-io/parley/pkg/types"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "Parley - replicated chat server",
	Long: `Parley is a chat backend replicated across a small cluster of
servers. One leader accepts all client traffic and streams every
committed mutation to its followers; when the leader dies, the
followers elect a replacement and clients fail over to it.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Parley version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(usersCmd)
}

var serverCmd = &cobra.Command{
	Use:   "server ID ROLE CLIENT_ADDR PEER_ADDR",
	Short: "Run one chat server",
	Long: `Run one chat server of the cluster.

ID is a unique integer; the lowest live id wins elections. ROLE is
either "leader" or "follower"; followers also need --leader-address
pointing at the leader's peer address.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			loaded, err := config.Load(path)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		cfg.ServerID = args[0]
		cfg.Role = types.Role(args[1])
		cfg.ClientAddress = args[2]
		cfg.PeerAddress = args[3]

		if v, _ := cmd.Flags().GetString("leader-address"); v != "" {
			cfg.LeaderAddress = v
		}
		if v, _ := cmd.Flags().GetString("data-dir"); v != "" {
			cfg.DataDir = v
		}
		if v, _ := cmd.Flags().GetString("metrics-addr"); v != "" {
			cfg.MetricsAddress = v
		}
		if v, _ := cmd.Flags().GetString("log-level"); v != "" {
			cfg.LogLevel = v
		}
		if v, _ := cmd.Flags().GetBool("log-json"); v {
			cfg.LogJSON = true
		}

		if err := cfg.Validate(); err != nil {
			return err
		}
		return runServer(cfg)
	},
}

var usersCmd = &cobra.Command{
	Use:   "users [WILDCARD]",
	Short: "List registered users",
	Long: `List registered users on the cluster, optionally filtered by a
case-insensitive wildcard pattern such as 'al*'. Servers are tried in
the order given until the leader answers.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Init(log.Config{Level: log.ErrorLevel})

		addrs, _ := cmd.Flags().GetStringSlice("server")
		c, err := client.New(addrs)
		if err != nil {
			return err
		}
		defer c.Close()

		wildcard := ""
		if len(args) == 1 {
			wildcard = args[0]
		}
		resp, err := c.ListUsers(cmd.Context(), wildcard)
		if err != nil {
			return err
		}
		for _, u := range resp.GetUser() {
			fmt.Printf("%s\t%s\n", u.GetUsername(), u.GetStatus())
		}
		return nil
	},
}

func init() {
	// accept underscore spellings such as --leader_address
	serverCmd.Flags().SetNormalizeFunc(func(fs *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	serverCmd.Flags().String("leader-address", "", "Peer address of the current leader (followers only)")
	serverCmd.Flags().String("data-dir", "", "Directory for the SQLite database")
	serverCmd.Flags().String("metrics-addr", "", "Address for the Prometheus /metrics endpoint")
	serverCmd.Flags().String("log-level", "", "Log level (debug, info, warn, error)")
	serverCmd.Flags().Bool("log-json", false, "Emit JSON logs instead of console output")
	serverCmd.Flags().String("config", "", "Path to a YAML config file")

	usersCmd.Flags().StringSlice("server", []string{"127.0.0.1:5001"}, "Client addresses of the cluster servers")
}

func runServer(cfg config.Config) error {
	log.Init(log.Config{
		Level:      log.Level(cfg.LogLevel),
		JSONOutput: cfg.LogJSON,
	})
	logger := log.WithServerID(cfg.ServerID)

	store, err := storage.NewSQLiteStore(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("opening store: %v", err)
	}
	defer store.Close()

	if cfg.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddress, mux); err != nil {
				logger.Error().Err(err).Msg("Metrics server stopped")
			}
		}()
		logger.Info().Str("addr", cfg.MetricsAddress).Msg("Metrics endpoint up")
	}

	var stop func()
	switch cfg.Role {
	case types.RoleLeader:
		ldr := leader.New(leader.Config{
			ID:            cfg.ServerID,
			ClientAddress: cfg.ClientAddress,
			PeerAddress:   cfg.PeerAddress,
			Store:         store,
			Timing:        cfg.Timing,
		})
		if err := ldr.Start(); err != nil {
			return fmt.Errorf("starting leader: %v", err)
		}
		stop = ldr.Stop
	case types.RoleFollower:
		flw := follower.New(follower.Config{
			ID:            cfg.ServerID,
			ClientAddress: cfg.ClientAddress,
			PeerAddress:   cfg.PeerAddress,
			LeaderAddress: cfg.LeaderAddress,
			Store:         store,
			Timing:        cfg.Timing,
		})
		if err := flw.Start(); err != nil {
			return fmt.Errorf("starting follower: %v", err)
		}
		stop = flw.Stop
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info().Msg("Shutting down")
	stop()
	return nil
}
