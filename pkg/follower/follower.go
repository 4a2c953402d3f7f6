package follower

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/parley-io/parley/api/proto"
	"github.com/parley-io/parley/pkg/codec"
	"github.com/parley-io/parley/pkg/config"
	"github.com/parley-io/parley/pkg/leader"
	"github.com/parley-io/parley/pkg/log"
	"github.com/parley-io/parley/pkg/metrics"
	"github.com/parley-io/parley/pkg/storage"
	"github.com/parley-io/parley/pkg/types"
)

// Config holds what a follower needs to join a cluster
type Config struct {
	ID            string
	ClientAddress string
	PeerAddress   string
	LeaderAddress string
	Store         storage.Store
	Timing        config.Timing
}

// Follower mirrors the leader's state. It applies the replication
// stream, watches the leader's pulse, and promotes itself when an
// election says it should.
type Follower struct {
	id         string
	clientAddr string
	peerAddr   string
	store      storage.Store
	timing     config.Timing
	logger     zerolog.Logger

	mu         sync.Mutex
	leaderAddr string
	peers      []types.Peer
	promoted   bool
	ldr        *leader.Leader

	clientSrv *grpc.Server
	peerSrv   *grpc.Server
	clientLis net.Listener
	peerLis   net.Listener

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// New creates a follower. Start must be called before it serves
// anything or joins the cluster.
func New(cfg Config) *Follower {
	f := &Follower{
		id:         cfg.ID,
		clientAddr: cfg.ClientAddress,
		peerAddr:   cfg.PeerAddress,
		store:      cfg.Store,
		timing:     cfg.Timing,
		leaderAddr: cfg.LeaderAddress,
		stopCh:     make(chan struct{}),
	}
	f.logger = log.WithComponent("follower").With().Str("server_id", cfg.ID).Logger()
	return f
}

// Start binds both listeners, registers with the leader, and begins
// heartbeating. The local store is wiped and rebuilt from the leader's
// snapshot, so a stale replica always rejoins consistent.
func (f *Follower) Start() error {
	clientLis, err := net.Listen("tcp", f.clientAddr)
	if err != nil {
		return fmt.Errorf("listening on client address %s: %w", f.clientAddr, err)
	}
	peerLis, err := net.Listen("tcp", f.peerAddr)
	if err != nil {
		clientLis.Close()
		return fmt.Errorf("listening on peer address %s: %w", f.peerAddr, err)
	}
	f.clientLis = clientLis
	f.peerLis = peerLis
	// the bound addresses are what peers dial and what a promotion
	// rebinds
	f.clientAddr = clientLis.Addr().String()
	f.peerAddr = peerLis.Addr().String()

	f.clientSrv = grpc.NewServer()
	proto.RegisterClientAccountServer(f.clientSrv, &redirectService{})

	f.peerSrv = grpc.NewServer()
	proto.RegisterFollowerServiceServer(f.peerSrv, &peerService{flw: f})

	f.wg.Add(2)
	go func() {
		defer f.wg.Done()
		if err := f.clientSrv.Serve(clientLis); err != nil {
			f.logger.Error().Err(err).Msg("Client server stopped")
		}
	}()
	go func() {
		defer f.wg.Done()
		if err := f.peerSrv.Serve(peerLis); err != nil {
			f.logger.Error().Err(err).Msg("Peer server stopped")
		}
	}()

	if err := f.register(context.Background()); err != nil {
		f.shutdownServers()
		f.wg.Wait()
		return fmt.Errorf("registering with leader: %w", err)
	}

	f.wg.Add(1)
	go f.heartbeatLoop()

	metrics.IsLeader.Set(0)
	f.logger.Info().
		Str("client_addr", f.clientAddr).
		Str("peer_addr", f.peerAddr).
		Str("leader_addr", f.LeaderAddr()).
		Msg("Follower started")
	return nil
}

// Stop shuts the follower down. If it promoted itself in the meantime,
// the embedded leader is stopped instead.
func (f *Follower) Stop() {
	f.stopOnce.Do(func() {
		close(f.stopCh)

		f.mu.Lock()
		promoted := f.promoted
		ldr := f.ldr
		f.mu.Unlock()

		if promoted {
			if ldr != nil {
				ldr.Stop()
			}
		} else {
			f.shutdownServers()
		}
		f.wg.Wait()
		f.logger.Info().Msg("Follower stopped")
	})
}

func (f *Follower) shutdownServers() {
	if f.clientSrv != nil {
		f.clientSrv.GracefulStop()
	}
	if f.peerSrv != nil {
		f.peerSrv.GracefulStop()
	}
}

// ClientAddr returns the bound client listener address
func (f *Follower) ClientAddr() string { return f.clientAddr }

// PeerAddr returns the bound peer listener address
func (f *Follower) PeerAddr() string { return f.peerAddr }

// LeaderAddr returns the peer address of the current leader
func (f *Follower) LeaderAddr() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.leaderAddr
}

func (f *Follower) setLeader(addr string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leaderAddr = addr
}

// Promoted reports whether this server has taken over as leader
func (f *Follower) Promoted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.promoted
}

// Leader returns the embedded leader after a promotion, nil before
func (f *Follower) Leader() *leader.Leader {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ldr
}

// Peers returns a copy of the known other followers
func (f *Follower) Peers() []types.Peer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]types.Peer(nil), f.peers...)
}

func (f *Follower) addPeer(p types.Peer) {
	if p.ID == f.id {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.peers {
		if existing.ID == p.ID {
			f.peers[i] = p
			return
		}
	}
	f.peers = append(f.peers, p)
	metrics.PeersTotal.Set(float64(len(f.peers)))
}

func (f *Follower) removePeer(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.peers {
		if p.ID == id {
			f.peers = append(f.peers[:i], f.peers[i+1:]...)
			metrics.PeersTotal.Set(float64(len(f.peers)))
			return
		}
	}
}

func (f *Follower) setPeers(peers []types.Peer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.peers = peers
	metrics.PeersTotal.Set(float64(len(peers)))
}

// register wipes the local store and rebuilds it from the leader's
// snapshot. The response also carries the rest of the membership, so
// every member runs later elections over the same peer set.
func (f *Follower) register(ctx context.Context) error {
	leaderAddr := f.LeaderAddr()

	if err := f.store.Wipe(ctx); err != nil {
		return fmt.Errorf("wiping local store: %w", err)
	}

	var resp *proto.RegisterFollowerResponse
	err := f.withLeader(leaderAddr, func(ctx context.Context, c proto.LeaderServiceClient) error {
		var err error
		resp, err = c.RegisterFollower(ctx, &proto.RegisterFollowerRequest{
			FollowerId:      f.id,
			FollowerAddress: f.peerAddr,
		})
		return err
	})
	if err != nil {
		return err
	}
	if resp.GetErrorCode() != int32(types.StatusSuccess) {
		return fmt.Errorf("leader refused registration: %s", resp.GetErrorMessage())
	}

	snap, err := codec.DecodeSnapshot(resp.GetPickledDb())
	if err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}
	if err := f.store.ImportSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("importing snapshot: %w", err)
	}

	var peers []types.Peer
	for _, raw := range resp.GetOtherFollowers() {
		p, err := types.ParsePeer(raw)
		if err != nil {
			f.logger.Warn().Err(err).Str("peer", raw).Msg("Skipping malformed peer entry")
			continue
		}
		if p.ID == f.id {
			continue
		}
		peers = append(peers, p)
	}
	f.setPeers(peers)

	f.logger.Info().
		Int("users", len(snap.Users)).
		Int("messages", len(snap.Messages)).
		Int("peers", len(peers)).
		Msg("Registered with leader")
	return nil
}

// withLeader dials the leader's peer address and runs fn against it
// under the peer-call timeout
func (f *Follower) withLeader(addr string, fn func(ctx context.Context, c proto.LeaderServiceClient) error) error {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("connecting to leader %s: %w", addr, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), f.timing.PeerCallTimeout)
	defer cancel()
	return fn(ctx, proto.NewLeaderServiceClient(conn))
}
