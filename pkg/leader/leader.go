package leader

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/parley-io/parley/api/proto"
	"github.com/parley-io/parley/pkg/codec"
	"github.com/parley-io/parley/pkg/config"
	"github.com/parley-io/parley/pkg/log"
	"github.com/parley-io/parley/pkg/metrics"
	"github.com/parley-io/parley/pkg/queue"
	"github.com/parley-io/parley/pkg/storage"
	"github.com/parley-io/parley/pkg/types"
)

// Config holds what a leader needs to start serving
type Config struct {
	ID            string
	ClientAddress string
	PeerAddress   string
	Store         storage.Store
	Timing        config.Timing
	// Peers seeds the follower set; a freshly promoted leader passes
	// the survivors of the old cluster here.
	Peers []types.Peer
}

// Leader runs the authoritative copy of the chat state. It serves the
// client API, hands snapshots to registering followers, and fans
// committed mutations out to every follower through a FIFO queue.
type Leader struct {
	id         string
	clientAddr string
	peerAddr   string
	store      storage.Store
	queue      *queue.Queue
	timing     config.Timing
	logger     zerolog.Logger

	mu        sync.Mutex
	followers []types.Peer

	clientSrv *grpc.Server
	peerSrv   *grpc.Server
	clientLis net.Listener
	peerLis   net.Listener

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// New creates a leader. Start must be called before it serves anything.
func New(cfg Config) *Leader {
	l := &Leader{
		id:         cfg.ID,
		clientAddr: cfg.ClientAddress,
		peerAddr:   cfg.PeerAddress,
		store:      cfg.Store,
		queue:      queue.New(),
		timing:     cfg.Timing,
		followers:  append([]types.Peer(nil), cfg.Peers...),
		stopCh:     make(chan struct{}),
	}
	l.logger = log.WithComponent("leader").With().Str("server_id", cfg.ID).Logger()
	return l
}

// Start binds the client and peer listeners and launches the gRPC
// servers and the fan-out worker
func (l *Leader) Start() error {
	clientLis, err := net.Listen("tcp", l.clientAddr)
	if err != nil {
		return fmt.Errorf("listening on client address %s: %w", l.clientAddr, err)
	}
	peerLis, err := net.Listen("tcp", l.peerAddr)
	if err != nil {
		clientLis.Close()
		return fmt.Errorf("listening on peer address %s: %w", l.peerAddr, err)
	}
	l.clientLis = clientLis
	l.peerLis = peerLis

	l.clientSrv = grpc.NewServer()
	proto.RegisterClientAccountServer(l.clientSrv, &clientService{ldr: l})

	l.peerSrv = grpc.NewServer()
	proto.RegisterLeaderServiceServer(l.peerSrv, &peerService{ldr: l})

	l.wg.Add(3)
	go func() {
		defer l.wg.Done()
		if err := l.clientSrv.Serve(clientLis); err != nil {
			l.logger.Error().Err(err).Msg("Client server stopped")
		}
	}()
	go func() {
		defer l.wg.Done()
		if err := l.peerSrv.Serve(peerLis); err != nil {
			l.logger.Error().Err(err).Msg("Peer server stopped")
		}
	}()
	go l.fanoutLoop()

	metrics.IsLeader.Set(1)
	metrics.PeersTotal.Set(float64(len(l.Followers())))

	l.logger.Info().
		Str("client_addr", clientLis.Addr().String()).
		Str("peer_addr", peerLis.Addr().String()).
		Msg("Leader started")
	return nil
}

// Stop drains the fan-out queue and shuts both servers down. The store
// stays open; it belongs to the caller.
func (l *Leader) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopCh)
		l.queue.Close()
		if l.clientSrv != nil {
			l.clientSrv.GracefulStop()
		}
		if l.peerSrv != nil {
			l.peerSrv.GracefulStop()
		}
		l.wg.Wait()
		metrics.IsLeader.Set(0)
		l.logger.Info().Msg("Leader stopped")
	})
}

// ClientAddr returns the bound client listener address
func (l *Leader) ClientAddr() string {
	if l.clientLis == nil {
		return l.clientAddr
	}
	return l.clientLis.Addr().String()
}

// PeerAddr returns the bound peer listener address
func (l *Leader) PeerAddr() string {
	if l.peerLis == nil {
		return l.peerAddr
	}
	return l.peerLis.Addr().String()
}

// Followers returns a copy of the current follower set
func (l *Leader) Followers() []types.Peer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]types.Peer(nil), l.followers...)
}

// addFollower inserts or replaces a follower keyed by id
func (l *Leader) addFollower(p types.Peer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, f := range l.followers {
		if f.ID == p.ID {
			l.followers[i] = p
			return
		}
	}
	l.followers = append(l.followers, p)
	metrics.PeersTotal.Set(float64(len(l.followers)))
}

// removeFollower drops a follower by id
func (l *Leader) removeFollower(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, f := range l.followers {
		if f.ID == id {
			l.followers = append(l.followers[:i], l.followers[i+1:]...)
			metrics.PeersTotal.Set(float64(len(l.followers)))
			return
		}
	}
}

// replicate encodes a committed mutation and queues it for fan-out.
// The write already happened locally, so an encode failure is a bug
// worth logging, not a reason to fail the client call.
func (l *Leader) replicate(ev codec.Event) {
	data, err := codec.EncodeEvent(ev)
	if err != nil {
		l.logger.Error().Err(err).
			Str("table", string(ev.Table)).
			Str("op", string(ev.Op)).
			Msg("Failed to encode replication event")
		return
	}
	l.queue.Enqueue(data)
	metrics.EventsQueued.Set(float64(l.queue.Len()))
}

// fanoutLoop drains the queue and pushes each event to every follower.
// Events leave the queue in commit order and are delivered serially, so
// followers apply mutations in the order the leader committed them.
func (l *Leader) fanoutLoop() {
	defer l.wg.Done()

	select {
	case <-time.After(l.timing.FanoutInitialDelay):
	case <-l.stopCh:
		return
	}

	for {
		data, ok := l.queue.Dequeue(l.timing.FanoutIdleWait)
		if !ok {
			select {
			case <-l.stopCh:
				return
			default:
				continue
			}
		}
		metrics.EventsQueued.Set(float64(l.queue.Len()))
		l.deliver(data)
	}
}

// deliver pushes one encoded event to every follower. A follower that
// fails to take the update keeps its seat; the next snapshot it fetches
// on re-registration heals the gap.
func (l *Leader) deliver(data []byte) {
	for _, p := range l.Followers() {
		err := l.withFollower(p, func(ctx context.Context, c proto.FollowerServiceClient) error {
			resp, err := c.AcceptUpdates(ctx, &proto.AcceptUpdatesRequest{UpdateData: data})
			if err != nil {
				return err
			}
			if resp.GetErrorCode() != 0 {
				return fmt.Errorf("follower rejected update: %s", resp.GetErrorMessage())
			}
			return nil
		})
		if err != nil {
			metrics.EventDeliveryErrors.Inc()
			plog := log.WithPeer(p.ID, p.Address)
			plog.Error().Err(err).Msg("Failed to deliver update")
			continue
		}
		metrics.EventsDelivered.Inc()
	}
}

// withFollower dials a follower's peer address and runs fn against it
// under the peer-call timeout
func (l *Leader) withFollower(p types.Peer, fn func(ctx context.Context, c proto.FollowerServiceClient) error) error {
	conn, err := grpc.NewClient(p.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("connecting to follower %s: %w", p.Address, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), l.timing.PeerCallTimeout)
	defer cancel()
	return fn(ctx, proto.NewFollowerServiceClient(conn))
}

// announceFollower tells every other follower about a newly registered
// peer, so each member can later run the same election with the same
// membership view
func (l *Leader) announceFollower(newPeer types.Peer, others []types.Peer) {
	payload, err := codec.EncodePeer(newPeer)
	if err != nil {
		l.logger.Error().Err(err).Msg("Failed to encode peer announcement")
		return
	}
	for _, p := range others {
		err := l.withFollower(p, func(ctx context.Context, c proto.FollowerServiceClient) error {
			_, err := c.UpdateFollowers(ctx, &proto.UpdateFollowersRequest{UpdateData: payload})
			return err
		})
		if err != nil {
			plog := log.WithPeer(p.ID, p.Address)
			plog.Warn().Err(err).Msg("Failed to announce new follower")
		}
	}
}

// AnnounceLeadership tells every follower that this server is now the
// leader. Peers that cannot be reached are dropped from the follower
// set; they can re-register when they come back.
func (l *Leader) AnnounceLeadership() {
	req := &proto.NewLeaderRequest{
		NewLeaderId:      l.id,
		NewLeaderAddress: l.PeerAddr(),
	}
	for _, p := range l.Followers() {
		err := l.withFollower(p, func(ctx context.Context, c proto.FollowerServiceClient) error {
			_, err := c.UpdateLeader(ctx, req)
			return err
		})
		plog := log.WithPeer(p.ID, p.Address)
		if err != nil {
			plog.Warn().Err(err).Msg("Peer unreachable during leadership claim, dropping")
			l.removeFollower(p.ID)
			continue
		}
		plog.Info().Msg("Peer accepted new leader")
	}
}

// QueueLen reports the number of events waiting for fan-out
func (l *Leader) QueueLen() int {
	return l.queue.Len()
}
