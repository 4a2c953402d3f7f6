package follower

import (
	"context"
	"strconv"
	"time"

	"github.com/parley-io/parley/api/proto"
	"github.com/parley-io/parley/pkg/leader"
	"github.com/parley-io/parley/pkg/log"
	"github.com/parley-io/parley/pkg/metrics"
	"github.com/parley-io/parley/pkg/types"
)

// heartbeatLoop probes the leader on a fixed interval and runs an
// election when it stops answering. After an adoption the loop keeps
// going against the new leader; after a promotion it ends, because the
// embedded leader has taken over.
func (f *Follower) heartbeatLoop() {
	defer f.wg.Done()

	ticker := time.NewTicker(f.timing.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-f.stopCh:
			return
		case <-ticker.C:
			if f.leaderAlive() {
				continue
			}
			metrics.HeartbeatFailures.Inc()
			f.logger.Warn().Str("leader_addr", f.LeaderAddr()).Msg("Leader stopped answering heartbeats")
			if promoted := f.runElection(); promoted {
				return
			}
		}
	}
}

// leaderAlive probes the leader, allowing a bounded number of misses
// before declaring it dead
func (f *Follower) leaderAlive() bool {
	addr := f.LeaderAddr()
	for i := 0; i < f.timing.HeartbeatTries; i++ {
		select {
		case <-f.stopCh:
			return true
		default:
		}
		err := f.withLeader(addr, func(ctx context.Context, c proto.LeaderServiceClient) error {
			_, err := c.HeartBeat(ctx, &proto.Empty{})
			return err
		})
		if err == nil {
			return true
		}
	}
	return false
}

// runElection decides who replaces the dead leader. The lowest server
// id among the known members wins. A winner promotes itself in place;
// everyone else waits for the winner to claim leadership and strikes
// it from the peer set if it never does.
func (f *Follower) runElection() (promoted bool) {
	metrics.Elections.Inc()

	for {
		select {
		case <-f.stopCh:
			return false
		default:
		}

		winner := f.electionWinner()
		if winner == nil {
			f.logger.Info().Msg("Election won")
			f.promote()
			return true
		}

		f.logger.Info().
			Str("winner_id", winner.ID).
			Str("winner_addr", winner.Address).
			Msg("Election lost, waiting for winner")

		select {
		case <-f.stopCh:
			return false
		case <-time.After(f.timing.ElectionWait):
		}

		// the winner normally claims leadership through UpdateLeader
		// while we wait; if it already has, the leader moved and there
		// is nothing left to decide
		if f.LeaderAddr() == winner.Address {
			return false
		}
		if f.checkLeader(*winner) {
			f.logger.Info().Str("winner_id", winner.ID).Msg("Winner is alive, adopting it")
			f.removePeer(winner.ID)
			f.setLeader(winner.Address)
			if err := f.register(context.Background()); err != nil {
				f.logger.Error().Err(err).Msg("Failed to register with elected leader")
			}
			return false
		}

		// the winner died too; drop it and rerun with the survivors
		f.logger.Warn().Str("winner_id", winner.ID).Msg("Winner unreachable, rerunning election")
		f.removePeer(winner.ID)
	}
}

// electionWinner returns the peer that outranks this server, or nil
// when this server holds the minimum id
func (f *Follower) electionWinner() *types.Peer {
	own, err := strconv.Atoi(f.id)
	if err != nil {
		// ids are validated numeric at startup
		f.logger.Error().Str("id", f.id).Msg("Non-numeric server id")
		return nil
	}

	var winner *types.Peer
	best := own
	for _, p := range f.Peers() {
		pid, err := strconv.Atoi(p.ID)
		if err != nil {
			continue
		}
		if pid < best {
			best = pid
			peer := p
			winner = &peer
		}
	}
	return winner
}

// checkLeader asks the presumed winner whether it is alive and leading
func (f *Follower) checkLeader(p types.Peer) bool {
	for i := 0; i < f.timing.CheckLeaderTries; i++ {
		err := f.withLeader(p.Address, func(ctx context.Context, c proto.LeaderServiceClient) error {
			_, err := c.CheckLeader(ctx, &proto.Empty{})
			return err
		})
		if err == nil {
			return true
		}
	}
	return false
}

// A promoted leader rebinds the ports the follower servers just
// released; the OS may need a moment to hand them back.
const (
	promoteBindTries   = 5
	promoteBindBackoff = 500 * time.Millisecond
)

// promote turns this follower into the leader in place: the follower
// servers go down, a leader comes up on the same addresses over the
// same store, and the survivors are told to switch. A server that
// cannot rebind its ports is useless to the cluster and aborts.
func (f *Follower) promote() {
	f.mu.Lock()
	if f.promoted {
		f.mu.Unlock()
		return
	}
	f.promoted = true
	peers := append([]types.Peer(nil), f.peers...)
	f.mu.Unlock()

	metrics.Promotions.Inc()
	f.logger.Info().Int("peers", len(peers)).Msg("Promoting to leader")

	f.shutdownServers()

	var ldr *leader.Leader
	var startErr error
	for i := 0; i < promoteBindTries; i++ {
		ldr = leader.New(leader.Config{
			ID:            f.id,
			ClientAddress: f.clientAddr,
			PeerAddress:   f.peerAddr,
			Store:         f.store,
			Timing:        f.timing,
			Peers:         peers,
		})
		if startErr = ldr.Start(); startErr == nil {
			break
		}
		f.logger.Error().Err(startErr).Int("attempt", i+1).Msg("Failed to start promoted leader")
		time.Sleep(promoteBindBackoff)
	}
	if startErr != nil {
		log.Fatal("Could not bind leader servers after promotion")
	}

	f.mu.Lock()
	f.ldr = ldr
	f.mu.Unlock()

	ldr.AnnounceLeadership()
}
