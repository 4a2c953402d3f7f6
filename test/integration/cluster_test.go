package integration

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-io/parley/pkg/client"
	"github.com/parley-io/parley/pkg/config"
	"github.com/parley-io/parley/pkg/follower"
	"github.com/parley-io/parley/pkg/leader"
	"github.com/parley-io/parley/pkg/log"
	"github.com/parley-io/parley/pkg/storage"
	"github.com/parley-io/parley/pkg/types"
)

func TestMain(m *testing.M) {
	log.Init(log.Config{Level: log.ErrorLevel, Output: io.Discard, JSONOutput: true})
	m.Run()
}

func clusterTiming() config.Timing {
	return config.Timing{
		HeartbeatInterval:  25 * time.Millisecond,
		HeartbeatTries:     2,
		PeerCallTimeout:    250 * time.Millisecond,
		ElectionWait:       50 * time.Millisecond,
		CheckLeaderTries:   2,
		FanoutInitialDelay: 10 * time.Millisecond,
		FanoutIdleWait:     20 * time.Millisecond,
	}
}

func newStore(t *testing.T, id string) *storage.SQLiteStore {
	t.Helper()
	st, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "chat_"+id+".db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func startLeader(t *testing.T, id string, st *storage.SQLiteStore) *leader.Leader {
	t.Helper()
	ldr := leader.New(leader.Config{
		ID:            id,
		ClientAddress: "127.0.0.1:0",
		PeerAddress:   "127.0.0.1:0",
		Store:         st,
		Timing:        clusterTiming(),
	})
	require.NoError(t, ldr.Start())
	t.Cleanup(ldr.Stop)
	return ldr
}

func startFollower(t *testing.T, id, leaderAddr string, st *storage.SQLiteStore) *follower.Follower {
	t.Helper()
	flw := follower.New(follower.Config{
		ID:            id,
		ClientAddress: "127.0.0.1:0",
		PeerAddress:   "127.0.0.1:0",
		LeaderAddress: leaderAddr,
		Store:         st,
		Timing:        clusterTiming(),
	})
	require.NoError(t, flw.Start())
	t.Cleanup(flw.Stop)
	return flw
}

// waitFor polls cond until it holds or the deadline passes
func waitFor(t *testing.T, d time.Duration, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func snapshot(t *testing.T, st *storage.SQLiteStore) *types.Snapshot {
	t.Helper()
	snap, err := st.Snapshot(context.Background())
	require.NoError(t, err)
	return snap
}

func TestReplicationAcrossCluster(t *testing.T) {
	ctx := context.Background()

	leaderStore := newStore(t, "1")
	ldr := startLeader(t, "1", leaderStore)

	store2 := newStore(t, "2")
	store3 := newStore(t, "3")
	startFollower(t, "2", ldr.PeerAddr(), store2)
	startFollower(t, "3", ldr.PeerAddr(), store3)

	c, err := client.New([]string{ldr.ClientAddr()})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.CreateAccount(ctx, "alice", "pw")
	require.NoError(t, err)
	_, err = c.CreateAccount(ctx, "bob", "pw")
	require.NoError(t, err)
	_, err = c.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	resp, err := c.Send(ctx, "bob", "hello bob")
	require.NoError(t, err)
	require.EqualValues(t, types.StatusSuccess, resp.GetErrorCode())

	for _, st := range []*storage.SQLiteStore{store2, store3} {
		waitFor(t, 5*time.Second, "replication to follower", func() bool {
			snap := snapshot(t, st)
			return len(snap.Users) == 2 && len(snap.Messages) == 1
		})
		snap := snapshot(t, st)
		assert.Equal(t, "hello bob", snap.Messages[0].Content)
	}

	// the leader's own copy matches what the followers hold
	leaderSnap := snapshot(t, leaderStore)
	assert.Len(t, leaderSnap.Users, 2)
	assert.Len(t, leaderSnap.Messages, 1)
}

func TestDeleteReplicatesAsTombstone(t *testing.T) {
	ctx := context.Background()

	ldr := startLeader(t, "1", newStore(t, "1"))
	store2 := newStore(t, "2")
	startFollower(t, "2", ldr.PeerAddr(), store2)

	c, err := client.New([]string{ldr.ClientAddr()})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.CreateAccount(ctx, "alice", "pw")
	require.NoError(t, err)
	_, err = c.CreateAccount(ctx, "bob", "pw")
	require.NoError(t, err)
	_, err = c.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	_, err = c.Send(ctx, "bob", "doomed")
	require.NoError(t, err)

	bob, err := client.New([]string{ldr.ClientAddr()})
	require.NoError(t, err)
	defer bob.Close()
	_, err = bob.Login(ctx, "bob", "pw")
	require.NoError(t, err)
	msgs, err := bob.GetMessages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs.GetMessage(), 1)

	_, err = bob.DeleteMessages(ctx, []int32{msgs.GetMessage()[0].GetMessageId()})
	require.NoError(t, err)

	waitFor(t, 5*time.Second, "tombstone replication", func() bool {
		snap := snapshot(t, store2)
		return len(snap.Messages) == 0 && len(snap.DeletedMessages) == 1
	})
	snap := snapshot(t, store2)
	assert.Equal(t, "doomed", snap.DeletedMessages[0].Content)
}

func TestLateFollowerCatchesUpFromSnapshot(t *testing.T) {
	ctx := context.Background()

	ldr := startLeader(t, "1", newStore(t, "1"))

	c, err := client.New([]string{ldr.ClientAddr()})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.CreateAccount(ctx, "alice", "pw")
	require.NoError(t, err)
	_, err = c.CreateAccount(ctx, "bob", "pw")
	require.NoError(t, err)
	_, err = c.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	_, err = c.Send(ctx, "bob", "history")
	require.NoError(t, err)

	// the follower joins after the writes and starts from the snapshot
	store2 := newStore(t, "2")
	startFollower(t, "2", ldr.PeerAddr(), store2)

	snap := snapshot(t, store2)
	assert.Len(t, snap.Users, 2)
	require.Len(t, snap.Messages, 1)
	assert.Equal(t, "history", snap.Messages[0].Content)
}

func TestFailoverPromotesMinimumID(t *testing.T) {
	ctx := context.Background()

	ldr := startLeader(t, "1", newStore(t, "1"))
	store2 := newStore(t, "2")
	store3 := newStore(t, "3")
	flw2 := startFollower(t, "2", ldr.PeerAddr(), store2)
	flw3 := startFollower(t, "3", ldr.PeerAddr(), store3)

	c, err := client.New([]string{ldr.ClientAddr(), flw2.ClientAddr(), flw3.ClientAddr()})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.CreateAccount(ctx, "alice", "pw")
	require.NoError(t, err)
	_, err = c.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	session := c.Session()
	require.NotEmpty(t, session)

	waitFor(t, 5*time.Second, "replication before failover", func() bool {
		return len(snapshot(t, store2).Users) == 1
	})

	ldr.Stop()

	// the lowest surviving id takes over
	waitFor(t, 10*time.Second, "promotion of follower 2", flw2.Promoted)
	assert.False(t, flw3.Promoted())

	waitFor(t, 10*time.Second, "follower 3 adopting the new leader", func() bool {
		promoted := flw2.Leader()
		return promoted != nil && flw3.LeaderAddr() == promoted.PeerAddr()
	})

	// sessions are leader-local, so the old one died with the leader
	resp, err := c.Send(ctx, "alice", "still there?")
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusUserNotLoggedIn, resp.GetErrorCode())

	// accounts survived; logging in against the new leader works
	resp, err = c.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	require.EqualValues(t, types.StatusSuccess, resp.GetErrorCode())
	assert.NotEqual(t, session, c.Session())

	resp, err = c.Send(ctx, "alice", "note to self")
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusSuccess, resp.GetErrorCode())

	// the remaining follower keeps receiving the stream
	waitFor(t, 5*time.Second, "replication after failover", func() bool {
		return len(snapshot(t, store3).Messages) == 1
	})
}

func TestSoleFollowerPromotesItself(t *testing.T) {
	ctx := context.Background()

	ldr := startLeader(t, "5", newStore(t, "5"))
	store9 := newStore(t, "9")
	flw := startFollower(t, "9", ldr.PeerAddr(), store9)

	c, err := client.New([]string{ldr.ClientAddr(), flw.ClientAddr()})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.CreateAccount(ctx, "alice", "pw")
	require.NoError(t, err)
	waitFor(t, 5*time.Second, "replication", func() bool {
		return len(snapshot(t, store9).Users) == 1
	})

	ldr.Stop()

	waitFor(t, 10*time.Second, "promotion with no peers", flw.Promoted)

	resp, err := c.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusSuccess, resp.GetErrorCode())
}
