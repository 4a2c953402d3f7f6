package follower

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-io/parley/api/proto"
	"github.com/parley-io/parley/pkg/codec"
	"github.com/parley-io/parley/pkg/config"
	"github.com/parley-io/parley/pkg/log"
	"github.com/parley-io/parley/pkg/storage"
	"github.com/parley-io/parley/pkg/types"
)

func TestMain(m *testing.M) {
	log.Init(log.Config{Level: log.ErrorLevel, Output: io.Discard, JSONOutput: true})
	m.Run()
}

func testTiming() config.Timing {
	t := config.DefaultTiming()
	t.HeartbeatInterval = 25 * time.Millisecond
	t.HeartbeatTries = 2
	t.PeerCallTimeout = 100 * time.Millisecond
	t.ElectionWait = 50 * time.Millisecond
	t.CheckLeaderTries = 2
	t.FanoutInitialDelay = 10 * time.Millisecond
	t.FanoutIdleWait = 20 * time.Millisecond
	return t
}

// newTestFollower builds a follower over a fresh store without
// starting its listeners; handlers are invoked directly
func newTestFollower(t *testing.T, id string) (*Follower, *peerService) {
	t.Helper()
	st, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "chat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	f := New(Config{
		ID:            id,
		ClientAddress: "127.0.0.1:0",
		PeerAddress:   "127.0.0.1:0",
		LeaderAddress: "127.0.0.1:1",
		Store:         st,
		Timing:        testTiming(),
	})
	return f, &peerService{flw: f}
}

func mustEncode(t *testing.T, ev codec.Event) []byte {
	t.Helper()
	data, err := codec.EncodeEvent(ev)
	require.NoError(t, err)
	return data
}

func TestAcceptUpdatesAppliesRows(t *testing.T) {
	f, svc := newTestFollower(t, "2")
	ctx := context.Background()

	user := &types.User{ID: 7, Username: "alice", Password: "hash"}
	resp, err := svc.AcceptUpdates(ctx, &proto.AcceptUpdatesRequest{
		UpdateData: mustEncode(t, codec.UserEvent(types.OpAdd, user)),
	})
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusSuccess, resp.GetErrorCode())

	got, err := f.store.UserByName(ctx, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 7, got.ID)

	msg := &types.Message{ID: 3, SenderID: 7, ReceiverID: 7, Content: "hi", TimeStamp: time.Now().UTC()}
	_, err = svc.AcceptUpdates(ctx, &proto.AcceptUpdatesRequest{
		UpdateData: mustEncode(t, codec.MessageEvent(types.OpAdd, msg)),
	})
	require.NoError(t, err)

	tomb := &types.DeletedMessage{ID: 1, SenderID: 7, ReceiverID: 7, Content: "hi", OriginalMessageID: 3}
	_, err = svc.AcceptUpdates(ctx, &proto.AcceptUpdatesRequest{
		UpdateData: mustEncode(t, codec.DeletedMessageEvent(types.OpAdd, tomb)),
	})
	require.NoError(t, err)

	_, err = svc.AcceptUpdates(ctx, &proto.AcceptUpdatesRequest{
		UpdateData: mustEncode(t, codec.MessageEvent(types.OpDelete, msg)),
	})
	require.NoError(t, err)

	_, err = svc.AcceptUpdates(ctx, &proto.AcceptUpdatesRequest{
		UpdateData: mustEncode(t, codec.UserEvent(types.OpDelete, user)),
	})
	require.NoError(t, err)

	snap, err := f.store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Users)
	assert.Empty(t, snap.Messages)
	require.Len(t, snap.DeletedMessages, 1)
	assert.EqualValues(t, 3, snap.DeletedMessages[0].OriginalMessageID)
}

func TestAcceptUpdatesReplayIsIdempotent(t *testing.T) {
	f, svc := newTestFollower(t, "2")
	ctx := context.Background()

	data := mustEncode(t, codec.UserEvent(types.OpAdd, &types.User{ID: 1, Username: "alice", Password: "hash"}))
	for i := 0; i < 2; i++ {
		resp, err := svc.AcceptUpdates(ctx, &proto.AcceptUpdatesRequest{UpdateData: data})
		require.NoError(t, err)
		assert.EqualValues(t, types.StatusSuccess, resp.GetErrorCode())
	}

	users, err := f.store.AllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAcceptUpdatesDropsBadEvents(t *testing.T) {
	f, svc := newTestFollower(t, "2")
	ctx := context.Background()

	// unknown column: the event is dropped but the leader gets an ack,
	// so one bad event never stalls the stream
	resp, err := svc.AcceptUpdates(ctx, &proto.AcceptUpdatesRequest{
		UpdateData: []byte(`{"table":"users","op":"add","row":{"bogus":1}}`),
	})
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusSuccess, resp.GetErrorCode())

	// tombstones only ever arrive as inserts
	resp, err = svc.AcceptUpdates(ctx, &proto.AcceptUpdatesRequest{
		UpdateData: []byte(`{"table":"deleted_messages","op":"update","row":{"id":1,"sender_id":1,"receiver_id":1,"content":"x","is_received":false,"original_message_id":1}}`),
	})
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusSuccess, resp.GetErrorCode())

	// nothing was applied
	snap, err := f.store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Users)
	assert.Empty(t, snap.DeletedMessages)
}

func TestUpdateFollowers(t *testing.T) {
	f, svc := newTestFollower(t, "2")
	ctx := context.Background()

	payload, err := codec.EncodePeer(types.Peer{ID: "3", Address: "127.0.0.1:6003"})
	require.NoError(t, err)
	ack, err := svc.UpdateFollowers(ctx, &proto.UpdateFollowersRequest{UpdateData: payload})
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusSuccess, ack.GetErrorCode())
	require.Len(t, f.Peers(), 1)
	assert.Equal(t, "3", f.Peers()[0].ID)

	// an announcement about ourselves is dropped
	payload, err = codec.EncodePeer(types.Peer{ID: "2", Address: "127.0.0.1:6002"})
	require.NoError(t, err)
	_, err = svc.UpdateFollowers(ctx, &proto.UpdateFollowersRequest{UpdateData: payload})
	require.NoError(t, err)
	assert.Len(t, f.Peers(), 1)

	_, err = svc.UpdateFollowers(ctx, &proto.UpdateFollowersRequest{UpdateData: []byte("junk")})
	assert.Error(t, err)
}

func TestUpdateLeaderAboutSelf(t *testing.T) {
	f, svc := newTestFollower(t, "2")

	f.addPeer(types.Peer{ID: "3", Address: "127.0.0.1:6003"})
	before := f.LeaderAddr()

	ack, err := svc.UpdateLeader(context.Background(), &proto.NewLeaderRequest{
		NewLeaderId:      "2",
		NewLeaderAddress: "127.0.0.1:6002",
	})
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusSuccess, ack.GetErrorCode())
	assert.Equal(t, before, f.LeaderAddr())
	assert.Len(t, f.Peers(), 1)
}

func TestElectionWinner(t *testing.T) {
	tests := []struct {
		name   string
		ownID  string
		peers  []types.Peer
		winner string // empty means this server wins
	}{
		{
			name:   "no peers",
			ownID:  "2",
			winner: "",
		},
		{
			name:   "own id is minimum",
			ownID:  "2",
			peers:  []types.Peer{{ID: "3", Address: "a"}, {ID: "4", Address: "b"}},
			winner: "",
		},
		{
			name:   "peer outranks",
			ownID:  "3",
			peers:  []types.Peer{{ID: "2", Address: "a"}, {ID: "4", Address: "b"}},
			winner: "2",
		},
		{
			name:   "lowest of several",
			ownID:  "9",
			peers:  []types.Peer{{ID: "5", Address: "a"}, {ID: "2", Address: "b"}, {ID: "7", Address: "c"}},
			winner: "2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := newTestFollower(t, tt.ownID)
			f.setPeers(tt.peers)

			winner := f.electionWinner()
			if tt.winner == "" {
				assert.Nil(t, winner)
				return
			}
			require.NotNil(t, winner)
			assert.Equal(t, tt.winner, winner.ID)
		})
	}
}

func TestRedirectService(t *testing.T) {
	svc := redirectService{}
	ctx := context.Background()

	resp, err := svc.CreateAccount(ctx, &proto.CreateAccountRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusNotLeader, resp.GetErrorCode())
	assert.Equal(t, "NOT LEADER: CONNECT TO LEADER SERVER", resp.GetErrorMessage())

	login, err := svc.Login(ctx, &proto.LoginRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusNotLeader, login.GetErrorCode())

	msgs, err := svc.GetMessages(ctx, &proto.ReceiveRequest{SessionId: "s"})
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusNotLeader, msgs.GetErrorCode())

	counts, err := svc.GetUnreadCounts(ctx, &proto.SessionRequest{SessionId: "s"})
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusNotLeader, counts.GetErrorCode())

	_, err = svc.ListUsers(ctx, &proto.ListUsersRequest{})
	assert.Error(t, err)
}
