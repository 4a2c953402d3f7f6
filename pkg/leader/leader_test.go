package leader

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/parley-io/parley/api/proto"
	"github.com/parley-io/parley/pkg/codec"
	"github.com/parley-io/parley/pkg/types"
)

// stubFollower records every peer-facing RPC the leader makes
type stubFollower struct {
	proto.UnimplementedFollowerServiceServer

	mu            sync.Mutex
	updates       [][]byte
	announcements []types.Peer
	newLeaders    []*proto.NewLeaderRequest
}

func (f *stubFollower) AcceptUpdates(ctx context.Context, req *proto.AcceptUpdatesRequest) (*proto.ServerResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, req.GetUpdateData())
	return &proto.ServerResponse{ErrorCode: int32(types.StatusSuccess)}, nil
}

func (f *stubFollower) UpdateLeader(ctx context.Context, req *proto.NewLeaderRequest) (*proto.Ack, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.newLeaders = append(f.newLeaders, req)
	return &proto.Ack{ErrorCode: int32(types.StatusSuccess)}, nil
}

func (f *stubFollower) UpdateFollowers(ctx context.Context, req *proto.UpdateFollowersRequest) (*proto.Ack, error) {
	p, err := codec.DecodePeer(req.GetUpdateData())
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.announcements = append(f.announcements, p)
	return &proto.Ack{ErrorCode: int32(types.StatusSuccess)}, nil
}

func (f *stubFollower) updateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.updates)
}

// startStubFollower serves a stub follower on a loopback port
func startStubFollower(t *testing.T) (string, *stubFollower) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	stub := &stubFollower{}
	srv := grpc.NewServer()
	proto.RegisterFollowerServiceServer(srv, stub)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)
	return lis.Addr().String(), stub
}

// waitFor polls cond until it holds or the deadline passes
func waitFor(t *testing.T, d time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestRegisterFollower(t *testing.T) {
	ldr, svc := newTestLeader(t)
	peers := &peerService{ldr: ldr}
	ctx := context.Background()

	createAccount(t, svc, "alice", "pw")

	addr2, stub2 := startStubFollower(t)
	resp, err := peers.RegisterFollower(ctx, &proto.RegisterFollowerRequest{
		FollowerId:      "2",
		FollowerAddress: addr2,
	})
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusSuccess, resp.GetErrorCode())
	assert.Empty(t, resp.GetOtherFollowers())

	snap, err := codec.DecodeSnapshot(resp.GetPickledDb())
	require.NoError(t, err)
	require.Len(t, snap.Users, 1)
	assert.Equal(t, "alice", snap.Users[0].Username)

	// a second follower learns about the first, and the first hears
	// about the second
	resp, err = peers.RegisterFollower(ctx, &proto.RegisterFollowerRequest{
		FollowerId:      "3",
		FollowerAddress: "127.0.0.1:39999",
	})
	require.NoError(t, err)
	require.Len(t, resp.GetOtherFollowers(), 1)
	assert.Equal(t, "2-"+addr2, resp.GetOtherFollowers()[0])

	stub2.mu.Lock()
	defer stub2.mu.Unlock()
	require.Len(t, stub2.announcements, 1)
	assert.Equal(t, types.Peer{ID: "3", Address: "127.0.0.1:39999"}, stub2.announcements[0])
}

func TestRegisterFollowerRejectsEmpty(t *testing.T) {
	ldr, _ := newTestLeader(t)
	peers := &peerService{ldr: ldr}

	resp, err := peers.RegisterFollower(context.Background(), &proto.RegisterFollowerRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusInvalidArguments, resp.GetErrorCode())
	assert.Empty(t, ldr.Followers())
}

func TestReRegistrationKeepsOneSeat(t *testing.T) {
	ldr, _ := newTestLeader(t)
	peers := &peerService{ldr: ldr}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := peers.RegisterFollower(ctx, &proto.RegisterFollowerRequest{
			FollowerId:      "2",
			FollowerAddress: "127.0.0.1:39999",
		})
		require.NoError(t, err)
	}
	assert.Len(t, ldr.Followers(), 1)
}

func TestHeartBeatAndCheckLeader(t *testing.T) {
	ldr, _ := newTestLeader(t)
	peers := &peerService{ldr: ldr}
	ctx := context.Background()

	ack, err := peers.HeartBeat(ctx, &proto.Empty{})
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusSuccess, ack.GetErrorCode())

	ack, err = peers.CheckLeader(ctx, &proto.Empty{})
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusSuccess, ack.GetErrorCode())
}

func TestFanoutDelivery(t *testing.T) {
	ldr, svc := newTestLeader(t)
	require.NoError(t, ldr.Start())
	defer ldr.Stop()

	addr, stub := startStubFollower(t)
	ldr.addFollower(types.Peer{ID: "2", Address: addr})

	createAccount(t, svc, "alice", "pw")
	createAccount(t, svc, "bob", "pw")

	waitFor(t, 5*time.Second, func() bool { return stub.updateCount() == 2 })

	stub.mu.Lock()
	defer stub.mu.Unlock()
	first, err := codec.DecodeEvent(stub.updates[0])
	require.NoError(t, err)
	second, err := codec.DecodeEvent(stub.updates[1])
	require.NoError(t, err)

	// commit order survives the queue
	assert.Equal(t, "alice", first.User.Username)
	assert.Equal(t, "bob", second.User.Username)
	assert.Equal(t, 0, ldr.QueueLen())
}

func TestAnnounceLeadership(t *testing.T) {
	addr, stub := startStubFollower(t)

	ldr, _ := newTestLeader(t)
	ldr.addFollower(types.Peer{ID: "2", Address: addr})
	ldr.addFollower(types.Peer{ID: "3", Address: "127.0.0.1:39998"})

	ldr.AnnounceLeadership()

	stub.mu.Lock()
	require.Len(t, stub.newLeaders, 1)
	assert.Equal(t, "1", stub.newLeaders[0].GetNewLeaderId())
	stub.mu.Unlock()

	// the unreachable peer lost its seat
	followers := ldr.Followers()
	require.Len(t, followers, 1)
	assert.Equal(t, "2", followers[0].ID)
}
