package client

import (
	"context"
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/parley-io/parley/api/proto"
	"github.com/parley-io/parley/pkg/config"
	"github.com/parley-io/parley/pkg/leader"
	"github.com/parley-io/parley/pkg/log"
	"github.com/parley-io/parley/pkg/storage"
	"github.com/parley-io/parley/pkg/types"
)

func TestMain(m *testing.M) {
	log.Init(log.Config{Level: log.ErrorLevel, Output: io.Discard, JSONOutput: true})
	m.Run()
}

// notLeaderServer answers every call the way a follower does
type notLeaderServer struct {
	proto.UnimplementedClientAccountServer
}

func (notLeaderServer) CreateAccount(context.Context, *proto.CreateAccountRequest) (*proto.ServerResponse, error) {
	code := types.StatusNotLeader
	return &proto.ServerResponse{ErrorCode: int32(code), ErrorMessage: code.Message()}, nil
}

func (notLeaderServer) Login(context.Context, *proto.LoginRequest) (*proto.ServerResponse, error) {
	code := types.StatusNotLeader
	return &proto.ServerResponse{ErrorCode: int32(code), ErrorMessage: code.Message()}, nil
}

func (notLeaderServer) Send(context.Context, *proto.SendRequest) (*proto.ServerResponse, error) {
	code := types.StatusNotLeader
	return &proto.ServerResponse{ErrorCode: int32(code), ErrorMessage: code.Message()}, nil
}

func startNotLeader(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := grpc.NewServer()
	proto.RegisterClientAccountServer(srv, notLeaderServer{})
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)
	return lis.Addr().String()
}

func startLeader(t *testing.T) *leader.Leader {
	t.Helper()
	st, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "chat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	timing := config.DefaultTiming()
	timing.PeerCallTimeout = 100 * time.Millisecond
	timing.FanoutInitialDelay = 10 * time.Millisecond
	timing.FanoutIdleWait = 20 * time.Millisecond

	ldr := leader.New(leader.Config{
		ID:            "1",
		ClientAddress: "127.0.0.1:0",
		PeerAddress:   "127.0.0.1:0",
		Store:         st,
		Timing:        timing,
	})
	require.NoError(t, ldr.Start())
	t.Cleanup(ldr.Stop)
	return ldr
}

func TestNewRequiresAddresses(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestFailoverToLeader(t *testing.T) {
	ldr := startLeader(t)
	notLeaderAddr := startNotLeader(t)
	ctx := context.Background()

	// dead server first, then a follower, then the leader
	c, err := New([]string{"127.0.0.1:1", notLeaderAddr, ldr.ClientAddr()})
	require.NoError(t, err)
	defer c.Close()

	resp, err := c.CreateAccount(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusSuccess, resp.GetErrorCode())

	// the client stuck with the leader
	resp, err = c.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusSuccess, resp.GetErrorCode())
	assert.NotEmpty(t, c.Session())
}

func TestSessionTravelsWithCalls(t *testing.T) {
	ldr := startLeader(t)
	ctx := context.Background()

	c, err := New([]string{ldr.ClientAddr()})
	require.NoError(t, err)
	defer c.Close()

	alice, err := New([]string{ldr.ClientAddr()})
	require.NoError(t, err)
	defer alice.Close()

	_, err = alice.CreateAccount(ctx, "alice", "pw")
	require.NoError(t, err)
	_, err = c.CreateAccount(ctx, "bob", "pw")
	require.NoError(t, err)

	_, err = alice.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	_, err = c.Login(ctx, "bob", "pw")
	require.NoError(t, err)

	resp, err := alice.Send(ctx, "bob", "hello")
	require.NoError(t, err)
	require.EqualValues(t, types.StatusSuccess, resp.GetErrorCode())

	msgs, err := c.GetMessages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs.GetMessage(), 1)
	assert.Equal(t, "alice", msgs.GetMessage()[0].GetFrom_())
	assert.Equal(t, "hello", msgs.GetMessage()[0].GetMessage())

	ack, err := c.AcknowledgeReceivedMessages(ctx, []int32{msgs.GetMessage()[0].GetMessageId()})
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusSuccess, ack.GetErrorCode())

	out, err := c.Logout(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusSuccess, out.GetErrorCode())
	assert.Empty(t, c.Session())
}

func TestApplicationErrorsDoNotFailOver(t *testing.T) {
	ldr := startLeader(t)
	notLeaderAddr := startNotLeader(t)
	ctx := context.Background()

	c, err := New([]string{ldr.ClientAddr(), notLeaderAddr})
	require.NoError(t, err)
	defer c.Close()

	// a login failure is an answer, not a reason to try another server
	resp, err := c.Login(ctx, "ghost", "pw")
	require.NoError(t, err)
	assert.EqualValues(t, types.StatusUserDoesntExist, resp.GetErrorCode())
}

func TestAllServersDown(t *testing.T) {
	c, err := New([]string{"127.0.0.1:1", "127.0.0.1:2"})
	require.NoError(t, err)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err = c.CreateAccount(ctx, "alice", "pw")
	assert.Error(t, err)
}
