package follower

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/parley-io/parley/api/proto"
	"github.com/parley-io/parley/pkg/types"
)

// redirectService is the follower's client-facing surface. Followers
// hold no sessions and accept no writes, so every call answers with
// the not-leader status and the client walks on to the next server.
type redirectService struct {
	proto.UnimplementedClientAccountServer
}

func notLeader() *proto.ServerResponse {
	code := types.StatusNotLeader
	return &proto.ServerResponse{ErrorCode: int32(code), ErrorMessage: code.Message()}
}

func (redirectService) CreateAccount(context.Context, *proto.CreateAccountRequest) (*proto.ServerResponse, error) {
	return notLeader(), nil
}

func (redirectService) ListUsers(context.Context, *proto.ListUsersRequest) (*proto.Users, error) {
	// Users carries no status field, so the redirect rides the gRPC
	// error instead
	return nil, status.Error(codes.FailedPrecondition, types.StatusNotLeader.Message())
}

func (redirectService) Login(context.Context, *proto.LoginRequest) (*proto.ServerResponse, error) {
	return notLeader(), nil
}

func (redirectService) Send(context.Context, *proto.SendRequest) (*proto.ServerResponse, error) {
	return notLeader(), nil
}

func (redirectService) GetMessages(context.Context, *proto.ReceiveRequest) (*proto.Messages, error) {
	code := types.StatusNotLeader
	return &proto.Messages{ErrorCode: int32(code), ErrorMessage: code.Message()}, nil
}

func (redirectService) GetChat(context.Context, *proto.ChatRequest) (*proto.Messages, error) {
	code := types.StatusNotLeader
	return &proto.Messages{ErrorCode: int32(code), ErrorMessage: code.Message()}, nil
}

func (redirectService) AcknowledgeReceivedMessages(context.Context, *proto.AcknowledgeReceivedMessagesRequest) (*proto.ServerResponse, error) {
	return notLeader(), nil
}

func (redirectService) DeleteAccount(context.Context, *proto.DeleteAccountRequest) (*proto.ServerResponse, error) {
	return notLeader(), nil
}

func (redirectService) Logout(context.Context, *proto.DeleteAccountRequest) (*proto.ServerResponse, error) {
	return notLeader(), nil
}

func (redirectService) DeleteMessages(context.Context, *proto.DeleteMessagesRequest) (*proto.ServerResponse, error) {
	return notLeader(), nil
}

func (redirectService) GetUnreadCounts(context.Context, *proto.SessionRequest) (*proto.UnreadSummary, error) {
	code := types.StatusNotLeader
	return &proto.UnreadSummary{ErrorCode: int32(code), ErrorMessage: code.Message()}, nil
}
