package leader

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/parley-io/parley/api/proto"
	"github.com/parley-io/parley/pkg/codec"
	"github.com/parley-io/parley/pkg/metrics"
	"github.com/parley-io/parley/pkg/storage"
	"github.com/parley-io/parley/pkg/types"
)

// clientService implements the client-facing chat API on the leader.
// Application-level failures travel inside the response payload as a
// status code; gRPC errors are reserved for transport and server
// faults.
type clientService struct {
	proto.UnimplementedClientAccountServer
	ldr *Leader
}

// statusServerFault labels requests that exit through a gRPC error
// instead of an in-payload code; it never travels on the wire.
const statusServerFault types.StatusCode = -1

// instrument returns a deferred observer for one handler call. The
// code pointer is read at defer time so late assignments count.
func instrument(method string, code *types.StatusCode) func() {
	start := time.Now()
	return func() {
		label := strconv.Itoa(int(*code))
		if *code == statusServerFault {
			label = "error"
		}
		metrics.ClientRequestsTotal.WithLabelValues(method, label).Inc()
		metrics.ClientRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	}
}

// failf records a server-fault exit for metrics and builds the gRPC
// error the handler returns
func failf(code *types.StatusCode, c codes.Code, format string, args ...interface{}) error {
	*code = statusServerFault
	return status.Errorf(c, format, args...)
}

func respond(code types.StatusCode) *proto.ServerResponse {
	return &proto.ServerResponse{ErrorCode: int32(code), ErrorMessage: code.Message()}
}

func respondText(code types.StatusCode, msg string) *proto.ServerResponse {
	return &proto.ServerResponse{ErrorCode: int32(code), ErrorMessage: msg}
}

// sessionUser resolves a session id to its user
func (s *clientService) sessionUser(ctx context.Context, sessionID string) (*types.User, error) {
	if sessionID == "" {
		return nil, storage.ErrNotFound
	}
	return s.ldr.store.UserBySession(ctx, sessionID)
}

// CreateAccount registers a new user. The password is stored as a
// bcrypt hash and the committed row is replicated to every follower.
func (s *clientService) CreateAccount(ctx context.Context, req *proto.CreateAccountRequest) (*proto.ServerResponse, error) {
	code := types.StatusSuccess
	defer instrument("CreateAccount", &code)()

	if strings.TrimSpace(req.GetUsername()) == "" {
		code = types.StatusInvalidUsername
		return respond(code), nil
	}
	if req.GetPassword() == "" {
		code = types.StatusInvalidPassword
		return respond(code), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.GetPassword()), bcrypt.DefaultCost)
	if err != nil {
		return nil, failf(&code, codes.Internal, "hashing password: %v", err)
	}

	user, err := s.ldr.store.CreateUser(ctx, req.GetUsername(), string(hash))
	if errors.Is(err, storage.ErrDuplicate) {
		code = types.StatusUserNameExists
		return respond(code), nil
	}
	if err != nil {
		return nil, failf(&code, codes.Internal, "creating account: %v", err)
	}

	s.ldr.replicate(codec.UserEvent(types.OpAdd, user))
	s.ldr.logger.Info().Str("username", user.Username).Msg("Account created")
	return respondText(code, "Account created successfully!!"), nil
}

// ListUsers returns usernames matching a wildcard pattern. Matching is
// case-insensitive and an empty pattern means everyone. No session is
// required; the user list is public within the deployment.
func (s *clientService) ListUsers(ctx context.Context, req *proto.ListUsersRequest) (*proto.Users, error) {
	code := types.StatusSuccess
	defer instrument("ListUsers", &code)()

	pattern := req.GetWildcard()
	if pattern == "" {
		pattern = "*"
	}
	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, failf(&code, codes.InvalidArgument, "bad wildcard %q: %v", pattern, err)
	}

	users, err := s.ldr.store.AllUsers(ctx)
	if err != nil {
		return nil, failf(&code, codes.Internal, "listing users: %v", err)
	}

	resp := &proto.Users{}
	for _, u := range users {
		if !g.Match(strings.ToLower(u.Username)) {
			continue
		}
		st := "offline"
		if u.LoggedIn {
			st = "online"
		}
		resp.User = append(resp.User, &proto.User{Username: u.Username, Status: st})
	}
	return resp, nil
}

// Login checks credentials and issues a fresh session id. Logging in
// again replaces any previous session.
func (s *clientService) Login(ctx context.Context, req *proto.LoginRequest) (*proto.ServerResponse, error) {
	code := types.StatusSuccess
	defer instrument("Login", &code)()

	user, err := s.ldr.store.UserByName(ctx, req.GetUsername())
	if errors.Is(err, storage.ErrNotFound) {
		code = types.StatusUserDoesntExist
		return respond(code), nil
	}
	if err != nil {
		return nil, failf(&code, codes.Internal, "looking up user: %v", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.GetPassword())) != nil {
		code = types.StatusIncorrectPassword
		return respond(code), nil
	}

	sessionID := uuid.NewString()
	if _, err := s.ldr.store.SetSession(ctx, user.ID, sessionID); err != nil {
		return nil, failf(&code, codes.Internal, "setting session: %v", err)
	}

	s.ldr.logger.Info().Str("username", user.Username).Msg("User logged in")
	resp := respondText(code, "Login successful!!")
	resp.SessionId = sessionID
	return resp, nil
}

// Send stores a message for the named receiver and replicates it
func (s *clientService) Send(ctx context.Context, req *proto.SendRequest) (*proto.ServerResponse, error) {
	code := types.StatusSuccess
	defer instrument("Send", &code)()

	sender, err := s.sessionUser(ctx, req.GetSessionId())
	if errors.Is(err, storage.ErrNotFound) {
		code = types.StatusUserNotLoggedIn
		return respond(code), nil
	}
	if err != nil {
		return nil, failf(&code, codes.Internal, "resolving session: %v", err)
	}

	if req.GetMessage() == "" {
		code = types.StatusInvalidMessage
		return respond(code), nil
	}

	receiver, err := s.ldr.store.UserByName(ctx, req.GetTo())
	if errors.Is(err, storage.ErrNotFound) {
		code = types.StatusReceiverDoesntExist
		return respond(code), nil
	}
	if err != nil {
		return nil, failf(&code, codes.Internal, "looking up receiver: %v", err)
	}

	msg, err := s.ldr.store.SendMessage(ctx, &types.Message{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Content:    req.GetMessage(),
		TimeStamp:  time.Now().UTC(),
	})
	if err != nil {
		return nil, failf(&code, codes.Internal, "storing message: %v", err)
	}

	s.ldr.replicate(codec.MessageEvent(types.OpAdd, msg))
	return respondText(code, "Message sent successfully!!"), nil
}

// GetMessages returns the caller's unread messages and marks them
// received, so a repeat call answers NO MESSAGES. The flip is local to
// this server and not replicated; after a failover the new leader may
// re-deliver.
func (s *clientService) GetMessages(ctx context.Context, req *proto.ReceiveRequest) (*proto.Messages, error) {
	code := types.StatusSuccess
	defer instrument("GetMessages", &code)()

	user, err := s.sessionUser(ctx, req.GetSessionId())
	if errors.Is(err, storage.ErrNotFound) {
		code = types.StatusUserNotLoggedIn
		return &proto.Messages{ErrorCode: int32(code), ErrorMessage: code.Message()}, nil
	}
	if err != nil {
		return nil, failf(&code, codes.Internal, "resolving session: %v", err)
	}

	unread, err := s.ldr.store.UnreadMessages(ctx, user.ID)
	if err != nil {
		return nil, failf(&code, codes.Internal, "fetching messages: %v", err)
	}
	if len(unread) == 0 {
		code = types.StatusNoMessages
		return &proto.Messages{ErrorCode: int32(code), ErrorMessage: code.Message()}, nil
	}

	resp := &proto.Messages{
		ErrorCode:    int32(code),
		ErrorMessage: "Messages received successfully!!",
	}
	ids := make([]int64, 0, len(unread))
	for _, m := range unread {
		ids = append(ids, m.ID)
		resp.Message = append(resp.Message, &proto.Message{
			From_:     m.SenderName,
			Message:   m.Content,
			MessageId: int32(m.ID),
		})
	}
	if err := s.ldr.store.MarkReceived(ctx, user.ID, ids); err != nil {
		return nil, failf(&code, codes.Internal, "marking messages received: %v", err)
	}
	return resp, nil
}

// GetChat returns the full conversation between the caller and another
// user, oldest first, and marks the caller's side as received. An
// unknown counterpart reads as an empty conversation.
func (s *clientService) GetChat(ctx context.Context, req *proto.ChatRequest) (*proto.Messages, error) {
	code := types.StatusSuccess
	defer instrument("GetChat", &code)()

	user, err := s.sessionUser(ctx, req.GetSessionId())
	if errors.Is(err, storage.ErrNotFound) {
		code = types.StatusUserNotLoggedIn
		return &proto.Messages{ErrorCode: int32(code), ErrorMessage: code.Message()}, nil
	}
	if err != nil {
		return nil, failf(&code, codes.Internal, "resolving session: %v", err)
	}

	other, err := s.ldr.store.UserByName(ctx, req.GetUsername())
	if errors.Is(err, storage.ErrNotFound) {
		code = types.StatusNoMessages
		return &proto.Messages{ErrorCode: int32(code), ErrorMessage: code.Message()}, nil
	}
	if err != nil {
		return nil, failf(&code, codes.Internal, "looking up user: %v", err)
	}

	chat, err := s.ldr.store.ChatBetween(ctx, user.ID, other.ID)
	if err != nil {
		return nil, failf(&code, codes.Internal, "fetching chat: %v", err)
	}
	if len(chat) == 0 {
		code = types.StatusNoMessages
		return &proto.Messages{ErrorCode: int32(code), ErrorMessage: code.Message()}, nil
	}

	var toMark []int64
	resp := &proto.Messages{
		ErrorCode:    int32(code),
		ErrorMessage: "Messages received successfully!!",
	}
	for _, m := range chat {
		if m.ReceiverID == user.ID && !m.IsReceived {
			toMark = append(toMark, m.ID)
		}
		resp.Message = append(resp.Message, &proto.Message{
			From_:     m.SenderName,
			Message:   m.Content,
			MessageId: int32(m.ID),
			TimeStamp: timestamppb.New(m.TimeStamp),
		})
	}
	if len(toMark) > 0 {
		if err := s.ldr.store.MarkReceived(ctx, user.ID, toMark); err != nil {
			return nil, failf(&code, codes.Internal, "marking messages received: %v", err)
		}
	}
	return resp, nil
}

// AcknowledgeReceivedMessages marks the given messages as delivered.
// Only messages addressed to the caller are touched.
func (s *clientService) AcknowledgeReceivedMessages(ctx context.Context, req *proto.AcknowledgeReceivedMessagesRequest) (*proto.ServerResponse, error) {
	code := types.StatusSuccess
	defer instrument("AcknowledgeReceivedMessages", &code)()

	user, err := s.sessionUser(ctx, req.GetSessionId())
	if errors.Is(err, storage.ErrNotFound) {
		code = types.StatusUserNotLoggedIn
		return respond(code), nil
	}
	if err != nil {
		return nil, failf(&code, codes.Internal, "resolving session: %v", err)
	}

	ids := make([]int64, 0, len(req.GetMessageIds()))
	for _, id := range req.GetMessageIds() {
		ids = append(ids, int64(id))
	}
	if err := s.ldr.store.MarkReceived(ctx, user.ID, ids); err != nil {
		return nil, failf(&code, codes.Internal, "marking messages received: %v", err)
	}
	return respondText(code, "Messages acknowledged successfully!!"), nil
}

// DeleteAccount removes the caller's account. Messages addressed to
// the account are tombstoned first, then the user row goes; all of it
// replicates in that order.
func (s *clientService) DeleteAccount(ctx context.Context, req *proto.DeleteAccountRequest) (*proto.ServerResponse, error) {
	code := types.StatusSuccess
	defer instrument("DeleteAccount", &code)()

	user, err := s.sessionUser(ctx, req.GetSessionId())
	if errors.Is(err, storage.ErrNotFound) {
		code = types.StatusUserNotLoggedIn
		return respond(code), nil
	}
	if err != nil {
		return nil, failf(&code, codes.Internal, "resolving session: %v", err)
	}

	inbound, err := s.ldr.store.MessagesToReceiver(ctx, user.ID)
	if err != nil {
		return nil, failf(&code, codes.Internal, "fetching messages: %v", err)
	}
	for i := range inbound {
		m := inbound[i]
		tomb, err := s.ldr.store.TombstoneMessage(ctx, &m)
		if err != nil {
			return nil, failf(&code, codes.Internal, "deleting message: %v", err)
		}
		s.ldr.replicate(codec.DeletedMessageEvent(types.OpAdd, tomb))
		s.ldr.replicate(codec.MessageEvent(types.OpDelete, &m))
	}

	if err := s.ldr.store.DeleteUser(ctx, user.ID); err != nil {
		return nil, failf(&code, codes.Internal, "deleting account: %v", err)
	}
	s.ldr.replicate(codec.UserEvent(types.OpDelete, user))

	s.ldr.logger.Info().Str("username", user.Username).Msg("Account deleted")
	return respondText(code, "Account deleted successfully!!"), nil
}

// Logout clears the caller's session
func (s *clientService) Logout(ctx context.Context, req *proto.DeleteAccountRequest) (*proto.ServerResponse, error) {
	code := types.StatusSuccess
	defer instrument("Logout", &code)()

	user, err := s.sessionUser(ctx, req.GetSessionId())
	if errors.Is(err, storage.ErrNotFound) {
		code = types.StatusUserNotLoggedIn
		return respond(code), nil
	}
	if err != nil {
		return nil, failf(&code, codes.Internal, "resolving session: %v", err)
	}

	if _, err := s.ldr.store.ClearSession(ctx, user.ID); err != nil {
		return nil, failf(&code, codes.Internal, "clearing session: %v", err)
	}
	return respondText(code, "Logout successful!!"), nil
}

// DeleteMessages tombstones the caller's received messages by id.
// Ids that don't exist or belong to someone else are skipped, and the
// response reports how many rows actually went.
func (s *clientService) DeleteMessages(ctx context.Context, req *proto.DeleteMessagesRequest) (*proto.ServerResponse, error) {
	code := types.StatusSuccess
	defer instrument("DeleteMessages", &code)()

	user, err := s.sessionUser(ctx, req.GetSessionId())
	if errors.Is(err, storage.ErrNotFound) {
		code = types.StatusUserNotLoggedIn
		return respond(code), nil
	}
	if err != nil {
		return nil, failf(&code, codes.Internal, "resolving session: %v", err)
	}

	ids := make([]int64, 0, len(req.GetMessageIds()))
	for _, id := range req.GetMessageIds() {
		ids = append(ids, int64(id))
	}
	owned, err := s.ldr.store.MessagesOwnedBy(ctx, user.ID, ids)
	if err != nil {
		return nil, failf(&code, codes.Internal, "fetching messages: %v", err)
	}
	for i := range owned {
		m := owned[i]
		tomb, err := s.ldr.store.TombstoneMessage(ctx, &m)
		if err != nil {
			return nil, failf(&code, codes.Internal, "deleting message: %v", err)
		}
		s.ldr.replicate(codec.DeletedMessageEvent(types.OpAdd, tomb))
		s.ldr.replicate(codec.MessageEvent(types.OpDelete, &m))
	}

	return respondText(code, fmt.Sprintf("%d message(s) deleted successfully.", len(owned))), nil
}

// GetUnreadCounts returns per-sender unread tallies for the caller
func (s *clientService) GetUnreadCounts(ctx context.Context, req *proto.SessionRequest) (*proto.UnreadSummary, error) {
	code := types.StatusSuccess
	defer instrument("GetUnreadCounts", &code)()

	user, err := s.sessionUser(ctx, req.GetSessionId())
	if errors.Is(err, storage.ErrNotFound) {
		code = types.StatusUserNotLoggedIn
		return &proto.UnreadSummary{ErrorCode: int32(code), ErrorMessage: code.Message()}, nil
	}
	if err != nil {
		return nil, failf(&code, codes.Internal, "resolving session: %v", err)
	}

	counts, err := s.ldr.store.UnreadCounts(ctx, user.ID)
	if err != nil {
		return nil, failf(&code, codes.Internal, "counting unread: %v", err)
	}

	resp := &proto.UnreadSummary{
		ErrorCode:    int32(code),
		ErrorMessage: "Unread counts fetched.",
	}
	for _, c := range counts {
		resp.Counts = append(resp.Counts, &proto.UnreadCount{From: c.From, Count: c.Count})
	}
	return resp, nil
}
