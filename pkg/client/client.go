package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/parley-io/parley/api/proto"
	"github.com/parley-io/parley/pkg/log"
	"github.com/parley-io/parley/pkg/types"
)

// ErrNoLeader is returned when every configured server either failed
// or answered that it is not the leader
var ErrNoLeader = errors.New("no reachable leader among configured servers")

// Client is a failover-aware chat client. It holds the client-facing
// addresses of every server in the cluster and walks the list until
// one of them acts as leader; the session issued by Login travels with
// subsequent calls automatically.
type Client struct {
	addrs  []string
	logger zerolog.Logger

	mu        sync.Mutex
	cur       int
	conn      *grpc.ClientConn
	api       proto.ClientAccountClient
	sessionID string
}

// New creates a client over the given server addresses. Connections
// are established lazily on the first call.
func New(addrs []string) (*Client, error) {
	if len(addrs) == 0 {
		return nil, fmt.Errorf("at least one server address is required")
	}
	return &Client{
		addrs:  addrs,
		logger: log.WithComponent("client"),
	}, nil
}

// Close releases the active connection
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.api = nil
	return err
}

// Session returns the session id issued by the last successful Login
func (c *Client) Session() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// SetSession installs a session id obtained elsewhere
func (c *Client) SetSession(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionID = sessionID
}

// current returns the stub for the current server, dialing if needed
func (c *Client) current() (proto.ClientAccountClient, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	addr := c.addrs[c.cur]
	if c.api == nil {
		conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, addr, fmt.Errorf("connecting to %s: %w", addr, err)
		}
		c.conn = conn
		c.api = proto.NewClientAccountClient(conn)
	}
	return c.api, addr, nil
}

// advance drops the current connection and moves to the next server
func (c *Client) advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
		c.api = nil
	}
	c.cur = (c.cur + 1) % len(c.addrs)
}

// invoke runs one RPC with failover. A transport error or a not-leader
// answer moves on to the next server; each server gets one try per
// call.
func (c *Client) invoke(ctx context.Context, fn func(ctx context.Context, api proto.ClientAccountClient) (int32, error)) error {
	var lastErr error
	for range c.addrs {
		api, addr, err := c.current()
		if err != nil {
			lastErr = err
			c.advance()
			continue
		}
		code, err := fn(ctx, api)
		if err != nil {
			c.logger.Debug().Err(err).Str("addr", addr).Msg("Server unreachable, trying next")
			lastErr = err
			c.advance()
			continue
		}
		if code == int32(types.StatusNotLeader) {
			c.logger.Debug().Str("addr", addr).Msg("Server is not the leader, trying next")
			lastErr = ErrNoLeader
			c.advance()
			continue
		}
		return nil
	}
	if lastErr == nil {
		lastErr = ErrNoLeader
	}
	return lastErr
}

// CreateAccount registers a new user
func (c *Client) CreateAccount(ctx context.Context, username, password string) (*proto.ServerResponse, error) {
	var resp *proto.ServerResponse
	err := c.invoke(ctx, func(ctx context.Context, api proto.ClientAccountClient) (int32, error) {
		r, err := api.CreateAccount(ctx, &proto.CreateAccountRequest{Username: username, Password: password})
		if err != nil {
			return 0, err
		}
		resp = r
		return r.GetErrorCode(), nil
	})
	return resp, err
}

// Login authenticates and stores the issued session id on the client
func (c *Client) Login(ctx context.Context, username, password string) (*proto.ServerResponse, error) {
	var resp *proto.ServerResponse
	err := c.invoke(ctx, func(ctx context.Context, api proto.ClientAccountClient) (int32, error) {
		r, err := api.Login(ctx, &proto.LoginRequest{Username: username, Password: password})
		if err != nil {
			return 0, err
		}
		resp = r
		return r.GetErrorCode(), nil
	})
	if err == nil && resp.GetErrorCode() == int32(types.StatusSuccess) {
		c.SetSession(resp.GetSessionId())
	}
	return resp, err
}

// ListUsers returns users matching the wildcard pattern. An empty
// pattern matches everyone; a bare name is treated as a prefix, so
// "al" searches as "al*". The follower redirect rides a gRPC error
// here, which the failover loop already treats as a reason to move on.
func (c *Client) ListUsers(ctx context.Context, wildcard string) (*proto.Users, error) {
	if wildcard == "" {
		wildcard = "*"
	} else if !strings.HasSuffix(wildcard, "*") {
		wildcard += "*"
	}
	var resp *proto.Users
	err := c.invoke(ctx, func(ctx context.Context, api proto.ClientAccountClient) (int32, error) {
		r, err := api.ListUsers(ctx, &proto.ListUsersRequest{Wildcard: wildcard})
		if err != nil {
			return 0, err
		}
		resp = r
		return 0, nil
	})
	return resp, err
}

// Send delivers a message to the named user
func (c *Client) Send(ctx context.Context, to, message string) (*proto.ServerResponse, error) {
	var resp *proto.ServerResponse
	err := c.invoke(ctx, func(ctx context.Context, api proto.ClientAccountClient) (int32, error) {
		r, err := api.Send(ctx, &proto.SendRequest{To: to, Message: message, SessionId: c.Session()})
		if err != nil {
			return 0, err
		}
		resp = r
		return r.GetErrorCode(), nil
	})
	return resp, err
}

// GetMessages fetches the unread inbox
func (c *Client) GetMessages(ctx context.Context) (*proto.Messages, error) {
	var resp *proto.Messages
	err := c.invoke(ctx, func(ctx context.Context, api proto.ClientAccountClient) (int32, error) {
		r, err := api.GetMessages(ctx, &proto.ReceiveRequest{SessionId: c.Session()})
		if err != nil {
			return 0, err
		}
		resp = r
		return r.GetErrorCode(), nil
	})
	return resp, err
}

// GetChat fetches the conversation with another user
func (c *Client) GetChat(ctx context.Context, username string) (*proto.Messages, error) {
	var resp *proto.Messages
	err := c.invoke(ctx, func(ctx context.Context, api proto.ClientAccountClient) (int32, error) {
		r, err := api.GetChat(ctx, &proto.ChatRequest{SessionId: c.Session(), Username: username})
		if err != nil {
			return 0, err
		}
		resp = r
		return r.GetErrorCode(), nil
	})
	return resp, err
}

// AcknowledgeReceivedMessages marks fetched messages as delivered
func (c *Client) AcknowledgeReceivedMessages(ctx context.Context, messageIDs []int32) (*proto.ServerResponse, error) {
	var resp *proto.ServerResponse
	err := c.invoke(ctx, func(ctx context.Context, api proto.ClientAccountClient) (int32, error) {
		r, err := api.AcknowledgeReceivedMessages(ctx, &proto.AcknowledgeReceivedMessagesRequest{
			SessionId:  c.Session(),
			MessageIds: messageIDs,
		})
		if err != nil {
			return 0, err
		}
		resp = r
		return r.GetErrorCode(), nil
	})
	return resp, err
}

// DeleteMessages tombstones received messages by id
func (c *Client) DeleteMessages(ctx context.Context, messageIDs []int32) (*proto.ServerResponse, error) {
	var resp *proto.ServerResponse
	err := c.invoke(ctx, func(ctx context.Context, api proto.ClientAccountClient) (int32, error) {
		r, err := api.DeleteMessages(ctx, &proto.DeleteMessagesRequest{
			SessionId:  c.Session(),
			MessageIds: messageIDs,
		})
		if err != nil {
			return 0, err
		}
		resp = r
		return r.GetErrorCode(), nil
	})
	return resp, err
}

// GetUnreadCounts fetches per-sender unread tallies
func (c *Client) GetUnreadCounts(ctx context.Context) (*proto.UnreadSummary, error) {
	var resp *proto.UnreadSummary
	err := c.invoke(ctx, func(ctx context.Context, api proto.ClientAccountClient) (int32, error) {
		r, err := api.GetUnreadCounts(ctx, &proto.SessionRequest{SessionId: c.Session()})
		if err != nil {
			return 0, err
		}
		resp = r
		return r.GetErrorCode(), nil
	})
	return resp, err
}

// Logout ends the session and forgets the stored session id
func (c *Client) Logout(ctx context.Context) (*proto.ServerResponse, error) {
	var resp *proto.ServerResponse
	err := c.invoke(ctx, func(ctx context.Context, api proto.ClientAccountClient) (int32, error) {
		r, err := api.Logout(ctx, &proto.DeleteAccountRequest{SessionId: c.Session()})
		if err != nil {
			return 0, err
		}
		resp = r
		return r.GetErrorCode(), nil
	})
	if err == nil && resp.GetErrorCode() == int32(types.StatusSuccess) {
		c.SetSession("")
	}
	return resp, err
}

// DeleteAccount removes the logged-in account and forgets the session
func (c *Client) DeleteAccount(ctx context.Context) (*proto.ServerResponse, error) {
	var resp *proto.ServerResponse
	err := c.invoke(ctx, func(ctx context.Context, api proto.ClientAccountClient) (int32, error) {
		r, err := api.DeleteAccount(ctx, &proto.DeleteAccountRequest{SessionId: c.Session()})
		if err != nil {
			return 0, err
		}
		resp = r
		return r.GetErrorCode(), nil
	})
	if err == nil && resp.GetErrorCode() == int32(types.StatusSuccess) {
		c.SetSession("")
	}
	return resp, err
}
