package storage

import (
	"context"
	"errors"

	"github.com/parley-io/parley/pkg/types"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert hits a primary-key or unique
// constraint, such as a taken username or a replayed replication event
var ErrDuplicate = errors.New("duplicate row")

// InboxMessage is a message joined with its sender's username, shaped
// for the client-facing read paths
type InboxMessage struct {
	types.Message
	SenderName string
}

// UnreadCount is the per-sender unread tally returned to clients
type UnreadCount struct {
	From  string
	Count int32
}

// Store is the persistence interface for a chat server. The leader
// drives the account/message methods; the replication row methods
// insert rows with ids already assigned by the leader.
type Store interface {
	// Account and session operations (leader side, ids assigned here)
	CreateUser(ctx context.Context, username, passwordHash string) (*types.User, error)
	UserByName(ctx context.Context, username string) (*types.User, error)
	UserBySession(ctx context.Context, sessionID string) (*types.User, error)
	AllUsers(ctx context.Context) ([]types.User, error)
	SetSession(ctx context.Context, userID int64, sessionID string) (*types.User, error)
	ClearSession(ctx context.Context, userID int64) (*types.User, error)

	// Message operations (leader side)
	SendMessage(ctx context.Context, m *types.Message) (*types.Message, error)
	UnreadMessages(ctx context.Context, receiverID int64) ([]InboxMessage, error)
	ChatBetween(ctx context.Context, userID, otherID int64) ([]InboxMessage, error)
	MarkReceived(ctx context.Context, receiverID int64, messageIDs []int64) error
	UnreadCounts(ctx context.Context, receiverID int64) ([]UnreadCount, error)
	MessagesOwnedBy(ctx context.Context, userID int64, messageIDs []int64) ([]types.Message, error)
	MessagesToReceiver(ctx context.Context, receiverID int64) ([]types.Message, error)
	TombstoneMessage(ctx context.Context, m *types.Message) (*types.DeletedMessage, error)
	DeleteUser(ctx context.Context, userID int64) error

	// Replication row operations (follower side, explicit ids)
	InsertUserRow(ctx context.Context, u *types.User) error
	UpdateUserRow(ctx context.Context, u *types.User) error
	DeleteUserRow(ctx context.Context, id int64) error
	InsertMessageRow(ctx context.Context, m *types.Message) error
	UpdateMessageRow(ctx context.Context, m *types.Message) error
	DeleteMessageRow(ctx context.Context, id int64) error
	InsertDeletedMessageRow(ctx context.Context, d *types.DeletedMessage) error

	// Snapshot transfer and follower resync
	Snapshot(ctx context.Context) (*types.Snapshot, error)
	ImportSnapshot(ctx context.Context, snap *types.Snapshot) error
	Wipe(ctx context.Context) error

	Close() error
}
