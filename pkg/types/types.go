package types

import (
	"fmt"
	"strings"
	"time"
)

// Role defines the replication role of a chat server
type Role string

const (
	RoleLeader   Role = "leader"
	RoleFollower Role = "follower"
)

// Table identifies a replicated table
type Table string

const (
	TableUsers           Table = "users"
	TableMessages        Table = "messages"
	TableDeletedMessages Table = "deleted_messages"
)

// Op identifies a mutation kind carried by a replication event
type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// User is a row in the users table. Session columns are leader-local
// state; followers store whatever the replication stream carries.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"password"` // bcrypt hash, never plaintext
	LoggedIn  bool   `json:"logged_in"`
	SessionID string `json:"session_id"`
}

// Message is a row in the messages table
type Message struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	Content    string    `json:"content"`
	IsReceived bool      `json:"is_received"`
	TimeStamp  time.Time `json:"time_stamp"`
}

// DeletedMessage is a tombstone row retained when a message is deleted
type DeletedMessage struct {
	ID                int64  `json:"id"`
	SenderID          int64  `json:"sender_id"`
	ReceiverID        int64  `json:"receiver_id"`
	Content           string `json:"content"`
	IsReceived        bool   `json:"is_received"`
	OriginalMessageID int64  `json:"original_message_id"`
}

// Snapshot is a full copy of the replicated tables, shipped to a
// follower when it registers with the leader
type Snapshot struct {
	Users           []User           `json:"users"`
	Messages        []Message        `json:"messages"`
	DeletedMessages []DeletedMessage `json:"deleted_messages"`
}

// Peer identifies a cluster member by id and peer-facing address
type Peer struct {
	ID      string
	Address string
}

// String renders the peer in the id-address wire form used by
// RegisterFollower responses and UpdateFollowers broadcasts.
func (p Peer) String() string {
	return p.ID + "-" + p.Address
}

// ParsePeer parses the id-address wire form. The id never contains a
// dash, so the split happens at the first one.
func ParsePeer(s string) (Peer, error) {
	id, addr, ok := strings.Cut(s, "-")
	if !ok || id == "" || addr == "" {
		return Peer{}, fmt.Errorf("malformed peer %q", s)
	}
	return Peer{ID: id, Address: addr}, nil
}
