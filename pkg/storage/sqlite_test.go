package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-io/parley/pkg/log"
	"github.com/parley-io/parley/pkg/types"
)

func TestMain(m *testing.M) {
	log.Init(log.Config{Level: log.ErrorLevel, Output: io.Discard, JSONOutput: true})
	os.Exit(m.Run())
}

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "chat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice, err := store.CreateUser(ctx, "alice", "hash-a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), alice.ID)
	assert.Equal(t, "alice", alice.Username)
	assert.False(t, alice.LoggedIn)
	assert.Empty(t, alice.SessionID)

	bob, err := store.CreateUser(ctx, "bob", "hash-b")
	require.NoError(t, err)
	assert.Equal(t, int64(2), bob.ID)

	// duplicate username
	_, err = store.CreateUser(ctx, "alice", "hash-c")
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserLookups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)

	byName, err := store.UserByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = store.UserByName(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	// no session yet
	_, err = store.UserBySession(ctx, "token")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.UserBySession(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)

	logged, err := store.SetSession(ctx, created.ID, "token")
	require.NoError(t, err)
	assert.True(t, logged.LoggedIn)
	assert.Equal(t, "token", logged.SessionID)

	bySession, err := store.UserBySession(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySession.ID)

	cleared, err := store.ClearSession(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, cleared.LoggedIn)
	assert.Empty(t, cleared.SessionID)

	_, err = store.UserBySession(ctx, "token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionReuseAcrossUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice, err := store.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	bob, err := store.CreateUser(ctx, "bob", "hash")
	require.NoError(t, err)

	_, err = store.SetSession(ctx, alice.ID, "tok-a")
	require.NoError(t, err)

	// clearing one session must not block another user from logging in
	_, err = store.ClearSession(ctx, alice.ID)
	require.NoError(t, err)
	_, err = store.SetSession(ctx, bob.ID, "tok-a")
	assert.NoError(t, err)
}

func TestSendAndUnreadMessages(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice, err := store.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	bob, err := store.CreateUser(ctx, "bob", "hash")
	require.NoError(t, err)

	first, err := store.SendMessage(ctx, &types.Message{
		SenderID:   alice.ID,
		ReceiverID: bob.ID,
		Content:    "hi bob",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.False(t, first.TimeStamp.IsZero())

	second, err := store.SendMessage(ctx, &types.Message{
		SenderID:   alice.ID,
		ReceiverID: bob.ID,
		Content:    "you there?",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	unread, err := store.UnreadMessages(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, unread, 2)
	assert.Equal(t, "hi bob", unread[0].Content)
	assert.Equal(t, "alice", unread[0].SenderName)
	assert.Equal(t, "you there?", unread[1].Content)

	// fetching does not flip the flag; marking does
	require.NoError(t, store.MarkReceived(ctx, bob.ID, []int64{first.ID, second.ID}))
	unread, err = store.UnreadMessages(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestMarkReceivedOnlyForReceiver(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice, err := store.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	bob, err := store.CreateUser(ctx, "bob", "hash")
	require.NoError(t, err)

	msg, err := store.SendMessage(ctx, &types.Message{
		SenderID: alice.ID, ReceiverID: bob.ID, Content: "hi",
	})
	require.NoError(t, err)

	// alice is the sender, not the receiver; her ack must be a no-op
	require.NoError(t, store.MarkReceived(ctx, alice.ID, []int64{msg.ID}))
	unread, err := store.UnreadMessages(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, unread, 1)
}

func TestChatBetween(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice, err := store.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	bob, err := store.CreateUser(ctx, "bob", "hash")
	require.NoError(t, err)
	carol, err := store.CreateUser(ctx, "carol", "hash")
	require.NoError(t, err)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, m := range []types.Message{
		{SenderID: alice.ID, ReceiverID: bob.ID, Content: "a->b"},
		{SenderID: bob.ID, ReceiverID: alice.ID, Content: "b->a"},
		{SenderID: alice.ID, ReceiverID: carol.ID, Content: "a->c"},
	} {
		m.TimeStamp = base.Add(time.Duration(i) * time.Second)
		_, err := store.SendMessage(ctx, &m)
		require.NoError(t, err)
	}

	chat, err := store.ChatBetween(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, chat, 2)
	assert.Equal(t, "a->b", chat[0].Content)
	assert.Equal(t, "alice", chat[0].SenderName)
	assert.Equal(t, "b->a", chat[1].Content)
	assert.Equal(t, "bob", chat[1].SenderName)
}

func TestUnreadCounts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice, err := store.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	bob, err := store.CreateUser(ctx, "bob", "hash")
	require.NoError(t, err)
	carol, err := store.CreateUser(ctx, "carol", "hash")
	require.NoError(t, err)

	for _, m := range []types.Message{
		{SenderID: bob.ID, ReceiverID: alice.ID, Content: "1"},
		{SenderID: bob.ID, ReceiverID: alice.ID, Content: "2"},
		{SenderID: carol.ID, ReceiverID: alice.ID, Content: "3"},
		{SenderID: alice.ID, ReceiverID: alice.ID, Content: "note to self"},
	} {
		msg := m
		_, err := store.SendMessage(ctx, &msg)
		require.NoError(t, err)
	}

	counts, err := store.UnreadCounts(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, UnreadCount{From: "bob", Count: 2}, counts[0])
	assert.Equal(t, UnreadCount{From: "carol", Count: 1}, counts[1])
}

func TestTombstoneMessage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice, err := store.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	bob, err := store.CreateUser(ctx, "bob", "hash")
	require.NoError(t, err)

	msg, err := store.SendMessage(ctx, &types.Message{
		SenderID: alice.ID, ReceiverID: bob.ID, Content: "doomed",
	})
	require.NoError(t, err)

	tomb, err := store.TombstoneMessage(ctx, msg)
	require.NoError(t, err)
	assert.Equal(t, msg.ID, tomb.OriginalMessageID)
	assert.Equal(t, "doomed", tomb.Content)

	// message gone from the live table
	unread, err := store.UnreadMessages(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, unread)

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Messages)
	require.Len(t, snap.DeletedMessages, 1)
	assert.Equal(t, tomb.ID, snap.DeletedMessages[0].ID)
}

func TestMessagesOwnedBy(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice, err := store.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	bob, err := store.CreateUser(ctx, "bob", "hash")
	require.NoError(t, err)
	carol, err := store.CreateUser(ctx, "carol", "hash")
	require.NoError(t, err)

	ab, err := store.SendMessage(ctx, &types.Message{SenderID: alice.ID, ReceiverID: bob.ID, Content: "ab"})
	require.NoError(t, err)
	bc, err := store.SendMessage(ctx, &types.Message{SenderID: bob.ID, ReceiverID: carol.ID, Content: "bc"})
	require.NoError(t, err)

	// alice owns ab but not bc, even when she asks for both
	owned, err := store.MessagesOwnedBy(ctx, alice.ID, []int64{ab.ID, bc.ID})
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, ab.ID, owned[0].ID)

	owned, err = store.MessagesOwnedBy(ctx, bob.ID, []int64{ab.ID, bc.ID})
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	owned, err = store.MessagesOwnedBy(ctx, alice.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestReplicationRowOps(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := &types.User{ID: 7, Username: "alice", Password: "hash", LoggedIn: true, SessionID: "tok"}
	require.NoError(t, store.InsertUserRow(ctx, user))

	// replayed add conflicts on the primary key
	err := store.InsertUserRow(ctx, user)
	assert.ErrorIs(t, err, ErrDuplicate)

	got, err := store.UserByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "tok", got.SessionID)

	user.LoggedIn = false
	user.SessionID = ""
	require.NoError(t, store.UpdateUserRow(ctx, user))
	got, err = store.UserByName(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, got.LoggedIn)

	msg := &types.Message{
		ID: 42, SenderID: 7, ReceiverID: 7, Content: "hello",
		TimeStamp: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.InsertMessageRow(ctx, msg))
	assert.ErrorIs(t, store.InsertMessageRow(ctx, msg), ErrDuplicate)

	msg.IsReceived = true
	require.NoError(t, store.UpdateMessageRow(ctx, msg))

	tomb := &types.DeletedMessage{ID: 3, SenderID: 7, ReceiverID: 7, Content: "hello", IsReceived: true, OriginalMessageID: 42}
	require.NoError(t, store.InsertDeletedMessageRow(ctx, tomb))
	require.NoError(t, store.DeleteMessageRow(ctx, msg.ID))

	require.NoError(t, store.DeleteUserRow(ctx, 7))
	// deleting an absent row stays silent
	require.NoError(t, store.DeleteUserRow(ctx, 7))

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Users)
	assert.Empty(t, snap.Messages)
	require.Len(t, snap.DeletedMessages, 1)
}

func TestSnapshotRoundTrip(t *testing.T) {
	leader := newTestStore(t)
	follower := newTestStore(t)
	ctx := context.Background()

	alice, err := leader.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	bob, err := leader.CreateUser(ctx, "bob", "hash")
	require.NoError(t, err)
	_, err = leader.SetSession(ctx, alice.ID, "tok")
	require.NoError(t, err)
	msg, err := leader.SendMessage(ctx, &types.Message{SenderID: alice.ID, ReceiverID: bob.ID, Content: "hi"})
	require.NoError(t, err)
	_, err = leader.TombstoneMessage(ctx, msg)
	require.NoError(t, err)

	snap, err := leader.Snapshot(ctx)
	require.NoError(t, err)

	require.NoError(t, follower.Wipe(ctx))
	require.NoError(t, follower.ImportSnapshot(ctx, snap))

	got, err := follower.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestWipe(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)

	require.NoError(t, store.Wipe(ctx))

	users, err := store.AllUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	// ids restart after a wipe
	again, err := store.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	assert.Equal(t, int64(1), again.ID)
}
