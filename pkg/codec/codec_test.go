package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-io/parley/pkg/types"
)

func TestEventRoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		event Event
	}{
		{
			name: "user add",
			event: UserEvent(types.OpAdd, &types.User{
				ID: 1, Username: "alice", Password: "hash", LoggedIn: true, SessionID: "tok",
			}),
		},
		{
			name: "message add",
			event: MessageEvent(types.OpAdd, &types.Message{
				ID: 9, SenderID: 1, ReceiverID: 2, Content: "hi", TimeStamp: ts,
			}),
		},
		{
			name: "message delete",
			event: MessageEvent(types.OpDelete, &types.Message{
				ID: 9, SenderID: 1, ReceiverID: 2, Content: "hi", IsReceived: true, TimeStamp: ts,
			}),
		},
		{
			name: "tombstone add",
			event: DeletedMessageEvent(types.OpAdd, &types.DeletedMessage{
				ID: 3, SenderID: 1, ReceiverID: 2, Content: "hi", OriginalMessageID: 9,
			}),
		},
		{
			name: "user update",
			event: UserEvent(types.OpUpdate, &types.User{
				ID: 1, Username: "alice", Password: "hash",
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeEvent(tt.event)
			require.NoError(t, err)

			got, err := DecodeEvent(data)
			require.NoError(t, err)
			assert.Equal(t, &tt.event, got)
		})
	}
}

func TestEncodeEventRejectsMalformed(t *testing.T) {
	_, err := EncodeEvent(Event{Table: "nonsense", Op: types.OpAdd, User: &types.User{}})
	assert.ErrorContains(t, err, "unknown table")

	_, err = EncodeEvent(Event{Table: types.TableUsers, Op: "upsert", User: &types.User{}})
	assert.ErrorContains(t, err, "unknown op")

	_, err = EncodeEvent(Event{Table: types.TableUsers, Op: types.OpAdd})
	assert.ErrorContains(t, err, "carries no row")
}

func TestDecodeEventRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{
			name:    "unknown table",
			payload: `{"table":"secrets","op":"add","row":{}}`,
			wantErr: "unknown table",
		},
		{
			name:    "unknown op",
			payload: `{"table":"users","op":"truncate","row":{}}`,
			wantErr: "unknown op",
		},
		{
			name:    "unknown row column",
			payload: `{"table":"users","op":"add","row":{"id":1,"username":"a","password":"h","logged_in":false,"session_id":"","is_admin":true}}`,
			wantErr: "unknown field",
		},
		{
			name:    "row of the wrong shape",
			payload: `{"table":"messages","op":"add","row":{"username":"alice"}}`,
			wantErr: "unknown field",
		},
		{
			name:    "missing row",
			payload: `{"table":"users","op":"add"}`,
			wantErr: "carries no row",
		},
		{
			name:    "unknown envelope field",
			payload: `{"table":"users","op":"add","row":{},"seq":4}`,
			wantErr: "unknown field",
		},
		{
			name:    "not json",
			payload: `pickle`,
			wantErr: "decoding event envelope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEvent([]byte(tt.payload))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	snap := &types.Snapshot{
		Users: []types.User{
			{ID: 1, Username: "alice", Password: "hash", LoggedIn: true, SessionID: "tok"},
			{ID: 2, Username: "bob", Password: "hash"},
		},
		Messages: []types.Message{
			{ID: 1, SenderID: 1, ReceiverID: 2, Content: "hi", TimeStamp: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		},
		DeletedMessages: []types.DeletedMessage{
			{ID: 1, SenderID: 2, ReceiverID: 1, Content: "bye", OriginalMessageID: 7},
		},
	}

	data, err := EncodeSnapshot(snap)
	require.NoError(t, err)

	got, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestEmptySnapshotRoundTrip(t *testing.T) {
	data, err := EncodeSnapshot(&types.Snapshot{})
	require.NoError(t, err)

	got, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Empty(t, got.Users)
	assert.Empty(t, got.Messages)
	assert.Empty(t, got.DeletedMessages)
}

func TestPeerRoundTrip(t *testing.T) {
	p := types.Peer{ID: "3", Address: "127.0.0.1:6003"}

	data, err := EncodePeer(p)
	require.NoError(t, err)

	got, err := DecodePeer(data)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestDecodePeerRejectsMalformed(t *testing.T) {
	_, err := DecodePeer([]byte(`{"id":"","address":"x"}`))
	assert.Error(t, err)

	_, err = DecodePeer([]byte(`{"id":"1","address":"x","role":"leader"}`))
	assert.Error(t, err)

	_, err = DecodePeer([]byte(`garbage`))
	assert.Error(t, err)
}
