package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeerRoundTrip(t *testing.T) {
	p := Peer{ID: "2", Address: "127.0.0.1:6001"}

	parsed, err := ParsePeer(p.String())
	assert.NoError(t, err)
	assert.Equal(t, p, parsed)
}

func TestParsePeer(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Peer
		wantErr bool
	}{
		{
			name:  "host and port",
			input: "1-localhost:6001",
			want:  Peer{ID: "1", Address: "localhost:6001"},
		},
		{
			name:  "address containing dashes",
			input: "3-chat-node-3.internal:6003",
			want:  Peer{ID: "3", Address: "chat-node-3.internal:6003"},
		},
		{
			name:    "missing separator",
			input:   "42",
			wantErr: true,
		},
		{
			name:    "empty id",
			input:   "-localhost:6001",
			wantErr: true,
		},
		{
			name:    "empty address",
			input:   "7-",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeer(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusMessages(t *testing.T) {
	assert.Equal(t, "Success", StatusSuccess.Message())
	assert.Equal(t, "NOT LEADER: CONNECT TO LEADER SERVER", StatusNotLeader.Message())
	assert.Equal(t, "USER NOT LOGGED IN: LOGIN OR SIGN UP TO USE THE CHAT", StatusUserNotLoggedIn.Message())
	assert.Equal(t, "Unknown error", StatusCode(99).Message())
}
