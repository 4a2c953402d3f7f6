package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/parley-io/parley/pkg/types"
)

// Event is one replicated mutation: an operation on a single row of a
// single table. Exactly one of the row pointers is set, matching Table.
type Event struct {
	Table types.Table
	Op    types.Op

	User    *types.User
	Message *types.Message
	Deleted *types.DeletedMessage
}

// envelope is the wire form: the row is kept raw so it can be decoded
// against the type named by the table tag
type envelope struct {
	Table types.Table     `json:"table"`
	Op    types.Op        `json:"op"`
	Row   json.RawMessage `json:"row"`
}

// UserEvent builds an event for a users-table mutation
func UserEvent(op types.Op, u *types.User) Event {
	return Event{Table: types.TableUsers, Op: op, User: u}
}

// MessageEvent builds an event for a messages-table mutation
func MessageEvent(op types.Op, m *types.Message) Event {
	return Event{Table: types.TableMessages, Op: op, Message: m}
}

// DeletedMessageEvent builds an event for a tombstone insert
func DeletedMessageEvent(op types.Op, d *types.DeletedMessage) Event {
	return Event{Table: types.TableDeletedMessages, Op: op, Deleted: d}
}

// EncodeEvent serializes an event into its self-describing wire form
func EncodeEvent(ev Event) ([]byte, error) {
	if err := validOp(ev.Op); err != nil {
		return nil, err
	}

	var row any
	switch ev.Table {
	case types.TableUsers:
		if ev.User == nil {
			return nil, fmt.Errorf("event for table %q carries no row", ev.Table)
		}
		row = ev.User
	case types.TableMessages:
		if ev.Message == nil {
			return nil, fmt.Errorf("event for table %q carries no row", ev.Table)
		}
		row = ev.Message
	case types.TableDeletedMessages:
		if ev.Deleted == nil {
			return nil, fmt.Errorf("event for table %q carries no row", ev.Table)
		}
		row = ev.Deleted
	default:
		return nil, fmt.Errorf("unknown table %q", ev.Table)
	}

	rawRow, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("encoding row: %w", err)
	}
	return json.Marshal(envelope{Table: ev.Table, Op: ev.Op, Row: rawRow})
}

// DecodeEvent parses and validates an event from the wire. Unknown
// tables, unknown operations, and unknown row columns are all rejected,
// so a replica never applies a half-understood mutation.
func DecodeEvent(data []byte) (*Event, error) {
	var env envelope
	if err := strictUnmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding event envelope: %w", err)
	}
	if err := validOp(env.Op); err != nil {
		return nil, err
	}
	if len(env.Row) == 0 {
		return nil, fmt.Errorf("event for table %q carries no row", env.Table)
	}

	ev := &Event{Table: env.Table, Op: env.Op}
	switch env.Table {
	case types.TableUsers:
		var u types.User
		if err := strictUnmarshal(env.Row, &u); err != nil {
			return nil, fmt.Errorf("decoding users row: %w", err)
		}
		ev.User = &u
	case types.TableMessages:
		var m types.Message
		if err := strictUnmarshal(env.Row, &m); err != nil {
			return nil, fmt.Errorf("decoding messages row: %w", err)
		}
		ev.Message = &m
	case types.TableDeletedMessages:
		var d types.DeletedMessage
		if err := strictUnmarshal(env.Row, &d); err != nil {
			return nil, fmt.Errorf("decoding deleted_messages row: %w", err)
		}
		ev.Deleted = &d
	default:
		return nil, fmt.Errorf("unknown table %q", env.Table)
	}
	return ev, nil
}

func validOp(op types.Op) error {
	switch op {
	case types.OpAdd, types.OpUpdate, types.OpDelete:
		return nil
	}
	return fmt.Errorf("unknown op %q", op)
}

// strictUnmarshal decodes JSON rejecting unknown fields
func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// EncodeSnapshot serializes a full-store snapshot for the
// RegisterFollower response
func EncodeSnapshot(snap *types.Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

// DecodeSnapshot parses a snapshot received from the leader
func DecodeSnapshot(data []byte) (*types.Snapshot, error) {
	var snap types.Snapshot
	if err := strictUnmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &snap, nil
}

// peerWire is the payload of an UpdateFollowers broadcast
type peerWire struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

// EncodePeer serializes a peer announcement
func EncodePeer(p types.Peer) ([]byte, error) {
	return json.Marshal(peerWire{ID: p.ID, Address: p.Address})
}

// DecodePeer parses a peer announcement
func DecodePeer(data []byte) (types.Peer, error) {
	var pw peerWire
	if err := strictUnmarshal(data, &pw); err != nil {
		return types.Peer{}, fmt.Errorf("decoding peer: %w", err)
	}
	if pw.ID == "" || pw.Address == "" {
		return types.Peer{}, fmt.Errorf("peer announcement missing id or address")
	}
	return types.Peer{ID: pw.ID, Address: pw.Address}, nil
}
