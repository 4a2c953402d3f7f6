package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/parley-io/parley/pkg/log"
	"github.com/parley-io/parley/pkg/types"
)

// SQLiteStore implements the Store interface using SQLite
type SQLiteStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) a SQLite store at the given path.
// The schema is created if it doesn't exist. Parent directories are
// created if needed.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	logger := log.WithComponent("store")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable WAL mode for better concurrent performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{
		db:     db,
		logger: logger,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info().Str("path", path).Msg("SQLite store initialized")
	return s, nil
}

// createSchema creates the database tables if they don't exist.
// Foreign keys are deliberately not declared: deleting an account only
// tombstones the messages it received, so sender references may outlive
// the user row.
func (s *SQLiteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			logged_in INTEGER NOT NULL DEFAULT 0,
			session_id TEXT UNIQUE
		);

		CREATE TABLE IF NOT EXISTS messages (
			id INTEGER PRIMARY KEY,
			sender_id INTEGER NOT NULL,
			receiver_id INTEGER NOT NULL,
			content TEXT NOT NULL,
			is_received INTEGER NOT NULL DEFAULT 0,
			time_stamp TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_messages_receiver
			ON messages(receiver_id, is_received);

		CREATE TABLE IF NOT EXISTS deleted_messages (
			id INTEGER PRIMARY KEY,
			sender_id INTEGER NOT NULL,
			receiver_id INTEGER NOT NULL,
			content TEXT NOT NULL,
			is_received INTEGER NOT NULL DEFAULT 0,
			original_message_id INTEGER
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	s.logger.Info().Msg("closing SQLite store")
	return s.db.Close()
}

// isConstraintViolation checks if the error is a SQLite constraint violation
func isConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "constraint failed")
}

const userColumns = "id, username, password, logged_in, session_id"

func scanUser(row interface{ Scan(...any) error }) (*types.User, error) {
	var u types.User
	var sessionID sql.NullString
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.LoggedIn, &sessionID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	u.SessionID = sessionID.String
	return &u, nil
}

// nullable maps the empty string to NULL so the UNIQUE constraint on
// session_id only applies to live sessions.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// CreateUser inserts a new account and returns the committed row with
// its assigned id. Returns ErrDuplicate if the username is taken.
func (s *SQLiteStore) CreateUser(ctx context.Context, username, passwordHash string) (*types.User, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password) VALUES (?, ?)`,
		username, passwordHash,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading user id: %w", err)
	}

	s.logger.Debug().Str("username", username).Int64("id", id).Msg("created user")
	return &types.User{ID: id, Username: username, Password: passwordHash}, nil
}

// UserByName retrieves a user by username.
// Returns ErrNotFound if no such user exists.
func (s *SQLiteStore) UserByName(ctx context.Context, username string) (*types.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

// UserBySession retrieves the user holding the given session token.
// Returns ErrNotFound if the session is not live.
func (s *SQLiteStore) UserBySession(ctx context.Context, sessionID string) (*types.User, error) {
	if sessionID == "" {
		return nil, ErrNotFound
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE session_id = ?`, sessionID)
	return scanUser(row)
}

func (s *SQLiteStore) userByID(ctx context.Context, id int64) (*types.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// AllUsers returns every user ordered by id
func (s *SQLiteStore) AllUsers(ctx context.Context) ([]types.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	var users []types.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// SetSession marks the user logged in under the given session token and
// returns the updated row
func (s *SQLiteStore) SetSession(ctx context.Context, userID int64, sessionID string) (*types.User, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET logged_in = 1, session_id = ? WHERE id = ?`,
		nullable(sessionID), userID,
	)
	if err != nil {
		return nil, fmt.Errorf("setting session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.userByID(ctx, userID)
}

// ClearSession logs the user out and returns the updated row
func (s *SQLiteStore) ClearSession(ctx context.Context, userID int64) (*types.User, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET logged_in = 0, session_id = NULL WHERE id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("clearing session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.userByID(ctx, userID)
}

// SendMessage inserts a message and returns the committed row with its
// assigned id. The timestamp defaults to now when unset.
func (s *SQLiteStore) SendMessage(ctx context.Context, m *types.Message) (*types.Message, error) {
	stored := *m
	if stored.TimeStamp.IsZero() {
		stored.TimeStamp = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (sender_id, receiver_id, content, is_received, time_stamp)
		 VALUES (?, ?, ?, ?, ?)`,
		stored.SenderID, stored.ReceiverID, stored.Content, stored.IsReceived,
		stored.TimeStamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting message: %w", err)
	}

	stored.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading message id: %w", err)
	}
	return &stored, nil
}

const inboxColumns = `m.id, m.sender_id, m.receiver_id, m.content, m.is_received, m.time_stamp,
		COALESCE(u.username, '')`

func scanInbox(rows *sql.Rows) (*InboxMessage, error) {
	var im InboxMessage
	var ts string
	err := rows.Scan(&im.ID, &im.SenderID, &im.ReceiverID, &im.Content,
		&im.IsReceived, &ts, &im.SenderName)
	if err != nil {
		return nil, fmt.Errorf("scanning message: %w", err)
	}
	im.TimeStamp, err = time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, fmt.Errorf("parsing time_stamp: %w", err)
	}
	return &im, nil
}

// UnreadMessages returns the not-yet-received messages addressed to the
// given user, oldest first, without flipping their received flag
func (s *SQLiteStore) UnreadMessages(ctx context.Context, receiverID int64) ([]InboxMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+inboxColumns+`
		 FROM messages m LEFT JOIN users u ON u.id = m.sender_id
		 WHERE m.receiver_id = ? AND m.is_received = 0
		 ORDER BY m.time_stamp, m.id`, receiverID)
	if err != nil {
		return nil, fmt.Errorf("querying unread messages: %w", err)
	}
	defer rows.Close()

	var msgs []InboxMessage
	for rows.Next() {
		im, err := scanInbox(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, *im)
	}
	return msgs, rows.Err()
}

// ChatBetween returns the full conversation between two users in
// timestamp order, regardless of direction
func (s *SQLiteStore) ChatBetween(ctx context.Context, userID, otherID int64) ([]InboxMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+inboxColumns+`
		 FROM messages m LEFT JOIN users u ON u.id = m.sender_id
		 WHERE (m.sender_id = ? AND m.receiver_id = ?)
		    OR (m.sender_id = ? AND m.receiver_id = ?)
		 ORDER BY m.time_stamp, m.id`,
		userID, otherID, otherID, userID)
	if err != nil {
		return nil, fmt.Errorf("querying chat: %w", err)
	}
	defer rows.Close()

	var msgs []InboxMessage
	for rows.Next() {
		im, err := scanInbox(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, *im)
	}
	return msgs, rows.Err()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// MarkReceived flips the received flag on the listed messages where the
// given user is the receiver. Unknown or foreign ids are ignored.
func (s *SQLiteStore) MarkReceived(ctx context.Context, receiverID int64, messageIDs []int64) error {
	if len(messageIDs) == 0 {
		return nil
	}

	args := make([]any, 0, len(messageIDs)+1)
	args = append(args, receiverID)
	for _, id := range messageIDs {
		args = append(args, id)
	}

	_, err := s.db.ExecContext(ctx,
		`UPDATE messages SET is_received = 1
		 WHERE receiver_id = ? AND id IN (`+placeholders(len(messageIDs))+`)`, args...)
	if err != nil {
		return fmt.Errorf("marking messages received: %w", err)
	}
	return nil
}

// UnreadCounts tallies unread messages per sender for the given
// receiver. Self-messages are excluded.
func (s *SQLiteStore) UnreadCounts(ctx context.Context, receiverID int64) ([]UnreadCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT u.username, COUNT(m.id)
		 FROM messages m JOIN users u ON u.id = m.sender_id
		 WHERE m.receiver_id = ? AND m.sender_id != ? AND m.is_received = 0
		 GROUP BY u.username
		 ORDER BY u.username`, receiverID, receiverID)
	if err != nil {
		return nil, fmt.Errorf("querying unread counts: %w", err)
	}
	defer rows.Close()

	var counts []UnreadCount
	for rows.Next() {
		var c UnreadCount
		if err := rows.Scan(&c.From, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning unread count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func scanMessage(rows *sql.Rows) (*types.Message, error) {
	var m types.Message
	var ts string
	err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsReceived, &ts)
	if err != nil {
		return nil, fmt.Errorf("scanning message: %w", err)
	}
	m.TimeStamp, err = time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, fmt.Errorf("parsing time_stamp: %w", err)
	}
	return &m, nil
}

const messageColumns = "id, sender_id, receiver_id, content, is_received, time_stamp"

// MessagesOwnedBy returns the subset of the listed messages where the
// given user is the sender or the receiver
func (s *SQLiteStore) MessagesOwnedBy(ctx context.Context, userID int64, messageIDs []int64) ([]types.Message, error) {
	if len(messageIDs) == 0 {
		return nil, nil
	}

	args := make([]any, 0, len(messageIDs)+2)
	args = append(args, userID, userID)
	for _, id := range messageIDs {
		args = append(args, id)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+messageColumns+` FROM messages
		 WHERE (sender_id = ? OR receiver_id = ?)
		   AND id IN (`+placeholders(len(messageIDs))+`)
		 ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	var msgs []types.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, *m)
	}
	return msgs, rows.Err()
}

// MessagesToReceiver returns every message addressed to the given user
func (s *SQLiteStore) MessagesToReceiver(ctx context.Context, receiverID int64) ([]types.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE receiver_id = ? ORDER BY id`, receiverID)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	var msgs []types.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, *m)
	}
	return msgs, rows.Err()
}

// TombstoneMessage moves a message to the deleted_messages table in one
// transaction and returns the committed tombstone
func (s *SQLiteStore) TombstoneMessage(ctx context.Context, m *types.Message) (*types.DeletedMessage, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO deleted_messages (sender_id, receiver_id, content, is_received, original_message_id)
		 VALUES (?, ?, ?, ?, ?)`,
		m.SenderID, m.ReceiverID, m.Content, m.IsReceived, m.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting tombstone: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading tombstone id: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, m.ID); err != nil {
		return nil, fmt.Errorf("deleting message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing tombstone: %w", err)
	}

	return &types.DeletedMessage{
		ID:                id,
		SenderID:          m.SenderID,
		ReceiverID:        m.ReceiverID,
		Content:           m.Content,
		IsReceived:        m.IsReceived,
		OriginalMessageID: m.ID,
	}, nil
}

// DeleteUser removes the user row.
// Returns ErrNotFound if the user doesn't exist.
func (s *SQLiteStore) DeleteUser(ctx context.Context, userID int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertUserRow inserts a user with its id already assigned by the
// leader. A replayed event hits the primary key and returns
// ErrDuplicate.
func (s *SQLiteStore) InsertUserRow(ctx context.Context, u *types.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password, logged_in, session_id)
		 VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Password, u.LoggedIn, nullable(u.SessionID),
	)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("inserting user row: %w", err)
	}
	return nil
}

// UpdateUserRow overwrites a user row with the state carried by a
// replication event
func (s *SQLiteStore) UpdateUserRow(ctx context.Context, u *types.User) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET username = ?, password = ?, logged_in = ?, session_id = ?
		 WHERE id = ?`,
		u.Username, u.Password, u.LoggedIn, nullable(u.SessionID), u.ID,
	)
	if err != nil {
		return fmt.Errorf("updating user row: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUserRow removes a user row by id. Deleting an absent row is not
// an error so delete events stay idempotent.
func (s *SQLiteStore) DeleteUserRow(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting user row: %w", err)
	}
	return nil
}

// InsertMessageRow inserts a message with its id already assigned by
// the leader
func (s *SQLiteStore) InsertMessageRow(ctx context.Context, m *types.Message) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (id, sender_id, receiver_id, content, is_received, time_stamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.SenderID, m.ReceiverID, m.Content, m.IsReceived,
		m.TimeStamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("inserting message row: %w", err)
	}
	return nil
}

// UpdateMessageRow overwrites a message row with the state carried by a
// replication event
func (s *SQLiteStore) UpdateMessageRow(ctx context.Context, m *types.Message) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE messages SET sender_id = ?, receiver_id = ?, content = ?, is_received = ?, time_stamp = ?
		 WHERE id = ?`,
		m.SenderID, m.ReceiverID, m.Content, m.IsReceived,
		m.TimeStamp.UTC().Format(time.RFC3339Nano), m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating message row: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMessageRow removes a message row by id
func (s *SQLiteStore) DeleteMessageRow(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting message row: %w", err)
	}
	return nil
}

// InsertDeletedMessageRow inserts a tombstone with its id already
// assigned by the leader
func (s *SQLiteStore) InsertDeletedMessageRow(ctx context.Context, d *types.DeletedMessage) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO deleted_messages (id, sender_id, receiver_id, content, is_received, original_message_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID, d.SenderID, d.ReceiverID, d.Content, d.IsReceived, d.OriginalMessageID,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("inserting tombstone row: %w", err)
	}
	return nil
}

// Snapshot reads a consistent full copy of the replicated tables
func (s *SQLiteStore) Snapshot(ctx context.Context) (*types.Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("beginning snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	snap := &types.Snapshot{}

	rows, err := tx.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("snapshotting users: %w", err)
	}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		snap.Users = append(snap.Users, *u)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	rows, err = tx.QueryContext(ctx, `SELECT `+messageColumns+` FROM messages ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("snapshotting messages: %w", err)
	}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		snap.Messages = append(snap.Messages, *m)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	rows, err = tx.QueryContext(ctx,
		`SELECT id, sender_id, receiver_id, content, is_received, original_message_id
		 FROM deleted_messages ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("snapshotting tombstones: %w", err)
	}
	for rows.Next() {
		var d types.DeletedMessage
		var orig sql.NullInt64
		if err := rows.Scan(&d.ID, &d.SenderID, &d.ReceiverID, &d.Content, &d.IsReceived, &orig); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning tombstone: %w", err)
		}
		d.OriginalMessageID = orig.Int64
		snap.DeletedMessages = append(snap.DeletedMessages, d)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	return snap, nil
}

// ImportSnapshot loads a full snapshot into the store in one
// transaction. The caller wipes first; rows keep their leader-assigned
// ids.
func (s *SQLiteStore) ImportSnapshot(ctx context.Context, snap *types.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range snap.Users {
		u := &snap.Users[i]
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (id, username, password, logged_in, session_id)
			 VALUES (?, ?, ?, ?, ?)`,
			u.ID, u.Username, u.Password, u.LoggedIn, nullable(u.SessionID),
		); err != nil {
			return fmt.Errorf("importing user %d: %w", u.ID, err)
		}
	}

	for i := range snap.Messages {
		m := &snap.Messages[i]
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO messages (id, sender_id, receiver_id, content, is_received, time_stamp)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			m.ID, m.SenderID, m.ReceiverID, m.Content, m.IsReceived,
			m.TimeStamp.UTC().Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("importing message %d: %w", m.ID, err)
		}
	}

	for i := range snap.DeletedMessages {
		d := &snap.DeletedMessages[i]
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO deleted_messages (id, sender_id, receiver_id, content, is_received, original_message_id)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			d.ID, d.SenderID, d.ReceiverID, d.Content, d.IsReceived, d.OriginalMessageID,
		); err != nil {
			return fmt.Errorf("importing tombstone %d: %w", d.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}

	s.logger.Info().
		Int("users", len(snap.Users)).
		Int("messages", len(snap.Messages)).
		Int("tombstones", len(snap.DeletedMessages)).
		Msg("snapshot imported")
	return nil
}

// Wipe drops and recreates every table. Followers wipe before the
// initial registration and again whenever they adopt a new leader.
func (s *SQLiteStore) Wipe(ctx context.Context) error {
	drop := `
		DROP TABLE IF EXISTS users;
		DROP TABLE IF EXISTS messages;
		DROP TABLE IF EXISTS deleted_messages;
	`
	if _, err := s.db.ExecContext(ctx, drop); err != nil {
		return fmt.Errorf("dropping tables: %w", err)
	}
	if err := s.createSchema(); err != nil {
		return fmt.Errorf("recreating schema: %w", err)
	}
	s.logger.Info().Msg("store wiped")
	return nil
}
