/*
Package storage provides persistence for the chat cluster.

The Store interface splits into three method groups:

  - Account and message operations used by the leader's client service.
    Inserts assign row ids here and return the committed row, because the
    committed row is what gets serialized into the replication stream.

  - Replication row operations used by followers applying the event
    stream. These insert rows with the leader-assigned ids; a replayed
    add event hits the primary key and surfaces as ErrDuplicate.

  - Snapshot transfer. Snapshot reads a consistent full copy of every
    replicated table inside one read transaction; ImportSnapshot loads
    one into a freshly wiped follower store.

The only implementation is SQLiteStore on modernc.org/sqlite (pure Go,
no cgo). Schema is created on open. Timestamps are stored as RFC 3339
text in UTC. Session ids carry a UNIQUE constraint with NULL standing
in for "no session", so the constraint only bites on live tokens.
*/
package storage
