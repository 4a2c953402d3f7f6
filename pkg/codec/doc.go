/*
Package codec defines the replication wire formats.

Three payload kinds cross the peer link, all JSON:

  - Events: one mutation each, as a (table, op, row) envelope. The row
    is decoded against the struct named by the table tag, and decoding
    is strict: unknown tables, unknown ops, and unknown row columns are
    rejected rather than partially applied.

  - Snapshots: the full replicated state, shipped once per follower
    registration.

  - Peer announcements: the (id, address) of a newly registered
    follower, broadcast to the existing ones.

Payloads are self-describing and versioned only by their field sets;
a replica that does not understand a payload refuses it instead of
guessing.
*/
package codec
