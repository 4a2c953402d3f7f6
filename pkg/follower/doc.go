// Package follower runs a replica of the chat state. A follower
// applies the leader's replication stream, answers clients with a
// redirect status, heartbeats the leader, and takes part in the
// minimum-id election that replaces a dead one.
package follower
