// Package leader runs the authoritative chat server. It owns all
// writes, serves the client API, snapshots state for registering
// followers, and fans committed mutations out to the cluster in
// commit order.
package leader
