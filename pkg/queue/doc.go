// Package queue implements the unbounded FIFO between the leader's
// write path and the replication fan-out worker.
package queue
