// Package metrics exposes Prometheus metrics for replication, leader
// election, and the client API.
package metrics
