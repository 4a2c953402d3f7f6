// Package client provides a failover-aware client for the chat
// cluster. It walks the configured server list until it finds the
// leader and moves on automatically when leadership changes.
package client
