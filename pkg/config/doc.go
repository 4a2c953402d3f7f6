// Package config loads and validates server configuration: identity,
// role, addresses, and the replication timing intervals.
package config
