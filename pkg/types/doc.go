/*
Package types defines the shared data model for the Parley chat cluster.

It holds the replicated row structs (User, Message, DeletedMessage), the
Snapshot shipped to registering followers, the Peer identity used on the
replication wire, and the StatusCode table carried inside every client
response.

Status codes are numeric and stable; their message strings are part of the
client protocol. Codes cover the whole historical table even where the
current servers only emit a subset, so old clients keep decoding correctly.
*/
package types
