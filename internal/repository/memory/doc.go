// Package memory provides in-process repository implementations.
//
// The campaign store is seeded with the demo campaigns and simulates the
// latency of a remote store with context-aware fixed delays. A single
// mutex serialises every operation; concurrent updates are last-write-wins.
package memory
