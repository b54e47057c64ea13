// Package store caches maze solutions in a Pebble database keyed by a
// fingerprint of the grid, so repeated solves of the same image are lookups.
//
// What:
//
//   - Fingerprint hashes the grid dimensions and packed cells with xxh3.
//   - Open creates or reopens the database; Options.InMemory keeps it on an
//     in-memory filesystem.
//   - Get, Put and Delete read and write JSON-encoded Records under
//     "sol:<fingerprint>" keys.
//
// Complexity:
//
//   - Fingerprint: O(W×H).
//   - Get, Put, Delete: one Pebble point operation plus O(path) encoding.
//
// Errors:
//
//   - ErrClosed for operations on a closed store.
//   - Get returns (nil, nil) on a cache miss.
package store
