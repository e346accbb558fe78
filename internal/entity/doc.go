// Package entity models one filesystem path as an immutable metadata
// snapshot.
//
// An Entity records kind, permission bits, size, and timestamps at
// construction and never re-reads them. Derived properties are lazy:
// MIME classification runs on first access and is cached for the
// entity's lifetime. Mutations act on paths, never on live entities,
// so an entity goes stale once its path is moved or copied over.
//
// Kinds:
//   - file, folder, block_device, character_device, link, socket, fifo
//
// Classification is evaluated against the snapshot's mode bits in that
// fixed priority order.
package entity
