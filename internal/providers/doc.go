// Package providers exposes the fnsh core as capability providers.
//
// Each provider publishes a tool table via Definition and executes
// tools by ID via Execute. The table is the complete surface the
// sandboxed evaluator receives; nothing reaches the evaluator that is
// not declared here.
//
// Providers:
//   - Filesystem: entity construction, directory walking, chunked
//     head/tail, MIME classification, move/copy
//   - Process: synchronous command invocation, plain or PTY
//
// All operations validate parameter presence and type before touching
// the filesystem and return structured results.
package providers
