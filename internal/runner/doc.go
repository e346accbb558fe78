// Package runner spawns native processes synchronously and returns
// their captured output as a structured result.
//
// A non-zero exit status is a normal, inspectable result, never an
// error; the error return is reserved for failures to spawn at all.
// A process terminated by a signal reports a nil status.
//
// RunPTY attaches a pseudo-terminal for commands that refuse to run
// without one; its interleaved terminal output lands in Stdout.
package runner
