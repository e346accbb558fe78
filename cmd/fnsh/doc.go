// Package main is the entry point for the fnsh scripting shell.
//
// fnsh evaluates scripts inside a sandboxed runtime whose only host
// surface is the capability table built from the filesystem and
// process providers.
//
// Modes:
//   - One-shot expression: -e 'fs.list(".").count'
//   - Script file: -f script.js
//   - Interactive: no flags; reads lines from stdin, state persists
//     across lines within the session
//
// Output:
//   - String results print raw to stdout
//   - Other results print as indented JSON
//   - console.* output and the prompt go to stderr so stdout stays
//     pipeable
//
// Configuration:
//   - Environment variables (FNSH_TIMEOUT, FNSH_WORKDIR,
//     FNSH_CHUNK_SIZE, FNSH_SNIFF_LIMIT, LOG_LEVEL, LOG_DEV)
//   - CLI flags (override env vars)
//
// Usage:
//
//	# One-shot
//	./fnsh -e 'tail(fs.stat("build.log").entity, 20)'
//
//	# Interactive with development logging
//	./fnsh -dev
//
// Signals:
//   - SIGINT, SIGTERM: cancel the running evaluation and exit
package main
