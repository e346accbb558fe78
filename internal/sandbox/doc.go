/*
Package sandbox provides the script evaluation boundary.

# Overview

Scripts run inside an isolated goja runtime. The host surface is
exactly the capability table built from provider definitions: each
service becomes a global object and each tool a method on it, so
fs.list(path) in script dispatches to the filesystem provider. Nothing
else crosses the boundary.

Each runtime carries:

  - Execution timeout and context cancellation via VM interrupts
  - API restrictions (no require, process, module, exports)
  - Console capture (log/warn/error/info recorded, not printed)
  - Polymorphic head/tail helpers over strings, arrays and files

# Security Model

Sandboxed code cannot:
  - Touch the filesystem or spawn processes except through bound tools
  - Import modules or reach the host runtime
  - Run past the configured timeout

Tool failures surface as thrown errors inside the script; a structured
failure from a provider never silently becomes a value.

# Usage Example

	rt, err := sandbox.New(sandbox.DefaultConfig(),
		providers.NewFilesystem(0, log),
		providers.NewProcess(log),
	)

	result, err := rt.Execute(ctx, `fs.stat("/etc/hosts").entity.size`)
*/
package sandbox
