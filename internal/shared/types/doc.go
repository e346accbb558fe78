// Package types provides shared data structures for the fnsh core.
//
// This package defines the capability-table types used across all
// components, ensuring consistent tool definitions and results.
//
// Core Types:
//   - Service: Capability provider definition
//   - Tool: Provider tool specification
//   - Parameter: Tool parameter specification
//   - Context: Execution context for operations
//   - Result: Standard operation result
//
// Example Usage:
//
//	svc := provider.Definition()
//	for _, tool := range svc.Tools {
//	    fmt.Println(tool.ID, tool.Description)
//	}
package types
