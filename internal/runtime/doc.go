// Package runtime adapts the entry points demos register to a single
// EntryPoint interface. Resolve selects the adapter for a registered value
// based on its calling convention; Invoke runs it and converts a panic in
// the demo into an error.
package runtime
