// Package launcher routes one process invocation: an accepted argument
// shape is dispatched to a registered demo, anything else prints the
// catalog. Dispatch failures are reported to the diagnostic writer and,
// unless strict exit is enabled, do not fail the process.
package launcher
