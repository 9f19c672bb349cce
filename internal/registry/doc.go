// Package registry is the process-wide table of launchable demos. Demo
// packages register a Descriptor from init(); the launcher scans the table
// by namespace prefix to build its catalog and looks entries up by their
// fully qualified name to dispatch them.
package registry
